package menu

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickedFile describes a file chosen through the picker prompt.
type PickedFile struct {
	Name string
	Size int64
	Type string
}

// FilesPicked delivers the outcome of a picker prompt.
type FilesPicked struct {
	Files []PickedFile
	Err   error
}

var statFn = os.Stat

// PickFilesAction stats the comma separated paths in item.ID. Directories
// and unreadable paths fail the whole pick.
func PickFilesAction(_ Context, item Item) tea.Cmd {
	paths := splitPaths(item.ID)
	return func() tea.Msg {
		if len(paths) == 0 {
			return FilesPicked{Err: fmt.Errorf("no file given")}
		}
		files := make([]PickedFile, 0, len(paths))
		for _, path := range paths {
			info, err := statFn(path)
			if err != nil {
				return FilesPicked{Err: fmt.Errorf("stat %s: %w", path, err)}
			}
			if info.IsDir() {
				return FilesPicked{Err: fmt.Errorf("%s is a directory", path)}
			}
			name := filepath.Base(path)
			files = append(files, PickedFile{
				Name: name,
				Size: info.Size(),
				Type: mime.TypeByExtension(filepath.Ext(name)),
			})
		}
		return FilesPicked{Files: files}
	}
}

func splitPaths(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
