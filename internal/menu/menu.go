package menu

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable catalogue or demo entry.
type Item struct {
	ID       string
	Label    string
	Disabled bool
}

// Context carries the demo state an action runs against.
type Context struct {
	Demo     string
	Values   []string
	Multiple bool
}

// Loader populates demo entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a demo action.
type ActionResult struct {
	Info string
	Err  error
}

// RootItems returns the demo catalogue.
func RootItems() []Item {
	return []Item{
		{ID: "menu", Label: "Menu"},
		{ID: "select", Label: "Select"},
		{ID: "multi-select", Label: "Multi select"},
		{ID: "context-menu", Label: "Context menu"},
		{ID: "dialog", Label: "Dialog"},
		{ID: "alert-dialog", Label: "Alert dialog"},
		{ID: "sheet", Label: "Sheet"},
		{ID: "tooltip", Label: "Tooltip"},
		{ID: "number-input", Label: "Number input"},
		{ID: "file-upload", Label: "File upload"},
	}
}

// CategoryLoaders lists item loaders keyed by demo ID. Demos without items
// have no loader.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"menu":         loadFruitMenu,
		"select":       loadLanguageMenu,
		"multi-select": loadLanguageMenu,
		"context-menu": loadEditMenu,
	}
}

// ActionHandlers maps "demo:action" identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"menu:select":          SelectAction,
		"select:change":        ValueChangeAction,
		"multi-select:change":  ValueChangeAction,
		"context-menu:select":  SelectAction,
		"dialog:confirm":       ConfirmAction,
		"alert-dialog:confirm": ConfirmAction,
		"sheet:confirm":        ConfirmAction,
		"number-input:commit":  CommitAction,
		"file-upload:pick":     PickFilesAction,
	}
}

func loadFruitMenu(Context) ([]Item, error) {
	items := menuItemsFromIDs([]string{"apple", "banana", "blueberry", "cherry", "durian", "grape", "lime"})
	for i := range items {
		if items[i].ID == "durian" {
			items[i].Disabled = true
		}
	}
	return items, nil
}

func loadLanguageMenu(Context) ([]Item, error) {
	return []Item{
		{ID: "go", Label: "Go"},
		{ID: "rust", Label: "Rust"},
		{ID: "zig", Label: "Zig"},
		{ID: "ocaml", Label: "OCaml"},
		{ID: "haskell", Label: "Haskell"},
		{ID: "elixir", Label: "Elixir"},
		{ID: "typescript", Label: "TypeScript"},
		{ID: "cobol", Label: "COBOL", Disabled: true},
	}, nil
}

func loadEditMenu(Context) ([]Item, error) {
	return menuItemsFromIDs([]string{"cut", "copy", "paste", "select-all", "delete"}), nil
}

// SelectAction reports the activated item.
func SelectAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		if item.Disabled {
			return ActionResult{Err: fmt.Errorf("%s is disabled", item.Label)}
		}
		return ActionResult{Info: fmt.Sprintf("Selected %s", labelOr(item))}
	}
}

// ValueChangeAction reports the values a select now holds.
func ValueChangeAction(ctx Context, _ Item) tea.Cmd {
	values := append([]string(nil), ctx.Values...)
	return func() tea.Msg {
		if len(values) == 0 {
			return ActionResult{Info: "Selection cleared"}
		}
		return ActionResult{Info: fmt.Sprintf("Value: %s", strings.Join(values, ", "))}
	}
}

// ConfirmAction reports a confirmed dialog.
func ConfirmAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("%s confirmed", prettyLabel(ctx.Demo))}
	}
}

// CommitAction reports a committed number; item.ID carries the formatted
// value.
func CommitAction(_ Context, item Item) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(item.ID) == "" {
			return ActionResult{Err: fmt.Errorf("no value to commit")}
		}
		return ActionResult{Info: fmt.Sprintf("Value set to %s", item.ID)}
	}
}

func labelOr(item Item) string {
	if item.Label != "" {
		return item.Label
	}
	return item.ID
}

func menuItemsFromIDs(ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id)})
	}
	return items
}

// prettyLabel turns an id such as "select-all" into "Select all".
func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		runes := []rune(strings.ToLower(part))
		if i == 0 && len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
