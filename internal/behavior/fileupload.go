package behavior

import (
	"mime"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// File describes a picked or dropped file. Type is a MIME type; when empty
// it is derived from the name's extension.
type File struct {
	Name string
	Size int64
	Type string
}

// MediaType returns Type, falling back to the extension's registered type.
func (f File) MediaType() string {
	if f.Type != "" {
		return f.Type
	}
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Name)))
	if base, _, ok := strings.Cut(t, ";"); ok {
		return strings.TrimSpace(base)
	}
	return t
}

// RejectReason says why a file was not accepted.
type RejectReason string

const (
	RejectInvalidType RejectReason = "file-invalid-type"
	RejectTooLarge    RejectReason = "file-too-large"
	RejectTooMany     RejectReason = "too-many-files"
)

// Rejection pairs a file with every reason it failed.
type Rejection struct {
	File    File
	Reasons []RejectReason
}

// FileUploadOptions configures a FileUpload. Accept is a comma separated
// list of extensions (".png"), MIME types ("application/pdf") and wildcards
// ("image/*"); empty accepts anything. Zero MaxSize and MaxFiles mean
// unlimited.
type FileUploadOptions struct {
	Accept        string
	MaxSize       int64
	MaxFiles      int
	Multiple      bool
	Disabled      bool
	OnFilesChange func(files []File)
	OnReject      func(rejected []Rejection)
	OnOpenPicker  func()
}

// FileUploadState is a snapshot of a FileUpload.
type FileUploadState struct {
	Files    []File
	Rejected []Rejection
	Dragging bool
	Disabled bool
}

// FileUpload validates files arriving from a picker or a drop onto its
// dropzone.
type FileUpload struct {
	lifecycle
	opts     FileUploadOptions
	accept   []string
	files    []File
	rejected []Rejection
	dragging bool
	dropzone *dom.Element
	removers []func()
}

// NewFileUpload returns an empty upload.
func NewFileUpload(opts FileUploadOptions) *FileUpload {
	u := &FileUpload{lifecycle: newLifecycle("fileupload"), opts: opts}
	u.accept = parseAccept(opts.Accept)
	return u
}

// State returns a snapshot of the upload state.
func (u *FileUpload) State() FileUploadState {
	return FileUploadState{
		Files:    append([]File(nil), u.files...),
		Rejected: append([]Rejection(nil), u.rejected...),
		Dragging: u.dragging,
		Disabled: u.opts.Disabled,
	}
}

// Files returns the accepted files in arrival order.
func (u *FileUpload) Files() []File { return append([]File(nil), u.files...) }

// Rejected returns the rejections from the most recent AddFiles call.
func (u *FileUpload) Rejected() []Rejection { return append([]Rejection(nil), u.rejected...) }

// Dragging reports whether a drag is over the dropzone.
func (u *FileUpload) Dragging() bool { return u.dragging }

// AddFiles validates files and keeps the accepted ones. A single-file upload
// replaces its file; dropping several onto it rejects them all.
func (u *FileUpload) AddFiles(files []File) (accepted []File, rejected []Rejection) {
	if u.destroyed || u.opts.Disabled || len(files) == 0 {
		return nil, nil
	}
	tooMany := !u.opts.Multiple && len(files) > 1
	room := -1
	if u.opts.Multiple && u.opts.MaxFiles > 0 {
		room = u.opts.MaxFiles - len(u.files)
	}
	for _, f := range files {
		var reasons []RejectReason
		if !u.accepts(f) {
			reasons = append(reasons, RejectInvalidType)
		}
		if u.opts.MaxSize > 0 && f.Size > u.opts.MaxSize {
			reasons = append(reasons, RejectTooLarge)
		}
		if tooMany || (len(reasons) == 0 && room == 0) {
			reasons = append(reasons, RejectTooMany)
		}
		if len(reasons) > 0 {
			rejected = append(rejected, Rejection{File: f, Reasons: reasons})
			for _, r := range reasons {
				events.Widget.Reject(u.kind, u.id, f.Name, string(r))
			}
			continue
		}
		accepted = append(accepted, f)
		if room > 0 {
			room--
		}
	}
	u.rejected = rejected
	if len(rejected) > 0 && u.opts.OnReject != nil {
		u.opts.OnReject(rejected)
	}
	if len(accepted) == 0 {
		return accepted, rejected
	}
	if u.opts.Multiple {
		u.files = append(u.files, accepted...)
	} else {
		u.files = accepted
	}
	u.changed()
	return accepted, rejected
}

// Remove drops the accepted file with the given name.
func (u *FileUpload) Remove(name string) {
	for i, f := range u.files {
		if f.Name == name {
			u.files = append(u.files[:i:i], u.files[i+1:]...)
			u.changed()
			return
		}
	}
}

// Clear drops every accepted file and the last rejections.
func (u *FileUpload) Clear() {
	u.rejected = nil
	if len(u.files) == 0 {
		return
	}
	u.files = nil
	u.changed()
}

func (u *FileUpload) changed() {
	events.Widget.Select(u.kind, u.id, strconv.Itoa(len(u.files)))
	if u.opts.OnFilesChange != nil {
		u.opts.OnFilesChange(u.Files())
	}
}

// OpenPicker asks the host to show a file chooser.
func (u *FileUpload) OpenPicker() {
	if u.destroyed || u.opts.Disabled || u.opts.OnOpenPicker == nil {
		return
	}
	u.opts.OnOpenPicker()
}

// SetDisabled toggles the disabled state.
func (u *FileUpload) SetDisabled(disabled bool) {
	u.opts.Disabled = disabled
	if disabled {
		u.dragging = false
	}
}

// SetDropzone wires drag and drop plus click and Enter/Space activation on
// el.
func (u *FileUpload) SetDropzone(el *dom.Element) {
	if u.destroyed || el == u.dropzone {
		return
	}
	removeAll(&u.removers)
	u.dropzone = el
	u.dragging = false
	if el == nil {
		return
	}
	u.removers = append(u.removers,
		el.AddEventListener(dom.EventDragEnter, func(ev *dom.Event) {
			if u.opts.Disabled {
				return
			}
			ev.PreventDefault()
			u.dragging = true
		}, dom.ListenerOptions{}),
		el.AddEventListener(dom.EventDragLeave, func(ev *dom.Event) {
			// Leaving a child for another child stays inside the zone.
			if ev.RelatedTarget != nil && el.Contains(ev.RelatedTarget) {
				return
			}
			u.dragging = false
		}, dom.ListenerOptions{}),
		el.AddEventListener(dom.EventDrop, func(ev *dom.Event) {
			u.dragging = false
			files, ok := ev.Data.([]File)
			if !ok || u.opts.Disabled {
				return
			}
			ev.PreventDefault()
			u.AddFiles(files)
		}, dom.ListenerOptions{}),
		el.AddEventListener(dom.EventClick, func(*dom.Event) { u.OpenPicker() }, dom.ListenerOptions{}),
		el.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
			if ev.Target != el || ev.HasModifier() {
				return
			}
			if ev.Key == dom.KeyEnter || ev.Key == dom.KeySpace {
				ev.PreventDefault()
				u.OpenPicker()
			}
		}, dom.ListenerOptions{}),
	)
}

// Destroy detaches the dropzone listeners. Later calls do nothing.
func (u *FileUpload) Destroy() {
	if !u.destroy() {
		return
	}
	removeAll(&u.removers)
	u.dropzone = nil
	u.dragging = false
}

func (u *FileUpload) accepts(f File) bool {
	if len(u.accept) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(f.Name))
	typ := strings.ToLower(f.MediaType())
	for _, pattern := range u.accept {
		switch {
		case strings.HasPrefix(pattern, "."):
			if ext == pattern {
				return true
			}
		case strings.HasSuffix(pattern, "/*"):
			if typ != "" && strings.HasPrefix(typ, strings.TrimSuffix(pattern, "*")) {
				return true
			}
		case typ == pattern:
			return true
		}
	}
	return false
}

func parseAccept(accept string) []string {
	var out []string
	for _, part := range strings.Split(accept, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DropzoneProps returns attributes for the drop target.
func (u *FileUpload) DropzoneProps() Props {
	return Props{
		"id":            u.id + "-dropzone",
		"role":          "button",
		"tabindex":      tabIndex(u.opts.Disabled),
		"aria-disabled": trueOrAbsent(u.opts.Disabled),
		"aria-label":    "Choose files or drop them here",
		"data-dragging": flag("true", u.dragging),
	}
}

// InputProps returns attributes for the hidden native file input.
func (u *FileUpload) InputProps() Props {
	return Props{
		"id":       u.id + "-input",
		"type":     "file",
		"accept":   strings.Join(u.accept, ","),
		"multiple": flag("multiple", u.opts.Multiple),
		"disabled": flag("disabled", u.opts.Disabled),
		"hidden":   "hidden",
		"tabindex": "-1",
	}
}

func tabIndex(disabled bool) string {
	if disabled {
		return "-1"
	}
	return "0"
}
