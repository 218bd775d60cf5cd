package behavior

import (
	"reflect"
	"testing"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/testutil"
)

func reasons(r Rejection) []RejectReason { return r.Reasons }

func TestFileUploadValidatesTypeSizeAndCount(t *testing.T) {
	var changed [][]File
	var rejected [][]Rejection
	u := NewFileUpload(FileUploadOptions{
		Accept:        "image/*, .pdf",
		MaxSize:       1000,
		MaxFiles:      2,
		Multiple:      true,
		OnFilesChange: func(f []File) { changed = append(changed, f) },
		OnReject:      func(r []Rejection) { rejected = append(rejected, r) },
	})
	accepted, rej := u.AddFiles([]File{
		{Name: "cat.png", Size: 10},
		{Name: "notes.txt", Size: 10},
		{Name: "huge.jpg", Size: 5000},
		{Name: "report.PDF", Size: 10},
		{Name: "dog.gif", Size: 10},
	})
	if len(accepted) != 2 || accepted[0].Name != "cat.png" || accepted[1].Name != "report.PDF" {
		t.Fatalf("unexpected accepted files %v", accepted)
	}
	if len(rej) != 3 {
		t.Fatalf("expected 3 rejections, got %v", rej)
	}
	if !reflect.DeepEqual(reasons(rej[0]), []RejectReason{RejectInvalidType}) {
		t.Fatalf("unexpected reasons for txt: %v", rej[0].Reasons)
	}
	if !reflect.DeepEqual(reasons(rej[1]), []RejectReason{RejectTooLarge}) {
		t.Fatalf("unexpected reasons for huge.jpg: %v", rej[1].Reasons)
	}
	if !reflect.DeepEqual(reasons(rej[2]), []RejectReason{RejectTooMany}) {
		t.Fatalf("unexpected reasons for dog.gif: %v", rej[2].Reasons)
	}
	if len(changed) != 1 || len(rejected) != 1 {
		t.Fatalf("expected one change and one rejection callback")
	}

	u.Remove("cat.png")
	if files := u.Files(); len(files) != 1 || files[0].Name != "report.PDF" {
		t.Fatalf("unexpected files after remove %v", files)
	}
	u.Clear()
	if len(u.Files()) != 0 || len(u.Rejected()) != 0 || len(changed) != 3 {
		t.Fatalf("expected cleared state after 3 changes, got %d", len(changed))
	}
}

func TestFileUploadSingleReplaces(t *testing.T) {
	u := NewFileUpload(FileUploadOptions{Accept: "application/pdf"})
	u.AddFiles([]File{{Name: "a.pdf"}})
	u.AddFiles([]File{{Name: "b.pdf"}})
	if files := u.Files(); len(files) != 1 || files[0].Name != "b.pdf" {
		t.Fatalf("expected b.pdf to replace a.pdf, got %v", files)
	}
	_, rej := u.AddFiles([]File{{Name: "c.pdf"}, {Name: "d.pdf"}})
	if len(rej) != 2 || rej[0].Reasons[0] != RejectTooMany {
		t.Fatalf("expected several files onto a single upload to be rejected, got %v", rej)
	}
	if u.Files()[0].Name != "b.pdf" {
		t.Fatalf("rejected drop must keep the existing file")
	}
	if u.InputProps()["multiple"] != "" || u.InputProps()["accept"] != "application/pdf" {
		t.Fatalf("unexpected input props %v", u.InputProps())
	}
}

func TestFileMediaTypeFallsBackToExtension(t *testing.T) {
	if got := (File{Name: "x.PNG"}).MediaType(); got != "image/png" {
		t.Fatalf("unexpected media type %q", got)
	}
	if got := (File{Name: "x.bin", Type: "text/plain"}).MediaType(); got != "text/plain" {
		t.Fatalf("explicit type should win, got %q", got)
	}
}

func TestFileUploadDropzoneEvents(t *testing.T) {
	doc, _ := testutil.NewDocument()
	zone := testutil.Box(doc.Body(), "div", dom.Rect{Width: 20, Height: 5})
	zone.SetID("zone")
	inner := testutil.Box(zone, "span", dom.Rect{Width: 5, Height: 1})
	pickers := 0
	u := NewFileUpload(FileUploadOptions{Multiple: true, OnOpenPicker: func() { pickers++ }})
	u.SetDropzone(zone)
	u.DropzoneProps().Apply(zone)

	if doc.Dispatch(zone, &dom.Event{Type: dom.EventDragEnter}) {
		t.Fatalf("dragenter should be accepted")
	}
	if !u.Dragging() || u.DropzoneProps()["data-dragging"] != "true" {
		t.Fatalf("expected drag state")
	}
	doc.Dispatch(zone, &dom.Event{Type: dom.EventDragLeave, RelatedTarget: inner})
	if !u.Dragging() {
		t.Fatalf("moving onto a child keeps the drag state")
	}
	doc.Dispatch(zone, &dom.Event{Type: dom.EventDrop, Data: []File{{Name: "a.txt"}, {Name: "b.txt"}}})
	if u.Dragging() || len(u.Files()) != 2 {
		t.Fatalf("expected drop to add files, got %v", u.Files())
	}

	doc.Click(zone)
	zone.Focus()
	testutil.Press(doc, dom.KeyEnter)
	testutil.Press(doc, dom.KeySpace)
	if pickers != 3 {
		t.Fatalf("expected 3 picker requests, got %d", pickers)
	}

	u.SetDisabled(true)
	u.DropzoneProps().Apply(zone)
	doc.Dispatch(zone, &dom.Event{Type: dom.EventDragEnter})
	u.OpenPicker()
	if u.Dragging() || pickers != 3 {
		t.Fatalf("disabled dropzone should ignore drags and picker requests")
	}

	u.Destroy()
	u.Destroy()
	u.SetDisabled(false)
	doc.Dispatch(zone, &dom.Event{Type: dom.EventDrop, Data: []File{{Name: "c.txt"}}})
	if len(u.Files()) != 2 {
		t.Fatalf("expected listeners removed after destroy")
	}
}
