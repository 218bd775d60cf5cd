package behavior

import (
	"reflect"
	"testing"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/testutil"
)

func newTestDialog(opts DialogOptions) (*fixture, *Dialog) {
	f := newFixture("none")
	testutil.Stack(f.content, "button", "ok", "cancel")
	opts.Registry = f.reg
	var d *Dialog
	opts.OnOpenChange = func(bool) { d.ContentProps().Apply(f.content) }
	d = NewDialog(opts)
	d.SetTrigger(f.trigger)
	d.SetContent(f.content)
	d.ContentProps().Apply(f.content)
	return f, d
}

func TestModalDialogTrapsAndReturnsFocus(t *testing.T) {
	f, d := newTestDialog(DefaultDialogOptions())
	f.doc.Click(f.trigger)
	if !d.IsOpen() {
		t.Fatalf("expected trigger click to open")
	}
	if got := d.Resources(); !reflect.DeepEqual(got, []string{"dismiss", "focustrap"}) {
		t.Fatalf("unexpected resources %v", got)
	}
	if f.active() != "ok" {
		t.Fatalf("expected first button focused, got %s", f.active())
	}
	f.press(dom.KeyTab)
	f.press(dom.KeyTab)
	if f.active() != "ok" {
		t.Fatalf("expected Tab to wrap inside the dialog, got %s", f.active())
	}
	testutil.PressShift(f.doc, dom.KeyTab)
	if f.active() != "cancel" {
		t.Fatalf("expected Shift+Tab to wrap backward, got %s", f.active())
	}
	if d.Trap() == nil || !d.Trap().Active() {
		t.Fatalf("expected a live trap")
	}

	f.press(dom.KeyEscape)
	if d.IsOpen() || f.active() != "trigger" {
		t.Fatalf("expected Escape to close and return focus, active %s", f.active())
	}
	if d.Trap() != nil || f.reg.Len() != 0 || f.doc.ListenerCount() != 0 {
		t.Fatalf("expected trap and layer released")
	}
}

func TestDialogOutsidePress(t *testing.T) {
	f, d := newTestDialog(DefaultDialogOptions())
	d.Open()
	f.doc.FlushMicrotasks()
	f.doc.Click(f.outside)
	if d.IsOpen() {
		t.Fatalf("expected outside press to close the dialog")
	}

	f, alert := newTestDialog(AlertDialogOptions())
	alert.Open()
	f.doc.FlushMicrotasks()
	f.doc.Click(f.outside)
	if !alert.IsOpen() {
		t.Fatalf("alert dialogs ignore outside presses")
	}
	f.press(dom.KeyEscape)
	if alert.IsOpen() {
		t.Fatalf("expected Escape to close the alert dialog")
	}
	if alert.ContentProps()["role"] != "alertdialog" {
		t.Fatalf("unexpected role %q", alert.ContentProps()["role"])
	}
}

func TestNonModalDialogDoesNotTrap(t *testing.T) {
	opts := DefaultDialogOptions()
	opts.Modal = false
	f, d := newTestDialog(opts)
	f.doc.Click(f.trigger)
	if got := d.Resources(); !reflect.DeepEqual(got, []string{"dismiss", "focus"}) {
		t.Fatalf("unexpected resources %v", got)
	}
	if f.active() != "ok" {
		t.Fatalf("expected first button focused, got %s", f.active())
	}
	f.press(dom.KeyTab)
	f.press(dom.KeyTab)
	if f.active() != "outside" {
		t.Fatalf("expected Tab to leave a non-modal dialog, got %s", f.active())
	}
	if !d.IsOpen() {
		t.Fatalf("leaving by Tab should not close")
	}
	if d.ContentProps()["aria-modal"] != "" || d.OverlayProps()["hidden"] != "hidden" {
		t.Fatalf("unexpected non-modal props")
	}
}

func TestDialogSetModalWhileOpen(t *testing.T) {
	opts := DefaultDialogOptions()
	opts.Modal = false
	f, d := newTestDialog(opts)
	d.Open()
	f.doc.FlushMicrotasks()
	d.SetModal(true)
	f.doc.FlushMicrotasks()
	if got := d.Resources(); !reflect.DeepEqual(got, []string{"dismiss", "focustrap"}) {
		t.Fatalf("expected modal setup after SetModal, got %v", got)
	}
	if f.reg.Len() != 1 {
		t.Fatalf("expected exactly one layer, got %d", f.reg.Len())
	}
	d.Destroy()
	d.Destroy()
	if d.IsOpen() || f.reg.Len() != 0 || f.doc.ListenerCount() != 0 {
		t.Fatalf("expected destroy to release everything")
	}
}

func TestDialogLabelling(t *testing.T) {
	_, d := newTestDialog(DefaultDialogOptions())
	content := d.ContentProps()
	if content["aria-labelledby"] != d.TitleProps()["id"] || content["aria-describedby"] != d.DescriptionProps()["id"] {
		t.Fatalf("content not linked to title and description: %v", content)
	}
	if content["aria-modal"] != "true" || content["role"] != "dialog" {
		t.Fatalf("unexpected content props %v", content)
	}
	if d.TriggerProps()["aria-controls"] != content["id"] {
		t.Fatalf("trigger should control the content")
	}
}

func TestSheetCarriesSide(t *testing.T) {
	s := NewSheet(DefaultSheetOptions())
	if s.Side() != anchor.SideRight || s.ContentProps()["data-side"] != "right" {
		t.Fatalf("unexpected default side %q", s.Side())
	}
	s.SetSide(anchor.SideLeft)
	p := s.ContentProps()
	if p["data-side"] != "left" || p["role"] != "dialog" {
		t.Fatalf("unexpected sheet props %v", p)
	}
}
