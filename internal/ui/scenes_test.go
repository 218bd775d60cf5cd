package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/aria-primitives/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuDemoSelectsHighlightedItem(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "menu"})
	h.Send(keyMsg(tea.KeyEnter))
	if got := activeText(h); got != "Apple" {
		t.Fatalf("expected first item highlighted, got %q", got)
	}
	h.Send(keyMsg(tea.KeyDown))
	if got := activeText(h); got != "Banana" {
		t.Fatalf("expected Banana after down, got %q", got)
	}
	h.Send(keyMsg(tea.KeyEnter))
	if got := activeText(h); got != "Fruit ▾" {
		t.Fatalf("expected focus back on trigger, got %q", got)
	}
	if h.Model().Layers().Len() != 0 {
		t.Fatalf("expected menu layer released after select")
	}
	if view := h.View(); !strings.Contains(view, "Selected Banana") {
		t.Fatalf("expected selection info, got:\n%s", view)
	}
}

func TestMenuDemoTypeAheadSkipsDisabled(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "menu"})
	h.Send(keyMsg(tea.KeyEnter))
	h.Send(runesMsg("d"))
	if got := activeText(h); got != "Apple" {
		t.Fatalf("expected disabled Durian to be skipped, got %q", got)
	}
	h.Send(runesMsg("g"))
	h.Send(runesMsg("r"))
	if got := activeText(h); got != "Apple" {
		t.Fatalf("expected dg to match nothing, got %q", got)
	}
}

func TestMenuDemoEscapeClosesBeforeLeaving(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "menu"})
	h.Send(keyMsg(tea.KeyEnter))
	h.Send(keyMsg(tea.KeyEsc))
	if got := currentID(h); got != "menu" {
		t.Fatalf("expected first escape to only close the menu, got scene %q", got)
	}
	if got := activeText(h); got != "Fruit ▾" {
		t.Fatalf("expected focus back on trigger, got %q", got)
	}
	h.Send(keyMsg(tea.KeyEsc))
	if got := currentID(h); got != "root" {
		t.Fatalf("expected second escape to leave the demo, got %q", got)
	}
}

func TestSelectDemoChoosesValue(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "select"})
	h.Send(keyMsg(tea.KeyEnter))
	h.Send(keyMsg(tea.KeyDown))
	if got := activeText(h); got != "Rust" {
		t.Fatalf("expected Rust highlighted, got %q", got)
	}
	h.Send(keyMsg(tea.KeyEnter))
	if got := activeText(h); got != "Rust ▾" {
		t.Fatalf("expected trigger to show the value, got %q", got)
	}
	if view := h.View(); !strings.Contains(view, "Value: Rust") {
		t.Fatalf("expected value change info, got:\n%s", view)
	}
}

func TestSelectDemoFilterPrompt(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "select"})
	h.Send(runesMsg("/"))
	if h.Model().prompt == nil {
		t.Fatalf("expected filter prompt to open")
	}
	h.Send(runesMsg("r"))
	h.Send(runesMsg("u"))
	view := h.View()
	if !strings.Contains(view, "filter: ru") {
		t.Fatalf("expected filter summary, got:\n%s", view)
	}
	if !strings.Contains(view, "Rust") || strings.Contains(view, "Haskell") {
		t.Fatalf("expected only matching options, got:\n%s", view)
	}

	h.Send(keyMsg(tea.KeyEsc))
	if h.Model().prompt != nil {
		t.Fatalf("expected prompt to close on escape")
	}
	if view := h.View(); !strings.Contains(view, "Haskell") {
		t.Fatalf("expected cancelled filter to restore options, got:\n%s", view)
	}
}

func TestMultiSelectTogglesAndClears(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "multi-select"})
	h.Send(keyMsg(tea.KeyEnter))
	h.Send(keyMsg(tea.KeyEnter))
	h.Send(keyMsg(tea.KeyDown))
	h.Send(keyMsg(tea.KeyEnter))
	if h.Model().Layers().Len() != 1 {
		t.Fatalf("expected multi select to stay open")
	}
	if view := h.View(); !strings.Contains(view, "Value: Go, Rust") {
		t.Fatalf("expected both values, got:\n%s", view)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlX})
	if view := h.View(); !strings.Contains(view, "Selection cleared") {
		t.Fatalf("expected cleared selection, got:\n%s", view)
	}
}

func TestContextMenuOpensAtPointer(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "context-menu"})
	h.Send(tea.MouseMsg{X: 10, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if h.Model().Layers().Len() != 1 {
		t.Fatalf("expected context menu open")
	}
	if view := h.View(); !strings.Contains(view, "opened at 10,7") {
		t.Fatalf("expected pointer position, got:\n%s", view)
	}
	if got := activeText(h); got != "Cut" {
		t.Fatalf("expected first item highlighted, got %q", got)
	}
}

func TestContextMenuOpensFromKeyboard(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "context-menu"})
	h.Send(keyMsg(tea.KeyF10))
	if h.Model().Layers().Len() != 1 {
		t.Fatalf("expected context menu open from keyboard")
	}
	h.Send(runesMsg("p"))
	h.Send(keyMsg(tea.KeyEnter))
	if view := h.View(); !strings.Contains(view, "Selected Paste") {
		t.Fatalf("expected paste selected, got:\n%s", view)
	}
}

func TestDialogDemoTrapsFocus(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "dialog"})
	h.Send(keyMsg(tea.KeyEnter))
	if got := activeText(h); got != "Cancel" {
		t.Fatalf("expected first button focused, got %q", got)
	}
	if h.Model().Traps().Len() != 1 {
		t.Fatalf("expected the dialog trap on the model stack, got %d", h.Model().Traps().Len())
	}
	h.Send(keyMsg(tea.KeyTab))
	if got := activeText(h); got != "Confirm" {
		t.Fatalf("expected confirm after tab, got %q", got)
	}
	h.Send(keyMsg(tea.KeyTab))
	if got := activeText(h); got != "Cancel" {
		t.Fatalf("expected tab to wrap inside the dialog, got %q", got)
	}
	h.Send(keyMsg(tea.KeyShiftTab))
	if got := activeText(h); got != "Confirm" {
		t.Fatalf("expected shift+tab to wrap backwards, got %q", got)
	}

	h.Send(keyMsg(tea.KeyEsc))
	if got := activeText(h); got != "Edit profile" {
		t.Fatalf("expected focus back on trigger, got %q", got)
	}
	if h.Model().Traps().Len() != 0 {
		t.Fatalf("expected trap released on close")
	}
	if got := currentID(h); got != "dialog" {
		t.Fatalf("expected to stay in the demo, got %q", got)
	}
}

func TestDialogDemoConfirm(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "dialog"})
	h.Send(keyMsg(tea.KeyEnter))
	h.Send(keyMsg(tea.KeyTab))
	h.Send(keyMsg(tea.KeyEnter))
	if h.Model().Layers().Len() != 0 {
		t.Fatalf("expected dialog closed after confirm")
	}
	if view := h.View(); !strings.Contains(view, "Dialog confirmed") {
		t.Fatalf("expected confirm info, got:\n%s", view)
	}
}

func TestAlertDialogFocusesCancel(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "alert-dialog"})
	h.Send(keyMsg(tea.KeyEnter))
	if got := activeText(h); got != "Cancel" {
		t.Fatalf("expected cancel focused, got %q", got)
	}
	if view := h.View(); !strings.Contains(view, "This cannot be undone.") {
		t.Fatalf("expected description rendered, got:\n%s", view)
	}
	// Presses on the overlay do not dismiss an alert dialog.
	h.Send(tea.MouseMsg{X: 0, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: 0, Y: 20, Action: tea.MouseActionRelease})
	if h.Model().Layers().Len() != 1 {
		t.Fatalf("expected alert dialog to stay open")
	}
}

func TestSheetDemoCyclesSide(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "sheet"})
	if view := h.View(); !strings.Contains(view, "closed, side right") {
		t.Fatalf("expected right side, got:\n%s", view)
	}
	h.Send(runesMsg("s"))
	if view := h.View(); !strings.Contains(view, "closed, side bottom") {
		t.Fatalf("expected bottom side, got:\n%s", view)
	}
	h.Send(keyMsg(tea.KeyEnter))
	if view := h.View(); !strings.Contains(view, "Narrow the results.") {
		t.Fatalf("expected sheet content, got:\n%s", view)
	}
}

func TestTooltipDemoHoverWaitsForDelay(t *testing.T) {
	h, clock := newTestHarness(t, Options{RootDemo: "tooltip"})
	h.Send(tea.MouseMsg{X: 3, Y: 6, Action: tea.MouseActionMotion})
	if view := h.View(); !strings.Contains(view, "no tooltip") {
		t.Fatalf("expected no tooltip before the delay, got:\n%s", view)
	}
	clock.Advance(testOpenDelay)
	h.Send(TimerMsg{At: clock.Now()})
	if view := h.View(); !strings.Contains(view, "Save the draft") {
		t.Fatalf("expected tooltip after the delay, got:\n%s", view)
	}

	h.Send(tea.MouseMsg{X: 40, Y: 15, Action: tea.MouseActionMotion})
	clock.Advance(testCloseDelay)
	h.Send(TimerMsg{At: clock.Now()})
	if view := h.View(); !strings.Contains(view, "no tooltip") {
		t.Fatalf("expected tooltip closed after leaving, got:\n%s", view)
	}
}

func TestTooltipDemoFocusOpensImmediately(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "tooltip"})
	h.Send(keyMsg(tea.KeyTab))
	if got := activeID(h); got != "tooltip-save" {
		t.Fatalf("expected save button focused, got %q", got)
	}
	if view := h.View(); !strings.Contains(view, "Save the draft") {
		t.Fatalf("expected tooltip on focus, got:\n%s", view)
	}
	h.Send(keyMsg(tea.KeyTab))
	if view := h.View(); !strings.Contains(view, "Copy a share link") {
		t.Fatalf("expected share tooltip, got:\n%s", view)
	}
}

func TestNumberInputDemoStepsAndCommits(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "number-input"})
	h.Send(keyMsg(tea.KeyUp))
	if view := h.View(); !strings.Contains(view, "Value set to 2") {
		t.Fatalf("expected increment to commit, got:\n%s", view)
	}
	h.Send(runesMsg("7"))
	if got := activeText(h); got != "27" {
		t.Fatalf("expected typed text in the input, got %q", got)
	}
	h.Send(keyMsg(tea.KeyEnter))
	if view := h.View(); !strings.Contains(view, "Value set to 27") {
		t.Fatalf("expected typed value committed, got:\n%s", view)
	}
	h.Send(keyMsg(tea.KeyEnd))
	if got := activeText(h); got != "99" {
		t.Fatalf("expected end to jump to max, got %q", got)
	}
}

func TestNumberInputDemoBackspaceEdits(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "number-input"})
	h.Send(runesMsg("5"))
	h.Send(keyMsg(tea.KeyBackspace))
	h.Send(keyMsg(tea.KeyBackspace))
	if got := activeText(h); got != "" {
		t.Fatalf("expected empty text after backspacing, got %q", got)
	}
	h.Send(runesMsg("42"))
	h.Send(keyMsg(tea.KeyEnter))
	if view := h.View(); !strings.Contains(view, "Value set to 42") {
		t.Fatalf("expected 42 committed, got:\n%s", view)
	}
}

func TestFileUploadDemoAcceptsPickedFiles(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "file-upload"})
	h.Send(menu.FilesPicked{Files: []menu.PickedFile{{Name: "cat.png", Size: 2048, Type: "image/png"}}})
	view := h.View()
	if !strings.Contains(view, "Picked 1 file(s)") {
		t.Fatalf("expected pick info, got:\n%s", view)
	}
	if !strings.Contains(view, "cat.png  2.0 kB  image/png") {
		t.Fatalf("expected file row, got:\n%s", view)
	}

	h.Send(runesMsg("x"))
	if view := h.View(); strings.Contains(view, "cat.png") {
		t.Fatalf("expected file removed, got:\n%s", view)
	}
}

func TestFileUploadDemoReportsRejections(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "file-upload"})
	h.Send(menu.FilesPicked{Files: []menu.PickedFile{{Name: "disk.iso", Size: 10 << 20, Type: "application/x-iso9660-image"}}})
	view := h.View()
	if !strings.Contains(view, "Error: Rejected disk.iso") || !strings.Contains(view, "file-too-large") {
		t.Fatalf("expected rejection on status line, got:\n%s", view)
	}
	if strings.Contains(view, "Picked 1 file(s)") {
		t.Fatalf("expected no pick info for a rejected file, got:\n%s", view)
	}
}

func TestFileUploadDemoEnterOpensPicker(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "file-upload"})
	h.Send(keyMsg(tea.KeyEnter))
	if h.Model().prompt == nil {
		t.Fatalf("expected picker prompt")
	}
	if view := h.View(); !strings.Contains(view, "files:") {
		t.Fatalf("expected picker prompt in footer, got:\n%s", view)
	}
	h.Send(keyMsg(tea.KeyEsc))
	if h.Model().prompt != nil {
		t.Fatalf("expected picker prompt closed")
	}
	if got := currentID(h); got != "file-upload" {
		t.Fatalf("expected escape in the prompt to keep the demo, got %q", got)
	}
}

func TestUnknownDemoHasNoScene(t *testing.T) {
	m := NewModel(Options{ManualTimers: true})
	t.Cleanup(m.Close)
	root := m.registry.Root()
	if _, err := m.buildDemo(root, nil); err == nil {
		t.Fatalf("expected error for a node without a scene")
	}
}
