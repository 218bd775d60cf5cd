package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/aria-primitives/internal/behavior"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
	"github.com/atomicstack/aria-primitives/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// scene is one level of the playground stack: a subtree of the document plus
// the controllers driving it.
type scene struct {
	id     string
	title  string
	root   *dom.Element
	layout layout
	scope  behavior.Scope

	// focus is the element focused when the scene is shown or uncovered.
	focus *dom.Element

	// sync re-applies controller props after every update.
	sync func()
	// summary describes the demo state on the status line.
	summary func() string
	// keys sees key messages before they reach the document.
	keys func(tea.KeyMsg) (bool, tea.Cmd)
	// resize recomputes boxes that depend on the viewport.
	resize func(dom.Size)
	// files receives picked files for upload demos.
	files func([]behavior.File)
}

func newScene(doc *dom.Document, id, title string) *scene {
	root := doc.CreateElement("section")
	root.SetID("scene-" + id)
	size := doc.Viewport()
	root.Rect = dom.Rect{Width: size.Width, Height: size.Height}
	return &scene{id: id, title: title, root: root}
}

func (s *scene) refresh() {
	if s.sync != nil {
		s.sync()
	}
}

func (s *scene) teardown() {
	s.scope.Release()
	s.root.Remove()
}

// layout keeps boxes relative to their parent, so children follow floating
// content the positioner moves.
type layout struct {
	boxes []placedBox
}

type placedBox struct {
	el     *dom.Element
	parent *dom.Element
	rel    dom.Rect
}

// add appends a child to parent at rel, measured from parent's origin.
func (l *layout) add(parent *dom.Element, tag, text string, rel dom.Rect) *dom.Element {
	el := parent.Append(tag, text)
	l.boxes = append(l.boxes, placedBox{el: el, parent: parent, rel: rel})
	el.Rect = offsetRect(parent.Rect, rel)
	return el
}

// move replaces the relative box of el.
func (l *layout) move(el *dom.Element, rel dom.Rect) {
	for i := range l.boxes {
		if l.boxes[i].el == el {
			l.boxes[i].rel = rel
			el.Rect = offsetRect(l.boxes[i].parent.Rect, rel)
			return
		}
	}
}

// apply recomputes absolute boxes. Parents are added before their children,
// so a single pass settles nested boxes.
func (l *layout) apply() {
	for _, b := range l.boxes {
		b.el.Rect = offsetRect(b.parent.Rect, b.rel)
	}
}

func offsetRect(parent, rel dom.Rect) dom.Rect {
	return dom.Rect{X: parent.X + rel.X, Y: parent.Y + rel.Y, Width: rel.Width, Height: rel.Height}
}

func (m *Model) currentScene() *scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// pushScene hides the current scene, remembering its focus, and shows s.
func (m *Model) pushScene(s *scene) {
	if prev := m.currentScene(); prev != nil {
		if active := m.doc.ActiveElement(); active != nil && prev.root.Contains(active) {
			prev.focus = active
		}
		prev.root.SetAttr("hidden", "hidden")
	}
	m.doc.Body().AppendChild(s.root)
	m.stack = append(m.stack, s)
	s.refresh()
	s.layout.apply()
	if s.focus != nil {
		s.focus.Focus()
	}
	events.UI.DemoEnter(s.id, s.title)
}

// popScene tears down the current scene and uncovers the previous one. The
// catalogue is never popped.
func (m *Model) popScene() bool {
	if len(m.stack) <= 1 {
		return false
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	top.teardown()
	m.hovered, m.pressed = nil, nil
	prev := m.currentScene()
	prev.root.RemoveAttr("hidden")
	prev.refresh()
	prev.layout.apply()
	if prev.focus != nil {
		prev.focus.Focus()
	}
	events.UI.DemoEnter(prev.id, prev.title)
	return true
}

// relayout settles every visible box: scene roots track the viewport and
// children track their parents.
func (m *Model) relayout() {
	if current := m.currentScene(); current != nil {
		current.layout.apply()
	}
}

func (m *Model) resizeDocument() {
	size := m.sceneSize()
	for _, s := range m.stack {
		s.root.Rect = dom.Rect{Width: size.Width, Height: size.Height}
		if s.resize != nil {
			s.resize(size)
		}
		s.layout.apply()
	}
	// Positioners listen for resize and re-anchor against the new boxes.
	m.doc.SetViewport(size)
	events.UI.Resize(int(size.Width), int(size.Height))
}

// openDemo starts loading a demo; the scene is pushed once its items arrive.
func (m *Model) openDemo(id string) {
	node, ok := m.registry.Find(id)
	if !ok {
		m.errMsg = fmt.Sprintf("unknown demo %q", id)
		return
	}
	m.errMsg = ""
	m.loading = true
	m.pendingID = node.ID
	m.pendingLabel = node.Label
	m.queue(m.loadSceneCmd(node))
}

func (m *Model) loadSceneCmd(node *menu.Node) tea.Cmd {
	return func() tea.Msg {
		var (
			items []menu.Item
			err   error
		)
		if node.Loader != nil {
			items, err = node.Loader(m.demoContext(node.ID))
			if err != nil {
				logging.Error(err)
			}
		}
		return sceneLoadedMsg{id: node.ID, items: items, err: err}
	}
}

// sceneLoadedMsg carries the items a demo loader produced.
type sceneLoadedMsg struct {
	id    string
	items []menu.Item
	err   error
}

func (m *Model) handleSceneLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(sceneLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.id != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		return nil
	}
	node, ok := m.registry.Find(loaded.id)
	if !ok {
		return nil
	}
	s, err := m.buildDemo(node, loaded.items)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	m.forceClearInfo()
	m.pushScene(s)
	return nil
}

// applyRootDemoOverride opens the requested demo synchronously so the
// program starts inside it.
func (m *Model) applyRootDemoOverride(requested string) {
	requested = strings.TrimSpace(requested)
	if requested == "" || requested == "root" {
		return
	}
	node, ok := m.registry.Find(requested)
	if !ok {
		m.errMsg = fmt.Sprintf("unknown demo %q", requested)
		return
	}
	var items []menu.Item
	if node.Loader != nil {
		var err error
		items, err = node.Loader(m.demoContext(node.ID))
		if err != nil {
			m.errMsg = err.Error()
			return
		}
	}
	s, err := m.buildDemo(node, items)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.pushScene(s)
	m.doc.FlushMicrotasks()
}

func (m *Model) demoContext(demo string) menu.Context {
	ctx := menu.Context{Demo: demo}
	if node, ok := m.registry.Find(demo); ok {
		ctx.Multiple = node.MultiSelect
	}
	return ctx
}

func (m *Model) headerSegments() []string {
	segments := make([]string, 0, len(m.stack))
	for i, s := range m.stack {
		if i == 0 {
			segments = append(segments, defaultRootTitle)
			continue
		}
		if segment := headerSegmentFor(s); segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

func headerSegmentFor(s *scene) string {
	candidate := strings.TrimSpace(s.id)
	if candidate == "" {
		candidate = strings.TrimSpace(s.title)
	}
	candidate = headerSegmentCleaner.Replace(candidate)
	fields := strings.Fields(strings.ToLower(candidate))
	return strings.Join(fields, " ")
}
