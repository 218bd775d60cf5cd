package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dismiss"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/focustrap"
	"github.com/atomicstack/aria-primitives/internal/menu"
	"github.com/atomicstack/aria-primitives/internal/theme"
	"github.com/atomicstack/aria-primitives/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerSeparator  = " → "
	defaultRootTitle = "primitives"

	// Rows outside the scene: header above, status and footer below.
	headerRows = 1
	chromeRows = 3

	defaultWidth  = 80
	defaultHeight = 24

	inspectorWidth    = 30
	inspectorMinWidth = 72

	infoLifetime = 5 * time.Second
	minTimerTick = 5 * time.Millisecond
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the playground model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Inspector  bool
	Verbose    bool
	RootDemo   string

	Placement         anchor.Placement
	Offset            float64
	Flip              bool
	Loop              bool
	TypeAheadTimeout  time.Duration
	TooltipOpenDelay  time.Duration
	TooltipCloseDelay time.Duration

	// Clock drives document timers and message expiry. Nil uses the
	// system clock.
	Clock dom.Clock
	// ManualTimers stops the model from scheduling tea.Tick commands for
	// pending document timers. Callers deliver TimerMsg themselves.
	ManualTimers bool
}

// TimerMsg asks the model to run document timers that are due.
type TimerMsg struct {
	At time.Time
}

// Model implements the Bubble Tea model for the primitives playground.
type Model struct {
	opts  Options
	clock dom.Clock

	doc    *dom.Document
	layers *dismiss.Registry
	traps  *focustrap.Stack
	stack  []*scene

	prompt   *prompt
	hovered  *dom.Element
	pressed  *dom.Element
	showHelp bool

	loading      bool
	pendingID    string
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	timerArmed  bool
	pending     []tea.Cmd

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
	closed   bool
}

// NewModel builds the document, the catalogue scene and, when RootDemo names
// a demo, that demo on top of it.
func NewModel(opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = dom.SystemClock()
	}
	m := &Model{
		opts:     opts,
		clock:    clock,
		layers:   dismiss.NewRegistry(),
		traps:    focustrap.NewStack(),
		registry: menu.BuildRegistry(),
		bus:      command.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.doc = dom.NewDocument(m.sceneSize(), dom.WithClock(clock))
	m.pushScene(m.buildCatalogue())
	m.applyRootDemoOverride(opts.RootDemo)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.finishUpdate(nil)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Close tears every scene down, releasing controllers and their layers.
// Calling it again does nothing.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	for len(m.stack) > 0 {
		s := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		s.teardown()
	}
}

// Document exposes the playground document.
func (m *Model) Document() *dom.Document { return m.doc }

// Layers exposes the dismissable layer registry shared by every demo.
func (m *Model) Layers() *dismiss.Registry { return m.layers }

// Traps returns the focus trap stack shared by the modal demos.
func (m *Model) Traps() *focustrap.Stack { return m.traps }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(TimerMsg{}):          m.handleTimerMsg,
		reflect.TypeOf(sceneLoadedMsg{}):    m.handleSceneLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menu.FilesPicked{}):  m.handleFilesPickedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate settles the document after a message: pending setup runs,
// props follow controller state, boxes follow their anchors, and a tick is
// scheduled for the next document timer.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.doc.FlushMicrotasks()
	if current := m.currentScene(); current != nil {
		current.refresh()
	}
	m.relayout()
	cmds = append(cmds, m.pending...)
	m.pending = nil
	if cmd := m.scheduleTimer(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// queue collects commands produced inside DOM listeners; they are returned
// from the current update.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) scheduleTimer() tea.Cmd {
	if m.opts.ManualTimers || m.timerArmed {
		return nil
	}
	due, ok := m.doc.NextTimer()
	if !ok {
		return nil
	}
	delay := due.Sub(m.clock.Now())
	if delay < minTimerTick {
		delay = minTimerTick
	}
	m.timerArmed = true
	return tea.Tick(delay, func(t time.Time) tea.Msg { return TimerMsg{At: t} })
}

func (m *Model) handleTimerMsg(tea.Msg) tea.Cmd {
	m.timerArmed = false
	m.doc.RunTimers()
	m.currentInfo()
	return nil
}

func (m *Model) sceneSize() dom.Size {
	w := m.width - m.inspectorWidth()
	h := m.height - chromeRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return dom.Size{Width: float64(w), Height: float64(h)}
}

func (m *Model) inspectorWidth() int {
	if !m.opts.Inspector || m.width < inspectorMinWidth {
		return 0
	}
	return inspectorWidth
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	if m.opts.Verbose {
		m.infoExpire = time.Time{}
		return
	}
	m.infoExpire = m.clock.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.clock.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
