package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/format/table"
	"github.com/atomicstack/aria-primitives/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"
)

type boxKind int

const (
	kindText boxKind = iota
	kindHeading
	kindControl
	kindItem
	kindPanel
	kindTooltip
	kindArea
	kindDropzone
	kindOverlay
)

const overlayGlyph = "░"

// View implements tea.Model.
func (m *Model) View() string {
	m.relayout()
	size := m.sceneSize()
	w, h := int(size.Width), int(size.Height)

	var body []string
	if m.showHelp {
		body = m.helpLines(w, h)
	} else {
		body = m.paintScene(w, h)
	}
	if iw := m.inspectorWidth(); iw > 0 {
		joined := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(body, "\n"), m.renderInspector(iw, h))
		body = strings.Split(joined, "\n")
	}

	lines := make([]string, 0, h+chromeRows)
	lines = append(lines, m.headerLine())
	lines = append(lines, body...)
	lines = append(lines, m.statusLine(), m.footerLine())
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine() string {
	text := truncateText(strings.Join(m.headerSegments(), headerSeparator), m.width)
	return render(styles.Header, text)
}

func (m *Model) statusLine() string {
	switch {
	case m.loading:
		return render(styles.Info, truncateText(fmt.Sprintf("Loading %s…", m.pendingLabel), m.width))
	case m.errMsg != "":
		return render(styles.Error, truncateText("Error: "+m.errMsg, m.width))
	}
	if info := m.currentInfo(); info != "" {
		return render(styles.Info, truncateText(info, m.width))
	}
	if current := m.currentScene(); current != nil && current.summary != nil {
		return render(styles.Footer, truncateText(current.summary(), m.width))
	}
	return ""
}

func (m *Model) footerLine() string {
	if m.prompt != nil {
		return m.prompt.View()
	}
	if !m.opts.ShowFooter {
		return ""
	}
	id := "root"
	if current := m.currentScene(); current != nil {
		id = current.id
	}
	return render(styles.Footer, truncateText(menu.FooterHint(id)+"  ? help", m.width))
}

func (m *Model) helpLines(width, height int) []string {
	id := "root"
	if current := m.currentScene(); current != nil {
		id = current.id
	}
	bindings := menu.KeyBindings(id)
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, []string{b.Keys, b.Help})
	}
	lines := []string{padRight(render(styles.Header, "keys"), width)}
	for _, line := range table.FormatMax(rows, nil, width-2) {
		lines = append(lines, padRight("  "+render(styles.Text, line), width))
	}
	return fitLines(lines, width, height)
}

func (m *Model) renderInspector(width, height int) string {
	active := m.doc.ActiveElement()
	lines := []string{
		render(styles.InspectorTitle, "inspector"),
		render(styles.InspectorBody, truncateText(describeElement(active, m.doc.Body()), width-1)),
	}
	for _, line := range table.FormatMax(attributeRows(active), nil, width-1) {
		lines = append(lines, render(styles.InspectorBody, line))
	}
	lines = append(lines,
		"",
		render(styles.InspectorBody, fmt.Sprintf("layers  %d", m.layers.Len())),
		render(styles.InspectorBody, fmt.Sprintf("timers  %d", m.doc.PendingTimers())),
	)
	for i, line := range lines {
		lines[i] = " " + line
	}
	return strings.Join(fitLines(lines, width, height), "\n")
}

func describeElement(el, body *dom.Element) string {
	if el == nil || el == body {
		return "nothing focused"
	}
	desc := "<" + el.Tag
	if id := el.ID(); id != "" {
		desc += "#" + id
	}
	return desc + ">"
}

func attributeRows(el *dom.Element) [][]string {
	if el == nil {
		return nil
	}
	attrs := el.Attrs()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if name == "id" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, attrs[name]})
	}
	return rows
}

// paintScene draws every rendered element in document order, so later
// siblings and floating content paint over what precedes them.
func (m *Model) paintScene(width, height int) []string {
	c := newCanvas(width, height)
	body := m.doc.Body()
	active := m.doc.ActiveElement()
	body.Walk(func(el *dom.Element) bool {
		if el == body {
			return true
		}
		if !el.IsRendered() {
			return false
		}
		paintElement(c, el, active)
		return true
	})
	return c.lines()
}

func paintElement(c *canvas, el, active *dom.Element) {
	x, y := int(el.Rect.X), int(el.Rect.Y)
	w, h := int(el.Rect.Width), int(el.Rect.Height)
	kind := kindOf(el)
	style := styleFor(el, kind, active)
	switch kind {
	case kindOverlay:
		c.fill(x, y, w, h, overlayGlyph, styles.Overlay)
		return
	case kindPanel, kindTooltip, kindArea, kindDropzone:
		c.fill(x, y, w, h, " ", style)
	case kindControl, kindItem:
		c.fill(x, y, w, 1, " ", style)
	}
	text := displayText(el, kind)
	if text == "" {
		return
	}
	pad, row := 0, 0
	switch kind {
	case kindControl, kindItem, kindTooltip:
		pad = 1
	case kindArea, kindDropzone:
		pad, row = 2, h/2
	}
	c.write(x+pad, y+row, w-pad, text, style)
}

func kindOf(el *dom.Element) boxKind {
	switch {
	case el.HasAttr("data-overlay"):
		return kindOverlay
	case el.HasAttr("data-dropzone"):
		return kindDropzone
	case el.HasAttr("data-area"):
		return kindArea
	}
	switch el.AttrOr("role", "") {
	case "tooltip":
		return kindTooltip
	case "menu", "listbox", "dialog", "alertdialog":
		return kindPanel
	case "menuitem", "menuitemcheckbox", "menuitemradio", "option":
		return kindItem
	case "combobox", "spinbutton", "button":
		return kindControl
	}
	switch el.Tag {
	case "button", "input":
		return kindControl
	case "h1", "h2":
		return kindHeading
	}
	return kindText
}

func styleFor(el *dom.Element, kind boxKind, active *dom.Element) *lipgloss.Style {
	focused := el == active
	switch kind {
	case kindPanel, kindArea:
		if focused {
			return styles.Highlighted
		}
		return styles.Panel
	case kindDropzone:
		if el.AttrOr("data-dragging", "") == "true" {
			return styles.DropzoneActive
		}
		if focused {
			return styles.Highlighted
		}
		return styles.Dropzone
	case kindTooltip:
		return styles.Tooltip
	case kindHeading:
		return styles.Header
	case kindText:
		return styles.Text
	}
	switch {
	case focused:
		return styles.Focused
	case el.Inert():
		return styles.Disabled
	case el.AttrOr("data-highlighted", "") == "true":
		return styles.Highlighted
	case el.AttrOr("aria-selected", "") == "true" && kind == kindItem:
		return styles.Checked
	case kind == kindItem:
		return styles.Panel
	}
	return styles.Button
}

func displayText(el *dom.Element, kind boxKind) string {
	// Navigation lists select by focus alone and carry no check marks.
	if parent := el.Parent(); parent != nil && parent.HasAttr("data-nav") {
		return el.Text
	}
	if kind == kindItem && el.AttrOr("role", "") == "option" {
		if el.AttrOr("aria-selected", "") == "true" {
			return "✓ " + el.Text
		}
		return "  " + el.Text
	}
	return el.Text
}

// cell is one terminal column. Wide graphemes occupy a cell holding the
// grapheme followed by a cell with empty text.
type cell struct {
	text  string
	style *lipgloss.Style
}

type canvas struct {
	width, height int
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		row := make([]cell, c.width)
		for x := range row {
			row[x] = cell{text: " "}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) fill(x, y, w, h int, glyph string, style *lipgloss.Style) {
	for row := max(y, 0); row < min(y+h, c.height); row++ {
		for col := max(x, 0); col < min(x+w, c.width); col++ {
			c.cells[row][col] = cell{text: glyph, style: style}
		}
	}
}

// write draws text from x, cut with an ellipsis to limit columns and to the
// canvas edge.
func (c *canvas) write(x, y, limit int, text string, style *lipgloss.Style) {
	if y < 0 || y >= c.height || limit <= 0 {
		return
	}
	if x < 0 {
		limit += x
		x = 0
	}
	limit = min(limit, c.width-x)
	if limit <= 0 {
		return
	}
	if uniseg.StringWidth(text) > limit {
		text = truncate.StringWithTail(text, uint(limit), "…")
	}
	col := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		width := uniseg.StringWidth(cluster)
		if width == 0 {
			continue
		}
		if col+width > x+limit {
			break
		}
		c.cells[y][col] = cell{text: cluster, style: style}
		for i := 1; i < width; i++ {
			c.cells[y][col+i] = cell{style: style}
		}
		col += width
	}
}

// lines renders each row, grouping runs of cells that share a style.
func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(render(runStyle, run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// fitLines pads or cuts lines to exactly height rows.
func fitLines(lines []string, width, height int) []string {
	if len(lines) > height {
		lines = lines[:max(height, 0)]
	}
	for len(lines) < height {
		lines = append(lines, padRight("", width))
	}
	return lines
}

func padRight(text string, width int) string {
	if gap := width - ansi.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 || uniseg.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
