package dom

import (
	"strconv"
	"strings"
)

// Rect is a layout box in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rect has no area: either dimension is zero or
// negative.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

var nativeFocusable = map[string]bool{
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"summary":  true,
}

// Element is a node in the document tree.
type Element struct {
	Tag  string
	Text string
	Rect Rect

	attrs     map[string]string
	style     map[string]string
	parent    *Element
	children  []*Element
	doc       *Document
	listeners listenerSet
}

// NewElement returns a detached element that does not belong to a document
// yet. It joins one when appended under an element that does.
func NewElement(tag string) *Element {
	return &Element{Tag: strings.ToLower(tag)}
}

// Document returns the owning document, or nil.
func (e *Element) Document() *Document {
	if e == nil {
		return nil
	}
	return e.doc
}

// ID returns the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) *Element {
	return e.SetAttr("id", id)
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.attrs == nil {
		return "", false
	}
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// AttrOr returns an attribute value or fallback when absent.
func (e *Element) AttrOr(name, fallback string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return fallback
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets an attribute and returns the element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[strings.ToLower(name)] = value
	return e
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(name string) {
	if e.attrs == nil {
		return
	}
	delete(e.attrs, strings.ToLower(name))
}

// Attrs returns a copy of all attributes.
func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// Style returns an inline style property.
func (e *Element) Style(prop string) (string, bool) {
	if e == nil || e.style == nil {
		return "", false
	}
	v, ok := e.style[prop]
	return v, ok
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(prop, value string) {
	if e.style == nil {
		e.style = make(map[string]string)
	}
	e.style[prop] = value
}

// RemoveStyle deletes an inline style property.
func (e *Element) RemoveStyle(prop string) {
	if e.style == nil {
		return
	}
	delete(e.style, prop)
}

// StyleProps returns a copy of the inline style properties.
func (e *Element) StyleProps() map[string]string {
	out := make(map[string]string, len(e.style))
	for k, v := range e.style {
		out[k] = v
	}
	return out
}

// Parent returns the parent element.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	dup := make([]*Element, len(e.children))
	copy(dup, e.children)
	return dup
}

// AppendChild moves child under e, detaching it from any previous parent.
func (e *Element) AppendChild(child *Element) *Element {
	if child == nil || child == e {
		return child
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
	child.adopt(e.doc)
	return child
}

// Append creates a child element with the given tag and text.
func (e *Element) Append(tag, text string) *Element {
	child := NewElement(tag)
	child.Text = text
	return e.AppendChild(child)
}

// RemoveChild detaches child from e.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			if d := child.doc; d != nil && child.Contains(d.active) {
				d.active = nil
			}
			return
		}
	}
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

func (e *Element) adopt(doc *Document) {
	if doc == nil {
		return
	}
	e.doc = doc
	for _, c := range e.children {
		c.adopt(doc)
	}
}

// IsConnected reports whether e is attached to its document's body.
func (e *Element) IsConnected() bool {
	if e == nil || e.doc == nil {
		return false
	}
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root == e.doc.body
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if e == nil || other == nil {
		return false
	}
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// TextContent concatenates the text of e and its descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.Walk(func(n *Element) bool {
		b.WriteString(n.Text)
		return true
	})
	return b.String()
}

// Walk visits e and its descendants in document order. Returning false from
// fn skips the subtree of that element.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children() {
		c.Walk(fn)
	}
}

// QuerySelectorAll returns descendants of e matching sel in document order.
func (e *Element) QuerySelectorAll(sel Selector) []*Element {
	if e == nil || sel == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.children {
		c.Walk(func(n *Element) bool {
			if sel.Match(n) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// QuerySelector returns the first descendant matching sel.
func (e *Element) QuerySelector(sel Selector) *Element {
	if all := e.QuerySelectorAll(sel); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Closest returns the nearest inclusive ancestor matching sel.
func (e *Element) Closest(sel Selector) *Element {
	for n := e; n != nil; n = n.parent {
		if sel.Match(n) {
			return n
		}
	}
	return nil
}

// HasClass reports whether the class attribute lists name.
func (e *Element) HasClass(name string) bool {
	v, _ := e.Attr("class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// TabIndex returns the effective tab index. Natively focusable elements
// default to 0, everything else to -1.
func (e *Element) TabIndex() int {
	if v, ok := e.Attr("tabindex"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	if e.nativelyFocusable() {
		return 0
	}
	return -1
}

func (e *Element) nativelyFocusable() bool {
	if nativeFocusable[e.Tag] {
		if e.Tag == "input" && e.AttrOr("type", "") == "hidden" {
			return false
		}
		return true
	}
	return e.Tag == "a" && e.HasAttr("href")
}

// Disabled reports whether the disabled attribute is present.
func (e *Element) Disabled() bool {
	return e.HasAttr("disabled")
}

// AriaDisabled reports aria-disabled="true".
func (e *Element) AriaDisabled() bool {
	v, _ := e.Attr("aria-disabled")
	return v == "true"
}

// Inert reports whether the element is disabled in either sense.
func (e *Element) Inert() bool {
	return e.Disabled() || e.AriaDisabled()
}

// IsRendered reports whether e has a layout box: no hidden attribute or
// display:none on it or any ancestor, and a non-empty Rect.
func (e *Element) IsRendered() bool {
	if e == nil || e.Rect.Empty() {
		return false
	}
	for n := e; n != nil; n = n.parent {
		if n.HasAttr("hidden") {
			return false
		}
		if v, _ := n.Style("display"); v == "none" {
			return false
		}
	}
	return true
}

// Focusable reports whether the element can receive focus at all, tabbable
// or not.
func (e *Element) Focusable() bool {
	if e == nil || !e.IsConnected() {
		return false
	}
	if !e.nativelyFocusable() && !e.HasAttr("tabindex") {
		return false
	}
	if e.Disabled() {
		return false
	}
	return e.IsRendered()
}

// Focus asks the owning document to focus e.
func (e *Element) Focus() bool {
	if e == nil || e.doc == nil {
		return false
	}
	return e.doc.Focus(e)
}

// AddEventListener registers fn for typ on e. The returned func removes it;
// calling it more than once is harmless.
func (e *Element) AddEventListener(typ EventType, fn Listener, opts ListenerOptions) func() {
	return e.listeners.add(typ, fn, opts.Capture)
}

// Dispatch sends ev to e through the owning document.
func (e *Element) Dispatch(ev *Event) bool {
	if e.doc == nil {
		ev.Target = e
		ev.phase = PhaseTarget
		ev.currentTarget = e
		e.listeners.invoke(ev, true)
		e.listeners.invoke(ev, false)
		return !ev.defaultPrevented
	}
	return e.doc.Dispatch(e, ev)
}
