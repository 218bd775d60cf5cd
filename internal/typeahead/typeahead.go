// Package typeahead matches items against a short-lived buffer of typed
// characters.
package typeahead

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// DefaultTimeout is the idle gap after which the buffer starts over.
const DefaultTimeout = 500 * time.Millisecond

// Options configures a Buffer.
type Options struct {
	Items   func() []*dom.Element
	GetText func(*dom.Element) string
	OnMatch func(item *dom.Element, index int)
	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
	// Clock defaults to the system clock.
	Clock dom.Clock
	// Current reports the highlighted item, if any. Searches start relative
	// to it when the buffer has no match of its own yet.
	Current func() *dom.Element
}

// Buffer accumulates printable keys and reports prefix matches.
type Buffer struct {
	opts      Options
	buf       string
	last      time.Time
	match     *dom.Element
	destroyed bool
}

// New returns an empty buffer.
func New(opts Options) *Buffer {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Clock == nil {
		opts.Clock = dom.SystemClock()
	}
	if opts.GetText == nil {
		opts.GetText = (*dom.Element).TextContent
	}
	return &Buffer{opts: opts}
}

// Buffer returns the accumulated characters.
func (b *Buffer) Buffer() string { return b.buf }

// Reset clears the buffer and the remembered match.
func (b *Buffer) Reset() {
	b.buf = ""
	b.last = time.Time{}
	b.match = nil
}

// Destroy resets the buffer and makes every later call a no-op.
func (b *Buffer) Destroy() {
	b.Reset()
	b.destroyed = true
}

// HandleKeyDown feeds a keydown to the buffer. It returns true when the key
// was consumed, in which case the caller should prevent its default action.
func (b *Buffer) HandleKeyDown(ev *dom.Event) bool {
	if b.destroyed || ev.HasModifier() || !printable(ev.Key) {
		return false
	}
	now := b.opts.Clock.Now()
	if !b.last.IsZero() && now.Sub(b.last) > b.opts.Timeout {
		b.buf = ""
		b.match = nil
	}
	if ev.Key == " " && b.buf == "" {
		return false
	}
	b.buf += ev.Key
	b.last = now
	b.search()
	return true
}

func printable(key string) bool {
	if key == "" || uniseg.GraphemeClusterCount(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsPrint(r)
}

func (b *Buffer) items() []*dom.Element {
	if b.opts.Items == nil {
		return nil
	}
	all := b.opts.Items()
	out := make([]*dom.Element, 0, len(all))
	for _, el := range all {
		if el.IsRendered() {
			out = append(out, el)
		}
	}
	return out
}

func (b *Buffer) search() {
	items := b.items()
	if len(items) == 0 {
		return
	}
	anchor := b.match
	if anchor == nil && b.opts.Current != nil {
		anchor = b.opts.Current()
	}
	current := -1
	for i, el := range items {
		if el == anchor {
			current = i
			break
		}
	}

	query := strings.ToLower(b.buf)
	start := current
	if repeated(query) {
		// Pressing one letter again moves to the next item with that letter.
		query = firstGrapheme(query)
		start = current + 1
	} else if start < 0 {
		start = 0
	}

	n := len(items)
	for k := 0; k < n; k++ {
		i := (start + k) % n
		text := strings.ToLower(strings.TrimSpace(b.opts.GetText(items[i])))
		if strings.HasPrefix(text, query) {
			b.match = items[i]
			events.TypeAhead.Match(b.buf, i)
			if b.opts.OnMatch != nil {
				b.opts.OnMatch(items[i], i)
			}
			return
		}
	}
	events.TypeAhead.Miss(b.buf)
}

func firstGrapheme(s string) string {
	g := uniseg.NewGraphemes(s)
	if g.Next() {
		return g.Str()
	}
	return s
}

// repeated reports whether s is one grapheme typed one or more times.
func repeated(s string) bool {
	first := firstGrapheme(s)
	if first == "" {
		return false
	}
	return strings.Count(s, first)*len(first) == len(s)
}
