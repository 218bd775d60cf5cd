package behavior

import (
	"github.com/atomicstack/aria-primitives/internal/dom"
)

// lifecycle carries what every controller shares: an id, the scope of
// acquired primitives and the deferred setup bookkeeping.
type lifecycle struct {
	kind      string
	id        string
	scope     Scope
	pending   bool
	gen       int
	destroyed bool
}

func newLifecycle(kind string) lifecycle {
	return lifecycle{kind: kind, id: dom.NewID(kind)}
}

// ID returns the controller's generated id. Element ids in prop bundles
// derive from it.
func (l *lifecycle) ID() string { return l.id }

// Resources lists the primitives currently held, in acquisition order.
func (l *lifecycle) Resources() []string { return l.scope.Names() }

// schedule runs setup on the next microtask of doc. Requests made while one
// is pending collapse into it, and a release before the microtask runs
// cancels it.
func (l *lifecycle) schedule(doc *dom.Document, setup func()) {
	if doc == nil || l.pending || l.destroyed {
		return
	}
	l.pending = true
	gen := l.gen
	doc.QueueMicrotask(func() {
		if gen != l.gen {
			return
		}
		l.pending = false
		if l.scope.Len() > 0 {
			l.scope.Release()
		}
		setup()
	})
}

// release cancels pending setup and releases every held primitive.
func (l *lifecycle) release() {
	l.gen++
	l.pending = false
	l.scope.Release()
}

func (l *lifecycle) destroy() bool {
	if l.destroyed {
		return false
	}
	l.release()
	l.destroyed = true
	return true
}

func documentOf(els ...*dom.Element) *dom.Document {
	for _, el := range els {
		if doc := el.Document(); doc != nil {
			return doc
		}
	}
	return nil
}

func focusWithin(container *dom.Element) bool {
	doc := container.Document()
	if doc == nil {
		return false
	}
	return container.Contains(doc.ActiveElement())
}

func valueOf(el *dom.Element) string {
	if v, ok := el.Attr("data-value"); ok {
		return v
	}
	return el.TextContent()
}
