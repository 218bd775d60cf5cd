package focustrap

import "github.com/atomicstack/aria-primitives/internal/dom"

// Stack orders active traps. Only the most recently activated trap handles
// Tab; older traps resume when it deactivates.
type Stack struct {
	traps []*Trap
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

type stackKey struct{}

// StackFor returns the stack owned by doc, used when Options.Stack is nil.
// It lives and dies with the document.
func StackFor(doc *dom.Document) *Stack {
	if doc == nil {
		return nil
	}
	return doc.Value(stackKey{}, func() any { return NewStack() }).(*Stack)
}

// Len returns the number of active traps.
func (s *Stack) Len() int { return len(s.traps) }

// Top returns the most recently activated trap, or nil.
func (s *Stack) Top() *Trap {
	if len(s.traps) == 0 {
		return nil
	}
	return s.traps[len(s.traps)-1]
}

func (s *Stack) push(t *Trap) {
	s.traps = append(s.traps, t)
}

func (s *Stack) remove(t *Trap) {
	for i, entry := range s.traps {
		if entry == t {
			s.traps = append(s.traps[:i], s.traps[i+1:]...)
			return
		}
	}
}
