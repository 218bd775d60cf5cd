package behavior

// Scope is a stack of release functions. Resources are released in reverse
// order of acquisition, each exactly once.
type Scope struct {
	entries []scopeEntry
}

type scopeEntry struct {
	name    string
	release func()
}

// Acquire pushes a release function. Nil functions are ignored.
func (s *Scope) Acquire(name string, release func()) {
	if release == nil {
		return
	}
	s.entries = append(s.entries, scopeEntry{name: name, release: release})
}

// Len returns the number of held resources.
func (s *Scope) Len() int { return len(s.entries) }

// Names lists held resources in acquisition order.
func (s *Scope) Names() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.name
	}
	return out
}

// Release pops and runs every release function, newest first. A release
// that acquires into the scope is released in the same call.
func (s *Scope) Release() {
	for len(s.entries) > 0 {
		last := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]
		last.release()
	}
}
