package dismiss

// Registry is the ordered set of active layers. Its order always equals
// activation order: layers are appended on activation and removed by
// identity on deactivation.
type Registry struct {
	layers []*Layer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var shared = NewRegistry()

// Shared returns the process-wide registry used when Options.Registry is nil.
func Shared() *Registry { return shared }

// Len returns the number of active layers.
func (r *Registry) Len() int { return len(r.layers) }

// Top returns the most recently activated layer, or nil.
func (r *Registry) Top() *Layer {
	if len(r.layers) == 0 {
		return nil
	}
	return r.layers[len(r.layers)-1]
}

// Layers returns a copy of the active layers, oldest first.
func (r *Registry) Layers() []*Layer {
	out := make([]*Layer, len(r.layers))
	copy(out, r.layers)
	return out
}

// IndexOf returns the position of l, or -1.
func (r *Registry) IndexOf(l *Layer) int {
	for i, entry := range r.layers {
		if entry == l {
			return i
		}
	}
	return -1
}

func (r *Registry) push(l *Layer) {
	r.layers = append(r.layers, l)
}

func (r *Registry) remove(l *Layer) bool {
	i := r.IndexOf(l)
	if i < 0 {
		return false
	}
	r.layers = append(r.layers[:i], r.layers[i+1:]...)
	return true
}
