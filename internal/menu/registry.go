package menu

import "strings"

// Node represents a catalogue entry within the registry tree. Demos sit under
// the root; their actions sit under the demo as "demo:action".
type Node struct {
	ID          string
	Label       string
	Loader      Loader
	Action      Action
	Children    map[string]*Node
	MultiSelect bool
}

// Registry exposes lookup utilities for demo definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
	order []string
}

// BuildRegistry constructs the registry from the catalogue, loader and
// action maps.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)

	ensure := func(id string) *Node {
		if node, ok := nodes[id]; ok {
			return node
		}
		node := &Node{ID: id, Label: prettyLabel(id), Children: make(map[string]*Node)}
		nodes[id] = node
		return node
	}

	root := ensure("root")
	root.Label = "Primitives"
	root.Loader = func(Context) ([]Item, error) { return RootItems(), nil }

	order := make([]string, 0, len(RootItems()))
	for _, item := range RootItems() {
		node := ensure(item.ID)
		node.Label = item.Label
		order = append(order, item.ID)
	}

	for id, loader := range CategoryLoaders() {
		ensure(id).Loader = loader
	}

	for id, action := range ActionHandlers() {
		ensure(id).Action = action
	}

	if node, ok := nodes["multi-select"]; ok {
		node.MultiSelect = true
	}

	for id, node := range nodes {
		if id == "root" {
			continue
		}
		parentID, key := parentKey(id)
		parent := ensure(parentID)
		parent.Children[key] = node
	}

	return &Registry{root: root, nodes: nodes, order: order}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Demos returns the demo nodes in catalogue order.
func (r *Registry) Demos() []*Node {
	out := make([]*Node, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.nodes[id])
	}
	return out
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Child resolves a child node under the given parent for the provided key.
func (r *Registry) Child(parentID, key string) (*Node, bool) {
	parent, ok := r.nodes[parentID]
	if !ok {
		return nil, false
	}
	node, ok := parent.Children[key]
	return node, ok
}

// ActionFor returns the action a demo registered under name.
func (r *Registry) ActionFor(demo, name string) (Action, bool) {
	node, ok := r.Child(demo, name)
	if !ok || node.Action == nil {
		return nil, false
	}
	return node.Action, true
}

func parentKey(id string) (string, string) {
	if id == "" {
		return "root", ""
	}
	idx := strings.LastIndex(id, ":")
	if idx < 0 {
		return "root", id
	}
	return id[:idx], id[idx+1:]
}
