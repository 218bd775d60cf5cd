package behavior

import (
	"sort"
	"strconv"

	"github.com/atomicstack/aria-primitives/internal/dom"
)

// Props is a bundle of DOM attributes computed from controller state. An
// empty value means the attribute should be absent.
type Props map[string]string

// Apply writes the bundle onto el, removing attributes with empty values.
func (p Props) Apply(el *dom.Element) {
	if el == nil {
		return
	}
	for name, value := range p {
		if value == "" {
			el.RemoveAttr(name)
			continue
		}
		el.SetAttr(name, value)
	}
}

// Merge returns a copy of p overlaid with other.
func (p Props) Merge(other Props) Props {
	out := make(Props, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns the attribute names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func boolAttr(b bool) string {
	return strconv.FormatBool(b)
}

// flag renders a presence attribute: the name itself when set, absent
// otherwise.
func flag(name string, on bool) string {
	if on {
		return name
	}
	return ""
}

// trueOrAbsent renders "true" or removes the attribute.
func trueOrAbsent(on bool) string {
	if on {
		return "true"
	}
	return ""
}

func openState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
