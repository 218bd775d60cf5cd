package behavior

import (
	"reflect"
	"testing"

	"github.com/atomicstack/aria-primitives/internal/dom"
)

func TestScopeReleasesInReverseOnce(t *testing.T) {
	var s Scope
	var order []string
	for _, name := range []string{"anchor", "dismiss", "roving", "typeahead"} {
		name := name
		s.Acquire(name, func() { order = append(order, name) })
	}
	s.Acquire("nil", nil)
	if got := s.Names(); !reflect.DeepEqual(got, []string{"anchor", "dismiss", "roving", "typeahead"}) {
		t.Fatalf("unexpected names %v", got)
	}
	s.Release()
	s.Release()
	want := []string{"typeahead", "roving", "dismiss", "anchor"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("release order = %v, want %v", order, want)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty scope")
	}
}

func TestPropsApplyRemovesEmptyValues(t *testing.T) {
	el := dom.NewElement("div").SetAttr("hidden", "hidden").SetAttr("aria-disabled", "true")
	Props{"role": "menu", "hidden": "", "aria-disabled": trueOrAbsent(false)}.Apply(el)
	if el.AttrOr("role", "") != "menu" {
		t.Fatalf("expected role applied")
	}
	if el.HasAttr("hidden") || el.HasAttr("aria-disabled") {
		t.Fatalf("expected empty values to remove attributes")
	}
	merged := Props{"a": "1", "b": "2"}.Merge(Props{"b": "3"})
	if merged["a"] != "1" || merged["b"] != "3" {
		t.Fatalf("unexpected merge %v", merged)
	}
	if got := merged.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestMatchOptionsFallsBackToSubstring(t *testing.T) {
	options := []filterOption{{Label: "Apple", Value: "red"}, {Label: "Banana", Value: "yellow"}, {Label: "Cherry", Value: "dark"}}
	if got := matchOptions(options, "an"); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("unexpected fuzzy matches %v", got)
	}
	if got := matchOptions(options, "yell"); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("expected value substring fallback, got %v", got)
	}
	if got := matchOptions(options, " "); len(got) != 3 {
		t.Fatalf("blank query should keep everything, got %v", got)
	}
	if got := bestMatchIndex(options, "cher"); got != 2 {
		t.Fatalf("expected prefix match on Cherry, got %d", got)
	}
	if got := bestMatchIndex(nil, "x"); got != -1 {
		t.Fatalf("expected -1 for no options, got %d", got)
	}
}
