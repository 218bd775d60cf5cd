package behavior

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// filterOption is what the select filter ranks: the visible label and the
// submitted value.
type filterOption struct {
	Label string
	Value string
}

// matchOptions returns the indexes of options matching query, in option
// order. Fuzzy ranking is tried first; when it finds nothing, plain
// substring matches on label or value are used.
func matchOptions(options []filterOption, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		all := make([]int, len(options))
		for i := range options {
			all[i] = i
		}
		return all
	}
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		out := make([]int, 0, len(matches))
		for i := range options {
			if _, ok := matches[i]; ok {
				out = append(out, i)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]int, 0, len(options))
	for i, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), lower) || strings.Contains(strings.ToLower(opt.Value), lower) {
			out = append(out, i)
		}
	}
	return out
}

// bestMatchIndex picks the option a query most likely means: exact label or
// value, then label prefix, value prefix, value substring, label substring,
// and finally the closest fuzzy rank. It returns -1 for no options.
func bestMatchIndex(options []filterOption, query string) int {
	if len(options) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, opt := range options {
		if strings.EqualFold(opt.Label, trimmed) || strings.EqualFold(opt.Value, trimmed) {
			return i
		}
	}
	checks := []func(filterOption) bool{
		func(o filterOption) bool { return strings.HasPrefix(strings.ToLower(o.Label), lower) },
		func(o filterOption) bool { return strings.HasPrefix(strings.ToLower(o.Value), lower) },
		func(o filterOption) bool { return strings.Contains(strings.ToLower(o.Value), lower) },
		func(o filterOption) bool { return strings.Contains(strings.ToLower(o.Label), lower) },
	}
	for _, check := range checks {
		for i, opt := range options {
			if check(opt) {
				return i
			}
		}
	}
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(options) {
		return 0
	}
	return best.OriginalIndex
}
