package events

import "github.com/atomicstack/aria-primitives/internal/logging"

type RovingTracer struct{}

type TypeAheadTracer struct{}

type AnchorTracer struct{}

var (
	Roving    = RovingTracer{}
	TypeAhead = TypeAheadTracer{}
	Anchor    = AnchorTracer{}
)

func (RovingTracer) Move(container string, from, to int) {
	logging.Trace("roving.move", map[string]interface{}{"container": container, "from": from, "to": to})
}

func (RovingTracer) Sync(container string, index int) {
	logging.Trace("roving.sync", map[string]interface{}{"container": container, "index": index})
}

func (TypeAheadTracer) Match(buffer string, index int) {
	logging.Trace("typeahead.match", map[string]interface{}{"buffer": buffer, "index": index})
}

func (TypeAheadTracer) Miss(buffer string) {
	logging.Trace("typeahead.miss", map[string]interface{}{"buffer": buffer})
}

func (AnchorTracer) Strategy(floating, strategy string) {
	logging.Trace("anchor.strategy", map[string]interface{}{"floating": floating, "strategy": strategy})
}

func (AnchorTracer) Position(floating, placement string, x, y float64, flipped bool) {
	logging.Trace("anchor.position", map[string]interface{}{
		"floating":  floating,
		"placement": placement,
		"x":         x,
		"y":         y,
		"flipped":   flipped,
	})
}
