package events

import "github.com/atomicstack/aria-primitives/internal/logging"

type LayerTracer struct{}

type FocusTracer struct{}

var (
	Layer = LayerTracer{}
	Focus = FocusTracer{}
)

func (LayerTracer) Activate(id string, depth int) {
	logging.Trace("layer.activate", map[string]interface{}{"id": id, "depth": depth})
}

func (LayerTracer) Deactivate(id string, remaining int) {
	logging.Trace("layer.deactivate", map[string]interface{}{"id": id, "remaining": remaining})
}

func (LayerTracer) Dismiss(id, reason string) {
	logging.Trace("layer.dismiss", map[string]interface{}{"id": id, "reason": reason})
}

func (FocusTracer) TrapActivate(container string, focusable int) {
	logging.Trace("focus.trap.activate", map[string]interface{}{"container": container, "focusable": focusable})
}

func (FocusTracer) TrapDeactivate(container, returnedTo string) {
	logging.Trace("focus.trap.deactivate", map[string]interface{}{"container": container, "returned": returnedTo})
}

func (FocusTracer) TrapWrap(container string, backward bool) {
	logging.Trace("focus.trap.wrap", map[string]interface{}{"container": container, "backward": backward})
}
