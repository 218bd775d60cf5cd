package events

import "github.com/atomicstack/aria-primitives/internal/logging"

type WidgetTracer struct{}

var Widget = WidgetTracer{}

func (WidgetTracer) Open(kind, id string) {
	logging.Trace("widget.open", map[string]interface{}{"kind": kind, "id": id})
}

func (WidgetTracer) Close(kind, id string) {
	logging.Trace("widget.close", map[string]interface{}{"kind": kind, "id": id})
}

func (WidgetTracer) Setup(kind, id string, resources int) {
	logging.Trace("widget.setup", map[string]interface{}{"kind": kind, "id": id, "resources": resources})
}

func (WidgetTracer) Select(kind, id, value string) {
	logging.Trace("widget.select", map[string]interface{}{"kind": kind, "id": id, "value": value})
}

func (WidgetTracer) Value(kind, id string, value float64) {
	logging.Trace("widget.value", map[string]interface{}{"kind": kind, "id": id, "value": value})
}

func (WidgetTracer) Reject(kind, id, name, reason string) {
	logging.Trace("widget.reject", map[string]interface{}{"kind": kind, "id": id, "name": name, "reason": reason})
}
