package events

import "github.com/atomicstack/aria-primitives/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) DemoEnter(demoID, label string) {
	logging.Trace("ui.demo.enter", map[string]interface{}{"demo": demoID, "label": label})
}

func (UITracer) Key(key, target string, prevented bool) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "target": target, "prevented": prevented})
}

func (UITracer) Pointer(x, y int, target string) {
	logging.Trace("ui.pointer", map[string]interface{}{"x": x, "y": y, "target": target})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Cursor(demoID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"demo": demoID, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(owner string) {
	logging.Trace("filter.clear", map[string]interface{}{"owner": owner})
}

func (FilterTracer) Apply(owner, query string, visible int) {
	logging.Trace("filter.apply", map[string]interface{}{"owner": owner, "query": query, "visible": visible})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
