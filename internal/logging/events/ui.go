package events

import "github.com/atomicstack/takeoff/internal/logging"

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

func (UITracer) Focus(target string) {
	logging.Trace("ui.focus", map[string]interface{}{"target": target})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) ListCursor(listID string, cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"list": listID, "cursor": cursor})
}

func (UITracer) Theme(accent, complement string) {
	logging.Trace("ui.theme", map[string]interface{}{"accent": accent, "complement": complement})
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

func (FilterTracer) Cleared(listID string) {
	logging.Trace("filter.clear", map[string]interface{}{"list": listID})
}

func (FilterTracer) Append(listID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"list": listID, "filter": filter})
}

func (FilterTracer) Backspace(listID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"list": listID, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
