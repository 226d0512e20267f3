package events

import "github.com/atomicstack/takeoff/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) Commit(label string, index int) {
	logging.Trace("picker.commit", map[string]interface{}{"label": label, "index": index})
}

func (PickerTracer) Nudge(label string, from, to int) {
	logging.Trace("picker.nudge", map[string]interface{}{"label": label, "from": from, "to": to})
}

func (PickerTracer) Dropped(label string) {
	logging.Trace("picker.nudge.dropped", map[string]interface{}{"label": label})
}

func (PickerTracer) Select(label string, index int) {
	logging.Trace("picker.select", map[string]interface{}{"label": label, "index": index})
}

func (PickerTracer) Resync(label string, index int) {
	logging.Trace("picker.resync", map[string]interface{}{"label": label, "index": index})
}

func (PickerTracer) Close(label string) {
	logging.Trace("picker.close", map[string]interface{}{"label": label})
}
