package events

import "github.com/atomicstack/takeoff/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Stop records why the session ended: a quit key or ctrl+c.
func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

// Failed records a session that ended because the program returned an error.
func (AppTracer) Failed(err error) {
	logging.Trace("app.failed", map[string]interface{}{"error": err.Error()})
}
