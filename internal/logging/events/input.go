package events

import "github.com/atomicstack/termmenu/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Start(device string) {
	logging.Trace("input.start", map[string]interface{}{"device": device})
}

func (InputTracer) Stop(captured int) {
	logging.Trace("input.stop", map[string]interface{}{"captured": captured})
}

func (InputTracer) ReadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("input.read-error", map[string]interface{}{"error": err.Error()})
}

func (InputTracer) Recovered(reason interface{}) {
	logging.Trace("input.recovered", map[string]interface{}{"reason": reason})
}
