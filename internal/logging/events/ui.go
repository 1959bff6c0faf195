package events

import "github.com/atomicstack/termmenu/internal/logging"

type KeyTracer struct{}

type NavTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type RenderTracer struct{}

var (
	Key     = KeyTracer{}
	Nav     = NavTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Render  = RenderTracer{}
)

func (KeyTracer) Decoded(event string) {
	logging.Trace("key.decoded", map[string]interface{}{"event": event})
}

func (NavTracer) Start(page string) {
	logging.Trace("nav.start", map[string]interface{}{"page": page})
}

func (NavTracer) Goto(from, to string, depth int) {
	logging.Trace("nav.goto", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) Back(from, to string, depth int) {
	logging.Trace("nav.back", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) Cursor(page string, selected int) {
	logging.Trace("nav.cursor", map[string]interface{}{"page": page, "selected": selected})
}

func (NavTracer) Error(page string, err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.error", map[string]interface{}{"page": page, "error": err.Error()})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(label, target string) {
	logging.Trace("action.success", map[string]interface{}{"label": label, "target": target})
}

func (CommandTracer) Queue(page, label string) {
	logging.Trace("command.queue", map[string]interface{}{"page": page, "label": label})
}

func (CommandTracer) Skip(page, label string) {
	logging.Trace("command.skip", map[string]interface{}{"page": page, "label": label})
}

func (CommandTracer) NoOp(page, label string) {
	logging.Trace("command.noop", map[string]interface{}{"page": page, "label": label})
}

func (CommandTracer) Result(page, label, target string) {
	logging.Trace("command.result", map[string]interface{}{"page": page, "label": label, "target": target})
}

func (RenderTracer) Frame(page string, width, height, lines int) {
	logging.Trace("render.frame", map[string]interface{}{
		"page":   page,
		"width":  width,
		"height": height,
		"lines":  lines,
	})
}

func (RenderTracer) Resize(width, height int) {
	logging.Trace("render.resize", map[string]interface{}{"width": width, "height": height})
}
