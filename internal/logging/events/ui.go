package events

import "github.com/atomicstack/tvgrid/internal/logging"

type NavTracer struct{}

type ModalTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Modal   = ModalTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Key(key, intent string) {
	logging.Trace("nav.key", map[string]interface{}{"key": key, "intent": intent})
}

func (NavTracer) Move(direction, containerID, tileID string, container, tile int) {
	logging.Trace("nav.move", map[string]interface{}{
		"direction": direction,
		"container": containerID,
		"tile":      tileID,
		"row":       container,
		"column":    tile,
	})
}

func (NavTracer) Dropped(direction string) {
	logging.Trace("nav.dropped", map[string]interface{}{"direction": direction})
}

func (NavTracer) Blocked(direction, reason string) {
	logging.Trace("nav.blocked", map[string]interface{}{"direction": direction, "reason": reason})
}

func (ModalTracer) Open(tileID string, fromTile bool) {
	logging.Trace("modal.open", map[string]interface{}{"tile": tileID, "fromTile": fromTile})
}

func (ModalTracer) Ignored(reason string) {
	logging.Trace("modal.ignored", map[string]interface{}{"reason": reason})
}

func (ModalTracer) Close(tileID string) {
	logging.Trace("modal.close", map[string]interface{}{"tile": tileID})
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
