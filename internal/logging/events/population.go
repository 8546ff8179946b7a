package events

import "github.com/atomicstack/tvgrid/internal/logging"

type PopulationTracer struct{}

type ImageTracer struct{}

var (
	Population = PopulationTracer{}
	Image      = ImageTracer{}
)

func (PopulationTracer) Subscribe(containerID string) {
	logging.Trace("population.subscribe", map[string]interface{}{"container": containerID})
}

func (PopulationTracer) Unsubscribe(containerID string) {
	logging.Trace("population.unsubscribe", map[string]interface{}{"container": containerID})
}

func (PopulationTracer) Visible(containerID, state string) {
	logging.Trace("population.visible", map[string]interface{}{"container": containerID, "state": state})
}

func (PopulationTracer) Fetch(containerID, requestID string, attempt int) {
	logging.Trace("population.fetch", map[string]interface{}{"container": containerID, "request": requestID, "attempt": attempt})
}

func (PopulationTracer) Populated(containerID, requestID string, tiles int) {
	logging.Trace("population.populated", map[string]interface{}{"container": containerID, "request": requestID, "tiles": tiles})
}

func (PopulationTracer) Failed(containerID, requestID string, err error, retrying bool) {
	payload := map[string]interface{}{"container": containerID, "request": requestID, "retrying": retrying}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("population.failed", payload)
}

func (PopulationTracer) Unresolvable(containerID, tileID string, err error) {
	payload := map[string]interface{}{"container": containerID, "tile": tileID}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("population.unresolvable", payload)
}

func (ImageTracer) Probe(tileID, url string) {
	logging.Trace("image.probe", map[string]interface{}{"tile": tileID, "url": url})
}

func (ImageTracer) Failed(tileID, url string, err error) {
	payload := map[string]interface{}{"tile": tileID, "url": url}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("image.failed", payload)
}

func (ImageTracer) Substituted(tileID string, tiles int, overlay bool) {
	logging.Trace("image.substituted", map[string]interface{}{"tile": tileID, "tiles": tiles, "overlay": overlay})
}
