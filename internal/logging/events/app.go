package events

import "github.com/atomicstack/tvgrid/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) CatalogLoaded(title string, containers int) {
	logging.Trace("app.catalog.loaded", map[string]interface{}{"title": title, "containers": containers})
}

func (AppTracer) CatalogFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.catalog.failed", map[string]interface{}{"error": err.Error()})
}
