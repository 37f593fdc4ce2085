package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", app.root)
	mux.HandleFunc("GET /health", app.health)
	mux.HandleFunc("GET /api/health", app.health)

	mux.HandleFunc("GET /api/events", app.listEvents)
	mux.HandleFunc("POST /api/events", app.createEvent)
	mux.HandleFunc("GET /api/events/{id}", app.getEvent)
	mux.HandleFunc("GET /api/events/{id}/similar", app.similarEvents)

	if app.Config.MetricsEnabled && app.Metrics != nil {
		mux.Handle("GET /metrics", app.Metrics.Handler())
	}

	return app.instrument(app.recoverPanic(app.cors(mux)))
}
