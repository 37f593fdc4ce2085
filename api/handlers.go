package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"event-finder/data/models"
	"event-finder/data/query"
	"event-finder/data/repository"
	"event-finder/data/store"
)

const apiMessage = "Mini Event Finder API is running"

type healthJSON struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}

func (app *application) root(w http.ResponseWriter, r *http.Request) {
	_ = app.SendJSON(w, http.StatusOK, healthJSON{
		Status:  "ok",
		Message: apiMessage,
		Endpoints: map[string]string{
			"health": "/api/health",
			"events": "/api/events",
		},
	})
}

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	_ = app.SendJSON(w, http.StatusOK, healthJSON{Status: "ok", Message: apiMessage})
}

func (app *application) listEvents(w http.ResponseWriter, r *http.Request) {
	params := query.ParseParams(r.URL.Query())

	events, err := app.Store.Query(r.Context(), params)
	if err != nil {
		log.Printf("Failed to fetch events: %v", err)
		_ = app.SendErrorJSON(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	_ = app.SendJSON(w, http.StatusOK, events)
}

func (app *application) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := app.Store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		app.sendLookupError(w, err)
		return
	}

	_ = app.SendJSON(w, http.StatusOK, event)
}

func (app *application) similarEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = query.DefaultSimilarLimit
	}

	events, err := app.Store.Similar(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		app.sendLookupError(w, err)
		return
	}

	_ = app.SendJSON(w, http.StatusOK, events)
}

func (app *application) sendLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		_ = app.SendErrorJSON(w, http.StatusNotFound, "Event not found")
		return
	}
	log.Printf("Failed to fetch event: %v", err)
	_ = app.SendErrorJSON(w, http.StatusInternalServerError, "Failed to fetch event")
}

func (app *application) createEvent(w http.ResponseWriter, r *http.Request) {
	var payload models.NewEvent
	// an empty body is validated like an empty object
	if err := app.ReadJSON(w, r, &payload); err != nil && !errors.Is(err, io.EOF) {
		_ = app.SendErrorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := app.Store.Create(r.Context(), payload)
	if err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			_ = app.SendErrorJSON(w, http.StatusBadRequest, ve.Error())
			return
		}
		log.Printf("Failed to create event: %v", err)
		_ = app.SendErrorJSON(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	if app.Metrics != nil {
		app.Metrics.eventsCreated.Inc()
		app.Metrics.eventsStored.Inc()
	}
	_ = app.SendJSON(w, http.StatusCreated, event)
}
