package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

type errorJSON struct {
	Error string `json:"error"`
}

// internalErrorBody is sent when a payload cannot be encoded.
var internalErrorBody = []byte(`{"error":"Internal server error"}`)

// marshalAndSend writes payload as JSON with the given status. If the payload
// cannot be encoded the client gets a 500 instead and the encoding error is
// returned.
func marshalAndSend(w http.ResponseWriter, payload interface{}, statusCode int) error {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to encode response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_, err = w.Write(b)
	return err
}

func (app *application) SendJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	return marshalAndSend(w, data, statusCode)
}

func (app *application) SendErrorJSON(w http.ResponseWriter, statusCode int, message string) error {
	return marshalAndSend(w, errorJSON{Error: message}, statusCode)
}

func (app *application) ReadJSON(w http.ResponseWriter, r *http.Request, data interface{}) error {
	maxBytes := 1024 * 1024 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(data); err != nil {
		return err
	}

	// make sure only one JSON value in payload
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}
