package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/utils"
	"github.com/minhng-dev/taskblog/models"
)

// renderSuccess writes a success envelope. The HTTP status code and the
// envelope's Code field always match.
func renderSuccess(w http.ResponseWriter, r *http.Request, code int, message string, metadata any) {
	if _, err := utils.WriteJSON(w, models.NewEnvelope(code, message, metadata), code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// renderError classifies err through the taxonomy and writes the failure
// envelope. Internal errors are logged with their cause; the client only
// ever sees the taxonomy message.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	appErr := apperr.From(err)
	if appErr.Kind == apperr.Internal {
		log.Err(err).Msg("request failed with internal error")
	}

	if _, writeErr := utils.WriteJSON(w, models.NewErrorEnvelope(appErr.Status(), appErr.Message), appErr.Status()); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}

// decodePayload reads the request body as an untrusted JSON object. The
// result goes straight to the validation pipeline, never to persistence.
func decodePayload(r *http.Request) (map[string]any, error) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, apperr.Wrap(apperr.BadRequest, "Invalid JSON was passed", err)
	}

	return payload, nil
}

// idParam parses the named chi URL parameter as a positive int64.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.BadRequest, "Invalid id")
	}

	return id, nil
}

// queryParams flattens the request query string into a first-value map for
// the service-layer filter builders.
func queryParams(r *http.Request) map[string]string {
	values := r.URL.Query()
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}

	return params
}
