package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"item-catalog/internal/middleware"
	"item-catalog/internal/model"

	"github.com/rs/zerolog"
)

// statusByKind maps domain error kinds to HTTP status codes.
var statusByKind = map[model.ErrorKind]int{
	model.KindValidation: http.StatusBadRequest,
	model.KindNotFound:   http.StatusNotFound,
	model.KindInternal:   http.StatusInternalServerError,
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response carrying the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code string, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", code).
		Str("request_id", correlationID).
		Int("status", status).
		Msg(message)

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeDomainError maps err to a status through statusByKind. Errors that are
// not domain errors are reported as internal.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	de, ok := model.AsDomainError(err)
	if !ok {
		de = model.NewInternalError(err)
	}

	status, ok := statusByKind[de.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if cause := errors.Unwrap(de); cause != nil && status >= http.StatusInternalServerError {
		logger.Error().Err(cause).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("request failed")
	}

	writeError(w, r, status, de.Code, de.Message, logger)
}

// NotFound returns a JSON 404 for unknown routes.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, model.ErrCodeRouteNotFound, model.Message(model.MsgRouteNotFound), logger)
	}
}

// MethodNotAllowed returns a JSON 405 for known routes hit with the wrong method.
func MethodNotAllowed(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, model.Message(model.MsgMethodNotAllowed), logger)
	}
}
