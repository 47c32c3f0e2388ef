package interfaces

import (
	"errors"
	"log/slog"
	"net/http"

	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

type respondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type respondErrorFunc func(w http.ResponseWriter, status int, message string)

// statusForError maps a service error onto one of the documented statuses.
// notFoundStatus lets an operation report missing resources differently
// (deleting an unknown question is 422, not 404). Storage failures and anything
// unrecognised fall through to 422; nothing maps to 500.
func statusForError(err error, notFoundStatus int) int {
	switch {
	case errors.Is(err, triviaErrors.ErrBadRequest):
		return http.StatusBadRequest
	case triviaErrors.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case triviaErrors.IsNotFound(err):
		return notFoundStatus
	default:
		return http.StatusUnprocessableEntity
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, respondError respondErrorFunc, err error, notFoundStatus int) {
	status := statusForError(err, notFoundStatus)
	if triviaErrors.IsStorageError(err) {
		slog.ErrorContext(r.Context(), "Storage failure", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		slog.DebugContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	respondError(w, status, "")
}

// NotFoundHandler answers unknown routes with the 404 envelope.
func NotFoundHandler(respondError respondErrorFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "")
	}
}

// MethodNotAllowedHandler answers known routes hit with the wrong method.
func MethodNotAllowedHandler(respondError respondErrorFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "")
	}
}
