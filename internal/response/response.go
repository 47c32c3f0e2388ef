package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorEnvelope is the body of every failed request.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var messages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not found",
	http.StatusUnprocessableEntity: "unprocessable",
}

// Message returns the canonical message for an error status.
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return messages[http.StatusUnprocessableEntity]
}

// JSON writes payload with the given status. Map payloads get "success": true
// unless they already carry a success key.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	if m, ok := payload.(map[string]interface{}); ok {
		if _, set := m["success"]; !set {
			m["success"] = true
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Error writes the uniform error envelope. An empty message is replaced by the
// canonical one for the status.
func Error(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = Message(status)
	}
	JSON(w, status, ErrorEnvelope{
		Success: false,
		Error:   status,
		Message: message,
	})
}
