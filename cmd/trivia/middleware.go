package main

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/sebuszqo/TriviaAPI/internal/response"
)

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		slog.Debug("Started request", "request_id", requestID, "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(rec, r)

		slog.Info("Completed request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// recoverMiddleware keeps panics from surfacing as bare 500s.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				slog.Error("Recovered from panic",
					"request_id", r.Context().Value(requestIDKey{}),
					"panic", p,
					"stack", string(debug.Stack()),
				)
				response.Error(w, http.StatusUnprocessableEntity, "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

const (
	allowedHeaders = "Content-Type,Authorization,true"
	allowedMethods = "GET,PUT,POST,DELETE,OPTIONS"
)

// corsMiddleware answers preflight requests for any origin and stamps the
// allowed headers and methods on every response, preflights included.
func corsMiddleware(next http.Handler) http.Handler {
	preflight := cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Authorization"},
		OptionsPassthrough: true,
	})

	return preflight(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		if isPreflight(r) {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
