package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the id of a request back to the client. A client
// may also set it to correlate its own logs.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned to the request by the logging
// middleware.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// LoggingMiddleware creates a middleware which adds a logger interceptor to each request to log the request method, uri,
// duration and response code
func LoggingMiddleware(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()

			requestID := req.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, requestID)
			req = req.WithContext(context.WithValue(req.Context(), requestIDKey{}, requestID))

			respWriter := newResponseWriter(w)
			handler.ServeHTTP(respWriter, req)

			log := logger.Info()
			if respWriter.statusCode >= http.StatusInternalServerError {
				log = logger.Error()
			} else if respWriter.statusCode >= http.StatusBadRequest {
				log = logger.Warn()
			}
			log.Str("request_id", requestID).
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("client_ip", req.RemoteAddr).
				Str("user_agent", req.UserAgent()).
				Dur("duration", time.Since(start)).
				Int("response_code", respWriter.statusCode).
				Msg("api")
		})
	}
}
