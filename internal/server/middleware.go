// Package server provides the HTTP server implementation for the multiplication API.
package server

import (
	"net/http"
	"time"
)

// WithMaxDigits sets the maximum allowed operand length in digits.
// This helps prevent resource exhaustion via extremely large multiplications.
//
// Parameters:
//   - maxDigits: The maximum allowed operand length (0 for no limit).
//
// Returns:
//   - Option: A functional option that configures the maximum operand length.
func WithMaxDigits(maxDigits int) Option {
	return func(s *Server) {
		s.maxDigits = maxDigits
	}
}

// loggingMiddleware wraps an http.HandlerFunc to log the details of each request.
// It records the HTTP method, URL path, remote address, and the duration required
// to process the request.
//
// Parameters:
//   - next: The next handler in the chain.
//
// Returns:
//   - http.HandlerFunc: A new handler with logging capability.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.logger.Printf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

		next(w, r)

		duration := time.Since(start)
		s.logger.Printf("%s %s completed in %v", r.Method, r.URL.Path, duration)
	}
}
