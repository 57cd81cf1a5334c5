package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/service"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleAlgorithms returns the list of available multiplication algorithms.
// It queries the internal registry and returns the keys as a JSON array.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	algorithms := s.factory.List()

	response := map[string]any{
		"algorithms": algorithms,
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleMultiply processes requests to multiply two big integers.
// It parses the query parameters 'x' and 'y' (the operands) and 'algo' (the
// algorithm), executes the multiplication, and returns the product in JSON
// format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Parse and validate parameters using helper
	x, y, algo, err := parseMultiplyParams(r)
	if err != nil {
		if parseErr, ok := err.(MultiplyParseError); ok {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	// Create a context with timeout for the calculation
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	// Perform the multiplication
	start := time.Now()
	result, err := s.service.Multiply(ctx, algo, x, y)
	duration := time.Since(start)

	// Handle validation failures as client errors
	if errors.Is(err, service.ErrMaxDigitsExceeded) {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Operand length exceeds maximum allowed (%d digits). This limit prevents resource exhaustion.", s.maxDigits))
		return
	}
	var validationErr apperrors.ValidationError
	if errors.As(err, &validationErr) {
		s.writeErrorResponse(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	// Build and send response using helper
	resp := buildMultiplyResponse(x, y, algo, result, duration, err)
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseMultiplyParams extracts and validates the multiplication parameters from the request.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//
// Returns:
//   - x: The first operand text.
//   - y: The second operand text.
//   - algo: The algorithm name (defaults to "adaptive" if not specified).
//   - err: A MultiplyParseError if validation fails, nil otherwise.
func parseMultiplyParams(r *http.Request) (x, y, algo string, err error) {
	x = r.URL.Query().Get("x")
	if x == "" {
		return "", "", "", MultiplyParseError{
			Message:    "Missing 'x' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	y = r.URL.Query().Get("y")
	if y == "" {
		return "", "", "", MultiplyParseError{
			Message:    "Missing 'y' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	algo = r.URL.Query().Get("algo")
	if algo == "" {
		algo = "adaptive" // Default algorithm
	}

	return x, y, algo, nil
}

// buildMultiplyResponse constructs the response struct for a multiplication.
//
// Parameters:
//   - x: The first operand text.
//   - y: The second operand text.
//   - algo: The algorithm name used.
//   - result: The computed product (may be nil if error occurred).
//   - duration: The time taken for the calculation.
//   - err: Any error that occurred during the multiplication.
//
// Returns:
//   - Response: The constructed response struct.
func buildMultiplyResponse(x, y, algo string, result *big.Int, duration time.Duration, err error) Response {
	resp := Response{
		X:         x,
		Y:         y,
		Duration:  duration.String(),
		Algorithm: algo,
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Result = result
		resp.Digits = len(result.Text(10))
	}

	return resp
}

// writeJSONResponse helper function to write a JSON response with the correct content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
