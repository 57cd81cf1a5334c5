package server

import (
	"math/big"
)

// Response represents the standardized JSON response for a multiplication request.
type Response struct {
	// X is the first operand as submitted by the client.
	X string `json:"x"`
	// Y is the second operand as submitted by the client.
	Y string `json:"y"`
	// Result is the computed product. It is omitted if an error occurred.
	Result *big.Int `json:"result,omitempty"`
	// Digits is the decimal digit count of the product.
	Digits int `json:"digits,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the multiplication failed.
	Error string `json:"error,omitempty"`
	// Algorithm is the name of the algorithm used for the multiplication.
	Algorithm string `json:"algorithm"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// MultiplyParseError represents a parameter parsing error with HTTP status.
type MultiplyParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e MultiplyParseError) Error() string {
	return e.Message
}
