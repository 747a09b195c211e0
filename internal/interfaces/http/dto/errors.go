package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Authentication and authorization error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes missing from the map resolve to 500.
var ErrorCodeHTTPStatus = map[string]int{
	// Input errors -> 400 Bad Request
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,
	"INVALID_AMOUNT":  http.StatusBadRequest,
	"INVALID_INPUT":   http.StatusBadRequest,
	"INVALID_ROLE":    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_INACTIVE":    http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Missing resources -> 404 Not Found
	"NOT_FOUND":         http.StatusNotFound,
	"CLIENT_NOT_FOUND":  http.StatusNotFound,
	"PRODUCT_NOT_FOUND": http.StatusNotFound,
	"ORDER_NOT_FOUND":   http.StatusNotFound,
	"PAYMENT_NOT_FOUND": http.StatusNotFound,
	"RETURN_NOT_FOUND":  http.StatusNotFound,
	"USER_NOT_FOUND":    http.StatusNotFound,

	// State conflicts -> 409 Conflict
	"ORDER_ALREADY_SETTLED": http.StatusConflict,
	"ORDER_RETURNED":        http.StatusConflict,
	"ALREADY_RETURNED":      http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INSUFFICIENT_STOCK":         http.StatusUnprocessableEntity,
	"OVER_PAYMENT":               http.StatusUnprocessableEntity,
	"IMMEDIATE_PAYMENT_MISMATCH": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
