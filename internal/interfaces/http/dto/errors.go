package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// Billing error codes
const (
	// ErrCodeVerificationFailed is used when a webhook signature does not verify
	ErrCodeVerificationFailed = "ERR_VERIFICATION_FAILED"
	// ErrCodeConfiguration is used when required configuration is missing
	ErrCodeConfiguration = "ERR_CONFIGURATION"
	// ErrCodeUpstream is used when a call to the payment provider fails
	ErrCodeUpstream = "ERR_UPSTREAM"
	// ErrCodePersistence is used when a state change cannot be persisted
	ErrCodePersistence = "ERR_PERSISTENCE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeVerificationFailed: http.StatusBadRequest,
	ErrCodeConfiguration:      http.StatusInternalServerError,
	ErrCodeUpstream:           http.StatusBadGateway,
	ErrCodePersistence:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to response error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":           ErrCodeNotFound,
	"INVALID_INPUT":       ErrCodeInvalidInput,
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"VERIFICATION_FAILED": ErrCodeVerificationFailed,
	"CONFIGURATION_ERROR": ErrCodeConfiguration,
	"UPSTREAM_ERROR":      ErrCodeUpstream,
	"PERSISTENCE_ERROR":   ErrCodePersistence,
}

// NormalizeErrorCode converts a domain error code to the response format
// If the code is already in the response format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if responseCode, ok := DomainErrorCodeMapping[code]; ok {
		return responseCode
	}
	return code
}
