package dto

import "net/http"

// Error code constants exposed on the wire
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeSourceFailed is used when the order source rejected a request;
	// the message carries the source's own error text verbatim
	ErrCodeSourceFailed = "ERR_SOURCE_FAILED"
	// ErrCodeSourceUnreachable is used when the order source cannot be reached
	ErrCodeSourceUnreachable = "ERR_SOURCE_UNREACHABLE"
	// ErrCodeBatchFailed is used when one or more operations in a bulk
	// request failed; the batch is reported as a whole
	ErrCodeBatchFailed = "ERR_BATCH_FAILED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:           http.StatusInternalServerError,
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeInvalidInput:      http.StatusBadRequest,
	ErrCodeInvalidJSON:       http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeSourceFailed:      http.StatusBadGateway,
	ErrCodeSourceUnreachable: http.StatusServiceUnavailable,
	ErrCodeBatchFailed:       http.StatusBadGateway,
}

// domainErrorCodes maps domain error codes to wire error codes
var domainErrorCodes = map[string]string{
	"NOT_FOUND":          ErrCodeNotFound,
	"INVALID_INPUT":      ErrCodeInvalidInput,
	"SOURCE_FAILED":      ErrCodeSourceFailed,
	"SOURCE_UNREACHABLE": ErrCodeSourceUnreachable,
	"BATCH_FAILED":       ErrCodeBatchFailed,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode converts a domain error code to its wire equivalent
func NormalizeErrorCode(code string) string {
	if normalized, ok := domainErrorCodes[code]; ok {
		return normalized
	}
	return ErrCodeUnknown
}
