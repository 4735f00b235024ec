// Package errors carries the error taxonomy exposed at the HTTP boundary.
package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeDuplicateFeed = "DUPLICATE_FEED"
	CodeInvalidFeed   = "INVALID_FEED"
	CodeNotFound      = "NOT_FOUND"
	CodeForbidden     = "FORBIDDEN"
	CodeExternalAPI   = "EXTERNAL_API_ERROR"
	CodeTimeout       = "TIMEOUT_ERROR"
	CodeDatabase      = "DATABASE_ERROR"
	CodeUnknown       = "UNKNOWN_ERROR"
)

// AppContextError represents an error with the layer, component and operation it surfaced from.
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`
	Component string         `json:"component,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeDuplicateFeed:
		return http.StatusConflict
	case CodeInvalidFeed:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeExternalAPI:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// HTTPContextResponse is the JSON body of an error response. Causes are never included.
type HTTPContextResponse struct {
	Error     string         `json:"error"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Operation string         `json:"operation,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	return HTTPContextResponse{
		Error:     "error",
		Code:      e.Code,
		Message:   e.Message,
		Operation: e.Operation,
		Context:   e.Context,
	}
}

func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeTimeout, CodeExternalAPI:
		return true
	default:
		return false
	}
}

func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]any,
) *AppContextError {
	if context == nil {
		context = make(map[string]any)
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext returns a copy of err relocated to another layer with merged context.
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]any,
) *AppContextError {
	mergedContext := make(map[string]any, len(err.Context)+len(additionalContext))
	for k, v := range err.Context {
		mergedContext[k] = v
	}
	for k, v := range additionalContext {
		mergedContext[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   mergedContext,
	}
}
