package pkg

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies an AppError for logging and status mapping.
type ErrorKind string

const (
	KindClientInput     ErrorKind = "client_input"
	KindAuthz           ErrorKind = "authz"
	KindNotFound        ErrorKind = "not_found"
	KindRateLimit       ErrorKind = "rate_limit"
	KindPayloadTooLarge ErrorKind = "payload_too_large"
	KindUpstream        ErrorKind = "upstream"
	KindUnavailable     ErrorKind = "unavailable"
	KindConfiguration   ErrorKind = "configuration"
	KindInternal        ErrorKind = "internal"
)

// AppError is the error shape every handler renders.
// Err keeps the underlying cause for logs and is never serialized.
type AppError struct {
	Code       string
	Message    string
	Kind       ErrorKind
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Code: e.Code}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Kind: kindForStatus(status), HTTPStatus: status, Err: err}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return NewDomainError(code, message, nil, status)
}

func NewClientInputError(message string) *AppError {
	return &AppError{Code: "INVALID_REQUEST", Message: message, Kind: KindClientInput, HTTPStatus: http.StatusBadRequest}
}

// NewAuthzError is used for missing or bad credentials and signatures.
// Webhook signature failures use 400 so the provider does not treat them as auth challenges.
func NewAuthzError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindAuthz, HTTPStatus: status}
}

func NewMethodNotAllowedError() *AppError {
	return &AppError{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed", Kind: KindClientInput, HTTPStatus: http.StatusMethodNotAllowed}
}

func NewRateLimitError() *AppError {
	return &AppError{Code: "RATE_LIMITED", Message: "Too many requests. Please try again later.", Kind: KindRateLimit, HTTPStatus: http.StatusTooManyRequests}
}

func NewPayloadTooLargeError() *AppError {
	return &AppError{Code: "PAYLOAD_TOO_LARGE", Message: "Request payload too large", Kind: KindPayloadTooLarge, HTTPStatus: http.StatusRequestEntityTooLarge}
}

// NewUpstreamError hides the provider's message behind a generic one.
func NewUpstreamError(provider string, err error) *AppError {
	return &AppError{
		Code:       "UPSTREAM_ERROR",
		Message:    fmt.Sprintf("The %s service is temporarily unavailable", provider),
		Kind:       KindUpstream,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewUnavailableError(message string) *AppError {
	return &AppError{Code: "SERVICE_UNAVAILABLE", Message: message, Kind: KindUnavailable, HTTPStatus: http.StatusServiceUnavailable}
}

// NewConfigurationError names the missing setting, never its value.
func NewConfigurationError(setting string, err error) *AppError {
	cause := fmt.Errorf("missing configuration %s", setting)
	if err != nil {
		cause = fmt.Errorf("missing configuration %s: %w", setting, err)
	}
	return &AppError{
		Code:       "CONFIGURATION_ERROR",
		Message:    "Server configuration error",
		Kind:       KindConfiguration,
		HTTPStatus: http.StatusInternalServerError,
		Err:        cause,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", Kind: KindInternal, HTTPStatus: http.StatusInternalServerError, Err: err}
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuthz
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status == http.StatusRequestEntityTooLarge:
		return KindPayloadTooLarge
	case status == http.StatusBadGateway:
		return KindUpstream
	case status == http.StatusServiceUnavailable:
		return KindUnavailable
	case status >= 400 && status < 500:
		return KindClientInput
	default:
		return KindInternal
	}
}
