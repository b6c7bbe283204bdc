package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrSubscriptionExists    = errors.New("active subscription already exists")
	ErrApplicationNotFound   = errors.New("partner application not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidWebhookPayload = errors.New("invalid webhook signature or payload")
)

// ValidationError is a client input problem; Message is safe to show.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// MissingConfigError names a setting an operation needs but the process was started without.
type MissingConfigError struct {
	Setting string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Setting)
}

func missingConfig(setting string) error {
	return &MissingConfigError{Setting: setting}
}

// UpstreamError wraps a failure from a third-party provider.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstream(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}

// UnavailableError means a feature is switched off in this deployment.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string { return e.Message }

// Provider names used in errors and metrics.
const (
	ProviderStripe = "payment"
	ProviderEmail  = "email"
	ProviderAI     = "AI"
	ProviderStore  = "storage"
)
