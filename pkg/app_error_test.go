package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestNewDomainError_KindFromStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusNotFound, KindNotFound},
		{http.StatusUnauthorized, KindAuthz},
		{http.StatusConflict, KindClientInput},
		{http.StatusTooManyRequests, KindRateLimit},
		{http.StatusBadGateway, KindUpstream},
		{http.StatusServiceUnavailable, KindUnavailable},
		{http.StatusInternalServerError, KindInternal},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			err := NewDomainErrorSimple("CODE", "msg", tc.status)
			if err.Kind != tc.want || err.HTTPStatus != tc.status {
				t.Fatalf("expected kind %s, got %s", tc.want, err.Kind)
			}
		})
	}
}

func TestAppError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("stripe: card_declined sk_live_123")
	err := NewUpstreamError("payment", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	body := err.ToHTTPError()
	if body.Code != "UPSTREAM_ERROR" || strings.Contains(body.Error, "sk_live") {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Error != "The payment service is temporarily unavailable" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}

func TestNewConfigurationError(t *testing.T) {
	err := NewConfigurationError("STRIPE_SECRET_KEY", nil)
	if err.HTTPStatus != http.StatusInternalServerError || err.Message != "Server configuration error" {
		t.Fatalf("unexpected error %+v", err)
	}
	if !strings.Contains(err.Error(), "STRIPE_SECRET_KEY") {
		t.Fatalf("setting name should be kept for logs: %s", err.Error())
	}
	if strings.Contains(err.ToHTTPError().Error, "STRIPE") {
		t.Fatalf("setting name leaked to client")
	}
}

func TestFixedErrors(t *testing.T) {
	if e := NewRateLimitError(); e.HTTPStatus != http.StatusTooManyRequests || e.Code != "RATE_LIMITED" {
		t.Fatalf("unexpected %+v", e)
	}
	if e := NewMethodNotAllowedError(); e.HTTPStatus != http.StatusMethodNotAllowed || e.Message != "Method not allowed" {
		t.Fatalf("unexpected %+v", e)
	}
	if e := NewPayloadTooLargeError(); e.HTTPStatus != http.StatusRequestEntityTooLarge {
		t.Fatalf("unexpected %+v", e)
	}
	if e := NewInternalError(errors.New("x")); e.ToHTTPError().Error != "An internal error occurred" {
		t.Fatalf("unexpected %+v", e)
	}
}
