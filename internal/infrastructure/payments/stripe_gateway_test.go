package payments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v76"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newStripeGatewayWithBackends("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func readForm(t *testing.T, r *http.Request) url.Values {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		t.Errorf("read body: %v", err)
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		t.Errorf("parse form: %v", err)
	}
	return form
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	t.Run("sends amount, metadata and idempotency key", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("Idempotency-Key"); got != "pi-MST-AAAA1111" {
				t.Errorf("unexpected idempotency key %q", got)
			}
			form := readForm(t, r)
			if form.Get("amount") != "6900" || form.Get("currency") != "gbp" || form.Get("metadata[booking_ref]") != "MST-AAAA1111" {
				t.Errorf("unexpected form %v", form)
			}
			if form.Get("automatic_payment_methods[enabled]") != "true" {
				t.Errorf("automatic payment methods not enabled: %v", form)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc","amount":6900,"currency":"gbp","status":"requires_payment_method"}`)
		})

		pi, err := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
			AmountPence:   6900,
			Currency:      "gbp",
			ReceiptEmail:  "ann@example.com",
			Metadata:      map[string]string{"booking_ref": "MST-AAAA1111"},
			IdempotencyID: "MST-AAAA1111",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pi.ID != "pi_123" || pi.ClientSecret != "pi_123_secret_abc" || pi.AmountPence != 6900 || pi.Status != "requires_payment_method" {
			t.Fatalf("unexpected intent %+v", pi)
		}
	})

	t.Run("card errors are rejections", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = io.WriteString(w, `{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`)
		})

		_, err := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{AmountPence: 100, Currency: "gbp"})
		if !errors.Is(err, interfaces.ErrPaymentRejected) {
			t.Fatalf("expected ErrPaymentRejected, got %v", err)
		}
	})

	t.Run("server errors are not rejections", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":{"type":"api_error","message":"boom"}}`)
		})

		_, err := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{AmountPence: 100, Currency: "gbp"})
		if err == nil || errors.Is(err, interfaces.ErrPaymentRejected) {
			t.Fatalf("expected a plain provider error, got %v", err)
		}
	})
}

func TestStripeGateway_CreateSubscription(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/subscriptions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		form := readForm(t, r)
		if form.Get("payment_behavior") != "default_incomplete" || form.Get("items[0][price]") != "price_club" {
			t.Errorf("unexpected form %v", form)
		}
		if form.Get("expand[0]") != "latest_invoice.payment_intent" {
			t.Errorf("latest invoice not expanded: %v", form)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"sub_1","object":"subscription","status":"incomplete","customer":"cus_1",
			"current_period_start":1740825600,"current_period_end":1743504000,"cancel_at_period_end":false,
			"latest_invoice":{"id":"in_1","object":"invoice","payment_intent":{"id":"pi_s","object":"payment_intent","client_secret":"pi_s_secret"}}}`)
	})

	ps, err := g.CreateSubscription(context.Background(), "cus_1", "price_club", map[string]string{"email": "ann@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.ID != "sub_1" || ps.CustomerID != "cus_1" || ps.Status != entities.SubscriptionStatusIncomplete || ps.ClientSecret != "pi_s_secret" {
		t.Fatalf("unexpected subscription %+v", ps)
	}
	if ps.CurrentPeriodEnd == nil || !ps.CurrentPeriodEnd.Equal(time.Unix(1743504000, 0)) {
		t.Fatalf("unexpected period end %v", ps.CurrentPeriodEnd)
	}
}

func TestStripeGateway_EnsureCustomer(t *testing.T) {
	t.Run("deleted customer is replaced", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/v1/customers/cus_old":
				_, _ = io.WriteString(w, `{"id":"cus_old","object":"customer","deleted":true}`)
			case r.Method == http.MethodPost && r.URL.Path == "/v1/customers":
				if form := readForm(t, r); form.Get("email") != "ann@example.com" {
					t.Errorf("unexpected form %v", form)
				}
				_, _ = io.WriteString(w, `{"id":"cus_new","object":"customer"}`)
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		})

		id, err := g.EnsureCustomer(context.Background(), "cus_old", "ann@example.com", "Ann")
		if err != nil || id != "cus_new" {
			t.Fatalf("unexpected result %q %v", id, err)
		}
	})
}

func TestStripeGateway_MockMode(t *testing.T) {
	g, err := NewStripeGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fixed := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	pi, err := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{AmountPence: 6900, Currency: "gbp"})
	if err != nil || pi.ClientSecret == "" || pi.AmountPence != 6900 {
		t.Fatalf("unexpected mock intent %+v %v", pi, err)
	}

	ps, err := g.CancelSubscription(context.Background(), "sub_1")
	if err != nil || ps.Status != entities.SubscriptionStatusCanceled {
		t.Fatalf("unexpected mock subscription %+v %v", ps, err)
	}
}

func TestNewStripeGateway_MissingKey(t *testing.T) {
	if _, err := NewStripeGateway("", false); !errors.Is(err, ErrMissingStripeSecretKey) {
		t.Fatalf("expected ErrMissingStripeSecretKey, got %v", err)
	}
}
