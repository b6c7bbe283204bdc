package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/config"
	"master_booking/internal/ratelimit"
	"master_booking/internal/security"
)

// testRouter wires the real handlers with every provider and repository left unconfigured.
func testRouter(t *testing.T, internalKey string) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Environment:    config.EnvProduction,
		Gin:            config.GinConfig{Mode: gin.TestMode},
		InternalAPIKey: internalKey,
		Email:          config.EmailConfig{From: "Master <hello@wearemaster.com>", OpsAddress: "ops@example.com", SiteURL: "https://wearemaster.com"},
		Scheduler:      config.SchedulerConfig{BatchSize: 10},
	}
	set, _ := buildHandlers(cfg, repositories{}, providers{})
	deps := &dependencies{
		gate:     newTestGate(),
		handlers: set,
	}
	return newRouter(cfg, deps)
}

func do(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	r := testRouter(t, "internal-key")

	t.Run("health", func(t *testing.T) {
		if w := do(r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := do(r, http.MethodGet, "/metrics", "", nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "go_goroutines") {
			t.Fatalf("unexpected metrics response %d", w.Code)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		w := do(r, http.MethodOptions, PathFunctions+"/create-payment-intent", "", map[string]string{"Origin": "https://wearemaster.com"})
		if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "https://wearemaster.com" {
			t.Fatalf("unexpected preflight %d %v", w.Code, w.Header())
		}
	})

	t.Run("rate tables", func(t *testing.T) {
		w := do(r, http.MethodGet, PathFunctions+"/rate-tables", "", nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"currency":"gbp"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("quote end to end", func(t *testing.T) {
		w := do(r, http.MethodPost, PathFunctions+"/calculate-quote", `{"category":"handyman","selection":{"service":"tv_mounting"}}`, nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total_pence":6900`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty body rejected", func(t *testing.T) {
		if w := do(r, http.MethodPost, PathFunctions+"/validate-coupon", "", nil); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment without stripe is a configuration error", func(t *testing.T) {
		w := do(r, http.MethodPost, PathFunctions+"/create-payment-intent", `{"amount":1000,"currency":"gbp"}`, nil)
		if w.Code != http.StatusInternalServerError || strings.Contains(w.Body.String(), "STRIPE") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("webhook without signature", func(t *testing.T) {
		w := do(r, http.MethodPost, PathFunctions+"/stripe-webhook", `{"id":"evt_1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal endpoints need the key", func(t *testing.T) {
		if w := do(r, http.MethodPost, PathFunctions+"/send-recovery-emails", "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		w := do(r, http.MethodPost, PathFunctions+"/send-email", `{"template":"booking_confirmed","to":"a@example.com"}`,
			map[string]string{"Authorization": "Bearer internal-key"})
		if w.Code == http.StatusUnauthorized {
			t.Fatalf("valid key was rejected")
		}
	})

	t.Run("wrong method on a function", func(t *testing.T) {
		w := do(r, http.MethodGet, PathFunctions+"/validate-coupon", "", map[string]string{"Origin": "https://wearemaster.com"})
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://wearemaster.com" || w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Fatalf("expected gate headers, got %v", w.Header())
		}
		if !strings.Contains(w.Body.String(), `"error":"Method not allowed"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("admitted responses carry quota headers", func(t *testing.T) {
		w := do(r, http.MethodGet, PathFunctions+"/rate-tables", "", map[string]string{"X-Forwarded-For": "198.51.100.4"})
		if w.Header().Get("X-RateLimit-Limit") == "" || w.Header().Get("X-RateLimit-Remaining") == "" || w.Header().Get("X-RateLimit-Reset") == "" {
			t.Fatalf("missing rate limit headers %v", w.Header())
		}
	})

	t.Run("unknown function", func(t *testing.T) {
		if w := do(r, http.MethodPost, PathFunctions+"/nope", `{}`, nil); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRouter_RateLimitClasses(t *testing.T) {
	r := testRouter(t, "")

	var last int
	for i := 0; i < ratelimit.DefaultRules()[ratelimit.ClassAuth].Limit+1; i++ {
		w := do(r, http.MethodPost, PathFunctions+"/manage-subscription", `{"action":"get_subscription","email":"a@example.com"}`,
			map[string]string{"X-Forwarded-For": "203.0.113.7"})
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected the auth class to be limited, got %d", last)
	}
}

func newTestGate() *middleware.Gate {
	return middleware.NewGate(
		security.NewCORSResolver(security.DefaultAllowedOrigins("production")),
		ratelimit.NewLimiter(ratelimit.NewMemoryStore(0), nil),
	)
}
