package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"master_booking/internal/ratelimit"
	"master_booking/internal/security"
)

const testOrigin = "https://wearemaster.com"

func newTestGate(rules map[ratelimit.Class]ratelimit.Rule) *Gate {
	cors := security.NewCORSResolver(security.DefaultAllowedOrigins("production"))
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(0), rules)
	return NewGate(cors, limiter)
}

func TestGate_Evaluate(t *testing.T) {
	policy := Policy{Name: "validate-coupon", Class: ratelimit.ClassDefault, MaxBodyBytes: 32, RequireBody: true}

	t.Run("preflight", func(t *testing.T) {
		g := newTestGate(nil)
		req := httptest.NewRequest(http.MethodOptions, "/functions/v1/validate-coupon", nil)
		req.Header.Set("Origin", testOrigin)

		adm := g.Evaluate(req, policy)
		if !adm.Preflight || adm.Status != http.StatusOK {
			t.Fatalf("expected preflight 200, got %+v", adm)
		}
		if got := adm.Headers.Get("Access-Control-Allow-Origin"); got != testOrigin {
			t.Fatalf("expected allowed origin, got %q", got)
		}
	})

	t.Run("disallowed origin gets null", func(t *testing.T) {
		g := newTestGate(nil)
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
		req.Header.Set("Origin", "https://evil.example")

		adm := g.Evaluate(req, policy)
		if got := adm.Headers.Get("Access-Control-Allow-Origin"); got != "null" {
			t.Fatalf("expected null origin, got %q", got)
		}
		if adm.Headers.Get("X-Frame-Options") != "DENY" {
			t.Fatalf("expected security headers")
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		g := newTestGate(map[ratelimit.Class]ratelimit.Rule{ratelimit.ClassDefault: {Limit: 1, Window: time.Minute}})
		newReq := func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
			r.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")
			return r
		}

		if adm := g.Evaluate(newReq(), policy); !adm.Valid {
			t.Fatalf("expected first request admitted, got %+v", adm)
		}
		adm := g.Evaluate(newReq(), policy)
		if adm.Valid || adm.Status != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %+v", adm)
		}
		if adm.Headers.Get("X-RateLimit-Remaining") != "0" || adm.Headers.Get("X-RateLimit-Limit") != "1" {
			t.Fatalf("unexpected rate limit headers %v", adm.Headers)
		}
		if adm.Headers.Get("Retry-After") == "" || adm.Headers.Get("X-RateLimit-Reset") == "" {
			t.Fatalf("expected retry headers")
		}
		if adm.ClientIdentity != "9.9.9.9" {
			t.Fatalf("expected identity 9.9.9.9, got %q", adm.ClientIdentity)
		}
	})

	t.Run("admitted responses count down remaining quota", func(t *testing.T) {
		g := newTestGate(map[ratelimit.Class]ratelimit.Rule{ratelimit.ClassDefault: {Limit: 3, Window: time.Minute}})

		for _, want := range []string{"2", "1", "0"} {
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
			req.Header.Set("X-Forwarded-For", "8.8.8.8")
			adm := g.Evaluate(req, policy)
			if !adm.Valid {
				t.Fatalf("expected admitted, got %+v", adm)
			}
			if got := adm.Headers.Get("X-RateLimit-Remaining"); got != want {
				t.Fatalf("expected remaining %s, got %q", want, got)
			}
			if adm.Headers.Get("X-RateLimit-Limit") != "3" || adm.Headers.Get("X-RateLimit-Reset") == "" {
				t.Fatalf("unexpected rate limit headers %v", adm.Headers)
			}
		}
	})

	t.Run("payload too large", func(t *testing.T) {
		g := newTestGate(nil)
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"code":"`+strings.Repeat("A", 40)+`"}`))

		adm := g.Evaluate(req, policy)
		if adm.Status != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", adm.Status)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		g := newTestGate(nil)
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("  "))

		adm := g.Evaluate(req, policy)
		if adm.Status != http.StatusBadRequest || adm.Error.Message != "Request body is required" {
			t.Fatalf("expected body required, got %+v", adm)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		g := newTestGate(nil)
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"code":`))

		adm := g.Evaluate(req, policy)
		if adm.Status != http.StatusBadRequest || adm.Error.Message != "Invalid JSON in request body" {
			t.Fatalf("expected invalid json, got %+v", adm)
		}
	})

	t.Run("get skips body checks", func(t *testing.T) {
		g := newTestGate(nil)
		req := httptest.NewRequest(http.MethodGet, "/x", nil)

		adm := g.Evaluate(req, Policy{Name: "rate-tables", Class: ratelimit.ClassDefault, RequireBody: true})
		if !adm.Valid {
			t.Fatalf("expected admitted, got %+v", adm)
		}
	})

	t.Run("body preserved", func(t *testing.T) {
		g := newTestGate(nil)
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"code":"TEN"}`))

		adm := g.Evaluate(req, policy)
		if !adm.Valid || string(adm.Body) != `{"code":"TEN"}` {
			t.Fatalf("expected body kept, got %+v", adm)
		}
	})
}

func TestGate_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		g := newTestGate(nil)
		p := Policy{Name: "echo", Class: ratelimit.ClassDefault, MaxBodyBytes: GeneralBodyLimit, RequireBody: true}
		h := func(c *gin.Context) {
			var body struct {
				Name string `json:"name"`
			}
			if err := DecodeBody(c, &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			c.JSON(http.StatusOK, gin.H{"name": body.Name, "client": ClientIdentity(c)})
		}
		r.POST("/functions/v1/echo", g.Handler(p), h)
		r.OPTIONS("/functions/v1/echo", g.Handler(p), h)
		return r
	}

	t.Run("admitted request reaches handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/functions/v1/echo", strings.NewReader(`{"name":"Ann"}`))
		req.Header.Set("X-Real-IP", "1.1.1.1")
		req.Header.Set("Origin", testOrigin)
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"client":"1.1.1.1"`) || !strings.Contains(w.Body.String(), `"name":"Ann"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Fatalf("expected credentials header")
		}
	})

	t.Run("preflight answers ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/functions/v1/echo", nil)
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "ok" {
			t.Fatalf("expected ok preflight, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("rejection is json", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/functions/v1/echo", strings.NewReader(`nope`))
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid JSON in request body") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unnamed policy panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic")
			}
		}()
		newTestGate(nil).Handler(Policy{})
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Fatalf("panic value leaked: %s", w.Body.String())
	}
}

func TestGate_MethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := newTestGate(nil)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(g.MethodNotAllowed())
	router.POST("/fn", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/fn", nil)
	req.Header.Set("Origin", testOrigin)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != testOrigin {
		t.Fatalf("expected allowed origin, got %q", got)
	}
	if !strings.Contains(w.Body.String(), `"error":"Method not allowed"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
