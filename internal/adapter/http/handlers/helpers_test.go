package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/ratelimit"
	"master_booking/internal/security"
)

// serve runs one request through a gated route, the same way the router mounts handlers.
func serve(method, body string, h gin.HandlerFunc, headers map[string]string) *httptest.ResponseRecorder {
	gate := middleware.NewGate(
		security.NewCORSResolver(security.DefaultAllowedOrigins("production")),
		ratelimit.NewLimiter(ratelimit.NewMemoryStore(0), nil),
	)
	policy := middleware.Policy{Name: "test", Class: ratelimit.ClassDefault, MaxBodyBytes: middleware.GeneralBodyLimit, RequireBody: method == http.MethodPost}

	r := gin.New()
	r.Handle(method, "/fn", gate.Handler(policy), h)

	req := httptest.NewRequest(method, "/fn", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response %q: %v", w.Body.String(), err)
	}
	return out
}
