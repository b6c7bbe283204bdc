package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireInternalKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(key string) *gin.Engine {
		r := gin.New()
		r.POST("/internal", RequireInternalKey(key), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	cases := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"valid bearer", "s3cret", "Bearer s3cret", http.StatusNoContent},
		{"wrong key", "s3cret", "Bearer nope", http.StatusUnauthorized},
		{"missing scheme", "s3cret", "s3cret", http.StatusUnauthorized},
		{"no header", "s3cret", "", http.StatusUnauthorized},
		{"key not configured", "", "Bearer anything", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newRouter(tc.key).ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
