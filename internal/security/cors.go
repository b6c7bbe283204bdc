package security

import (
	"net/http"
	"strings"
)

const (
	allowHeaders = "authorization, x-client-info, apikey, content-type, stripe-signature"
	allowMethods = "POST, GET, OPTIONS"
)

var productionOrigins = []string{
	"https://wearemaster.com",
	"https://www.wearemaster.com",
	"https://b2b.wearemaster.com",
	"https://www.b2b.wearemaster.com",
	"https://supabase.wearemaster.com",
	"https://www.supabase.wearemaster.com",
	"https://storage.wearemaster.com",
	"https://www.storage.wearemaster.com",
}

var developmentOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:3001",
}

var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "1; mode=block",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains; preload",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
	"Content-Security-Policy": "default-src 'self'; script-src 'self' https://js.stripe.com; " +
		"frame-src https://js.stripe.com https://hooks.stripe.com; " +
		"connect-src 'self' https://api.stripe.com https://*.wearemaster.com; " +
		"img-src 'self' data: https:; style-src 'self' 'unsafe-inline'",
}

// DefaultAllowedOrigins returns the site origins, plus local dev servers in development.
func DefaultAllowedOrigins(environment string) []string {
	out := append([]string(nil), productionOrigins...)
	if strings.EqualFold(strings.TrimSpace(environment), "development") {
		out = append(out, developmentOrigins...)
	}
	return out
}

// CORSResolver answers which CORS headers a request origin gets.
// Matching is exact; there are no wildcard entries.
type CORSResolver struct {
	allowed map[string]struct{}
}

func NewCORSResolver(origins []string) *CORSResolver {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed[o] = struct{}{}
		}
	}
	return &CORSResolver{allowed: allowed}
}

// Allowed reports whether origin is on the allow-list.
func (r *CORSResolver) Allowed(origin string) bool {
	_, ok := r.allowed[origin]
	return ok
}

// Resolve builds the response headers for a request origin.
// An unknown origin gets "null" so browsers refuse the response.
func (r *CORSResolver) Resolve(origin string) http.Header {
	h := BaseHeaders()
	if origin == "" {
		return h
	}
	if r.Allowed(origin) {
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Vary", "Origin")
		return h
	}
	h.Set("Access-Control-Allow-Origin", "null")
	return h
}

// BaseHeaders are sent on every gated response.
func BaseHeaders() http.Header {
	h := make(http.Header, len(securityHeaders)+2)
	h.Set("Access-Control-Allow-Headers", allowHeaders)
	h.Set("Access-Control-Allow-Methods", allowMethods)
	for k, v := range securityHeaders {
		h.Set(k, v)
	}
	return h
}
