package security

import (
	"net/http"
	"strings"
)

// UnknownClient is the identity used when no forwarding header is present.
const UnknownClient = "unknown"

// ClientIdentity returns the caller's address as reported by the edge proxy.
func ClientIdentity(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return UnknownClient
}
