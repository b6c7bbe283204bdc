package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"master_booking/internal/security"
	"master_booking/pkg"
)

const internalKeySetting = "INTERNAL_API_KEY"

// RequireInternalKey admits only callers presenting "Authorization: Bearer <key>".
// An empty key rejects every call.
func RequireInternalKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if key == "" {
			security.LogEvent(ctx, security.SeverityCritical, "configuration_missing", slog.String("setting", internalKeySetting))
			appErr := pkg.NewConfigurationError(internalKeySetting, nil)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(key)) != 1 {
			security.LogEvent(ctx, security.SeverityHigh, "internal_auth_failed",
				slog.String("ip", ClientIdentity(c)), slog.String("path", c.Request.URL.Path))
			appErr := pkg.NewAuthzError("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
