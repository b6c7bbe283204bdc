package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"master_booking/internal/infrastructure/metrics"
	"master_booking/internal/security"
	"master_booking/internal/usecase"
	"master_booking/pkg"
)

var errInvalidBody = pkg.NewClientInputError("Invalid request body")

// mapError turns a use case error into the response rendered to the client.
func mapError(ctx context.Context, err error) *pkg.AppError {
	var (
		appErr  *pkg.AppError
		vErr    *usecase.ValidationError
		cfgErr  *usecase.MissingConfigError
		upErr   *usecase.UpstreamError
		unavErr *usecase.UnavailableError
	)

	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.As(err, &vErr):
		return pkg.NewClientInputError(vErr.Message)
	case errors.As(err, &cfgErr):
		security.LogEvent(ctx, security.SeverityCritical, "configuration_missing", slog.String("setting", cfgErr.Setting))
		return pkg.NewConfigurationError(cfgErr.Setting, nil)
	case errors.As(err, &upErr):
		metrics.UpstreamFailed(upErr.Provider)
		slog.ErrorContext(ctx, "[http][handler] upstream failure", "provider", upErr.Provider, "error", upErr.Err)
		return pkg.NewUpstreamError(upErr.Provider, upErr.Err)
	case errors.As(err, &unavErr):
		return pkg.NewUnavailableError(unavErr.Message)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewAuthzError("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewAuthzError("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionExists):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_EXISTS", "You already have an active Master Club subscription", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found or already completed", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		slog.ErrorContext(ctx, "[http][handler] unexpected error", "error", err)
		return pkg.NewInternalError(err)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(c.Request.Context(), err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
