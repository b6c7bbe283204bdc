package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/ratelimit"
)

const PathFunctions = "/functions/v1"

func policy(name string, class ratelimit.Class, limit int64) middleware.Policy {
	return middleware.Policy{Name: name, Class: class, MaxBodyBytes: limit, RequireBody: true}
}

func addFunctionRoutes(rg *gin.RouterGroup, gate *middleware.Gate, h handlerSet, internalKey string) {
	post := func(p middleware.Policy, chain ...gin.HandlerFunc) {
		admit := gate.Handler(p)
		rg.POST("/"+p.Name, append([]gin.HandlerFunc{admit}, chain...)...)
		rg.OPTIONS("/"+p.Name, admit)
	}
	internal := middleware.RequireInternalKey(internalKey)

	rates := policy("rate-tables", ratelimit.ClassDefault, middleware.GeneralBodyLimit)
	rg.GET("/"+rates.Name, gate.Handler(rates), h.quote.RateTables)
	rg.OPTIONS("/"+rates.Name, gate.Handler(rates))

	post(policy("calculate-quote", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.quote.CalculateQuote)
	post(policy("create-payment-intent", ratelimit.ClassPayment, middleware.PaymentBodyLimit), h.payment.CreatePaymentIntent)
	post(policy("create-booking-pay-later", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.payment.CreateBookingPayLater)
	post(policy("stripe-webhook", ratelimit.ClassWebhook, middleware.WebhookBodyLimit), h.webhook.StripeWebhook)
	post(policy("validate-coupon", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.coupon.ValidateCoupon)
	post(policy("check-subscription", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.subscription.CheckSubscription)
	post(policy("create-subscription", ratelimit.ClassPayment, middleware.PaymentBodyLimit), h.subscription.CreateSubscription)
	post(policy("manage-subscription", ratelimit.ClassAuth, middleware.GeneralBodyLimit), h.subscription.ManageSubscription)
	post(policy("track-checkout", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.checkout.TrackCheckout)
	post(policy("save-hero-lead", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.lead.SaveHeroLead)
	post(policy("notify-booking-lead", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.lead.NotifyBookingLead)
	post(policy("submit-partner-application", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.partner.SubmitPartnerApplication)
	post(policy("match-services-ai", ratelimit.ClassDefault, middleware.GeneralBodyLimit), h.match.MatchServices)

	// Internal callers: cron and other services.
	post(policy("send-email", ratelimit.ClassDefault, middleware.GeneralBodyLimit), internal, h.email.SendEmail)
	recovery := policy("send-recovery-emails", ratelimit.ClassDefault, middleware.GeneralBodyLimit)
	recovery.RequireBody = false
	post(recovery, internal, h.checkout.SendRecoveryEmails)
}

func addOperationalRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
