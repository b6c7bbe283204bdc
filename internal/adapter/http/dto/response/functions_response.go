package response

import (
	"strings"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase"
)

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	BookingRef   string `json:"bookingRef"`
}

func FromPaymentIntent(r usecase.PaymentIntentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		ClientSecret: r.ClientSecret,
		ID:           r.ID,
		Amount:       r.AmountPence,
		Currency:     r.Currency,
		BookingRef:   r.BookingRef,
	}
}

type PayLaterResponse struct {
	Success    bool   `json:"success"`
	BookingRef string `json:"booking_ref"`
	ID         string `json:"id"`
}

func FromPayLaterBooking(b entities.Booking) PayLaterResponse {
	return PayLaterResponse{Success: true, BookingRef: b.BookingRef, ID: b.ID}
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Type     string `json:"type"`
}

// CouponResponse is always sent with 200. Error carries the rejection reason.
type CouponResponse struct {
	Valid           bool    `json:"valid"`
	Code            string  `json:"code,omitempty"`
	DiscountType    string  `json:"discount_type,omitempty"`
	DiscountValue   float64 `json:"discount_value,omitempty"`
	DiscountPence   int64   `json:"discount_pence,omitempty"`
	FinalTotalPence int64   `json:"final_total_pence,omitempty"`
	Label           string  `json:"label,omitempty"`
	Error           string  `json:"error,omitempty"`
}

func FromCouponDecision(d entities.CouponDecision) CouponResponse {
	if !d.Valid {
		return CouponResponse{Valid: false, Error: d.Reason}
	}
	return CouponResponse{
		Valid:           true,
		Code:            d.Code,
		DiscountType:    string(d.DiscountType),
		DiscountValue:   d.DiscountValue,
		DiscountPence:   d.DiscountPence,
		FinalTotalPence: d.FinalTotalPence,
		Label:           d.Label,
	}
}

type SubscriptionResponse struct {
	HasSubscription   bool       `json:"has_subscription"`
	SubscriptionID    string     `json:"subscription_id,omitempty"`
	Status            string     `json:"status,omitempty"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
}

func FromSubscriptionView(v usecase.SubscriptionView) SubscriptionResponse {
	if !v.HasSubscription {
		return SubscriptionResponse{HasSubscription: false}
	}
	return SubscriptionResponse{
		HasSubscription:   true,
		SubscriptionID:    v.SubscriptionID,
		Status:            string(v.Status),
		CurrentPeriodEnd:  v.CurrentPeriodEnd,
		CancelAtPeriodEnd: v.CancelAtPeriodEnd,
	}
}

type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret"`
	Status         string `json:"status"`
}

func FromCreatedSubscription(r usecase.CreateSubscriptionResult) CreateSubscriptionResponse {
	return CreateSubscriptionResponse{SubscriptionID: r.SubscriptionID, ClientSecret: r.ClientSecret, Status: string(r.Status)}
}

type ManageSubscriptionResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message,omitempty"`
	Subscription SubscriptionResponse `json:"subscription"`
}

func FromManagedSubscription(r usecase.ManageSubscriptionResult) ManageSubscriptionResponse {
	return ManageSubscriptionResponse{Success: true, Message: r.Message, Subscription: FromSubscriptionView(r.Subscription)}
}

type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"email_id"`
}

type TrackCheckoutResponse struct {
	Success    bool   `json:"success"`
	CheckoutID string `json:"checkoutId"`
	Message    string `json:"message"`
}

func FromTrackedCheckout(r usecase.TrackCheckoutResult) TrackCheckoutResponse {
	msg := "Checkout tracked successfully"
	if r.AlreadyTracked {
		msg = "Checkout already tracked"
	}
	return TrackCheckoutResponse{Success: true, CheckoutID: r.ID, Message: msg}
}

type RecoveryResponse struct {
	Success bool `json:"success"`
	Sent1h  int  `json:"sent_1h"`
	Sent24h int  `json:"sent_24h"`
	Failed  int  `json:"failed"`
}

func FromRecovery(r usecase.RecoveryResult) RecoveryResponse {
	return RecoveryResponse{Success: true, Sent1h: r.Sent1h, Sent24h: r.Sent24h, Failed: r.Failed}
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type UploadResponse struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	ExpiresAt time.Time `json:"expires_at"`
}

type PartnerSubmissionResponse struct {
	Success bool                      `json:"success"`
	ID      string                    `json:"id"`
	Uploads map[string]UploadResponse `json:"uploads"`
}

// FromPartnerSubmission keys uploads by the camelCase slot names the form uses.
func FromPartnerSubmission(s usecase.PartnerSubmission) PartnerSubmissionResponse {
	uploads := make(map[string]UploadResponse, len(s.UploadURLs))
	for slot, u := range s.UploadURLs {
		uploads[slotKey(slot)] = UploadResponse{URL: u.URL, Method: u.Method, Path: u.Path, ExpiresAt: u.ExpiresAt}
	}
	return PartnerSubmissionResponse{Success: true, ID: s.ApplicationID, Uploads: uploads}
}

func slotKey(slot entities.DocumentSlot) string {
	parts := strings.Split(string(slot), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

type MatchServicesResponse struct {
	MatchedIDs []string `json:"matchedIds"`
}

func FromMatchedIDs(ids []string) MatchServicesResponse {
	if ids == nil {
		ids = []string{}
	}
	return MatchServicesResponse{MatchedIDs: ids}
}

type HealthResponse struct {
	Status string `json:"status"`
}
