package request

import (
	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/pricing"
	"master_booking/internal/usecase"
)

// BookingDataRequest is the customer and job block the booking pages send.
type BookingDataRequest struct {
	CustomerName       string   `json:"customer_name"`
	CustomerEmail      string   `json:"customer_email"`
	CustomerPhone      string   `json:"customer_phone"`
	AddressLine1       string   `json:"address_line1"`
	AddressLine2       string   `json:"address_line2"`
	City               string   `json:"city"`
	Postcode           string   `json:"postcode"`
	ServiceID          string   `json:"service_id"`
	ServiceName        string   `json:"service_name"`
	ServiceCategory    string   `json:"service_category"`
	JobDescription     string   `json:"job_description"`
	PropertyType       string   `json:"property_type"`
	Bedrooms           *int     `json:"bedrooms"`
	Bathrooms          *int     `json:"bathrooms"`
	Addons             []string `json:"cleaning_addons"`
	ScheduledDates     []string `json:"scheduled_dates"`
	ScheduledTimeSlots []string `json:"scheduled_time_slots"`
	HoursBooked        int      `json:"hours_booked"`
}

func (r *BookingDataRequest) toDetails() *usecase.BookingDetails {
	if r == nil {
		return nil
	}
	return &usecase.BookingDetails{
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		AddressLine1:       r.AddressLine1,
		AddressLine2:       r.AddressLine2,
		City:               r.City,
		Postcode:           r.Postcode,
		ServiceID:          r.ServiceID,
		ServiceName:        r.ServiceName,
		ServiceCategory:    r.ServiceCategory,
		JobDescription:     r.JobDescription,
		PropertyType:       r.PropertyType,
		Bedrooms:           r.Bedrooms,
		Bathrooms:          r.Bathrooms,
		Addons:             r.Addons,
		ScheduledDates:     r.ScheduledDates,
		ScheduledTimeSlots: r.ScheduledTimeSlots,
		HoursBooked:        r.HoursBooked,
	}
}

type CalculateQuoteRequest struct {
	Category  string            `json:"category"`
	Selection pricing.Selection `json:"selection"`
}

// PaymentIntentRequest carries the amount in pence. Amount stays untyped so a
// string or a fractional number is rejected by the use case with a clear message.
type PaymentIntentRequest struct {
	Amount          any                 `json:"amount"`
	Currency        string              `json:"currency"`
	CustomerEmail   string              `json:"customer_email"`
	Category        string              `json:"category"`
	Selection       *pricing.Selection  `json:"selection"`
	CouponCode      string              `json:"coupon_code"`
	AddSubscription bool                `json:"add_subscription"`
	BookingData     *BookingDataRequest `json:"booking_data"`
}

func (r PaymentIntentRequest) ToInput() usecase.PaymentIntentInput {
	return usecase.PaymentIntentInput{
		AmountPence:     r.Amount,
		Currency:        r.Currency,
		ReceiptEmail:    r.CustomerEmail,
		Category:        r.Category,
		Selection:       r.Selection,
		CouponCode:      r.CouponCode,
		AddSubscription: r.AddSubscription,
		Booking:         r.BookingData.toDetails(),
	}
}

// PayLaterRequest carries the amount in pounds.
type PayLaterRequest struct {
	Amount      any                 `json:"amount"`
	BookingData *BookingDataRequest `json:"booking_data"`
}

func (r PayLaterRequest) ToInput() usecase.PayLaterInput {
	return usecase.PayLaterInput{Amount: r.Amount, Booking: r.BookingData.toDetails()}
}

type ValidateCouponRequest struct {
	Code            string `json:"code"`
	OrderTotalPence int64  `json:"order_total_pence"`
}

type CheckSubscriptionRequest struct {
	Email string `json:"email"`
}

type CreateSubscriptionRequest struct {
	Email           string `json:"email"`
	CustomerName    string `json:"customer_name"`
	PaymentMethodID string `json:"payment_method_id"`
}

func (r CreateSubscriptionRequest) ToInput() usecase.CreateSubscriptionInput {
	return usecase.CreateSubscriptionInput{Email: r.Email, Name: r.CustomerName, PaymentMethodID: r.PaymentMethodID}
}

type ManageSubscriptionRequest struct {
	Action          string `json:"action"`
	Email           string `json:"email"`
	SubscriptionID  string `json:"subscription_id"`
	PaymentMethodID string `json:"payment_method_id"`
}

func (r ManageSubscriptionRequest) ToInput() usecase.ManageSubscriptionInput {
	return usecase.ManageSubscriptionInput{
		Action:          r.Action,
		Email:           r.Email,
		SubscriptionID:  r.SubscriptionID,
		PaymentMethodID: r.PaymentMethodID,
	}
}

type SendEmailRequest struct {
	Template string         `json:"template"`
	To       string         `json:"to"`
	Data     map[string]any `json:"data"`
}

func (r SendEmailRequest) ToInput() usecase.SendEmailInput {
	return usecase.SendEmailInput{Template: r.Template, To: r.To, Data: r.Data}
}

// TrackCheckoutRequest mirrors what the checkout page posts when the customer leaves.
// The client secret is accepted for compatibility and never stored.
type TrackCheckoutRequest struct {
	Action          string         `json:"action"`
	Email           string         `json:"email"`
	Name            string         `json:"name"`
	Phone           string         `json:"phone"`
	Service         string         `json:"service"`
	Amount          any            `json:"amount"`
	ClientSecret    string         `json:"clientSecret"`
	PaymentIntentID string         `json:"paymentIntentId"`
	BookingData     map[string]any `json:"booking_data"`
}

func (r TrackCheckoutRequest) ToInput() usecase.TrackCheckoutInput {
	return usecase.TrackCheckoutInput{
		Action:          r.Action,
		Email:           r.Email,
		Name:            r.Name,
		Phone:           r.Phone,
		PaymentIntentID: r.PaymentIntentID,
		Amount:          r.Amount,
		ServiceName:     r.Service,
		BookingData:     r.BookingData,
	}
}

type HeroLeadRequest struct {
	Email            string `json:"email"`
	Service          string `json:"service"`
	ServiceType      string `json:"service_type"`
	Postcode         string `json:"postcode"`
	Phone            string `json:"phone"`
	PreferredContact string `json:"preferred_contact"`
	Source           string `json:"source"`
}

func (r HeroLeadRequest) ToInput() usecase.HeroLeadInput {
	return usecase.HeroLeadInput{
		Email:            r.Email,
		Service:          r.Service,
		ServiceType:      r.ServiceType,
		Postcode:         r.Postcode,
		Phone:            r.Phone,
		PreferredContact: r.PreferredContact,
		Source:           r.Source,
	}
}

type BookingLeadRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Postcode    string `json:"postcode"`
	Service     string `json:"service"`
	ServiceType string `json:"service_type"`
}

func (r BookingLeadRequest) ToInput() usecase.BookingLeadInput {
	return usecase.BookingLeadInput{
		Email:       r.Email,
		Name:        r.Name,
		Phone:       r.Phone,
		Postcode:    r.Postcode,
		Service:     r.Service,
		ServiceType: r.ServiceType,
	}
}

// PartnerApplicationRequest serves both phases. Complete and ID select phase two.
type PartnerApplicationRequest struct {
	Complete          bool     `json:"complete"`
	ID                string   `json:"id"`
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Street            string   `json:"street"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	PostalCode        string   `json:"postalCode"`
	Country           string   `json:"country"`
	BusinessStructure string   `json:"businessStructure"`
	WorkTypes         []string `json:"workTypes"`
	AreaCoverage      []string `json:"areaCoverage"`
	Vehicle           string   `json:"vehicle"`
	TeamSize          string   `json:"teamSize"`
	Declaration       bool     `json:"declaration"`
}

func (r PartnerApplicationRequest) ToInput() usecase.PartnerApplicationInput {
	return usecase.PartnerApplicationInput{
		FullName:          r.FullName,
		Email:             r.Email,
		Phone:             r.Phone,
		Street:            r.Street,
		City:              r.City,
		State:             r.State,
		PostalCode:        r.PostalCode,
		Country:           r.Country,
		BusinessStructure: r.BusinessStructure,
		WorkTypes:         r.WorkTypes,
		AreaCoverage:      r.AreaCoverage,
		Vehicle:           r.Vehicle,
		TeamSize:          r.TeamSize,
		Declaration:       r.Declaration,
	}
}

type MatchServicesRequest struct {
	UserQuery   string                      `json:"userQuery"`
	ServiceList []entities.ServiceCandidate `json:"serviceList"`
}
