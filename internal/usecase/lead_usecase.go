package usecase

//go:generate mockgen -source=lead_usecase.go -destination=../adapter/http/handlers/mocks/lead_usecase_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"strings"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/validation"
	"master_booking/internal/usecase/interfaces"
)

const (
	bookingLeadSource  = "booking_quote"
	defaultLeadService = "Booking"
)

type HeroLeadInput struct {
	Email            string
	Service          string
	ServiceType      string
	Postcode         string
	Phone            string
	PreferredContact string
	Source           string
}

type BookingLeadInput struct {
	Email       string
	Name        string
	Phone       string
	Postcode    string
	Service     string
	ServiceType string
}

type ILeadUseCase interface {
	SaveHeroLead(ctx context.Context, in HeroLeadInput) (entities.HeroLead, error)
	NotifyBookingLead(ctx context.Context, in BookingLeadInput) error
}

type LeadUseCase struct {
	repo     interfaces.ILeadRepository
	notifier interfaces.INotifier
	opsEmail string
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, notifier interfaces.INotifier, opsEmail string) *LeadUseCase {
	return &LeadUseCase{repo: repo, notifier: notifier, opsEmail: opsEmail}
}

func (u *LeadUseCase) SaveHeroLead(ctx context.Context, in HeroLeadInput) (entities.HeroLead, error) {
	if strings.TrimSpace(in.Email) == "" {
		return entities.HeroLead{}, invalid("Email is required")
	}
	email := validation.Email(in.Email)
	if !email.Valid {
		return entities.HeroLead{}, invalid(email.Error)
	}
	if u.repo == nil {
		return entities.HeroLead{}, missingConfig("DATABASE_URL")
	}

	lead := entities.HeroLead{
		Email:            email.Sanitized,
		Service:          validation.SanitizeString(in.Service, 500),
		ServiceType:      validation.SanitizeString(in.ServiceType, 100),
		Postcode:         strings.ToUpper(validation.SanitizeString(in.Postcode, 20)),
		Phone:            validation.SanitizeString(in.Phone, 30),
		PreferredContact: validation.SanitizeString(in.PreferredContact, 20),
		Source:           orDefault(validation.SanitizeString(in.Source, 50), entities.DefaultLeadSource),
	}

	created, err := u.repo.CreateHeroLead(ctx, lead)
	if err != nil {
		slog.ErrorContext(ctx, "[lead][usecase] hero lead insert failed", "error", err)
		return entities.HeroLead{}, err
	}
	slog.InfoContext(ctx, "[lead][usecase] hero lead saved", "id", created.ID, "source", created.Source)

	if u.notifier != nil && u.opsEmail != "" {
		if err := u.notifier.Notify(ctx, emails.LeadNotification, u.opsEmail, leadData(created.Email, "", created.Phone, created.Postcode, created.Service, created.ServiceType, created.PreferredContact, created.Source)); err != nil {
			slog.WarnContext(ctx, "[lead][usecase] lead notification failed", "id", created.ID, "error", err)
		}
	}
	return created, nil
}

// NotifyBookingLead emails ops about a customer who stopped before checkout.
// Nothing is stored.
func (u *LeadUseCase) NotifyBookingLead(ctx context.Context, in BookingLeadInput) error {
	if strings.TrimSpace(in.Email) == "" {
		return invalid("Email is required")
	}
	email := validation.Email(in.Email)
	if !email.Valid {
		return invalid(email.Error)
	}
	pc := validation.Postcode(in.Postcode)
	if !pc.Valid {
		return invalid("Valid UK postcode is required")
	}
	if u.notifier == nil {
		return missingConfig("RESEND_API_KEY")
	}

	lead := entities.BookingLead{
		Email:       email.Sanitized,
		Name:        validation.SanitizeString(in.Name, 200),
		Phone:       validation.SanitizeString(in.Phone, 30),
		Postcode:    pc.Sanitized,
		Service:     orDefault(validation.SanitizeString(in.Service, 500), defaultLeadService),
		ServiceType: validation.SanitizeString(in.ServiceType, 100),
		Source:      bookingLeadSource,
	}
	data := leadData(lead.Email, lead.Name, lead.Phone, lead.Postcode, lead.Service, lead.ServiceType, "", lead.Source)
	if err := u.notifier.Notify(ctx, emails.LeadNotification, u.opsEmail, data); err != nil {
		slog.ErrorContext(ctx, "[lead][usecase] booking lead notification failed", "error", err)
		return upstream(ProviderEmail, err)
	}
	slog.InfoContext(ctx, "[lead][usecase] booking lead notified", "postcode", lead.Postcode)
	return nil
}

func leadData(email, name, phone, postcode, service, serviceType, contact, source string) emails.Data {
	return emails.Data{
		"email":             email,
		"name":              name,
		"phone":             phone,
		"postcode":          postcode,
		"service":           service,
		"service_type":      serviceType,
		"preferred_contact": contact,
		"source":            source,
	}
}
