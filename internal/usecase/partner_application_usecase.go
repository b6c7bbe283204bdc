package usecase

//go:generate mockgen -source=partner_application_usecase.go -destination=../adapter/http/handlers/mocks/partner_application_usecase_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/validation"
	"master_booking/internal/usecase/interfaces"
)

const defaultPartnerCountry = "United Kingdom"

type PartnerApplicationInput struct {
	FullName          string
	Email             string
	Phone             string
	Street            string
	City              string
	State             string
	PostalCode        string
	Country           string
	BusinessStructure string
	WorkTypes         []string
	AreaCoverage      []string
	Vehicle           string
	TeamSize          string
	Declaration       bool
}

// PartnerSubmission is returned by phase one: the new application and where to upload each document.
type PartnerSubmission struct {
	ApplicationID string
	UploadURLs    map[entities.DocumentSlot]entities.UploadURL
}

type IPartnerApplicationUseCase interface {
	Submit(ctx context.Context, in PartnerApplicationInput) (PartnerSubmission, error)
	Complete(ctx context.Context, id string) (entities.PartnerApplication, error)
}

type PartnerApplicationUseCase struct {
	repo     interfaces.IPartnerApplicationRepository
	signer   interfaces.IUploadSigner
	notifier interfaces.INotifier
	opsEmail string
}

var _ IPartnerApplicationUseCase = (*PartnerApplicationUseCase)(nil)

func NewPartnerApplicationUseCase(repo interfaces.IPartnerApplicationRepository, signer interfaces.IUploadSigner, notifier interfaces.INotifier, opsEmail string) *PartnerApplicationUseCase {
	return &PartnerApplicationUseCase{repo: repo, signer: signer, notifier: notifier, opsEmail: opsEmail}
}

func (u *PartnerApplicationUseCase) Submit(ctx context.Context, in PartnerApplicationInput) (PartnerSubmission, error) {
	app, err := normalizeApplication(in)
	if err != nil {
		return PartnerSubmission{}, err
	}
	if u.repo == nil {
		return PartnerSubmission{}, missingConfig("DATABASE_URL")
	}

	created, err := u.repo.Create(ctx, app)
	if err != nil {
		slog.ErrorContext(ctx, "[partner][usecase] insert failed", "error", err)
		return PartnerSubmission{}, err
	}
	slog.InfoContext(ctx, "[partner][usecase] application submitted", "id", created.ID)

	out := PartnerSubmission{ApplicationID: created.ID, UploadURLs: map[entities.DocumentSlot]entities.UploadURL{}}
	if u.signer == nil {
		slog.WarnContext(ctx, "[partner][usecase] upload signer not configured", "id", created.ID)
		return out, nil
	}
	for _, slot := range entities.DocumentSlots {
		signed, err := u.signer.SignUpload(ctx, documentKey(created.ID, slot))
		if err != nil {
			slog.WarnContext(ctx, "[partner][usecase] sign upload failed", "id", created.ID, "slot", slot, "error", err)
			continue
		}
		out.UploadURLs[slot] = signed
	}
	return out, nil
}

// Complete records where each document lives and marks the application done.
func (u *PartnerApplicationUseCase) Complete(ctx context.Context, id string) (entities.PartnerApplication, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return entities.PartnerApplication{}, ErrApplicationNotFound
	}
	if u.repo == nil {
		return entities.PartnerApplication{}, missingConfig("DATABASE_URL")
	}
	if u.signer == nil {
		return entities.PartnerApplication{}, missingConfig("PARTNER_DOCS_BUCKET")
	}
	id = parsed.String()

	urls := make(map[entities.DocumentSlot]string, len(entities.DocumentSlots))
	for _, slot := range entities.DocumentSlots {
		urls[slot] = u.signer.PublicURL(documentKey(id, slot))
	}

	app, err := u.repo.Complete(ctx, id, urls)
	if err != nil {
		slog.ErrorContext(ctx, "[partner][usecase] complete failed", "id", id, "error", err)
		return entities.PartnerApplication{}, err
	}
	if app.ID == "" {
		return entities.PartnerApplication{}, ErrApplicationNotFound
	}
	slog.InfoContext(ctx, "[partner][usecase] application completed", "id", id)

	if u.notifier != nil && u.opsEmail != "" {
		if err := u.notifier.Notify(ctx, emails.PartnerApplicationNotification, u.opsEmail, partnerData(app)); err != nil {
			slog.WarnContext(ctx, "[partner][usecase] notification failed", "id", id, "error", err)
		}
	}
	return app, nil
}

func normalizeApplication(in PartnerApplicationInput) (entities.PartnerApplication, error) {
	app := entities.PartnerApplication{
		FullName:          validation.SanitizeString(in.FullName, 200),
		Phone:             validation.SanitizeString(in.Phone, 30),
		Street:            validation.SanitizeString(in.Street, 200),
		City:              validation.SanitizeString(in.City, 100),
		State:             validation.SanitizeString(in.State, 100),
		PostalCode:        strings.ToUpper(validation.SanitizeString(in.PostalCode, 20)),
		Country:           orDefault(validation.SanitizeString(in.Country, 100), defaultPartnerCountry),
		BusinessStructure: validation.SanitizeString(in.BusinessStructure, 100),
		WorkTypes:         validation.SanitizeList(in.WorkTypes, 50, 100),
		AreaCoverage:      validation.SanitizeList(in.AreaCoverage, 50, 100),
		Vehicle:           validation.SanitizeString(in.Vehicle, 50),
		TeamSize:          validation.SanitizeString(in.TeamSize, 50),
		Declaration:       in.Declaration,
		Status:            entities.PartnerApplicationSubmitted,
	}

	switch {
	case app.FullName == "":
		return app, invalid("Full name is required")
	case !validation.Email(in.Email).Valid:
		return app, invalid("Valid email is required")
	case app.Phone == "":
		return app, invalid("Phone is required")
	case app.BusinessStructure == "":
		return app, invalid("Business structure is required")
	case len(app.WorkTypes) == 0:
		return app, invalid("Select at least one work type")
	case len(app.AreaCoverage) == 0:
		return app, invalid("Select at least one area")
	case app.Vehicle == "":
		return app, invalid("Vehicle option is required")
	case !app.Declaration:
		return app, invalid("You must accept the declaration")
	}
	app.Email = validation.Email(in.Email).Sanitized
	return app, nil
}

func documentKey(id string, slot entities.DocumentSlot) string {
	return id + "/" + string(slot)
}

func partnerData(app entities.PartnerApplication) emails.Data {
	docs := make(map[string]string, len(app.DocumentURLs))
	for slot, u := range app.DocumentURLs {
		docs[string(slot)] = u
	}
	return emails.Data{
		"id":                app.ID,
		"fullName":          app.FullName,
		"email":             app.Email,
		"phone":             app.Phone,
		"businessStructure": app.BusinessStructure,
		"workTypes":         app.WorkTypes,
		"areaCoverage":      app.AreaCoverage,
		"documents":         docs,
	}
}

