package repository

import (
	"context"
	"fmt"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

const partnerColumns = `id::text, full_name, email, phone, street, city, state, postal_code, country,
	business_structure, work_types, area_coverage, vehicle, team_size, declaration, status,
	document_urls, created_at, updated_at`

type partnerRow struct {
	ID                string
	FullName          string
	Email             string
	Phone             string
	Street            *string
	City              *string
	State             *string
	PostalCode        *string
	Country           string
	BusinessStructure string
	WorkTypes         []string
	AreaCoverage      []string
	Vehicle           string
	TeamSize          *string
	Declaration       bool
	Status            string
	DocumentURLs      map[string]string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *partnerRow) targets() []any {
	return []any{
		&r.ID, &r.FullName, &r.Email, &r.Phone, &r.Street, &r.City, &r.State, &r.PostalCode, &r.Country,
		&r.BusinessStructure, &r.WorkTypes, &r.AreaCoverage, &r.Vehicle, &r.TeamSize, &r.Declaration,
		&r.Status, &r.DocumentURLs, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r partnerRow) toEntity() entities.PartnerApplication {
	docs := make(map[entities.DocumentSlot]string, len(r.DocumentURLs))
	for k, v := range r.DocumentURLs {
		docs[entities.DocumentSlot(k)] = v
	}
	return entities.PartnerApplication{
		ID:                r.ID,
		FullName:          r.FullName,
		Email:             r.Email,
		Phone:             r.Phone,
		Street:            deref(r.Street),
		City:              deref(r.City),
		State:             deref(r.State),
		PostalCode:        deref(r.PostalCode),
		Country:           r.Country,
		BusinessStructure: r.BusinessStructure,
		WorkTypes:         r.WorkTypes,
		AreaCoverage:      r.AreaCoverage,
		Vehicle:           r.Vehicle,
		TeamSize:          deref(r.TeamSize),
		Declaration:       r.Declaration,
		Status:            entities.PartnerApplicationStatus(r.Status),
		DocumentURLs:      docs,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type PartnerApplicationPostgresRepository struct {
	db DBTX
}

var _ interfaces.IPartnerApplicationRepository = (*PartnerApplicationPostgresRepository)(nil)

func NewPartnerApplicationPostgresRepository(db DBTX) *PartnerApplicationPostgresRepository {
	return &PartnerApplicationPostgresRepository{db: db}
}

func (r *PartnerApplicationPostgresRepository) Create(ctx context.Context, a entities.PartnerApplication) (entities.PartnerApplication, error) {
	var row partnerRow
	err := r.db.QueryRow(ctx, `INSERT INTO partner_applications
		(full_name, email, phone, street, city, state, postal_code, country, business_structure,
		 work_types, area_coverage, vehicle, team_size, declaration, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+partnerColumns,
		a.FullName, a.Email, a.Phone, nullString(a.Street), nullString(a.City), nullString(a.State),
		nullString(a.PostalCode), a.Country, a.BusinessStructure, nonNil(a.WorkTypes), nonNil(a.AreaCoverage),
		a.Vehicle, nullString(a.TeamSize), a.Declaration, string(a.Status),
	).Scan(row.targets()...)
	if err != nil {
		return entities.PartnerApplication{}, fmt.Errorf("insert partner application: %w", err)
	}
	return row.toEntity(), nil
}

func (r *PartnerApplicationPostgresRepository) Complete(ctx context.Context, id string, documentURLs map[entities.DocumentSlot]string) (entities.PartnerApplication, error) {
	docs := make(map[string]string, len(documentURLs))
	for k, v := range documentURLs {
		docs[string(k)] = v
	}

	var row partnerRow
	err := r.db.QueryRow(ctx, `UPDATE partner_applications
		SET document_urls = $2, status = $3, updated_at = now()
		WHERE id = $1::text::uuid
		RETURNING `+partnerColumns,
		id, docs, string(entities.PartnerApplicationCompleted),
	).Scan(row.targets()...)
	if notFound(err) {
		return entities.PartnerApplication{}, nil
	}
	if err != nil {
		return entities.PartnerApplication{}, fmt.Errorf("complete partner application %s: %w", id, err)
	}
	return row.toEntity(), nil
}
