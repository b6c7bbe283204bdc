package repository

import (
	"context"
	"fmt"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

type LeadPostgresRepository struct {
	db DBTX
}

var _ interfaces.ILeadRepository = (*LeadPostgresRepository)(nil)

func NewLeadPostgresRepository(db DBTX) *LeadPostgresRepository {
	return &LeadPostgresRepository{db: db}
}

func (r *LeadPostgresRepository) CreateHeroLead(ctx context.Context, l entities.HeroLead) (entities.HeroLead, error) {
	err := r.db.QueryRow(ctx, `INSERT INTO hero_leads
		(email, service, service_type, postcode, phone, preferred_contact, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text, created_at`,
		l.Email, nullString(l.Service), nullString(l.ServiceType), nullString(l.Postcode),
		nullString(l.Phone), nullString(l.PreferredContact), l.Source,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return entities.HeroLead{}, fmt.Errorf("insert hero lead: %w", err)
	}
	return l, nil
}
