package interfaces

//go:generate mockgen -source=lead_repository_interface.go -destination=mocks/lead_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"master_booking/internal/domain/entities"
)

type ILeadRepository interface {
	CreateHeroLead(ctx context.Context, l entities.HeroLead) (entities.HeroLead, error)
}
