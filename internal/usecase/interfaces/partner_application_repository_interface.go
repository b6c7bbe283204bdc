package interfaces

//go:generate mockgen -source=partner_application_repository_interface.go -destination=mocks/partner_application_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"master_booking/internal/domain/entities"
)

type IPartnerApplicationRepository interface {
	Create(ctx context.Context, a entities.PartnerApplication) (entities.PartnerApplication, error)
	// Complete stores the document URLs and marks the application completed.
	// It returns a zero application when id does not exist.
	Complete(ctx context.Context, id string, documentURLs map[entities.DocumentSlot]string) (entities.PartnerApplication, error)
}
