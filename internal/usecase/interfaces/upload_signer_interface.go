package interfaces

//go:generate mockgen -source=upload_signer_interface.go -destination=mocks/upload_signer_interface_mock.go -package=mock_interfaces

import (
	"context"

	"master_booking/internal/domain/entities"
)

// IUploadSigner issues short-lived upload URLs for object storage.
type IUploadSigner interface {
	SignUpload(ctx context.Context, key string) (entities.UploadURL, error)
	// PublicURL is where an uploaded object can be read.
	PublicURL(key string) string
}
