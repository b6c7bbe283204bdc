package interfaces

//go:generate mockgen -source=service_matcher_interface.go -destination=mocks/service_matcher_interface_mock.go -package=mock_interfaces

import (
	"context"

	"master_booking/internal/domain/entities"
)

// IServiceMatcher ranks catalogue services against a free-text request.
// Returned ids are always a subset of the candidates.
type IServiceMatcher interface {
	Match(ctx context.Context, query string, candidates []entities.ServiceCandidate) ([]string, error)
}
