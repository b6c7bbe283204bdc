package usecase

//go:generate mockgen -source=service_match_usecase.go -destination=../adapter/http/handlers/mocks/service_match_usecase_mock.go -package=mocks

import (
	"context"
	"log/slog"

	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/validation"
	"master_booking/internal/usecase/interfaces"
)

const (
	maxMatchQuery      = 500
	maxMatchCandidates = 100
)

type IServiceMatchUseCase interface {
	Match(ctx context.Context, query string, candidates []entities.ServiceCandidate) ([]string, error)
}

type ServiceMatchUseCase struct {
	matcher interfaces.IServiceMatcher
}

var _ IServiceMatchUseCase = (*ServiceMatchUseCase)(nil)

// NewServiceMatchUseCase accepts a nil matcher when no AI key is configured.
func NewServiceMatchUseCase(matcher interfaces.IServiceMatcher) *ServiceMatchUseCase {
	return &ServiceMatchUseCase{matcher: matcher}
}

func (u *ServiceMatchUseCase) Match(ctx context.Context, query string, candidates []entities.ServiceCandidate) ([]string, error) {
	if u.matcher == nil {
		return nil, &UnavailableError{Message: "AI matching is not configured"}
	}

	q := validation.SanitizeString(query, maxMatchQuery)
	list := make([]entities.ServiceCandidate, 0, min(len(candidates), maxMatchCandidates))
	for _, c := range candidates {
		if len(list) == maxMatchCandidates {
			break
		}
		if c.ID == "" || c.Name == "" {
			continue
		}
		list = append(list, c)
	}
	if q == "" || len(list) == 0 {
		return nil, invalid("userQuery and serviceList required")
	}

	ids, err := u.matcher.Match(ctx, q, list)
	if err != nil {
		slog.ErrorContext(ctx, "[ai][usecase] match failed", "error", err)
		return nil, upstream(ProviderAI, err)
	}

	known := make(map[string]struct{}, len(list))
	for _, c := range list {
		known[c.ID] = struct{}{}
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; ok {
			out = append(out, id)
			delete(known, id)
		}
	}
	slog.InfoContext(ctx, "[ai][usecase] matched", "candidates", len(list), "matched", len(out))
	return out, nil
}
