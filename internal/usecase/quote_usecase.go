package usecase

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/quote_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"master_booking/internal/domain/pricing"
)

// RateCard is the public view of every price table.
type RateCard struct {
	Tables              []pricing.RateTable  `json:"tables"`
	QualityMultipliers  []pricing.Multiplier `json:"quality_multipliers"`
	PropertyMultipliers []pricing.Multiplier `json:"property_multipliers"`
	Currency            string               `json:"currency"`
}

type IQuoteUseCase interface {
	Calculate(ctx context.Context, category string, sel pricing.Selection) (pricing.Quote, error)
	RateCard(ctx context.Context) RateCard
}

type QuoteUseCase struct {
	book *pricing.RateBook
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(book *pricing.RateBook) *QuoteUseCase {
	if book == nil {
		book = pricing.DefaultRateBook()
	}
	return &QuoteUseCase{book: book}
}

func (u *QuoteUseCase) Calculate(ctx context.Context, category string, sel pricing.Selection) (pricing.Quote, error) {
	cat := pricing.Category(strings.ToLower(strings.TrimSpace(category)))
	q, err := pricing.Calculate(u.book, cat, sel)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownCategory) {
			return pricing.Quote{}, invalid("Unknown service category")
		}
		return pricing.Quote{}, err
	}
	slog.DebugContext(ctx, "[quote][usecase] calculated", "category", cat, "total_pence", q.TotalPence)
	return q, nil
}

func (u *QuoteUseCase) RateCard(_ context.Context) RateCard {
	return RateCard{
		Tables:              u.book.Tables(),
		QualityMultipliers:  u.book.QualityMultipliers(),
		PropertyMultipliers: u.book.PropertyMultipliers(),
		Currency:            pricing.Currency,
	}
}
