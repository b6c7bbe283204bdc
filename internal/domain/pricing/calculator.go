package pricing

import (
	"errors"
	"math"
)

var ErrUnknownCategory = errors.New("unknown service category")

// MaxQuantity caps every quantity and hour count so totals stay within int64.
const MaxQuantity = 10000

// Selection is what the customer picked for one category.
// Missing or unknown fields fall back to the zero-selection baseline.
type Selection struct {
	Quantities   map[string]int `json:"quantities"`
	Quality      Quality        `json:"quality"`
	PropertyType PropertyType   `json:"property_type"`
	Service      string         `json:"service"`
	Hours        int            `json:"hours"`
}

// QuoteLine is one priced component of a quote.
type QuoteLine struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price_pence"`
	TotalPence int64  `json:"total_pence"`
}

// Quote is derived from a Selection and never stored on its own.
type Quote struct {
	Category       Category    `json:"category"`
	Lines          []QuoteLine `json:"lines"`
	SubtotalPence  int64       `json:"subtotal_pence"`
	QualityFactor  float64     `json:"quality_factor"`
	PropertyFactor float64     `json:"property_factor"`
	TotalPence     int64       `json:"total_pence"`
	Total          float64     `json:"total"`
	Currency       string      `json:"currency"`
}

// Calculate prices a selection against the book. It only fails for an unknown category.
func Calculate(book *RateBook, category Category, sel Selection) (Quote, error) {
	table, ok := book.Table(category)
	if !ok {
		return Quote{}, ErrUnknownCategory
	}

	var q Quote
	switch category {
	case CategoryPainting:
		q = multiplicative(book, table, sel)
	case CategoryHandyman, CategoryPlumbing, CategoryElectrician:
		q = tiered(table, sel)
	default:
		q = linear(table, sel)
	}
	q.Category = category
	q.Currency = Currency
	if q.TotalPence < table.BasePrice {
		q.TotalPence = table.BasePrice
	}
	q.Total = PenceToPounds(q.TotalPence)
	return q, nil
}

func linear(table RateTable, sel Selection) Quote {
	var q Quote
	for _, it := range table.Items {
		n := clampQuantity(sel.Quantities[it.Key])
		if n == 0 {
			continue
		}
		line := QuoteLine{Key: it.Key, Label: it.Label, Quantity: n, UnitPrice: it.UnitPrice, TotalPence: int64(n) * it.UnitPrice}
		q.Lines = append(q.Lines, line)
		q.SubtotalPence += line.TotalPence
	}
	q.TotalPence = table.BasePrice + q.SubtotalPence
	q.QualityFactor = 1
	q.PropertyFactor = 1
	return q
}

func multiplicative(book *RateBook, table RateTable, sel Selection) Quote {
	q := linear(table, sel)
	if table.BasePrice > 0 {
		q.Lines = append([]QuoteLine{{Key: "base", Label: "Base price", Quantity: 1, UnitPrice: table.BasePrice, TotalPence: table.BasePrice}}, q.Lines...)
	}
	q.SubtotalPence += table.BasePrice

	quality := lookupMultiplier(book.quality, string(sel.Quality))
	property := lookupMultiplier(book.property, string(sel.PropertyType))
	q.QualityFactor = quality.Factor
	q.PropertyFactor = property.Factor
	q.TotalPence = roundPence(float64(q.SubtotalPence) * quality.Factor * property.Factor)
	return q
}

func tiered(table RateTable, sel Selection) Quote {
	var q Quote
	q.QualityFactor = 1
	q.PropertyFactor = 1

	it, ok := table.item(sel.Service)
	if !ok {
		it, ok = table.item(ServiceHourly)
		if !ok {
			return q
		}
	}

	qty := 1
	if it.Key == ServiceHourly {
		qty = clampQuantity(sel.Hours)
		if qty < 1 {
			qty = 1
		}
	}
	line := QuoteLine{Key: it.Key, Label: it.Label, Quantity: qty, UnitPrice: it.UnitPrice, TotalPence: int64(qty) * it.UnitPrice}
	q.Lines = []QuoteLine{line}
	q.SubtotalPence = line.TotalPence
	q.TotalPence = line.TotalPence
	return q
}

func clampQuantity(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxQuantity:
		return MaxQuantity
	}
	return n
}

func roundPence(v float64) int64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int64(math.Round(v))
}

// PenceToPounds converts minor units to a 2dp amount.
func PenceToPounds(p int64) float64 {
	return float64(p) / 100
}
