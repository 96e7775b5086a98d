// Package calculations holds the pure functions that keep derived document fields
// consistent with their inputs. Services and repositories both call Recompute so the
// same arithmetic applies everywhere.
package calculations

import (
	"strings"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const moneyPrecision = 2

var hundred = decimal.NewFromInt(100)

// LineTotal computes jumlah = qty * hargaSatuan - discRp.
// Operands outside domain.WithinBounds yield zero; validation rejects them before they are stored.
func LineTotal(qty, price, disc decimal.Decimal) decimal.Decimal {
	if !domain.WithinBounds(qty) || !domain.WithinBounds(price) || !domain.WithinBounds(disc) {
		return decimal.Zero
	}
	return qty.Mul(price).Sub(disc)
}

// Variance computes selisih = actual - recorded.
// Blank, non-numeric or out-of-range operands yield an unset value instead of an error.
func Variance(recorded, actual string) decimal.NullDecimal {
	r, ok := parseCount(recorded)
	if !ok {
		return decimal.NullDecimal{}
	}
	a, ok := parseCount(actual)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(a.Sub(r))
}

func parseCount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !domain.WithinBounds(d) {
		return decimal.Zero, false
	}
	return d, true
}

// RecomputeLineItem returns a copy of item with Jumlah and Selisih derived from its inputs.
func RecomputeLineItem(item domain.LineItem) domain.LineItem {
	item.Jumlah = LineTotal(item.Qty, item.HargaSatuan, item.DiscRp)
	item.Selisih = Variance(item.StokTercatat, item.StokSebenarnya)
	return item
}

// RecomputeTotals folds the line items into subtotal, tax and grand total.
// taxRate is a percentage; tax is rounded to two decimal places.
func RecomputeTotals(items []domain.LineItem, taxRate decimal.Decimal) domain.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item.Qty, item.HargaSatuan, item.DiscRp))
	}
	tax := subtotal.Mul(taxRate).Div(hundred).Round(moneyPrecision)
	return domain.Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// Recompute refreshes every derived field of doc in place.
// Documents without a detail table take their totals from the payload amount, if any.
func Recompute(doc *domain.Document) {
	if len(doc.LineItems) > 0 {
		items := make([]domain.LineItem, len(doc.LineItems))
		for i, item := range doc.LineItems {
			items[i] = RecomputeLineItem(item)
		}
		doc.LineItems = items
	}

	taxRate := decimal.Zero
	if rater, ok := doc.Payload.(domain.TaxRater); ok {
		taxRate = rater.TaxRatePercent()
	}

	if len(doc.LineItems) == 0 {
		amount := payloadAmount(doc.Payload)
		doc.Totals = domain.Totals{Subtotal: amount, Tax: decimal.Zero, GrandTotal: amount}
		return
	}
	doc.Totals = RecomputeTotals(doc.LineItems, taxRate)
}

func payloadAmount(p domain.Payload) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	v, ok := p.Field("amount")
	if !ok {
		return decimal.Zero
	}
	if d, ok := v.(decimal.Decimal); ok {
		return d
	}
	return decimal.Zero
}
