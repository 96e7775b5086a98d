package calculations

import (
	"testing"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineTotal(t *testing.T) {
	assert.True(t, dec("27500").Equal(LineTotal(dec("3"), dec("10000"), dec("2500"))))
	assert.True(t, decimal.Zero.Equal(LineTotal(decimal.Zero, dec("10000"), decimal.Zero)))
}

func TestLineTotal_OutOfRangeOperandsAreNotExpanded(t *testing.T) {
	huge := dec("1e2000000000")
	assert.True(t, decimal.Zero.Equal(LineTotal(huge, dec("2"), decimal.Zero)))
	assert.True(t, decimal.Zero.Equal(LineTotal(dec("2"), dec("1e-2000000000"), decimal.Zero)))
	assert.True(t, decimal.Zero.Equal(LineTotal(dec("2"), dec("3"), huge)))

	item := RecomputeLineItem(domain.LineItem{ItemCode: "BRG-01", Qty: dec("1"), StokTercatat: "1e2000000000", StokSebenarnya: "4"})
	assert.False(t, item.Selisih.Valid)
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name     string
		recorded string
		actual   string
		want     string
		valid    bool
	}{
		{"equal counts", "10", "10", "0", true},
		{"shortage", "10", "7", "-3", true},
		{"surplus with decimals", "2.5", "4", "1.5", true},
		{"padded input", " 5 ", "6", "1", true},
		{"recorded not numeric", "abc", "10", "", false},
		{"actual not numeric", "10", "ten", "", false},
		{"blank actual", "10", "", "", false},
		{"both blank", "", "", "", false},
		{"huge exponent", "1e2000000000", "1", "", false},
		{"tiny exponent", "1", "1e-2000000000", "", false},
		{"too many integer digits", "1234567890123456", "1", "", false},
		{"largest accepted count", "999999999999999", "0.00000001", "-999999999999998.99999999", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variance(tt.recorded, tt.actual)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.True(t, dec(tt.want).Equal(got.Decimal), "got %s", got.Decimal)
			}
		})
	}
}

func TestRecomputeTotals(t *testing.T) {
	items := []domain.LineItem{
		{Qty: dec("2"), HargaSatuan: dec("15000"), DiscRp: dec("1000")},
		{Qty: dec("1"), HargaSatuan: dec("4999.99")},
	}

	totals := RecomputeTotals(items, dec("11"))
	assert.True(t, dec("33999.99").Equal(totals.Subtotal))
	assert.True(t, dec("3740").Equal(totals.Tax), "tax %s", totals.Tax)
	assert.True(t, dec("37739.99").Equal(totals.GrandTotal))

	empty := RecomputeTotals(nil, dec("11"))
	assert.True(t, empty.GrandTotal.IsZero())
}

func TestRecompute_IsIdempotentAndOverwritesDerived(t *testing.T) {
	doc := &domain.Document{
		Type:    domain.PurchaseRequest,
		Payload: &domain.PurchaseRequestPayload{TaxRate: dec("10")},
		LineItems: []domain.LineItem{
			{Description: "Kabel", Qty: dec("4"), HargaSatuan: dec("2500"), Jumlah: dec("999999")},
		},
	}
	input := doc.LineItems

	Recompute(doc)
	first := doc.Clone()
	Recompute(doc)

	assert.True(t, dec("10000").Equal(doc.LineItems[0].Jumlah))
	assert.True(t, dec("999999").Equal(input[0].Jumlah), "inputs must not be mutated")
	assert.Equal(t, first.LineItems, doc.LineItems)
	assert.Equal(t, first.Totals, doc.Totals)
	assert.True(t, dec("11000").Equal(doc.Totals.GrandTotal))
}

func TestRecompute_StockOpname(t *testing.T) {
	doc := &domain.Document{
		Type:    domain.StockOpname,
		Payload: &domain.StockOpnamePayload{},
		LineItems: []domain.LineItem{
			{ItemCode: "BRG-01", StokTercatat: "10", StokSebenarnya: "10"},
			{ItemCode: "BRG-02", StokTercatat: "10", StokSebenarnya: "n/a"},
		},
	}

	Recompute(doc)
	require.True(t, doc.LineItems[0].Selisih.Valid)
	assert.True(t, doc.LineItems[0].Selisih.Decimal.IsZero())
	assert.False(t, doc.LineItems[1].Selisih.Valid)
}

func TestRecompute_AmountOnlyDocument(t *testing.T) {
	doc := &domain.Document{
		Type:    domain.PaymentVoucher,
		Payload: &domain.PaymentVoucherPayload{Amount: dec("1500000")},
	}

	Recompute(doc)
	assert.True(t, dec("1500000").Equal(doc.Totals.GrandTotal))
	assert.True(t, doc.Totals.Tax.IsZero())
}
