package sequence

import (
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextNumber(t *testing.T) {
	tpl := Template{Prefix: "TTPB-", DatePart: "2025-09-", Width: 3}

	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"receipt sequence continues", []string{"TTPB-2025-09-001", "TTPB-2025-09-002"}, "TTPB-2025-09-003"},
		{"empty store starts at one", nil, "TTPB-2025-09-001"},
		{"previous period is ignored", []string{"TTPB-2025-08-017"}, "TTPB-2025-09-001"},
		{"gaps use the maximum", []string{"TTPB-2025-09-007", "TTPB-2025-09-002"}, "TTPB-2025-09-008"},
		{"garbage is ignored", []string{"TTPB-2025-09-abc", "hello", "TTPB-2025-09-", "TTPB-2025-09-004"}, "TTPB-2025-09-005"},
		{"width overflow is not truncated", []string{"TTPB-2025-09-999"}, "TTPB-2025-09-1000"},
		{"suffix wider than 64 bits", []string{"TTPB-2025-09-99999999999999999999"}, "TTPB-2025-09-100000000000000000000"},
		{"suffix at the uint64 limit", []string{"TTPB-2025-09-000", "TTPB-2025-09-18446744073709551615"}, "TTPB-2025-09-18446744073709551616"},
		{"zero suffix is counted", []string{"TTPB-2025-09-000"}, "TTPB-2025-09-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextNumber(tt.existing, tpl))
		})
	}
}

func TestNextNumber_IsPureAndFresh(t *testing.T) {
	tpl := Template{Prefix: "PV-", DatePart: "2025-09-", Width: 4}
	existing := []string{"PV-2025-09-0003", "PV-2025-09-0010", "RB-2025-09-0099", "PV-2025-08-0050"}

	first := NextNumber(existing, tpl)
	second := NextNumber(existing, tpl)
	assert.Equal(t, first, second)
	assert.False(t, slices.Contains(existing, first))

	next, ok := Suffix(first, tpl)
	require.True(t, ok)
	for _, n := range existing {
		if v, ok := Suffix(n, tpl); ok {
			assert.Equal(t, 1, next.Cmp(v), "%s must exceed %s", first, n)
		}
	}
}

func TestNextNumber_HugeSuffixesStayFresh(t *testing.T) {
	tpl := Template{Prefix: "TTPB-", DatePart: "2025-09-", Width: 3}
	existing := []string{
		"TTPB-2025-09-000",
		"TTPB-2025-09-18446744073709551615",
		"TTPB-2025-09-123456789012345678901234567890",
	}

	next := NextNumber(existing, tpl)
	assert.Equal(t, "TTPB-2025-09-123456789012345678901234567891", next)
	assert.False(t, slices.Contains(existing, next))
}

func TestTemplateFor(t *testing.T) {
	at := time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC)

	tt := TemplateFor(domain.NumberFormat{Prefix: "SO-", DateLayout: "200601-", Width: 3}, at)
	assert.Equal(t, Template{Prefix: "SO-", DatePart: "202509-", Width: 3}, tt)

	plain := TemplateFor(domain.NumberFormat{Prefix: "X-", Width: 2}, at)
	assert.Equal(t, "X-01", NextNumber(nil, plain))
}

func TestAllocate(t *testing.T) {
	at := time.Date(2025, 9, 14, 10, 30, 5, 0, time.UTC)

	num, err := Allocate(domain.NumberFormat{Prefix: "PR-", DateLayout: "2006-01-", Width: 3}, []string{"PR-2025-09-041"}, at)
	require.NoError(t, err)
	assert.Equal(t, "PR-2025-09-042", num)

	opaque, err := Allocate(domain.NumberFormat{Prefix: "RFI-", Opaque: true}, []string{"RFI-20250914-103005-AAAA"}, at)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^RFI-20250914-103005-[0-9A-Z]{4}$`), opaque)
}

func TestOpaqueNumber(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "RFI-20250102-030405-ZX81", OpaqueNumber("RFI-", at, "ZX81"))
}
