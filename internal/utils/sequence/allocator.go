// Package sequence generates human-readable document numbers.
package sequence

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/SscSPs/docflow_backend/internal/utils"
)

const opaqueSuffixLen = 4

// Template is a resolved numbering pattern for one period, e.g. {"TTPB-", "2025-09-", 3}.
type Template struct {
	Prefix   string
	DatePart string
	Width    int
}

func (t Template) head() string { return t.Prefix + t.DatePart }

// TemplateFor resolves a document type's number format to the period containing at.
func TemplateFor(f domain.NumberFormat, at time.Time) Template {
	var datePart string
	if f.DateLayout != "" {
		datePart = at.Format(f.DateLayout)
	}
	return Template{Prefix: f.Prefix, DatePart: datePart, Width: f.Width}
}

// NextNumber returns the number following the largest suffix among existing numbers
// that match the template's prefix and period. Strings that do not match are ignored.
// It is a pure function: nothing is reserved.
func NextNumber(existing []string, tpl Template) string {
	highest := new(big.Int)
	for _, n := range existing {
		if v, ok := Suffix(n, tpl); ok && v.Cmp(highest) > 0 {
			highest = v
		}
	}
	next := new(big.Int).Add(highest, big.NewInt(1)).String()
	if pad := tpl.Width - len(next); pad > 0 {
		next = strings.Repeat("0", pad) + next
	}
	return tpl.head() + next
}

// OpaqueNumber builds prefix + yyyymmdd-hhmmss-random. It never looks at existing numbers.
func OpaqueNumber(prefix string, at time.Time, random string) string {
	return prefix + at.Format("20060102-150405") + "-" + random
}

// Allocate produces the number for a new document of format f created at the given time.
// Sequential formats consult existing; opaque formats draw a random suffix.
func Allocate(f domain.NumberFormat, existing []string, at time.Time) (string, error) {
	if f.Opaque {
		random, err := utils.GenerateRandomSuffix(opaqueSuffixLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate opaque number: %w", err)
		}
		return OpaqueNumber(f.Prefix, at, random), nil
	}
	return NextNumber(existing, TemplateFor(f, at)), nil
}

// Suffix extracts the numeric suffix of number under tpl. Suffixes of any length are accepted.
func Suffix(number string, tpl Template) (*big.Int, bool) {
	s, ok := strings.CutPrefix(number, tpl.head())
	if !ok || s == "" || !isDigits(s) {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
