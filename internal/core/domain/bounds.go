package domain

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Limits for user-supplied amounts, quantities and counts.
const (
	MaxIntegerDigits  = 15
	MaxFractionDigits = 8

	// 10^(MaxIntegerDigits+MaxFractionDigits) fits in 77 bits.
	maxCoefficientBits = 80
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// WithinBounds reports whether d has at most MaxIntegerDigits integer digits and
// MaxFractionDigits fraction digits. Only the exponent and coefficient size are
// inspected, so values like 1e2000000000 are rejected without being expanded.
func WithinBounds(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -MaxFractionDigits || exp > MaxIntegerDigits {
		return false
	}
	if d.Coefficient().BitLen() > maxCoefficientBits {
		return false
	}
	return int64(d.NumDigits())+exp <= MaxIntegerDigits
}

var outOfBoundsMessage = fmt.Sprintf("must have at most %d integer and %d fraction digits", MaxIntegerDigits, MaxFractionDigits)

// checkPayloadBounds reports every top-level decimal field of p that is out of bounds.
func checkPayloadBounds(p Payload) *apperrors.ValidationError {
	v := &apperrors.ValidationError{}
	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return v
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Type != decimalType {
			continue
		}
		if d := rv.Field(i).Interface().(decimal.Decimal); !WithinBounds(d) {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			v.Add(name, outOfBoundsMessage)
		}
	}
	return v
}
