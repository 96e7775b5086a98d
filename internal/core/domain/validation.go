package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// payloadValidator returns the shared validator. Field names in errors are JSON names,
// and decimal.Decimal is compared numerically so `gt=0` style tags work on amounts.
func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			if d, ok := v.Interface().(decimal.Decimal); ok {
				if !WithinBounds(d) {
					return nil
				}
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	})
	return validate
}

// ValidatePayload checks the struct tags of a payload variant and returns a per-field ValidationError.
func ValidatePayload(p Payload) error {
	if p == nil {
		return apperrors.NewValidationError("payload", "is required")
	}
	// Out-of-range decimals are reported before the tag checks, which would expand them.
	if v := checkPayloadBounds(p); v.HasErrors() {
		return v
	}
	return toValidationError("", payloadValidator().Struct(p))
}

// ValidateLineItems enforces the detail-table rules of a document type.
// Stock-count inputs are deliberately not validated as numbers: a non-numeric count yields an unset variance.
func ValidateLineItems(def Definition, items []LineItem) error {
	v := &apperrors.ValidationError{}
	if def.RequiresLineItems && len(items) == 0 {
		v.Add("lineItems", "at least one line item is required")
		return v
	}
	if !def.RequiresLineItems && len(items) > 0 {
		v.Add("lineItems", fmt.Sprintf("%s documents do not carry line items", def.Type))
		return v
	}
	for i, item := range items {
		prefix := fmt.Sprintf("lineItems[%d].", i)
		inBounds := true
		for _, col := range []struct {
			name  string
			value decimal.Decimal
		}{{"qty", item.Qty}, {"hargaSatuan", item.HargaSatuan}, {"discRp", item.DiscRp}} {
			if !WithinBounds(col.value) {
				v.Add(prefix+col.name, outOfBoundsMessage)
				inBounds = false
			}
		}
		if !inBounds {
			continue
		}
		switch def.LineKind {
		case PricedLine:
			if strings.TrimSpace(item.Description) == "" {
				v.Add(prefix+"description", "is required")
			}
			if !item.Qty.IsPositive() {
				v.Add(prefix+"qty", "must be greater than 0")
			}
			if item.HargaSatuan.IsNegative() {
				v.Add(prefix+"hargaSatuan", "must not be negative")
			}
			if item.DiscRp.IsNegative() {
				v.Add(prefix+"discRp", "must not be negative")
			}
		case StockLine:
			if strings.TrimSpace(item.ItemCode) == "" {
				v.Add(prefix+"itemCode", "is required")
			}
		}
	}
	return v.OrNil()
}

// ValidateAttachment bounds the attachment metadata of payloads that carry one.
func ValidateAttachment(p Payload, maxBytes int64) error {
	holder, ok := p.(AttachmentHolder)
	if !ok || holder.AttachmentRef() == nil {
		return nil
	}
	att := holder.AttachmentRef()
	if maxBytes > 0 && att.Size > maxBytes {
		return apperrors.NewValidationError("attachment.size", fmt.Sprintf("must not exceed %d bytes", maxBytes))
	}
	return nil
}

type requirement struct {
	field   string
	present bool
}

func requireFields(reqs ...requirement) *apperrors.ValidationError {
	v := &apperrors.ValidationError{}
	for _, r := range reqs {
		if !r.present {
			v.Add(r.field, "is required")
		}
	}
	return v
}

func toValidationError(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	v := &apperrors.ValidationError{}
	for _, fe := range verrs {
		v.Add(prefix+fieldPath(fe), describe(fe))
	}
	return v
}

// fieldPath strips the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "failed on " + fe.Tag()
}
