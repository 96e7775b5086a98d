// Package filtering evaluates AND-combined predicates and an optional stable sort
// over a snapshot of documents.
package filtering

import (
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Predicate tests one resolved field value. present is false when the document has no value for the field.
type Predicate interface {
	Match(value any, present bool) bool
	// Empty reports whether the predicate constrains nothing and should match every document.
	Empty() bool
}

// Contains is a case-insensitive substring match on text fields.
type Contains string

func (c Contains) Empty() bool { return strings.TrimSpace(string(c)) == "" }

func (c Contains) Match(value any, present bool) bool {
	if !present {
		return false
	}
	return strings.Contains(strings.ToLower(asString(value)), strings.ToLower(strings.TrimSpace(string(c))))
}

// Equals is an exact match, intended for enum and status fields.
type Equals string

func (e Equals) Empty() bool { return e == "" }

func (e Equals) Match(value any, present bool) bool {
	return present && asString(value) == string(e)
}

// DateRange is an inclusive range on a date field. Either bound may be nil.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) Empty() bool { return r.From == nil && r.To == nil }

func (r DateRange) Match(value any, present bool) bool {
	if !present {
		return false
	}
	t, ok := value.(time.Time)
	if !ok {
		return false
	}
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// All combines predicates on the same field; every non-empty one must match.
type All []Predicate

func (a All) Empty() bool {
	for _, p := range a {
		if p != nil && !p.Empty() {
			return false
		}
	}
	return true
}

func (a All) Match(value any, present bool) bool {
	for _, p := range a {
		if p == nil || p.Empty() {
			continue
		}
		if !p.Match(value, present) {
			return false
		}
	}
	return true
}

// Sort orders results by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Criteria maps field names to predicates plus an optional sort key.
type Criteria struct {
	Filters map[string]Predicate
	Sort    *Sort
}

// Query returns the documents matching every non-empty predicate, keeping their relative order.
// When a sort is requested the ordering is stable and documents without the field sort first.
func Query(docs []domain.Document, c Criteria) []domain.Document {
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if matches(&d, c.Filters) {
			out = append(out, d)
		}
	}
	if c.Sort != nil && c.Sort.Field != "" {
		sortStable(out, *c.Sort)
	}
	return out
}

func matches(d *domain.Document, filters map[string]Predicate) bool {
	for field, p := range filters {
		if p == nil || p.Empty() {
			continue
		}
		v, ok := d.Field(field)
		if !p.Match(v, ok) {
			return false
		}
	}
	return true
}

// sortStable orders by the sort field. Documents without the field come first in
// either direction; Desc reverses only the order among present values.
func sortStable(docs []domain.Document, s Sort) {
	slices.SortStableFunc(docs, func(a, b domain.Document) int {
		av, aok := a.Field(s.Field)
		bv, bok := b.Field(s.Field)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		c := compare(av, bv)
		if s.Desc {
			return -c
		}
		return c
	})
}

func compare(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		if bt, ok := b.(time.Time); ok {
			return av.Compare(bt)
		}
	case decimal.Decimal:
		if bd, ok := b.(decimal.Decimal); ok {
			return av.Cmp(bd)
		}
	}
	return strings.Compare(strings.ToLower(asString(a)), strings.ToLower(asString(b)))
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	case decimal.Decimal:
		return x.String()
	case interface{ String() string }:
		return x.String()
	}
	return ""
}
