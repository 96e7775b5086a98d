package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
)

// DecodePayload decodes raw JSON into the payload variant of docType.
// Unknown fields are rejected so typos surface as validation errors.
func DecodePayload(docType domain.DocumentType, raw json.RawMessage) (domain.Payload, error) {
	def, ok := domain.Lookup(docType)
	if !ok {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown document type %q", docType))
	}
	p := def.NewPayload()
	if len(bytes.TrimSpace(raw)) == 0 {
		return p, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		return nil, apperrors.NewValidationError("payload", err.Error())
	}
	return p, nil
}

// MergePayload applies an RFC 7386 merge patch to a copy of current and decodes the result
// into a fresh payload of the same variant. current is never modified.
func MergePayload(current domain.Payload, patch json.RawMessage) (domain.Payload, error) {
	if len(bytes.TrimSpace(patch)) == 0 || bytes.Equal(bytes.TrimSpace(patch), []byte("null")) {
		return current.Clone(), nil
	}
	base, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode current payload: %w", err)
	}
	var target map[string]any
	if err := json.Unmarshal(base, &target); err != nil {
		return nil, fmt.Errorf("failed to decode current payload: %w", err)
	}
	var changes map[string]any
	if err := json.Unmarshal(patch, &changes); err != nil {
		return nil, apperrors.NewValidationError("payload", "must be a JSON object")
	}
	merged, err := json.Marshal(mergeObjects(target, changes))
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged payload: %w", err)
	}
	return DecodePayload(current.DocumentType(), merged)
}

// RestrictPatch rejects top-level keys of patch that are not in allowed.
// Offending keys are reported as fields.<key>.
func RestrictPatch(patch json.RawMessage, action domain.Action, allowed []string) error {
	trimmed := bytes.TrimSpace(patch)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var changes map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &changes); err != nil {
		return apperrors.NewValidationError("fields", "must be a JSON object")
	}
	v := &apperrors.ValidationError{}
	for key := range changes {
		if !slices.Contains(allowed, key) {
			v.Add("fields."+key, fmt.Sprintf("cannot be set by %s", action))
		}
	}
	return v.OrNil()
}

func mergeObjects(target, patch map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		if v == nil {
			delete(target, k)
			continue
		}
		if sub, ok := v.(map[string]any); ok {
			existing, _ := target[k].(map[string]any)
			target[k] = mergeObjects(existing, sub)
			continue
		}
		target[k] = v
	}
	return target
}
