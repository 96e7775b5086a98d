package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Document DTOs ---

// LineItemRequest is one editable row of a detail table. Derived columns are not accepted.
type LineItemRequest struct {
	ItemCode       string          `json:"itemCode"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	Qty            decimal.Decimal `json:"qty"`
	HargaSatuan    decimal.Decimal `json:"hargaSatuan"`
	DiscRp         decimal.Decimal `json:"discRp"`
	StokTercatat   string          `json:"stokTercatat"`
	StokSebenarnya string          `json:"stokSebenarnya"`
}

// ToDomain copies the editable columns into a domain line item.
func (r LineItemRequest) ToDomain() domain.LineItem {
	return domain.LineItem{
		ItemCode:       r.ItemCode,
		Description:    r.Description,
		Unit:           r.Unit,
		Qty:            r.Qty,
		HargaSatuan:    r.HargaSatuan,
		DiscRp:         r.DiscRp,
		StokTercatat:   r.StokTercatat,
		StokSebenarnya: r.StokSebenarnya,
	}
}

// ToDomainLineItems converts request rows, preserving order.
func ToDomainLineItems(rows []LineItemRequest) []domain.LineItem {
	if len(rows) == 0 {
		return nil
	}
	items := make([]domain.LineItem, len(rows))
	for i, r := range rows {
		items[i] = r.ToDomain()
	}
	return items
}

// CreateDocumentRequest defines the data needed to create a document.
// Payload is decoded into the variant selected by Type.
type CreateDocumentRequest struct {
	Type         domain.DocumentType `json:"type" binding:"required"`
	DocumentDate *domain.Date        `json:"documentDate"`
	Payload      json.RawMessage     `json:"payload" binding:"required" swaggertype:"object"`
	LineItems    []LineItemRequest   `json:"lineItems" binding:"omitempty,dive"`
}

// UpdateDocumentRequest is a field patch. Payload is merged onto the current payload
// (JSON merge patch); LineItems, when present, replaces the whole detail table.
type UpdateDocumentRequest struct {
	DocumentDate *domain.Date       `json:"documentDate"`
	Payload      json.RawMessage    `json:"payload" swaggertype:"object"`
	LineItems    *[]LineItemRequest `json:"lineItems"`
}

// TransitionRequest triggers a workflow action. Fields carries the supplementary payload
// values a stage accepts, e.g. the payment fields of a voucher; other keys are rejected.
type TransitionRequest struct {
	Action domain.Action   `json:"action" binding:"required"`
	Note   string          `json:"note"`
	Fields json.RawMessage `json:"fields" swaggertype:"object"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID     string                   `json:"id"`
	Type           domain.DocumentType      `json:"type"`
	DocumentNumber string                   `json:"documentNumber"`
	DocumentDate   domain.Date              `json:"documentDate" swaggertype:"string" example:"2025-09-30"`
	Status         domain.Status            `json:"status"`
	Payload        domain.Payload           `json:"payload" swaggertype:"object"`
	LineItems      []domain.LineItem        `json:"lineItems,omitempty"`
	Totals         domain.Totals            `json:"totals"`
	TransitionLog  []domain.TransitionEntry `json:"transitionLog"`
	AllowedActions []domain.Action          `json:"allowedActions"`
	CreatedAt      time.Time                `json:"createdAt"`
	CreatedBy      string                   `json:"createdBy"`
	LastUpdatedAt  time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy  string                   `json:"lastUpdatedBy"`
	Version        int64                    `json:"version"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	var actions []domain.Action
	if def, ok := domain.Lookup(d.Type); ok {
		actions = def.Workflow.AllowedActions(d.Status)
	}
	if actions == nil {
		actions = []domain.Action{}
	}
	log := d.TransitionLog
	if log == nil {
		log = []domain.TransitionEntry{}
	}
	return DocumentResponse{
		DocumentID:     d.DocumentID,
		Type:           d.Type,
		DocumentNumber: d.DocumentNumber,
		DocumentDate:   d.DocumentDate,
		Status:         d.Status,
		Payload:        d.Payload,
		LineItems:      d.LineItems,
		Totals:         d.Totals,
		TransitionLog:  log,
		AllowedActions: actions,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
		LastUpdatedAt:  d.LastUpdatedAt,
		LastUpdatedBy:  d.LastUpdatedBy,
		Version:        d.Version,
	}
}

// ToDocumentResponses converts a slice of domain.Document, preserving order.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return res
}

// ListDocumentsParams defines query parameters for listing documents.
// The filter maps come from bracketed query keys: q[payee]=sinar, eq[status]=Paid,
// from[documentDate]=2025-09-01, to[documentDate]=2025-09-30.
type ListDocumentsParams struct {
	Type      domain.DocumentType `form:"type"`
	Sort      string              `form:"sort"`
	Order     string              `form:"order" binding:"omitempty,oneof=asc desc"`
	Limit     int                 `form:"limit" binding:"omitempty,min=1"`
	NextToken string              `form:"nextToken"`
	Contains  map[string]string   `form:"-"`
	Equals    map[string]string   `form:"-"`
	From      map[string]string   `form:"-"`
	To        map[string]string   `form:"-"`
}

// ListDocumentsResponse wraps one page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// AllowedActionsResponse lists the actions legal from a document's current status.
type AllowedActionsResponse struct {
	DocumentID string          `json:"id"`
	Status     domain.Status   `json:"status"`
	Actions    []domain.Action `json:"actions"`
}
