package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tags a document and selects its payload variant, workflow and numbering.
type DocumentType string

const (
	PaymentVoucher       DocumentType = "PAYMENT_VOUCHER"
	Reimbursement        DocumentType = "REIMBURSEMENT"
	TandaTerima          DocumentType = "TANDA_TERIMA"
	PurchaseRequest      DocumentType = "PURCHASE_REQUEST"
	StockOpname          DocumentType = "STOCK_OPNAME"
	RequestForInspection DocumentType = "REQUEST_FOR_INSPECTION"
)

// Status is a workflow state. Each document type declares its own finite set in its Workflow.
type Status string

const (
	StatusVerify    Status = "Verify"
	StatusApproval1 Status = "Approval1"
	StatusApproval2 Status = "Approval2"
	StatusPaid      Status = "Paid"

	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
	StatusReceived Status = "Received"

	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"

	StatusOpen      Status = "Open"
	StatusScheduled Status = "Scheduled"
	StatusInspected Status = "Inspected"
	StatusClosed    Status = "Closed"
)

// Action names a user-triggered transition.
type Action string

const (
	ActionVerify   Action = "verify"
	ActionApprove  Action = "approve"
	ActionPay      Action = "pay"
	ActionReject   Action = "reject"
	ActionReceive  Action = "receive"
	ActionSubmit   Action = "submit"
	ActionSchedule Action = "schedule"
	ActionInspect  Action = "inspect"
	ActionClose    Action = "close"
)

// Attachment references an uploaded file by metadata only.
type Attachment struct {
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size" validate:"gte=0"`
}

// TransitionEntry is one append-only record of a status change.
type TransitionEntry struct {
	FromStatus Status    `json:"fromStatus"`
	Status     Status    `json:"status"`
	Action     Action    `json:"action"`
	Actor      string    `json:"actor"`
	Timestamp  time.Time `json:"timestamp"`
	Note       string    `json:"note,omitempty"`
}

// LineItem is a row of a document's detail table.
// Priced rows use Qty/HargaSatuan/DiscRp; stock-count rows use StokTercatat/StokSebenarnya.
// Jumlah and Selisih are derived and overwritten on every recomputation.
type LineItem struct {
	ItemCode       string              `json:"itemCode,omitempty"`
	Description    string              `json:"description,omitempty"`
	Unit           string              `json:"unit,omitempty"`
	Qty            decimal.Decimal     `json:"qty"`
	HargaSatuan    decimal.Decimal     `json:"hargaSatuan"`
	DiscRp         decimal.Decimal     `json:"discRp"`
	Jumlah         decimal.Decimal     `json:"jumlah"`
	StokTercatat   string              `json:"stokTercatat,omitempty"`
	StokSebenarnya string              `json:"stokSebenarnya,omitempty"`
	Selisih        decimal.NullDecimal `json:"selisih"`
}

// Totals are the aggregate derived fields folded over the line items.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// Document is the common envelope shared by every document type.
type Document struct {
	DocumentID     string            `json:"id"`
	Type           DocumentType      `json:"type"`
	DocumentNumber string            `json:"documentNumber"`
	DocumentDate   Date              `json:"documentDate"`
	Status         Status            `json:"status"`
	Payload        Payload           `json:"payload"`
	LineItems      []LineItem        `json:"lineItems,omitempty"`
	Totals         Totals            `json:"totals"`
	TransitionLog  []TransitionEntry `json:"transitionLog"`
	AuditFields
}

// Clone returns a deep copy so callers never share state with the store.
func (d *Document) Clone() *Document {
	c := *d
	if d.Payload != nil {
		c.Payload = d.Payload.Clone()
	}
	if d.LineItems != nil {
		c.LineItems = make([]LineItem, len(d.LineItems))
		copy(c.LineItems, d.LineItems)
	}
	c.TransitionLog = make([]TransitionEntry, len(d.TransitionLog))
	copy(c.TransitionLog, d.TransitionLog)
	return &c
}

// IsTerminal reports whether the document can no longer be transitioned or edited.
func (d *Document) IsTerminal() bool {
	def, ok := Lookup(d.Type)
	if !ok {
		return false
	}
	return def.Workflow.IsTerminal(d.Status)
}

// LastTransitionAt returns the timestamp of the newest log entry, or the zero time.
func (d *Document) LastTransitionAt() time.Time {
	if len(d.TransitionLog) == 0 {
		return time.Time{}
	}
	return d.TransitionLog[len(d.TransitionLog)-1].Timestamp
}

// Field resolves a named field for filtering and sorting.
// Envelope fields are resolved here; everything else is delegated to the payload variant.
// Values are string, time.Time or decimal.Decimal.
func (d *Document) Field(name string) (any, bool) {
	switch name {
	case "id":
		return d.DocumentID, true
	case "type":
		return string(d.Type), true
	case "documentNumber":
		return d.DocumentNumber, true
	case "documentDate":
		return d.DocumentDate.Time, !d.DocumentDate.IsZero()
	case "status":
		return string(d.Status), true
	case "createdBy":
		return d.CreatedBy, true
	case "createdAt":
		return d.CreatedAt, true
	case "lastUpdatedAt":
		return d.LastUpdatedAt, true
	case "subtotal":
		return d.Totals.Subtotal, true
	case "grandTotal":
		return d.Totals.GrandTotal, true
	}
	if d.Payload == nil {
		return nil, false
	}
	return d.Payload.Field(name)
}

// Numbers extracts the document numbers of docs, preserving order.
func Numbers(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.DocumentNumber)
	}
	return out
}

func optionalString(s string) (any, bool) {
	return s, strings.TrimSpace(s) != ""
}

func optionalDate(d *Date) (any, bool) {
	if d == nil || d.IsZero() {
		return nil, false
	}
	return d.Time, true
}

func optionalTime(t *time.Time) (any, bool) {
	if t == nil {
		return nil, false
	}
	return *t, true
}
