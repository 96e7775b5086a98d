package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payload is the type-specific part of a Document.
type Payload interface {
	DocumentType() DocumentType
	// Field resolves a payload field by its JSON name.
	Field(name string) (any, bool)
	// Stamps exposes the stage timestamps that only transitions may set.
	Stamps() *StageStamps
	Clone() Payload
}

// StageHook is implemented by payloads whose transitions need supplementary fields
// or record business timestamps. It runs on a copy of the payload; an error refuses the transition.
type StageHook interface {
	OnTransition(action Action, at time.Time) error
}

// StageFielder is implemented by payloads whose transitions accept supplementary fields.
type StageFielder interface {
	StageFields(action Action) []string
}

// StageFields lists the payload fields a transition with action may set on p.
// Every other field is edited through updates, never through transitions.
func StageFields(p Payload, action Action) []string {
	if f, ok := p.(StageFielder); ok {
		return f.StageFields(action)
	}
	return nil
}

// TaxRater is implemented by payloads whose totals include tax.
type TaxRater interface {
	TaxRatePercent() decimal.Decimal
}

// AttachmentHolder is implemented by payloads that reference an uploaded file.
type AttachmentHolder interface {
	AttachmentRef() *Attachment
}

// StageStamps are business timestamps written by transitions, never by edits.
type StageStamps struct {
	TglApproval  *time.Time `json:"tglApproval,omitempty"`
	TglPencairan *Date      `json:"tglPencairan,omitempty"`
	TglDiterima  *time.Time `json:"tglDiterima,omitempty"`
	TglInspeksi  *time.Time `json:"tglInspeksi,omitempty"`
}

func (s *StageStamps) Stamps() *StageStamps { return s }

func (s StageStamps) clone() StageStamps {
	c := StageStamps{}
	if s.TglApproval != nil {
		t := *s.TglApproval
		c.TglApproval = &t
	}
	if s.TglPencairan != nil {
		d := *s.TglPencairan
		c.TglPencairan = &d
	}
	if s.TglDiterima != nil {
		t := *s.TglDiterima
		c.TglDiterima = &t
	}
	if s.TglInspeksi != nil {
		t := *s.TglInspeksi
		c.TglInspeksi = &t
	}
	return c
}

func (s *StageStamps) field(name string) (any, bool) {
	switch name {
	case "tglApproval":
		return optionalTime(s.TglApproval)
	case "tglPencairan":
		return optionalDate(s.TglPencairan)
	case "tglDiterima":
		return optionalTime(s.TglDiterima)
	case "tglInspeksi":
		return optionalTime(s.TglInspeksi)
	}
	return nil, false
}

// PreserveStamps overwrites dst's stage stamps with src's. A nil src clears them.
func PreserveStamps(dst, src Payload) {
	if src == nil {
		*dst.Stamps() = StageStamps{}
		return
	}
	*dst.Stamps() = src.Stamps().clone()
}

func cloneAttachment(a *Attachment) *Attachment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// PaymentVoucherPayload is a finance payment voucher.
type PaymentVoucherPayload struct {
	Payee        string          `json:"payee" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"gt=0"`
	Description  string          `json:"description"`
	InvoiceRef   string          `json:"invoiceRef"`
	MetodeBayar  string          `json:"metodeBayar" validate:"omitempty,oneof=Cash Bank Giro"`
	DetailBayar  string          `json:"detailBayar"`
	TanggalBayar *Date           `json:"tanggalBayar,omitempty"`
	Attachment   *Attachment     `json:"attachment,omitempty"`
	StageStamps
}

func (p *PaymentVoucherPayload) DocumentType() DocumentType { return PaymentVoucher }
func (p *PaymentVoucherPayload) AttachmentRef() *Attachment  { return p.Attachment }

func (p *PaymentVoucherPayload) Clone() Payload {
	c := *p
	if p.TanggalBayar != nil {
		d := *p.TanggalBayar
		c.TanggalBayar = &d
	}
	c.Attachment = cloneAttachment(p.Attachment)
	c.StageStamps = p.StageStamps.clone()
	return &c
}

func (p *PaymentVoucherPayload) Field(name string) (any, bool) {
	switch name {
	case "payee":
		return optionalString(p.Payee)
	case "amount":
		return p.Amount, true
	case "description":
		return optionalString(p.Description)
	case "invoiceRef":
		return optionalString(p.InvoiceRef)
	case "metodeBayar":
		return optionalString(p.MetodeBayar)
	case "detailBayar":
		return optionalString(p.DetailBayar)
	case "tanggalBayar":
		return optionalDate(p.TanggalBayar)
	}
	return p.StageStamps.field(name)
}

// StageFields accepts the payment details and proof of payment on pay.
func (p *PaymentVoucherPayload) StageFields(action Action) []string {
	if action == ActionPay {
		return []string{"metodeBayar", "detailBayar", "tanggalBayar", "attachment"}
	}
	return nil
}

// OnTransition requires the payment fields before paying and stamps the stage dates.
func (p *PaymentVoucherPayload) OnTransition(action Action, at time.Time) error {
	switch action {
	case ActionApprove:
		p.TglApproval = &at
	case ActionPay:
		v := requireFields(
			requirement{"metodeBayar", p.MetodeBayar != ""},
			requirement{"detailBayar", p.DetailBayar != ""},
			requirement{"tanggalBayar", p.TanggalBayar != nil && !p.TanggalBayar.IsZero()},
		)
		if err := v.OrNil(); err != nil {
			return err
		}
		d := *p.TanggalBayar
		p.TglPencairan = &d
	}
	return nil
}

// ReimbursementPayload is an employee expense claim.
type ReimbursementPayload struct {
	EmployeeName string          `json:"employeeName" validate:"required"`
	Department   string          `json:"department"`
	Category     string          `json:"category" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"gt=0"`
	Description  string          `json:"description"`
	Attachment   *Attachment     `json:"attachment,omitempty"`
	StageStamps
}

func (p *ReimbursementPayload) DocumentType() DocumentType { return Reimbursement }
func (p *ReimbursementPayload) AttachmentRef() *Attachment  { return p.Attachment }

func (p *ReimbursementPayload) Clone() Payload {
	c := *p
	c.Attachment = cloneAttachment(p.Attachment)
	c.StageStamps = p.StageStamps.clone()
	return &c
}

func (p *ReimbursementPayload) Field(name string) (any, bool) {
	switch name {
	case "employeeName":
		return optionalString(p.EmployeeName)
	case "department":
		return optionalString(p.Department)
	case "category":
		return optionalString(p.Category)
	case "amount":
		return p.Amount, true
	case "description":
		return optionalString(p.Description)
	}
	return p.StageStamps.field(name)
}

func (p *ReimbursementPayload) OnTransition(action Action, at time.Time) error {
	if action == ActionApprove {
		p.TglApproval = &at
	}
	return nil
}

// TandaTerimaPayload is a goods receipt (tanda terima penerimaan barang) against a PO.
type TandaTerimaPayload struct {
	PONumber   string      `json:"poNumber" validate:"required"`
	Supplier   string      `json:"supplier" validate:"required"`
	ReceivedBy string      `json:"receivedBy" validate:"required"`
	Notes      string      `json:"notes"`
	Attachment *Attachment `json:"attachment,omitempty"`
	StageStamps
}

func (p *TandaTerimaPayload) DocumentType() DocumentType { return TandaTerima }
func (p *TandaTerimaPayload) AttachmentRef() *Attachment  { return p.Attachment }

func (p *TandaTerimaPayload) Clone() Payload {
	c := *p
	c.Attachment = cloneAttachment(p.Attachment)
	c.StageStamps = p.StageStamps.clone()
	return &c
}

func (p *TandaTerimaPayload) Field(name string) (any, bool) {
	switch name {
	case "poNumber":
		return optionalString(p.PONumber)
	case "supplier":
		return optionalString(p.Supplier)
	case "receivedBy":
		return optionalString(p.ReceivedBy)
	case "notes":
		return optionalString(p.Notes)
	}
	return p.StageStamps.field(name)
}

func (p *TandaTerimaPayload) OnTransition(action Action, at time.Time) error {
	if action == ActionReceive {
		p.TglDiterima = &at
	}
	return nil
}

// PurchaseRequestPayload is a procurement purchase request with priced line items.
type PurchaseRequestPayload struct {
	Requester  string          `json:"requester" validate:"required"`
	Department string          `json:"department" validate:"required"`
	Purpose    string          `json:"purpose" validate:"required"`
	TaxRate    decimal.Decimal `json:"taxRate" validate:"gte=0,lte=100"`
	NeededBy   *Date           `json:"neededBy,omitempty"`
	StageStamps
}

func (p *PurchaseRequestPayload) DocumentType() DocumentType      { return PurchaseRequest }
func (p *PurchaseRequestPayload) TaxRatePercent() decimal.Decimal { return p.TaxRate }

func (p *PurchaseRequestPayload) Clone() Payload {
	c := *p
	if p.NeededBy != nil {
		d := *p.NeededBy
		c.NeededBy = &d
	}
	c.StageStamps = p.StageStamps.clone()
	return &c
}

func (p *PurchaseRequestPayload) Field(name string) (any, bool) {
	switch name {
	case "requester":
		return optionalString(p.Requester)
	case "department":
		return optionalString(p.Department)
	case "purpose":
		return optionalString(p.Purpose)
	case "taxRate":
		return p.TaxRate, true
	case "neededBy":
		return optionalDate(p.NeededBy)
	}
	return p.StageStamps.field(name)
}

func (p *PurchaseRequestPayload) OnTransition(action Action, at time.Time) error {
	if action == ActionApprove {
		p.TglApproval = &at
	}
	return nil
}

// StockOpnamePayload is a warehouse stock count.
type StockOpnamePayload struct {
	Warehouse string `json:"warehouse" validate:"required"`
	Checker   string `json:"checker" validate:"required"`
	Notes     string `json:"notes"`
	StageStamps
}

func (p *StockOpnamePayload) DocumentType() DocumentType { return StockOpname }

func (p *StockOpnamePayload) Clone() Payload {
	c := *p
	c.StageStamps = p.StageStamps.clone()
	return &c
}

func (p *StockOpnamePayload) Field(name string) (any, bool) {
	switch name {
	case "warehouse":
		return optionalString(p.Warehouse)
	case "checker":
		return optionalString(p.Checker)
	case "notes":
		return optionalString(p.Notes)
	}
	return p.StageStamps.field(name)
}

func (p *StockOpnamePayload) OnTransition(action Action, at time.Time) error {
	if action == ActionApprove {
		p.TglApproval = &at
	}
	return nil
}

// RequestForInspectionPayload is a QHSE request for inspection.
type RequestForInspectionPayload struct {
	Project        string `json:"project" validate:"required"`
	Location       string `json:"location" validate:"required"`
	InspectionType string `json:"inspectionType" validate:"required"`
	RequestedBy    string `json:"requestedBy" validate:"required"`
	Inspector      string `json:"inspector"`
	Result         string `json:"result" validate:"omitempty,oneof=Pass Fail Conditional"`
	StageStamps
}

func (p *RequestForInspectionPayload) DocumentType() DocumentType { return RequestForInspection }

func (p *RequestForInspectionPayload) Clone() Payload {
	c := *p
	c.StageStamps = p.StageStamps.clone()
	return &c
}

func (p *RequestForInspectionPayload) Field(name string) (any, bool) {
	switch name {
	case "project":
		return optionalString(p.Project)
	case "location":
		return optionalString(p.Location)
	case "inspectionType":
		return optionalString(p.InspectionType)
	case "requestedBy":
		return optionalString(p.RequestedBy)
	case "inspector":
		return optionalString(p.Inspector)
	case "result":
		return optionalString(p.Result)
	}
	return p.StageStamps.field(name)
}

func (p *RequestForInspectionPayload) StageFields(action Action) []string {
	switch action {
	case ActionSchedule:
		return []string{"inspector"}
	case ActionInspect:
		return []string{"inspector", "result"}
	}
	return nil
}

// OnTransition requires an inspector to schedule and a result to record the inspection.
func (p *RequestForInspectionPayload) OnTransition(action Action, at time.Time) error {
	switch action {
	case ActionSchedule:
		return requireFields(requirement{"inspector", p.Inspector != ""}).OrNil()
	case ActionInspect:
		if err := requireFields(
			requirement{"inspector", p.Inspector != ""},
			requirement{"result", p.Result != ""},
		).OrNil(); err != nil {
			return err
		}
		p.TglInspeksi = &at
	}
	return nil
}
