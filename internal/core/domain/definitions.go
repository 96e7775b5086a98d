package domain

// LineKind says which columns a document type's detail table uses.
type LineKind int

const (
	NoLines LineKind = iota
	PricedLine
	StockLine
)

// NumberFormat describes how document numbers of a type are generated.
// Sequential numbers are Prefix + date formatted with DateLayout + suffix zero-padded to Width.
// Opaque numbers are Prefix + yyyymmdd-hhmmss-RAND and never consult existing numbers.
type NumberFormat struct {
	Prefix     string
	DateLayout string
	Width      int
	Opaque     bool
}

// Definition binds a document type to its workflow, numbering and detail-table shape.
type Definition struct {
	Type              DocumentType
	Module            string
	Workflow          *Workflow
	Numbering         NumberFormat
	RequiresLineItems bool
	LineKind          LineKind
	NewPayload        func() Payload
}

var binaryStates = []Status{StatusPending, StatusApproved, StatusRejected}

var definitions = map[DocumentType]Definition{
	PaymentVoucher: {
		Type:   PaymentVoucher,
		Module: "finance",
		Workflow: mustWorkflow(StatusVerify,
			[]Status{StatusVerify, StatusApproval1, StatusApproval2, StatusPaid},
			[]Status{StatusPaid},
			Transition{Action: ActionVerify, From: []Status{StatusVerify}, To: StatusApproval1},
			Transition{Action: ActionApprove, From: []Status{StatusApproval1}, To: StatusApproval2},
			Transition{Action: ActionPay, From: []Status{StatusApproval1, StatusApproval2}, To: StatusPaid},
		),
		Numbering:  NumberFormat{Prefix: "PV-", DateLayout: "2006-01-", Width: 4},
		NewPayload: func() Payload { return &PaymentVoucherPayload{} },
	},
	Reimbursement: {
		Type:   Reimbursement,
		Module: "finance",
		Workflow: mustWorkflow(StatusPending, binaryStates,
			[]Status{StatusApproved, StatusRejected},
			Transition{Action: ActionApprove, From: []Status{StatusPending}, To: StatusApproved},
			Transition{Action: ActionReject, From: []Status{StatusPending}, To: StatusRejected},
		),
		Numbering:  NumberFormat{Prefix: "RB-", DateLayout: "2006-01-", Width: 4},
		NewPayload: func() Payload { return &ReimbursementPayload{} },
	},
	TandaTerima: {
		Type:   TandaTerima,
		Module: "warehouse",
		Workflow: mustWorkflow(StatusPending,
			[]Status{StatusPending, StatusReceived, StatusRejected},
			[]Status{StatusReceived, StatusRejected},
			Transition{Action: ActionReceive, From: []Status{StatusPending}, To: StatusReceived},
			Transition{Action: ActionReject, From: []Status{StatusPending}, To: StatusRejected},
		),
		Numbering:         NumberFormat{Prefix: "TTPB-", DateLayout: "2006-01-", Width: 3},
		RequiresLineItems: true,
		LineKind:          PricedLine,
		NewPayload:        func() Payload { return &TandaTerimaPayload{} },
	},
	PurchaseRequest: {
		Type:   PurchaseRequest,
		Module: "procurement",
		Workflow: mustWorkflow(StatusPending, binaryStates,
			[]Status{StatusApproved, StatusRejected},
			Transition{Action: ActionApprove, From: []Status{StatusPending}, To: StatusApproved},
			Transition{Action: ActionReject, From: []Status{StatusPending}, To: StatusRejected},
		),
		Numbering:         NumberFormat{Prefix: "PR-", DateLayout: "2006-01-", Width: 3},
		RequiresLineItems: true,
		LineKind:          PricedLine,
		NewPayload:        func() Payload { return &PurchaseRequestPayload{} },
	},
	StockOpname: {
		Type:   StockOpname,
		Module: "warehouse",
		Workflow: mustWorkflow(StatusDraft,
			[]Status{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected},
			[]Status{StatusApproved, StatusRejected},
			Transition{Action: ActionSubmit, From: []Status{StatusDraft}, To: StatusSubmitted},
			Transition{Action: ActionApprove, From: []Status{StatusSubmitted}, To: StatusApproved},
			Transition{Action: ActionReject, From: []Status{StatusSubmitted}, To: StatusRejected},
		),
		Numbering:         NumberFormat{Prefix: "SO-", DateLayout: "200601-", Width: 3},
		RequiresLineItems: true,
		LineKind:          StockLine,
		NewPayload:        func() Payload { return &StockOpnamePayload{} },
	},
	RequestForInspection: {
		Type:   RequestForInspection,
		Module: "qhse",
		Workflow: mustWorkflow(StatusOpen,
			[]Status{StatusOpen, StatusScheduled, StatusInspected, StatusClosed},
			[]Status{StatusClosed},
			Transition{Action: ActionSchedule, From: []Status{StatusOpen}, To: StatusScheduled},
			Transition{Action: ActionInspect, From: []Status{StatusScheduled}, To: StatusInspected},
			Transition{Action: ActionClose, From: []Status{StatusInspected}, To: StatusClosed},
		),
		Numbering:  NumberFormat{Prefix: "RFI-", Opaque: true},
		NewPayload: func() Payload { return &RequestForInspectionPayload{} },
	},
}

// Lookup returns the definition of a document type.
func Lookup(t DocumentType) (Definition, bool) {
	def, ok := definitions[t]
	return def, ok
}

// DocumentTypes lists every registered type in a stable order.
func DocumentTypes() []DocumentType {
	return []DocumentType{PaymentVoucher, Reimbursement, TandaTerima, PurchaseRequest, StockOpname, RequestForInspection}
}
