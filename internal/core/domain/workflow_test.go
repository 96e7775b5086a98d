package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoucher() *domain.Document {
	return &domain.Document{
		DocumentID:     "doc_1",
		Type:           domain.PaymentVoucher,
		DocumentNumber: "PV-2025-09-0001",
		Status:         domain.StatusVerify,
		Payload: &domain.PaymentVoucherPayload{
			Payee:  "PT Sinar Jaya",
			Amount: decimal.NewFromInt(1500000),
		},
	}
}

func workflowFor(t *testing.T, typ domain.DocumentType) *domain.Workflow {
	t.Helper()
	def, ok := domain.Lookup(typ)
	require.True(t, ok)
	return def.Workflow
}

func TestNewWorkflow_RejectsInvalidTables(t *testing.T) {
	a, b, c := domain.Status("A"), domain.Status("B"), domain.Status("C")

	tests := []struct {
		name        string
		initial     domain.Status
		states      []domain.Status
		terminal    []domain.Status
		transitions []domain.Transition
		errMsg      string
	}{
		{
			name:     "undeclared initial",
			initial:  c,
			states:   []domain.Status{a, b},
			terminal: []domain.Status{b},
			errMsg:   "initial status",
		},
		{
			name:     "undeclared target",
			initial:  a,
			states:   []domain.Status{a, b},
			terminal: []domain.Status{b},
			transitions: []domain.Transition{
				{Action: "go", From: []domain.Status{a}, To: c},
			},
			errMsg: "undeclared status",
		},
		{
			name:     "edge out of terminal",
			initial:  a,
			states:   []domain.Status{a, b},
			terminal: []domain.Status{b},
			transitions: []domain.Transition{
				{Action: "go", From: []domain.Status{a}, To: b},
				{Action: "back", From: []domain.Status{b}, To: a},
			},
			errMsg: "leaves terminal status",
		},
		{
			name:     "ambiguous action",
			initial:  a,
			states:   []domain.Status{a, b, c},
			terminal: []domain.Status{b, c},
			transitions: []domain.Transition{
				{Action: "go", From: []domain.Status{a}, To: b},
				{Action: "go", From: []domain.Status{a}, To: c},
			},
			errMsg: "declared twice",
		},
		{
			name:     "dead end",
			initial:  a,
			states:   []domain.Status{a, b, c},
			terminal: []domain.Status{c},
			transitions: []domain.Transition{
				{Action: "go", From: []domain.Status{a}, To: b},
			},
			errMsg: "no outgoing transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewWorkflow(tt.initial, tt.states, tt.terminal, tt.transitions...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRegisteredWorkflows_AreConsistent(t *testing.T) {
	for _, typ := range domain.DocumentTypes() {
		def, ok := domain.Lookup(typ)
		require.True(t, ok, "missing definition for %s", typ)
		assert.Equal(t, typ, def.Type)
		assert.Equal(t, typ, def.NewPayload().DocumentType())
		assert.False(t, def.Workflow.IsTerminal(def.Workflow.Initial()))
		assert.NotEmpty(t, def.Workflow.AllowedActions(def.Workflow.Initial()))
	}
}

func TestWorkflow_StagedVoucher(t *testing.T) {
	wf := workflowFor(t, domain.PaymentVoucher)
	doc := newVoucher()
	t0 := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, wf.Apply(doc, domain.ActionVerify, "Manajer", "", t0))
	assert.Equal(t, domain.StatusApproval1, doc.Status)
	require.Len(t, doc.TransitionLog, 1)
	assert.Equal(t, domain.StatusVerify, doc.TransitionLog[0].FromStatus)
	assert.Equal(t, "Manajer", doc.TransitionLog[0].Actor)

	// pay without the payment fields is refused and leaves the document as it was
	err := wf.Apply(doc, domain.ActionPay, "Kasir", "", t0.Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	fields := apperrors.FieldErrors(err)
	assert.Contains(t, fields, "metodeBayar")
	assert.Contains(t, fields, "detailBayar")
	assert.Contains(t, fields, "tanggalBayar")
	assert.Equal(t, domain.StatusApproval1, doc.Status)
	assert.Len(t, doc.TransitionLog, 1)

	payDate := domain.NewDate(time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC))
	p := doc.Payload.(*domain.PaymentVoucherPayload)
	p.MetodeBayar = "Bank"
	p.DetailBayar = "BCA-123"
	p.TanggalBayar = domain.DatePtr(payDate)

	require.NoError(t, wf.Apply(doc, domain.ActionPay, "Kasir", "", t0.Add(2*time.Hour)))
	assert.Equal(t, domain.StatusPaid, doc.Status)
	paid := doc.Payload.(*domain.PaymentVoucherPayload)
	require.NotNil(t, paid.TglPencairan)
	assert.Equal(t, payDate, *paid.TglPencairan)
	assert.True(t, doc.IsTerminal())
}

func TestWorkflow_StagedVoucherSecondApproval(t *testing.T) {
	wf := workflowFor(t, domain.PaymentVoucher)
	doc := newVoucher()
	at := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, wf.Apply(doc, domain.ActionVerify, "Manajer", "", at))
	require.NoError(t, wf.Apply(doc, domain.ActionApprove, "Direktur", "ok", at.Add(time.Minute)))
	assert.Equal(t, domain.StatusApproval2, doc.Status)
	p := doc.Payload.(*domain.PaymentVoucherPayload)
	require.NotNil(t, p.TglApproval)
	assert.Equal(t, at.Add(time.Minute), *p.TglApproval)

	// no skipping back to an earlier stage
	err := wf.Apply(doc, domain.ActionVerify, "Manajer", "", at.Add(2*time.Minute))
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
}

func TestWorkflow_BinaryReimbursement(t *testing.T) {
	wf := workflowFor(t, domain.Reimbursement)
	doc := &domain.Document{
		Type:   domain.Reimbursement,
		Status: domain.StatusPending,
		Payload: &domain.ReimbursementPayload{
			EmployeeName: "Budi",
			Category:     "Transport",
			Amount:       decimal.NewFromInt(250000),
		},
	}
	at := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, wf.Apply(doc, domain.ActionReject, "Manajer", "insufficient receipt", at))
	assert.Equal(t, domain.StatusRejected, doc.Status)
	assert.Equal(t, "insufficient receipt", doc.TransitionLog[0].Note)

	err := wf.Apply(doc, domain.ActionApprove, "Manajer", "", at.Add(time.Minute))
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
	assert.Equal(t, domain.StatusRejected, doc.Status)
	assert.Len(t, doc.TransitionLog, 1)
}

func TestWorkflow_LogIsMonotonic(t *testing.T) {
	wf := workflowFor(t, domain.RequestForInspection)
	doc := &domain.Document{
		Type:   domain.RequestForInspection,
		Status: domain.StatusOpen,
		Payload: &domain.RequestForInspectionPayload{
			Project: "Jetty", Location: "Dock 2", InspectionType: "Welding", RequestedBy: "QC",
			Inspector: "Andi", Result: "Pass",
		},
	}
	at := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, wf.Apply(doc, domain.ActionSchedule, "QC", "", at))
	// a clock that moves backwards must not produce a log that goes backwards
	require.NoError(t, wf.Apply(doc, domain.ActionInspect, "Andi", "", at.Add(-time.Hour)))
	require.NoError(t, wf.Apply(doc, domain.ActionClose, "QC", "", at.Add(time.Hour)))

	for i := 1; i < len(doc.TransitionLog); i++ {
		assert.False(t, doc.TransitionLog[i].Timestamp.Before(doc.TransitionLog[i-1].Timestamp))
	}
	assert.Equal(t, domain.StatusClosed, doc.Status)
}

func TestWorkflow_InspectionRequiresResult(t *testing.T) {
	wf := workflowFor(t, domain.RequestForInspection)
	doc := &domain.Document{
		Type:    domain.RequestForInspection,
		Status:  domain.StatusScheduled,
		Payload: &domain.RequestForInspectionPayload{Inspector: "Andi"},
	}

	err := wf.Apply(doc, domain.ActionInspect, "Andi", "", time.Now())
	require.Error(t, err)
	assert.Equal(t, map[string]string{"result": "is required"}, apperrors.FieldErrors(err))
	assert.Equal(t, domain.StatusScheduled, doc.Status)
	assert.Nil(t, doc.Payload.(*domain.RequestForInspectionPayload).TglInspeksi)
}

func TestWorkflow_AllowedActions(t *testing.T) {
	wf := workflowFor(t, domain.PaymentVoucher)

	assert.Equal(t, []domain.Action{domain.ActionVerify}, wf.AllowedActions(domain.StatusVerify))
	assert.Equal(t, []domain.Action{domain.ActionApprove, domain.ActionPay}, wf.AllowedActions(domain.StatusApproval1))
	assert.Empty(t, wf.AllowedActions(domain.StatusPaid))
}
