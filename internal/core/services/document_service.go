package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docflow_backend/internal/core/ports/services"
	"github.com/SscSPs/docflow_backend/internal/dto"
	"github.com/SscSPs/docflow_backend/internal/utils/calculations"
	"github.com/SscSPs/docflow_backend/internal/utils/filtering"
	"github.com/SscSPs/docflow_backend/internal/utils/pagination"
	"github.com/SscSPs/docflow_backend/internal/utils/sequence"
)

const (
	defaultMaxAttachmentBytes = 10 << 20
	defaultPageSize           = 20
	defaultMaxPageSize        = 100
)

// documentService implements the DocumentSvcFacade interface
type documentService struct {
	BaseService
	documentRepo       portsrepo.DocumentRepositoryFacade
	referenceRepo      portsrepo.ReferenceRepositoryFacade
	now                func() time.Time
	maxAttachmentBytes int64
	pageSize           int
	maxPageSize        int
}

// DocumentServiceOption is a functional option for configuring the document service
type DocumentServiceOption func(*documentService)

// WithReferenceRepository enables auto-fill from master reference lists.
func WithReferenceRepository(repo portsrepo.ReferenceRepositoryFacade) DocumentServiceOption {
	return func(s *documentService) {
		s.referenceRepo = repo
	}
}

// WithClock overrides the time source used for numbering, audit fields and the transition log.
func WithClock(now func() time.Time) DocumentServiceOption {
	return func(s *documentService) {
		s.now = now
	}
}

// WithMaxAttachmentBytes bounds the declared size of attachments.
func WithMaxAttachmentBytes(n int64) DocumentServiceOption {
	return func(s *documentService) {
		if n > 0 {
			s.maxAttachmentBytes = n
		}
	}
}

// WithPageSizes sets the default and maximum number of documents per query page.
func WithPageSizes(pageSize, maxPageSize int) DocumentServiceOption {
	return func(s *documentService) {
		if pageSize > 0 {
			s.pageSize = pageSize
		}
		if maxPageSize > 0 {
			s.maxPageSize = maxPageSize
		}
	}
}

// NewDocumentService creates a document service over repo.
func NewDocumentService(repo portsrepo.DocumentRepositoryFacade, options ...DocumentServiceOption) portssvc.DocumentSvcFacade {
	svc := &documentService{
		BaseService:        newBaseService("documents"),
		documentRepo:       repo,
		now:                time.Now,
		maxAttachmentBytes: defaultMaxAttachmentBytes,
		pageSize:           defaultPageSize,
		maxPageSize:        defaultMaxPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// CreateDocument validates req, assigns the next number of its type and stores the document
// in the type's initial status. Creation does not append to the transition log.
func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, actor string) (*domain.Document, error) {
	def, ok := domain.Lookup(req.Type)
	if !ok {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown document type %q", req.Type))
	}

	payload, err := dto.DecodePayload(req.Type, req.Payload)
	if err != nil {
		return nil, err
	}
	// Stage stamps are written by transitions only.
	domain.PreserveStamps(payload, nil)
	s.autoFill(ctx, payload)

	lines := dto.ToDomainLineItems(req.LineItems)
	if err := s.validate(def, payload, lines); err != nil {
		return nil, err
	}

	now := s.now()
	doc := domain.Document{
		Type:          req.Type,
		DocumentDate:  domain.NewDate(now),
		Status:        def.Workflow.Initial(),
		Payload:       payload,
		LineItems:     lines,
		TransitionLog: []domain.TransitionEntry{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
			Version:       1,
		},
	}
	if req.DocumentDate != nil && !req.DocumentDate.IsZero() {
		doc.DocumentDate = *req.DocumentDate
	}
	calculations.Recompute(&doc)

	created, err := s.documentRepo.InsertDocument(ctx, doc, func(existing []string) (string, error) {
		return sequence.Allocate(def.Numbering, existing, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to insert document", slog.String("type", string(req.Type)))
		return nil, fmt.Errorf("failed to create %s: %w", req.Type, err)
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_id", created.DocumentID),
		slog.String("document_number", created.DocumentNumber),
		slog.String("type", string(created.Type)))
	return created, nil
}

// GetDocument retrieves a document by id.
func (s *documentService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document", slog.String("document_id", documentID))
		}
		return nil, err
	}
	return doc, nil
}

// UpdateDocument patches the fields of a non-terminal document. Derived fields are
// recomputed and stage stamps are kept as they were.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, actor string) (*domain.Document, error) {
	updated, err := s.documentRepo.UpdateDocument(ctx, documentID, func(doc *domain.Document) error {
		def, ok := domain.Lookup(doc.Type)
		if !ok {
			return fmt.Errorf("%w: document %s has unknown type %q", apperrors.ErrInternal, doc.DocumentID, doc.Type)
		}
		if def.Workflow.IsTerminal(doc.Status) {
			return fmt.Errorf("%w: %s %s is %s and can no longer be edited",
				apperrors.ErrIllegalTransition, doc.Type, doc.DocumentNumber, doc.Status)
		}

		if len(req.Payload) > 0 {
			current := doc.Payload
			if current == nil {
				current = def.NewPayload()
			}
			merged, err := dto.MergePayload(current, req.Payload)
			if err != nil {
				return err
			}
			domain.PreserveStamps(merged, doc.Payload)
			s.autoFill(ctx, merged)
			doc.Payload = merged
		}
		if req.LineItems != nil {
			doc.LineItems = dto.ToDomainLineItems(*req.LineItems)
		}
		if req.DocumentDate != nil && !req.DocumentDate.IsZero() {
			doc.DocumentDate = *req.DocumentDate
		}

		if err := s.validate(def, doc.Payload, doc.LineItems); err != nil {
			return err
		}
		calculations.Recompute(doc)
		doc.Touch(actor, s.now())
		return nil
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to update document", documentID)
		return nil, err
	}

	s.LogInfo(ctx, "Document updated", slog.String("document_id", documentID), slog.Int64("version", updated.Version))
	return updated, nil
}

// DeleteDocument removes a document regardless of its status.
func (s *documentService) DeleteDocument(ctx context.Context, documentID string, actor string) error {
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		s.logMutationError(ctx, err, "Failed to delete document", documentID)
		return err
	}
	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID), slog.String("actor", actor))
	return nil
}

// TransitionDocument merges req.Fields into the payload and performs req.Action.
// Fields may only carry the stage fields of the action. They are validated like an
// update and only kept when the transition succeeds.
func (s *documentService) TransitionDocument(ctx context.Context, documentID string, req dto.TransitionRequest, actor string) (*domain.Document, error) {
	var from domain.Status
	updated, err := s.documentRepo.UpdateDocument(ctx, documentID, func(doc *domain.Document) error {
		def, ok := domain.Lookup(doc.Type)
		if !ok {
			return fmt.Errorf("%w: document %s has unknown type %q", apperrors.ErrInternal, doc.DocumentID, doc.Type)
		}
		from = doc.Status
		if _, ok := def.Workflow.Target(doc.Status, req.Action); !ok {
			if def.Workflow.IsTerminal(doc.Status) {
				return fmt.Errorf("%w: %s %s is in terminal status %s",
					apperrors.ErrIllegalTransition, doc.Type, doc.DocumentNumber, doc.Status)
			}
			return fmt.Errorf("%w: action %q is not allowed from status %s",
				apperrors.ErrIllegalTransition, req.Action, doc.Status)
		}

		if len(req.Fields) > 0 {
			current := doc.Payload
			if current == nil {
				current = def.NewPayload()
			}
			if err := dto.RestrictPatch(req.Fields, req.Action, domain.StageFields(current, req.Action)); err != nil {
				return err
			}
			merged, err := dto.MergePayload(current, req.Fields)
			if err != nil {
				return err
			}
			domain.PreserveStamps(merged, doc.Payload)
			if err := s.validate(def, merged, doc.LineItems); err != nil {
				return err
			}
			doc.Payload = merged
		}

		now := s.now()
		if err := def.Workflow.Apply(doc, req.Action, actor, strings.TrimSpace(req.Note), now); err != nil {
			return err
		}
		calculations.Recompute(doc)
		doc.Touch(actor, now)
		return nil
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to transition document", documentID, slog.String("action", string(req.Action)))
		return nil, err
	}

	s.LogInfo(ctx, "Document transitioned",
		slog.String("document_id", documentID),
		slog.String("action", string(req.Action)),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)))
	return updated, nil
}

// AllowedActions lists the actions legal from the document's current status.
func (s *documentService) AllowedActions(ctx context.Context, documentID string) ([]domain.Action, error) {
	doc, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	def, ok := domain.Lookup(doc.Type)
	if !ok {
		return []domain.Action{}, nil
	}
	actions := def.Workflow.AllowedActions(doc.Status)
	if actions == nil {
		return []domain.Action{}, nil
	}
	return actions, nil
}

// QueryDocuments filters and sorts a snapshot of the store and returns one page of it.
func (s *documentService) QueryDocuments(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	if params.Type != "" {
		if _, ok := domain.Lookup(params.Type); !ok {
			return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown document type %q", params.Type))
		}
	}
	criteria, err := buildCriteria(params)
	if err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListDocuments(ctx, params.Type)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("type", string(params.Type)))
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	result := filtering.Query(docs, criteria)

	limit := params.Limit
	if limit <= 0 {
		limit = s.pageSize
	}
	limit = min(limit, s.maxPageSize)

	start := 0
	if params.NextToken != "" {
		offset, lastID, err := pagination.DecodeCursorToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("nextToken", "invalid pagination token")
		}
		ids := make([]string, len(result))
		for i := range result {
			ids[i] = result[i].DocumentID
		}
		start = pagination.Resume(ids, offset, lastID)
	}

	from, to, more := pagination.Page(len(result), start, limit)
	page := result[from:to]
	resp := &dto.ListDocumentsResponse{Documents: dto.ToDocumentResponses(page)}
	if more && len(page) > 0 {
		token := pagination.EncodeCursorToken(to, page[len(page)-1].DocumentID)
		resp.NextToken = &token
	}

	s.LogDebug(ctx, "Documents queried",
		slog.Int("matched", len(result)),
		slog.Int("returned", len(page)))
	return resp, nil
}

func (s *documentService) validate(def domain.Definition, payload domain.Payload, lines []domain.LineItem) error {
	return collectValidation(
		domain.ValidatePayload(payload),
		domain.ValidateLineItems(def, lines),
		domain.ValidateAttachment(payload, s.maxAttachmentBytes),
	)
}

// autoFill completes blank payload fields from the master reference lists.
// Lookups are best-effort: a missing entry leaves the field for validation to report.
func (s *documentService) autoFill(ctx context.Context, payload domain.Payload) {
	if s.referenceRepo == nil {
		return
	}
	switch p := payload.(type) {
	case *domain.TandaTerimaPayload:
		if p.Supplier != "" || p.PONumber == "" {
			return
		}
		supplier, err := s.referenceRepo.FindSupplierByPO(ctx, p.PONumber)
		if err != nil {
			s.logLookupError(ctx, err, "purchase order", p.PONumber)
			return
		}
		p.Supplier = supplier.Name
	case *domain.ReimbursementPayload:
		if p.Department != "" || p.EmployeeName == "" {
			return
		}
		if dept, ok := s.departmentOf(ctx, p.EmployeeName); ok {
			p.Department = dept
		}
	case *domain.PurchaseRequestPayload:
		if p.Department != "" || p.Requester == "" {
			return
		}
		if dept, ok := s.departmentOf(ctx, p.Requester); ok {
			p.Department = dept
		}
	}
}

func (s *documentService) departmentOf(ctx context.Context, employee string) (string, bool) {
	e, err := s.referenceRepo.FindEmployee(ctx, employee)
	if err != nil {
		s.logLookupError(ctx, err, "employee", employee)
		return "", false
	}
	return e.Department, e.Department != ""
}

func (s *documentService) logLookupError(ctx context.Context, err error, kind, key string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "No reference entry for auto-fill", slog.String("kind", kind), slog.String("key", key))
		return
	}
	s.LogError(ctx, err, "Reference lookup failed during auto-fill", slog.String("kind", kind), slog.String("key", key))
}

func (s *documentService) logMutationError(ctx context.Context, err error, msg, documentID string, keyvals ...any) {
	args := append([]any{slog.String("document_id", documentID)}, keyvals...)
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrIllegalTransition):
		s.LogDebug(ctx, msg, append(args, slog.String("reason", err.Error()))...)
	default:
		s.LogError(ctx, err, msg, args...)
	}
}

// collectValidation folds several validation results into one ValidationError.
// Non-validation errors are returned as-is.
func collectValidation(errs ...error) error {
	combined := &apperrors.ValidationError{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		fields := apperrors.FieldErrors(err)
		if fields == nil {
			return err
		}
		for field, msg := range fields {
			combined.Add(field, msg)
		}
	}
	return combined.OrNil()
}

// buildCriteria turns the query parameters into filter predicates and a sort key.
func buildCriteria(params dto.ListDocumentsParams) (filtering.Criteria, error) {
	filters := make(map[string]filtering.Predicate)
	add := func(field string, p filtering.Predicate) {
		if existing, ok := filters[field]; ok {
			filters[field] = filtering.All{existing, p}
			return
		}
		filters[field] = p
	}

	for field, v := range params.Contains {
		add(field, filtering.Contains(v))
	}
	for field, v := range params.Equals {
		add(field, filtering.Equals(v))
	}

	ranges := make(map[string]*filtering.DateRange)
	rangeFor := func(field string) *filtering.DateRange {
		r, ok := ranges[field]
		if !ok {
			r = &filtering.DateRange{}
			ranges[field] = r
		}
		return r
	}
	verr := &apperrors.ValidationError{}
	for field, v := range params.From {
		t, _, err := parseBound(v)
		if err != nil {
			verr.Add("from["+field+"]", err.Error())
			continue
		}
		rangeFor(field).From = &t
	}
	for field, v := range params.To {
		t, dateOnly, err := parseBound(v)
		if err != nil {
			verr.Add("to["+field+"]", err.Error())
			continue
		}
		if dateOnly {
			// An upper calendar-date bound includes the whole day.
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		rangeFor(field).To = &t
	}
	if err := verr.OrNil(); err != nil {
		return filtering.Criteria{}, err
	}
	for field, r := range ranges {
		add(field, *r)
	}

	criteria := filtering.Criteria{Filters: filters}
	if params.Sort != "" {
		criteria.Sort = &filtering.Sort{Field: params.Sort, Desc: strings.EqualFold(params.Order, "desc")}
	}
	return criteria, nil
}

func parseBound(v string) (time.Time, bool, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(domain.DateLayout, v); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q: expected %s or RFC3339", v, domain.DateLayout)
	}
	return t, false, nil
}
