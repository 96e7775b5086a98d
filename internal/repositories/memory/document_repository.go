// Package memory provides the in-process document store and an in-memory
// reference catalog used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// DocumentRepository owns every document of the process. Mutations are serialised
// behind one lock; callers only ever receive copies.
type DocumentRepository struct {
	mu      sync.RWMutex
	order   []string
	docs    map[string]*domain.Document
	numbers map[domain.DocumentType]map[string]string
	newID   func() string
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryFacade = (*DocumentRepository)(nil)

// NewDocumentRepository creates an empty store that assigns uuid v4 ids.
func NewDocumentRepository() *DocumentRepository {
	return newDocumentRepository(func() string { return uuid.NewString() })
}

func newDocumentRepository(newID func() string) *DocumentRepository {
	return &DocumentRepository{
		docs:    make(map[string]*domain.Document),
		numbers: make(map[domain.DocumentType]map[string]string),
		newID:   newID,
	}
}

// InsertDocument allocates the number and stores the document under a single write lock,
// so two creations can never observe the same set of existing numbers.
func (r *DocumentRepository) InsertDocument(ctx context.Context, doc domain.Document, allocate portsrepo.NumberAllocator) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	taken := r.numbers[doc.Type]
	existing := make([]string, 0, len(taken))
	for _, id := range r.order {
		if d := r.docs[id]; d.Type == doc.Type {
			existing = append(existing, d.DocumentNumber)
		}
	}

	number, err := allocate(existing)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate %s number: %w", doc.Type, err)
	}
	if strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("%w: allocator returned an empty %s number", apperrors.ErrInternal, doc.Type)
	}
	if _, dup := taken[number]; dup {
		return nil, fmt.Errorf("%w: %s %s already exists", apperrors.ErrNumberCollision, doc.Type, number)
	}

	stored := doc.Clone()
	stored.DocumentID = r.newID()
	stored.DocumentNumber = number
	if _, dup := r.docs[stored.DocumentID]; dup {
		return nil, fmt.Errorf("%w: document id %s", apperrors.ErrDuplicate, stored.DocumentID)
	}

	if taken == nil {
		taken = make(map[string]string)
		r.numbers[doc.Type] = taken
	}
	taken[number] = stored.DocumentID
	r.docs[stored.DocumentID] = stored
	r.order = append(r.order, stored.DocumentID)

	return stored.Clone(), nil
}

// FindDocumentByID retrieves a copy of a stored document.
func (r *DocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.docs[documentID]
	if !ok {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	return d.Clone(), nil
}

// ListDocuments returns copies of the stored documents in insertion order.
func (r *DocumentRepository) ListDocuments(ctx context.Context, docType domain.DocumentType) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Document, 0, len(r.order))
	for _, id := range r.order {
		d := r.docs[id]
		if docType != "" && d.Type != docType {
			continue
		}
		out = append(out, *d.Clone())
	}
	return out, nil
}

// UpdateDocument runs mutate on a copy and swaps the copy in only when mutate succeeds.
func (r *DocumentRepository) UpdateDocument(ctx context.Context, documentID string, mutate portsrepo.DocumentMutation) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.docs[documentID]
	if !ok {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}

	next.DocumentID = current.DocumentID
	next.Type = current.Type
	next.DocumentNumber = current.DocumentNumber
	next.CreatedAt = current.CreatedAt
	next.CreatedBy = current.CreatedBy
	r.docs[documentID] = next

	return next.Clone(), nil
}

// DeleteDocument removes a document regardless of its status.
func (r *DocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.docs[documentID]
	if !ok {
		return fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	delete(r.docs, documentID)
	delete(r.numbers[d.Type], d.DocumentNumber)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == documentID })
	return nil
}
