package repositories

import (
	"context"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
)

// NumberAllocator produces a document number given the numbers already used by the
// document's type. The store calls it while holding its write lock.
type NumberAllocator func(existing []string) (string, error)

// DocumentMutation edits a private copy of a stored document. Returning an error
// discards the copy and leaves the store untouched.
type DocumentMutation func(doc *domain.Document) error

// DocumentReader defines read operations over the document store.
// Every returned document is a copy owned by the caller.
type DocumentReader interface {
	// FindDocumentByID retrieves a document by id, or apperrors.ErrNotFound.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments returns a snapshot in insertion order. An empty type lists every document.
	ListDocuments(ctx context.Context, docType domain.DocumentType) ([]domain.Document, error)
}

// DocumentWriter defines write operations over the document store.
type DocumentWriter interface {
	// InsertDocument assigns the id, allocates the number through allocate and stores doc
	// as one atomic step. A number already used within the type yields apperrors.ErrNumberCollision.
	InsertDocument(ctx context.Context, doc domain.Document, allocate NumberAllocator) (*domain.Document, error)

	// UpdateDocument applies mutate to a copy of the stored document and commits the copy
	// only if mutate succeeds. Id, type and number cannot be changed by mutate.
	UpdateDocument(ctx context.Context, documentID string, mutate DocumentMutation) (*domain.Document, error)

	// DeleteDocument removes a document, or returns apperrors.ErrNotFound.
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
