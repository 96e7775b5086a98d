package services

import (
	"context"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/SscSPs/docflow_backend/internal/dto"
)

// DocumentReaderSvc defines read operations over documents.
type DocumentReaderSvc interface {
	// GetDocument retrieves a document by id.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)

	// QueryDocuments filters, sorts and paginates the documents of one type (or all types).
	QueryDocuments(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)

	// AllowedActions lists the workflow actions legal from the document's current status.
	AllowedActions(ctx context.Context, documentID string) ([]domain.Action, error)
}

// DocumentWriterSvc defines write operations over documents. actor is recorded in the
// audit fields and the transition log.
type DocumentWriterSvc interface {
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, actor string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, actor string) (*domain.Document, error)
	DeleteDocument(ctx context.Context, documentID string, actor string) error

	// TransitionDocument performs one workflow action. On failure the document is unchanged.
	TransitionDocument(ctx context.Context, documentID string, req dto.TransitionRequest, actor string) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
