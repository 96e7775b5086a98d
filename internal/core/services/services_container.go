package services

import (
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docflow_backend/internal/core/ports/services"
	"github.com/SscSPs/docflow_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Document: NewDocumentService(
			repos.DocumentRepo,
			WithReferenceRepository(repos.ReferenceRepo),
			WithMaxAttachmentBytes(cfg.MaxAttachmentBytes),
			WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
		),
		Reference: NewReferenceService(repos.ReferenceRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.DocumentSvcFacade  = (*documentService)(nil)
	_ portssvc.ReferenceSvcFacade = (*referenceService)(nil)
)
