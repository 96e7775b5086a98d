package memory

import (
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	"github.com/SscSPs/docflow_backend/internal/platform/catalog"
)

// NewRepositoryProvider wires an empty document store and a catalog-backed reference list.
func NewRepositoryProvider(c *catalog.Catalog) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:  NewDocumentRepository(),
		ReferenceRepo: NewReferenceRepository(c),
	}
}
