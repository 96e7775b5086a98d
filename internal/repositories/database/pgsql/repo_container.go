package pgsql

import (
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	"github.com/SscSPs/docflow_backend/internal/repositories/memory"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider reads reference data from Postgres. Documents stay in the
// process-owned memory store.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:  memory.NewDocumentRepository(),
		ReferenceRepo: NewReferenceRepository(dbPool),
	}
}
