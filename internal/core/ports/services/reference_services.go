package services

import (
	"context"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
)

// ReferenceSvcFacade exposes the read-only master lists used for auto-fill.
type ReferenceSvcFacade interface {
	FindSupplierByPO(ctx context.Context, poNumber string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	FindEmployee(ctx context.Context, idOrName string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}
