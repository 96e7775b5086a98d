package repositories

import (
	"context"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
)

// SupplierReader defines lookups over supplier master data.
type SupplierReader interface {
	// FindSupplierByPO resolves the supplier a purchase order was issued to.
	FindSupplierByPO(ctx context.Context, poNumber string) (*domain.Supplier, error)

	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// EmployeeReader defines lookups over staff master data.
type EmployeeReader interface {
	// FindEmployee matches an employee id, or a name case-insensitively.
	FindEmployee(ctx context.Context, idOrName string) (*domain.Employee, error)

	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// ReferenceRepositoryFacade is the read-only master reference list consumed for auto-fill.
type ReferenceRepositoryFacade interface {
	SupplierReader
	EmployeeReader
}
