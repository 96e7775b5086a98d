package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	"github.com/SscSPs/docflow_backend/internal/platform/catalog"
)

// ReferenceRepository serves master data from a loaded catalog. It is read-only.
type ReferenceRepository struct {
	suppliers   []domain.Supplier
	supplierBy  map[string]domain.Supplier
	poSupplier  map[string]string
	employees   []domain.Employee
	departments []domain.Department
}

// Ensure implementation matches interface
var _ portsrepo.ReferenceRepositoryFacade = (*ReferenceRepository)(nil)

// NewReferenceRepository indexes a validated catalog. A nil catalog yields empty lists.
func NewReferenceRepository(c *catalog.Catalog) *ReferenceRepository {
	if c == nil {
		c = &catalog.Catalog{}
	}
	r := &ReferenceRepository{
		suppliers:   slices.Clone(c.Suppliers),
		supplierBy:  make(map[string]domain.Supplier, len(c.Suppliers)),
		poSupplier:  make(map[string]string, len(c.PurchaseOrders)),
		employees:   slices.Clone(c.Employees),
		departments: slices.Clone(c.Departments),
	}
	for _, s := range c.Suppliers {
		r.supplierBy[s.SupplierCode] = s
	}
	for _, po := range c.PurchaseOrders {
		r.poSupplier[strings.ToUpper(po.PONumber)] = po.SupplierCode
	}
	return r
}

// FindSupplierByPO resolves the supplier a purchase order was issued to.
func (r *ReferenceRepository) FindSupplierByPO(ctx context.Context, poNumber string) (*domain.Supplier, error) {
	code, ok := r.poSupplier[strings.ToUpper(strings.TrimSpace(poNumber))]
	if !ok {
		return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, poNumber)
	}
	s, ok := r.supplierBy[code]
	if !ok {
		return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, code)
	}
	return &s, nil
}

func (r *ReferenceRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return slices.Clone(r.suppliers), nil
}

// FindEmployee matches an employee id exactly, or a name case-insensitively.
func (r *ReferenceRepository) FindEmployee(ctx context.Context, idOrName string) (*domain.Employee, error) {
	key := strings.TrimSpace(idOrName)
	for _, e := range r.employees {
		if e.EmployeeID == key || strings.EqualFold(e.Name, key) {
			found := e
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, idOrName)
}

func (r *ReferenceRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return slices.Clone(r.employees), nil
}

func (r *ReferenceRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return slices.Clone(r.departments), nil
}
