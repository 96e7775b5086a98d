package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PgxReferenceRepository reads master reference lists maintained by other systems.
// The engine never writes to these tables.
type PgxReferenceRepository struct {
	BaseRepository
}

// NewReferenceRepository creates a read-only reference repository over q.
func NewReferenceRepository(q Querier) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Querier: q}}
}

// Ensure implementation matches interface
var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

// FindSupplierByPO resolves the supplier a purchase order was issued to.
func (r *PgxReferenceRepository) FindSupplierByPO(ctx context.Context, poNumber string) (*domain.Supplier, error) {
	query := `
		SELECT s.code, s.name
		FROM purchase_orders po
		JOIN suppliers s ON s.code = po.supplier_code
		WHERE UPPER(po.po_number) = UPPER($1);
	`
	var s domain.Supplier
	err := r.Querier.QueryRow(ctx, query, strings.TrimSpace(poNumber)).Scan(&s.SupplierCode, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, poNumber)
		}
		return nil, fmt.Errorf("failed to find supplier for purchase order %s: %w", poNumber, err)
	}
	return &s, nil
}

// ListSuppliers retrieves all suppliers ordered by code.
func (r *PgxReferenceRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT code, name
		FROM suppliers
		ORDER BY code;
	`
	rows, err := r.Querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Supplier, error) {
		var s domain.Supplier
		err := row.Scan(&s.SupplierCode, &s.Name)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan suppliers: %w", err)
	}
	return suppliers, nil
}

// FindEmployee matches an employee id exactly, or a name case-insensitively.
func (r *PgxReferenceRepository) FindEmployee(ctx context.Context, idOrName string) (*domain.Employee, error) {
	query := `
		SELECT id, name, COALESCE(department_code, '')
		FROM employees
		WHERE id = $1 OR LOWER(name) = LOWER($1)
		ORDER BY (id = $1) DESC, id
		LIMIT 1;
	`
	var e domain.Employee
	err := r.Querier.QueryRow(ctx, query, strings.TrimSpace(idOrName)).Scan(&e.EmployeeID, &e.Name, &e.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, idOrName)
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", idOrName, err)
	}
	return &e, nil
}

// ListEmployees retrieves all employees ordered by id.
func (r *PgxReferenceRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT id, name, COALESCE(department_code, '')
		FROM employees
		ORDER BY id;
	`
	rows, err := r.Querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Employee, error) {
		var e domain.Employee
		err := row.Scan(&e.EmployeeID, &e.Name, &e.Department)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return employees, nil
}

// ListDepartments retrieves all departments ordered by code.
func (r *PgxReferenceRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `
		SELECT code, name
		FROM departments
		ORDER BY code;
	`
	rows, err := r.Querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Department, error) {
		var d domain.Department
		err := row.Scan(&d.Code, &d.Name)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}
	return departments, nil
}
