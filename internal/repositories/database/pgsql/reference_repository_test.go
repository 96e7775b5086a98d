package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceRepository_FindSupplierByPO(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReferenceRepository(mock)
	query := `SELECT s.code, s.name\s+FROM purchase_orders po\s+JOIN suppliers s ON s.code = po.supplier_code\s+WHERE UPPER\(po.po_number\) = UPPER\(\$1\)`

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("PO-2025-09-001").
			WillReturnRows(pgxmock.NewRows([]string{"code", "name"}).AddRow("SUP-001", "PT Sinar Jaya Abadi"))

		s, err := repo.FindSupplierByPO(ctx, " PO-2025-09-001 ")
		assert.NoError(t, err)
		assert.Equal(t, &domain.Supplier{SupplierCode: "SUP-001", Name: "PT Sinar Jaya Abadi"}, s)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("PO-404").WillReturnError(pgx.ErrNoRows)

		s, err := repo.FindSupplierByPO(ctx, "PO-404")
		assert.Nil(t, s)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mock.ExpectQuery(query).WithArgs("PO-1").WillReturnError(dbErr)

		_, err := repo.FindSupplierByPO(ctx, "PO-1")
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to find supplier")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReferenceRepository_ListSuppliers(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReferenceRepository(mock)
	mock.ExpectQuery(`SELECT code, name\s+FROM suppliers\s+ORDER BY code`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "name"}).
			AddRow("SUP-001", "PT Sinar Jaya Abadi").
			AddRow("SUP-002", "CV Maju Bersama"))

	suppliers, err := repo.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Supplier{
		{SupplierCode: "SUP-001", Name: "PT Sinar Jaya Abadi"},
		{SupplierCode: "SUP-002", Name: "CV Maju Bersama"},
	}, suppliers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceRepository_FindEmployee(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReferenceRepository(mock)
	query := `SELECT id, name, COALESCE\(department_code, ''\)\s+FROM employees\s+WHERE id = \$1 OR LOWER\(name\) = LOWER\(\$1\)`

	mock.ExpectQuery(query).WithArgs("budi santoso").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "department_code"}).AddRow("EMP-001", "Budi Santoso", "FIN"))

	e, err := repo.FindEmployee(ctx, "budi santoso")
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", e.EmployeeID)
	assert.Equal(t, "FIN", e.Department)

	mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
	_, err = repo.FindEmployee(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceRepository_ListEmployeesAndDepartments(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReferenceRepository(mock)

	mock.ExpectQuery(`FROM employees\s+ORDER BY id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "department_code"}).AddRow("EMP-001", "Budi Santoso", "FIN"))
	employees, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)

	mock.ExpectQuery(`FROM departments\s+ORDER BY code`).WillReturnError(errors.New("boom"))
	_, err = repo.ListDepartments(ctx)
	assert.ErrorContains(t, err, "failed to query departments")

	assert.NoError(t, mock.ExpectationsWereMet())
}
