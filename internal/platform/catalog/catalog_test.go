package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
suppliers:
  - code: SUP-1
    name: PT Satu
purchase_orders:
  - po_number: PO-1
    supplier_code: SUP-1
departments:
  - code: FIN
    name: Finance
employees:
  - id: E1
    name: Budi
    department: FIN
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Len(t, c.Suppliers, 1)
	assert.Equal(t, "SUP-1", c.PurchaseOrders[0].SupplierCode)
	assert.Equal(t, "FIN", c.Employees[0].Department)

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Suppliers)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"unknown key", "vendors: []", "field vendors not found"},
		{"duplicate supplier", "suppliers:\n  - {code: A, name: x}\n  - {code: A, name: y}", "duplicate code"},
		{"dangling po", "purchase_orders:\n  - {po_number: PO-9, supplier_code: NOPE}", "unknown supplier_code"},
		{"unknown department", "employees:\n  - {id: E1, name: a, department: XX}", "unknown department"},
		{"missing employee name", "employees:\n  - {id: E1}", "id and name are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PT Satu", c.Suppliers[0].Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read")
}

func TestShippedCatalogIsValid(t *testing.T) {
	c, err := LoadFile(filepath.Join("..", "..", "..", "configs", "catalog.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, c.Suppliers)
	assert.NotEmpty(t, c.Employees)
}
