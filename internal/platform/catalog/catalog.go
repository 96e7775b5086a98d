// Package catalog loads the master reference lists (suppliers, purchase orders,
// employees, departments) from a YAML seed file.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/docflow_backend/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Catalog is the decoded seed file.
type Catalog struct {
	Suppliers      []domain.Supplier         `yaml:"suppliers"`
	PurchaseOrders []domain.PurchaseOrderRef `yaml:"purchase_orders"`
	Employees      []domain.Employee         `yaml:"employees"`
	Departments    []domain.Department       `yaml:"departments"`
}

// Parse decodes and validates a catalog from YAML bytes. An empty document yields an empty catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if len(bytes.TrimSpace(data)) == 0 {
		return &c, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Validate checks keys are present and unique, and that every reference resolves.
func (c *Catalog) Validate() error {
	suppliers := make(map[string]bool, len(c.Suppliers))
	for i, s := range c.Suppliers {
		if strings.TrimSpace(s.SupplierCode) == "" || strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("suppliers[%d]: code and name are required", i)
		}
		if suppliers[s.SupplierCode] {
			return fmt.Errorf("suppliers[%d]: duplicate code %q", i, s.SupplierCode)
		}
		suppliers[s.SupplierCode] = true
	}

	pos := make(map[string]bool, len(c.PurchaseOrders))
	for i, po := range c.PurchaseOrders {
		if strings.TrimSpace(po.PONumber) == "" {
			return fmt.Errorf("purchase_orders[%d]: po_number is required", i)
		}
		if pos[po.PONumber] {
			return fmt.Errorf("purchase_orders[%d]: duplicate po_number %q", i, po.PONumber)
		}
		if !suppliers[po.SupplierCode] {
			return fmt.Errorf("purchase_orders[%d]: unknown supplier_code %q", i, po.SupplierCode)
		}
		pos[po.PONumber] = true
	}

	departments := make(map[string]bool, len(c.Departments))
	for i, d := range c.Departments {
		if strings.TrimSpace(d.Code) == "" {
			return fmt.Errorf("departments[%d]: code is required", i)
		}
		if departments[d.Code] {
			return fmt.Errorf("departments[%d]: duplicate code %q", i, d.Code)
		}
		departments[d.Code] = true
	}

	employees := make(map[string]bool, len(c.Employees))
	for i, e := range c.Employees {
		if strings.TrimSpace(e.EmployeeID) == "" || strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("employees[%d]: id and name are required", i)
		}
		if employees[e.EmployeeID] {
			return fmt.Errorf("employees[%d]: duplicate id %q", i, e.EmployeeID)
		}
		if e.Department != "" && !departments[e.Department] {
			return fmt.Errorf("employees[%d]: unknown department %q", i, e.Department)
		}
		employees[e.EmployeeID] = true
	}
	return nil
}
