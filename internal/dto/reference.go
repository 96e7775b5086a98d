package dto

import "github.com/SscSPs/docflow_backend/internal/core/domain"

// --- Reference data DTOs ---

// ListSuppliersResponse wraps the supplier master list.
type ListSuppliersResponse struct {
	Suppliers []domain.Supplier `json:"suppliers"`
}

// ListEmployeesResponse wraps the employee master list.
type ListEmployeesResponse struct {
	Employees []domain.Employee `json:"employees"`
}

// ListDepartmentsResponse wraps the department master list.
type ListDepartmentsResponse struct {
	Departments []domain.Department `json:"departments"`
}
