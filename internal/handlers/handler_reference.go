package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/docflow_backend/internal/core/ports/services"
	"github.com/SscSPs/docflow_backend/internal/dto"
	"github.com/SscSPs/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves the read-only master lists.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

// RegisterReferenceRoutes registers the master data lookups.
func RegisterReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := &referenceHandler{referenceService: referenceService}

	ref := rg.Group("/reference")
	{
		ref.GET("/suppliers", h.listSuppliers)
		ref.GET("/suppliers/by-po/:po", h.findSupplierByPO)
		ref.GET("/employees", h.listEmployees)
		ref.GET("/employees/:employee", h.findEmployee)
		ref.GET("/departments", h.listDepartments)
	}
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Security BearerAuth
// @Router /reference/suppliers [get]
func (h *referenceHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	suppliers, err := h.referenceService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, dto.ListSuppliersResponse{Suppliers: suppliers})
}

// findSupplierByPO godoc
// @Summary Find the supplier of a purchase order
// @Description Used to auto-fill goods receipts.
// @Tags reference
// @Produce  json
// @Param   po path string true "Purchase order number"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to find supplier"
// @Security BearerAuth
// @Router /reference/suppliers/by-po/{po} [get]
func (h *referenceHandler) findSupplierByPO(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("po_number", c.Param("po")))
	supplier, err := h.referenceService.FindSupplierByPO(c.Request.Context(), c.Param("po"))
	if err != nil {
		respondError(c, logger, err, "Failed to find supplier")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// listEmployees godoc
// @Summary List employees
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Security BearerAuth
// @Router /reference/employees [get]
func (h *referenceHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employees, err := h.referenceService.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ListEmployeesResponse{Employees: employees})
}

// findEmployee godoc
// @Summary Find an employee by id or name
// @Tags reference
// @Produce  json
// @Param   employee path string true "Employee ID or name"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /reference/employees/{employee} [get]
func (h *referenceHandler) findEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employee, err := h.referenceService.FindEmployee(c.Request.Context(), c.Param("employee"))
	if err != nil {
		respondError(c, logger, err, "Failed to find employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// listDepartments godoc
// @Summary List departments
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Failure 500 {object} map[string]string "Failed to list departments"
// @Security BearerAuth
// @Router /reference/departments [get]
func (h *referenceHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departments, err := h.referenceService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, dto.ListDepartmentsResponse{Departments: departments})
}
