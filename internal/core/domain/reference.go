package domain

// Supplier is a master-data vendor.
type Supplier struct {
	SupplierCode string `json:"supplierCode" yaml:"code"`
	Name         string `json:"name" yaml:"name"`
}

// PurchaseOrderRef links a purchase order number to its supplier; used to auto-fill receipts.
type PurchaseOrderRef struct {
	PONumber     string `json:"poNumber" yaml:"po_number"`
	SupplierCode string `json:"supplierCode" yaml:"supplier_code"`
}

// Employee is a master-data staff member; used to auto-fill the department of claims.
type Employee struct {
	EmployeeID string `json:"employeeID" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Department string `json:"department" yaml:"department"`
}

// Department is a master-data organisational unit.
type Department struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}
