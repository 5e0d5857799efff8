package dto

import "time"

// SupplierResponse representación pública de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Phone     *string   `json:"telefono"`
	CreatedBy *int64    `json:"creado_por_id"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name  string  `json:"nombre"`
	Phone *string `json:"telefono"`
}

// UpdateSupplierRequest edición parcial: solo se aplican los campos presentes.
type UpdateSupplierRequest struct {
	Name  *string          `json:"nombre"`
	Phone Optional[string] `json:"telefono"`
}

// SupplierListResponse página de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
