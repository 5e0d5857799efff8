package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse producto con nombres de proveedor y categoría resueltos.
// Los precios y la categoría/imagen pueden ser null.
type ProductResponse struct {
	ID            int64               `json:"id"`
	SupplierID    int64               `json:"proveedor_id"`
	SupplierName  string              `json:"proveedor_nombre"`
	Name          string              `json:"nombre"`
	Description   *string             `json:"descripcion"`
	PurchasePrice decimal.NullDecimal `json:"precio_compra"`
	SalePrice     decimal.NullDecimal `json:"precio_venta"`
	CategoryID    *int64              `json:"categoria_id"`
	CategoryName  *string             `json:"categoria_nombre"`
	Image         *string             `json:"imagen"`
	CreatedAt     time.Time           `json:"fecha_creacion"`
	UpdatedAt     time.Time           `json:"fecha_actualizacion"`
}

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	SupplierID    int64               `json:"proveedor_id"`
	Name          string              `json:"nombre"`
	Description   *string             `json:"descripcion"`
	PurchasePrice decimal.NullDecimal `json:"precio_compra"`
	SalePrice     decimal.NullDecimal `json:"precio_venta"`
	CategoryID    *int64              `json:"categoria_id"`
}

// UpdateProductRequest edición parcial: solo se aplican los campos presentes
// en el payload; null limpia los campos anulables.
type UpdateProductRequest struct {
	SupplierID    *int64                    `json:"proveedor_id"`
	Name          *string                   `json:"nombre"`
	Description   Optional[string]          `json:"descripcion"`
	PurchasePrice Optional[decimal.Decimal] `json:"precio_compra"`
	SalePrice     Optional[decimal.Decimal] `json:"precio_venta"`
	CategoryID    Optional[int64]           `json:"categoria_id"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
