package dto

import "time"

// OrderResponse pedido con nombres de creador y destino resueltos.
type OrderResponse struct {
	ID            int64     `json:"id"`
	CreatedByID   int64     `json:"creado_por_id"`
	CreatorName   string    `json:"creado_por_nombre"`
	RecipientID   *int64    `json:"usuario_destino_id"`
	RecipientName *string   `json:"usuario_destino_nombre"`
	Status        string    `json:"estado"`
	CreatedAt     time.Time `json:"fecha_creacion"`
	UpdatedAt     time.Time `json:"fecha_actualizacion"`
}

// CreateOrderRequest alta de pedido. Estado vacío equivale a pendiente.
type CreateOrderRequest struct {
	RecipientID *int64 `json:"usuario_destino_id"`
	Status      string `json:"estado"`
}

// UpdateOrderRequest edición estructural del pedido: null en
// usuario_destino_id desasigna el destino.
type UpdateOrderRequest struct {
	RecipientID Optional[int64] `json:"usuario_destino_id"`
}

// ChangeOrderStatusRequest toggle pendiente/completado.
type ChangeOrderStatusRequest struct {
	Status string `json:"estado"`
}

// OrderListResponse página de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderItemResponse línea de pedido con nombre e imagen del producto.
type OrderItemResponse struct {
	ID           int64     `json:"id"`
	OrderID      int64     `json:"pedido_id"`
	ProductID    int64     `json:"producto_id"`
	ProductName  string    `json:"producto_nombre"`
	ProductImage *string   `json:"producto_imagen"`
	Quantity     int       `json:"cantidad"`
	CreatedAt    time.Time `json:"fecha_creacion"`
	UpdatedAt    time.Time `json:"fecha_actualizacion"`
}

// CreateOrderItemRequest alta de línea (producto único por pedido).
type CreateOrderItemRequest struct {
	OrderID   int64 `json:"pedido_id"`
	ProductID int64 `json:"producto_id"`
	Quantity  int   `json:"cantidad"`
}

// UpdateOrderItemRequest edición de línea.
type UpdateOrderItemRequest struct {
	Quantity *int `json:"cantidad"`
}

// OrderItemListResponse página de líneas de un pedido.
type OrderItemListResponse struct {
	Items []OrderItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CopySummaryProduct fila producto/cantidad dentro de un resumen de copia.
type CopySummaryProduct struct {
	ProductID   int64     `json:"producto_id"`
	ProductName string    `json:"producto_nombre"`
	Quantity    int       `json:"cantidad"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// CopySummarySupplier grupo de un proveedor dentro del resumen completo.
type CopySummarySupplier struct {
	SupplierID   int64                `json:"proveedor_id"`
	SupplierName string               `json:"proveedor_nombre"`
	Total        int                  `json:"cantidad_total"`
	Products     []CopySummaryProduct `json:"productos"`
}

// FullCopyResponse resumen completo de un pedido para copiarlo: total general
// y grupos por proveedor en orden de primera aparición.
type FullCopyResponse struct {
	OrderID       int64                 `json:"pedido_id"`
	Status        string                `json:"estado"`
	CreatorName   string                `json:"creado_por_nombre"`
	RecipientName *string               `json:"usuario_destino_nombre"`
	CreatedAt     time.Time             `json:"fecha_creacion"`
	UpdatedAt     time.Time             `json:"fecha_actualizacion"`
	Total         int                   `json:"cantidad_total"`
	Suppliers     []CopySummarySupplier `json:"proveedores"`
}

// SupplierCopyResponse resumen del pedido acotado a un proveedor: filas planas
// sin agrupar.
type SupplierCopyResponse struct {
	OrderID       int64                `json:"pedido_id"`
	Status        string               `json:"estado"`
	CreatorName   string               `json:"creado_por_nombre"`
	RecipientName *string              `json:"usuario_destino_nombre"`
	CreatedAt     time.Time            `json:"fecha_creacion"`
	UpdatedAt     time.Time            `json:"fecha_actualizacion"`
	SupplierID    int64                `json:"proveedor_id"`
	SupplierName  string               `json:"proveedor_nombre"`
	Total         int                  `json:"cantidad_total"`
	Products      []CopySummaryProduct `json:"productos"`
}
