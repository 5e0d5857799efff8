package dto

import "time"

// CategoryResponse representación pública de una categoría de producto.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name string `json:"nombre"`
}

// UpdateCategoryRequest edición parcial de categoría.
type UpdateCategoryRequest struct {
	Name *string `json:"nombre"`
}

// CategoryListResponse página de categorías (ordenadas por nombre).
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
