package entity

import "time"

// Supplier representa un proveedor: dueño de un conjunto de productos.
// CreatedBy referencia débil al usuario creador (NULL si el usuario se elimina).
type Supplier struct {
	ID        int64
	Name      string // único a nivel global
	Phone     *string
	CreatedBy *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
