package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Pertenece a un Supplier
// (se elimina en cascada con él) y referencia débil a una Category
// (queda en NULL si la categoría se elimina).
// El nombre es único por proveedor sin distinguir mayúsculas.
type Product struct {
	ID            int64
	SupplierID    int64
	Name          string
	Description   *string
	PurchasePrice decimal.NullDecimal // numeric(10,2), opcional
	SalePrice     decimal.NullDecimal // numeric(10,2), opcional
	CategoryID    *int64
	Image         *string // ruta relativa bajo el directorio de media
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Category agrupa productos. Nombre único global.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
