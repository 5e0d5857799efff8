package order

import "time"

// SummaryItem es una línea de pedido ya unida con su producto y proveedor,
// tal como la entrega el repositorio: ordenada por id de línea ascendente.
type SummaryItem struct {
	ItemID       int64
	ProductID    int64
	ProductName  string
	SupplierID   int64
	SupplierName string
	Quantity     int
	CreatedAt    time.Time // fecha de creación de la línea
}

// ProductLine es una fila producto/cantidad dentro de un resumen.
type ProductLine struct {
	ProductID   int64
	ProductName string
	Quantity    int
	CreatedAt   time.Time
}

// SupplierGroup agrupa las líneas de un proveedor con su subtotal.
type SupplierGroup struct {
	SupplierID   int64
	SupplierName string
	Total        int
	Products     []ProductLine
}

// Summary es el resumen completo de un pedido: total general y grupos por
// proveedor en orden de primera aparición entre las líneas.
type Summary struct {
	Total     int
	Suppliers []SupplierGroup
}

// Summarize recorre las líneas en su orden natural y arma el resumen completo.
// Los proveedores se agrupan con un acumulador de inserción ordenada (slice +
// índice por id) para que el orden de salida sea el de primera aparición y no
// el alfabético. Un pedido sin líneas produce total 0 y grupos vacíos.
func Summarize(items []SummaryItem) Summary {
	s := Summary{Suppliers: make([]SupplierGroup, 0, 4)}
	index := make(map[int64]int) // supplier id -> posición en s.Suppliers

	for _, it := range items {
		s.Total += it.Quantity

		pos, ok := index[it.SupplierID]
		if !ok {
			pos = len(s.Suppliers)
			index[it.SupplierID] = pos
			s.Suppliers = append(s.Suppliers, SupplierGroup{
				SupplierID:   it.SupplierID,
				SupplierName: it.SupplierName,
				Products:     make([]ProductLine, 0, 4),
			})
		}
		g := &s.Suppliers[pos]
		g.Total += it.Quantity
		g.Products = append(g.Products, ProductLine{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			CreatedAt:   it.CreatedAt,
		})
	}
	return s
}

// Flatten suma las líneas (ya filtradas a un proveedor) y devuelve el total y
// las filas planas, sin agrupar. Sin líneas devuelve 0 y lista vacía.
func Flatten(items []SummaryItem) (int, []ProductLine) {
	total := 0
	lines := make([]ProductLine, 0, len(items))
	for _, it := range items {
		total += it.Quantity
		lines = append(lines, ProductLine{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			CreatedAt:   it.CreatedAt,
		})
	}
	return total, lines
}
