package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain/order"
)

func linea(itemID, productoID int64, nombre string, proveedorID int64, proveedor string, cantidad int) order.SummaryItem {
	return order.SummaryItem{
		ItemID:       itemID,
		ProductID:    productoID,
		ProductName:  nombre,
		SupplierID:   proveedorID,
		SupplierName: proveedor,
		Quantity:     cantidad,
		CreatedAt:    time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

// Pedido sin líneas: total 0 y grupos vacíos, nunca error ni nil.
func TestSummarize_PedidoVacio(t *testing.T) {
	s := order.Summarize(nil)

	assert.Equal(t, 0, s.Total)
	require.NotNil(t, s.Suppliers)
	assert.Len(t, s.Suppliers, 0)
}

// Escenario de referencia: producto A (S1, 3) y producto B (S2, 5) →
// total 8 y grupos [S1{3,[A]}, S2{5,[B]}] en ese orden.
func TestSummarize_DosProveedores(t *testing.T) {
	items := []order.SummaryItem{
		linea(1, 10, "Producto A", 1, "Proveedor S1", 3),
		linea(2, 20, "Producto B", 2, "Proveedor S2", 5),
	}

	s := order.Summarize(items)

	assert.Equal(t, 8, s.Total)
	require.Len(t, s.Suppliers, 2)

	assert.Equal(t, int64(1), s.Suppliers[0].SupplierID)
	assert.Equal(t, "Proveedor S1", s.Suppliers[0].SupplierName)
	assert.Equal(t, 3, s.Suppliers[0].Total)
	require.Len(t, s.Suppliers[0].Products, 1)
	assert.Equal(t, "Producto A", s.Suppliers[0].Products[0].ProductName)

	assert.Equal(t, int64(2), s.Suppliers[1].SupplierID)
	assert.Equal(t, 5, s.Suppliers[1].Total)
}

// Los proveedores salen en orden de primera aparición entre las líneas
// (ordenadas por id de línea), no en orden alfabético.
func TestSummarize_OrdenPrimeraAparicion(t *testing.T) {
	items := []order.SummaryItem{
		linea(1, 10, "X", 9, "Zeta Distribuciones", 1),
		linea(2, 11, "Y", 2, "Andina SA", 2),
		linea(3, 12, "Z", 9, "Zeta Distribuciones", 4),
	}

	s := order.Summarize(items)

	require.Len(t, s.Suppliers, 2)
	assert.Equal(t, int64(9), s.Suppliers[0].SupplierID, "el primer proveedor visto encabeza el resumen aunque su nombre vaya después alfabéticamente")
	assert.Equal(t, int64(2), s.Suppliers[1].SupplierID)

	// Las líneas del mismo proveedor se acumulan en su grupo, en orden.
	assert.Equal(t, 5, s.Suppliers[0].Total)
	require.Len(t, s.Suppliers[0].Products, 2)
	assert.Equal(t, "X", s.Suppliers[0].Products[0].ProductName)
	assert.Equal(t, "Z", s.Suppliers[0].Products[1].ProductName)
}

// La suma de subtotales por proveedor siempre iguala el total general.
func TestSummarize_SubtotalesSumanTotal(t *testing.T) {
	items := []order.SummaryItem{
		linea(1, 1, "a", 1, "P1", 3),
		linea(2, 2, "b", 2, "P2", 7),
		linea(3, 3, "c", 1, "P1", 2),
		linea(4, 4, "d", 3, "P3", 11),
		linea(5, 5, "e", 2, "P2", 1),
	}

	s := order.Summarize(items)

	suma := 0
	for _, g := range s.Suppliers {
		suma += g.Total
	}
	assert.Equal(t, s.Total, suma)
	assert.Equal(t, 24, s.Total)
}

// Rama filtrada por proveedor: lista plana sin agrupar.
func TestFlatten(t *testing.T) {
	items := []order.SummaryItem{
		linea(1, 10, "Producto A", 1, "S1", 3),
		linea(4, 13, "Producto C", 1, "S1", 2),
	}

	total, filas := order.Flatten(items)

	assert.Equal(t, 5, total)
	require.Len(t, filas, 2)
	assert.Equal(t, int64(10), filas[0].ProductID)
	assert.Equal(t, int64(13), filas[1].ProductID)
}

func TestFlatten_SinLineas(t *testing.T) {
	total, filas := order.Flatten(nil)

	assert.Equal(t, 0, total)
	require.NotNil(t, filas)
	assert.Len(t, filas, 0)
}
