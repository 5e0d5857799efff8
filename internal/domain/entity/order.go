package entity

import "time"

// Estados válidos para Order. No hay workflow: el estado es un toggle
// entre pendiente y completado.
const (
	OrderStatusPending   = "pendiente"
	OrderStatusCompleted = "completado"
)

// ValidOrderStatus indica si s es un estado de pedido reconocido.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

// Order representa un pedido entre el usuario creador y un usuario destino
// opcional. Es dueño exclusivo de sus OrderItem (cascada al eliminar).
type Order struct {
	ID          int64
	CreatedByID int64
	RecipientID *int64 // usuario_destino; NULL si aún no se asigna
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem es una línea (producto, cantidad) dentro de un pedido.
// Un producto aparece a lo sumo una vez por pedido; la cantidad es el
// valor de la línea, no un acumulado.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
