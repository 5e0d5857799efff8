package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/order"
)

// OrderDetail es un pedido con los nombres de creador y destino resueltos.
type OrderDetail struct {
	entity.Order
	CreatorName   string
	RecipientName *string
}

// ItemDetail es una línea de pedido con nombre e imagen del producto.
type ItemDetail struct {
	entity.OrderItem
	ProductName  string
	ProductImage *string
}

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	GetDetail(ctx context.Context, id int64) (*OrderDetail, error)
	List(ctx context.Context, search string, limit, offset int) ([]*OrderDetail, error)
	ListByParticipant(ctx context.Context, userID int64, search string, limit, offset int) ([]*OrderDetail, error)
	UpdateRecipient(ctx context.Context, id int64, recipientID *int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetItemByID(ctx context.Context, id int64) (*entity.OrderItem, error)
	GetItemDetail(ctx context.Context, id int64) (*ItemDetail, error)
	ListItemsByOrder(ctx context.Context, orderID int64, search string, limit, offset int) ([]*ItemDetail, error)
	UpdateItemQuantity(ctx context.Context, id int64, quantity int) error
	DeleteItem(ctx context.Context, id int64) error

	// SummaryItems devuelve las líneas del pedido unidas con producto y
	// proveedor, ordenadas por id de línea ascendente. Con supplierID no nil
	// filtra a los productos de ese proveedor.
	SummaryItems(ctx context.Context, orderID int64, supplierID *int64) ([]order.SummaryItem, error)
}
