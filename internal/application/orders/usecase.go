// Package orders contiene los casos de uso de pedidos: CRUD con reglas de
// acceso, líneas de pedido y los resúmenes para copiar pedidos.
package orders

import (
	"context"
	"errors"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	domorder "github.com/tu-usuario/almacen-api/internal/domain/order"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var errDuplicateItem = errors.New("El producto ya está en el pedido")

// OrderUseCase casos de uso de pedidos. Todas las operaciones reciben el
// usuario actuante y aplican las reglas del dominio: ver/cambiar estado exige
// ser participante o admin; editar la estructura exige ser creador o admin.
type OrderUseCase struct {
	orders    repository.OrderRepository
	suppliers repository.SupplierRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, suppliers repository.SupplierRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, suppliers: suppliers}
}

// ListAll lista todos los pedidos (solo admin_general; el middleware filtra).
func (uc *OrderUseCase) ListAll(ctx context.Context, search string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// ListMine lista los pedidos donde el usuario es creador o destino.
func (uc *OrderUseCase) ListMine(ctx context.Context, actor *entity.User, search string, limit, offset int) (*dto.OrderListResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	list, err := uc.orders.ListByParticipant(ctx, actor.ID, search, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// Get obtiene un pedido si el usuario es participante o admin.
func (uc *OrderUseCase) Get(ctx context.Context, actor *entity.User, id int64) (*dto.OrderResponse, error) {
	detail, err := uc.orders.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	if !domorder.IsParticipantOrAdmin(actor, &detail.Order) {
		return nil, domain.ErrForbidden
	}
	out := toOrderResponse(detail)
	return &out, nil
}

// Create da de alta un pedido con el usuario actuante como creador.
// Estado vacío equivale a pendiente.
func (uc *OrderUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, errors.New("estado inválido: debe ser pendiente o completado")
	}
	o := &entity.Order{
		CreatedByID: actor.ID,
		RecipientID: in.RecipientID,
		Status:      status,
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	detail, err := uc.orders.GetDetail(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(detail)
	return &out, nil
}

// Update edita la estructura del pedido (hoy: el usuario destino). Exige
// poder gestionarlo. usuario_destino_id en null desasigna el destino.
func (uc *OrderUseCase) Update(ctx context.Context, actor *entity.User, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !domorder.CanManage(actor, o) {
		return nil, domain.ErrForbidden
	}
	if in.RecipientID.Set {
		if err := uc.orders.UpdateRecipient(ctx, id, in.RecipientID.Ptr()); err != nil {
			return nil, err
		}
	}
	detail, err := uc.orders.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(detail)
	return &out, nil
}

// ChangeStatus alterna el estado del pedido. Cualquier participante (o admin)
// puede hacerlo, en ambos sentidos: no hay workflow de una sola vía.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, actor *entity.User, id int64, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, errors.New("estado inválido: debe ser pendiente o completado")
	}
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !domorder.IsParticipantOrAdmin(actor, o) {
		return nil, domain.ErrForbidden
	}
	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	detail, err := uc.orders.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(detail)
	return &out, nil
}

// Delete elimina el pedido y sus líneas en cascada. Exige poder gestionarlo.
func (uc *OrderUseCase) Delete(ctx context.Context, actor *entity.User, id int64) error {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if !domorder.CanManage(actor, o) {
		return domain.ErrForbidden
	}
	return uc.orders.Delete(ctx, id)
}

// ListItems lista las líneas de un pedido visible para el usuario.
func (uc *OrderUseCase) ListItems(ctx context.Context, actor *entity.User, orderID int64, search string, limit, offset int) (*dto.OrderItemListResponse, error) {
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !domorder.IsParticipantOrAdmin(actor, o) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.orders.ListItemsByOrder(ctx, orderID, search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, toItemResponse(it))
	}
	return &dto.OrderItemListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// CreateItem agrega una línea al pedido. Un producto solo puede aparecer una
// vez por pedido y la cantidad debe ser positiva.
func (uc *OrderUseCase) CreateItem(ctx context.Context, actor *entity.User, in dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error) {
	o, err := uc.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !domorder.CanManage(actor, o) {
		return nil, domain.ErrForbidden
	}
	if in.Quantity <= 0 {
		return nil, errors.New("la cantidad debe ser mayor a 0")
	}
	item := &entity.OrderItem{
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := uc.orders.CreateItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errDuplicateItem
		}
		return nil, err
	}
	return uc.itemResponse(ctx, item.ID)
}

// UpdateItem cambia la cantidad de una línea. Exige gestionar el pedido
// dueño.
func (uc *OrderUseCase) UpdateItem(ctx context.Context, actor *entity.User, itemID int64, in dto.UpdateOrderItemRequest) (*dto.OrderItemResponse, error) {
	item, o, err := uc.itemWithOrder(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !domorder.CanManage(actor, o) {
		return nil, domain.ErrForbidden
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, errors.New("la cantidad debe ser mayor a 0")
		}
		if err := uc.orders.UpdateItemQuantity(ctx, item.ID, *in.Quantity); err != nil {
			return nil, err
		}
	}
	return uc.itemResponse(ctx, item.ID)
}

// DeleteItem elimina una línea. Exige gestionar el pedido dueño.
func (uc *OrderUseCase) DeleteItem(ctx context.Context, actor *entity.User, itemID int64) error {
	item, o, err := uc.itemWithOrder(ctx, itemID)
	if err != nil {
		return err
	}
	if !domorder.CanManage(actor, o) {
		return domain.ErrForbidden
	}
	return uc.orders.DeleteItem(ctx, item.ID)
}

// CopyFull arma el resumen completo del pedido: total general y grupos por
// proveedor en orden de primera aparición entre las líneas.
func (uc *OrderUseCase) CopyFull(ctx context.Context, actor *entity.User, orderID int64) (*dto.FullCopyResponse, error) {
	detail, err := uc.orders.GetDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	if !domorder.IsParticipantOrAdmin(actor, &detail.Order) {
		return nil, domain.ErrForbidden
	}

	rows, err := uc.orders.SummaryItems(ctx, orderID, nil)
	if err != nil {
		return nil, err
	}
	s := domorder.Summarize(rows)

	suppliers := make([]dto.CopySummarySupplier, 0, len(s.Suppliers))
	for _, g := range s.Suppliers {
		suppliers = append(suppliers, dto.CopySummarySupplier{
			SupplierID:   g.SupplierID,
			SupplierName: g.SupplierName,
			Total:        g.Total,
			Products:     toSummaryProducts(g.Products),
		})
	}
	return &dto.FullCopyResponse{
		OrderID:       detail.ID,
		Status:        detail.Status,
		CreatorName:   detail.CreatorName,
		RecipientName: detail.RecipientName,
		CreatedAt:     detail.CreatedAt,
		UpdatedAt:     detail.UpdatedAt,
		Total:         s.Total,
		Suppliers:     suppliers,
	}, nil
}

// CopyBySupplier arma el resumen del pedido acotado a un proveedor: total y
// filas planas, sin agrupar.
func (uc *OrderUseCase) CopyBySupplier(ctx context.Context, actor *entity.User, orderID, supplierID int64) (*dto.SupplierCopyResponse, error) {
	detail, err := uc.orders.GetDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	if !domorder.IsParticipantOrAdmin(actor, &detail.Order) {
		return nil, domain.ErrForbidden
	}
	supplier, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.orders.SummaryItems(ctx, orderID, &supplierID)
	if err != nil {
		return nil, err
	}
	total, lines := domorder.Flatten(rows)

	return &dto.SupplierCopyResponse{
		OrderID:       detail.ID,
		Status:        detail.Status,
		CreatorName:   detail.CreatorName,
		RecipientName: detail.RecipientName,
		CreatedAt:     detail.CreatedAt,
		UpdatedAt:     detail.UpdatedAt,
		SupplierID:    supplier.ID,
		SupplierName:  supplier.Name,
		Total:         total,
		Products:      toSummaryProducts(lines),
	}, nil
}

func (uc *OrderUseCase) itemWithOrder(ctx context.Context, itemID int64) (*entity.OrderItem, *entity.Order, error) {
	item, err := uc.orders.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrNotFound
	}
	o, err := uc.orders.GetByID(ctx, item.OrderID)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, domain.ErrNotFound
	}
	return item, o, nil
}

func (uc *OrderUseCase) itemResponse(ctx context.Context, itemID int64) (*dto.OrderItemResponse, error) {
	detail, err := uc.orders.GetItemDetail(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	out := toItemResponse(detail)
	return &out, nil
}

func toSummaryProducts(lines []domorder.ProductLine) []dto.CopySummaryProduct {
	out := make([]dto.CopySummaryProduct, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CopySummaryProduct{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out
}

func toOrderList(list []*repository.OrderDetail, limit, offset int) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toOrderResponse(o *repository.OrderDetail) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		CreatedByID:   o.CreatedByID,
		CreatorName:   o.CreatorName,
		RecipientID:   o.RecipientID,
		RecipientName: o.RecipientName,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toItemResponse(it *repository.ItemDetail) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:           it.ID,
		OrderID:      it.OrderID,
		ProductID:    it.ProductID,
		ProductName:  it.ProductName,
		ProductImage: it.ProductImage,
		Quantity:     it.Quantity,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
