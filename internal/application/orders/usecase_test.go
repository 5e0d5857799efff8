package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/order"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// fakeOrderRepo pedidos y líneas en memoria, con productos/proveedores
// precargados para los resúmenes.
type fakeOrderRepo struct {
	repository.OrderRepository
	orders    map[int64]*entity.Order
	items     map[int64]*entity.OrderItem
	nextOrder int64
	nextItem  int64
	products  map[int64]fakeProduct // producto -> nombre y proveedor
	userNames map[int64]string
}

type fakeProduct struct {
	name         string
	supplierID   int64
	supplierName string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[int64]*entity.Order{},
		items:  map[int64]*entity.OrderItem{},
		products: map[int64]fakeProduct{
			10: {name: "Harina", supplierID: 1, supplierName: "Molinos Sur"},
			11: {name: "Azúcar", supplierID: 2, supplierName: "Dulce SA"},
			12: {name: "Levadura", supplierID: 1, supplierName: "Molinos Sur"},
		},
		userNames: map[int64]string{1: "central", 2: "sucursal_norte", 3: "sucursal_sur"},
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.nextOrder++
	o.ID = f.nextOrder
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetDetail(_ context.Context, id int64) (*repository.OrderDetail, error) {
	o := f.orders[id]
	if o == nil {
		return nil, nil
	}
	d := &repository.OrderDetail{Order: *o, CreatorName: f.userNames[o.CreatedByID]}
	if o.RecipientID != nil {
		name := f.userNames[*o.RecipientID]
		d.RecipientName = &name
	}
	return d, nil
}

func (f *fakeOrderRepo) UpdateRecipient(_ context.Context, id int64, recipientID *int64) error {
	f.orders[id].RecipientID = recipientID
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	f.orders[id].Status = status
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) CreateItem(_ context.Context, item *entity.OrderItem) error {
	for _, it := range f.items {
		if it.OrderID == item.OrderID && it.ProductID == item.ProductID {
			return domain.ErrDuplicate
		}
	}
	f.nextItem++
	item.ID = f.nextItem
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	f.items[item.ID] = item
	return nil
}

func (f *fakeOrderRepo) GetItemByID(_ context.Context, id int64) (*entity.OrderItem, error) {
	return f.items[id], nil
}

func (f *fakeOrderRepo) GetItemDetail(_ context.Context, id int64) (*repository.ItemDetail, error) {
	it := f.items[id]
	if it == nil {
		return nil, nil
	}
	return &repository.ItemDetail{OrderItem: *it, ProductName: f.products[it.ProductID].name}, nil
}

func (f *fakeOrderRepo) UpdateItemQuantity(_ context.Context, id int64, quantity int) error {
	f.items[id].Quantity = quantity
	return nil
}

func (f *fakeOrderRepo) DeleteItem(_ context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeOrderRepo) SummaryItems(_ context.Context, orderID int64, supplierID *int64) ([]order.SummaryItem, error) {
	out := make([]order.SummaryItem, 0)
	for id := int64(1); id <= f.nextItem; id++ {
		it := f.items[id]
		if it == nil || it.OrderID != orderID {
			continue
		}
		p := f.products[it.ProductID]
		if supplierID != nil && p.supplierID != *supplierID {
			continue
		}
		out = append(out, order.SummaryItem{
			ItemID:       it.ID,
			ProductID:    it.ProductID,
			ProductName:  p.name,
			SupplierID:   p.supplierID,
			SupplierName: p.supplierName,
			Quantity:     it.Quantity,
			CreatedAt:    it.CreatedAt,
		})
	}
	return out, nil
}

// fakeSupplierRepo resuelve proveedores por id.
type fakeSupplierRepo struct {
	repository.SupplierRepository
	byID map[int64]*entity.Supplier
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return f.byID[id], nil
}

func newUseCase() (*OrderUseCase, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	suppliers := &fakeSupplierRepo{byID: map[int64]*entity.Supplier{
		1: {ID: 1, Name: "Molinos Sur"},
		2: {ID: 2, Name: "Dulce SA"},
	}}
	return NewOrderUseCase(repo, suppliers), repo
}

func usuario(id int64, rol string) *entity.User {
	return &entity.User{ID: id, Role: rol}
}

func pedidoDe(t *testing.T, uc *OrderUseCase, creator *entity.User, recipient *int64) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), creator, dto.CreateOrderRequest{RecipientID: recipient})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de acceso
// ──────────────────────────────────────────────────────────────────────────────

// Un admin_sucursal ajeno al pedido no puede verlo.
func TestOrderGet_AjenoProhibido(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	_, err := uc.Get(context.Background(), usuario(3, entity.RoleAdminSucursal), p.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

// El admin_general ve cualquier pedido.
func TestOrderGet_AdminVeTodo(t *testing.T) {
	uc, _ := newUseCase()
	p := pedidoDe(t, uc, usuario(2, entity.RoleAdminSucursal), nil)

	out, err := uc.Get(context.Background(), usuario(1, entity.RoleAdminGeneral), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, out.ID)
}

// El destino puede ver y cambiar estado pero no editar la estructura.
func TestOrderUpdate_DestinoNoGestiona(t *testing.T) {
	uc, _ := newUseCase()
	destino := int64(3)
	p := pedidoDe(t, uc, usuario(2, entity.RoleAdminSucursal), &destino)

	recipient := usuario(3, entity.RoleAdminSucursal)

	_, err := uc.Get(context.Background(), recipient, p.ID)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), recipient, p.ID, dto.UpdateOrderRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

// cambiar_estado alterna en ambos sentidos para cualquier participante.
func TestOrderChangeStatus_ToggleAmbosSentidos(t *testing.T) {
	uc, _ := newUseCase()
	destino := int64(3)
	p := pedidoDe(t, uc, usuario(2, entity.RoleAdminSucursal), &destino)
	recipient := usuario(3, entity.RoleAdminSucursal)

	out, err := uc.ChangeStatus(context.Background(), recipient, p.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)

	out, err = uc.ChangeStatus(context.Background(), recipient, p.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
}

func TestOrderChangeStatus_EstadoInvalido(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	_, err := uc.ChangeStatus(context.Background(), creator, p.ID, "enviado")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estado inválido")
}

// Líneas: el destino no puede agregar ni borrar; el creador sí.
func TestOrderItems_SoloGestoresEditan(t *testing.T) {
	uc, _ := newUseCase()
	destino := int64(3)
	creator := usuario(2, entity.RoleAdminSucursal)
	recipient := usuario(3, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, &destino)

	_, err := uc.CreateItem(context.Background(), recipient, dto.CreateOrderItemRequest{
		OrderID: p.ID, ProductID: 10, Quantity: 2,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	item, err := uc.CreateItem(context.Background(), creator, dto.CreateOrderItemRequest{
		OrderID: p.ID, ProductID: 10, Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Harina", item.ProductName)

	err = uc.DeleteItem(context.Background(), recipient, item.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

// Un producto solo puede aparecer una vez por pedido.
func TestOrderCreateItem_ProductoDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	_, err := uc.CreateItem(context.Background(), creator, dto.CreateOrderItemRequest{
		OrderID: p.ID, ProductID: 10, Quantity: 1,
	})
	require.NoError(t, err)

	_, err = uc.CreateItem(context.Background(), creator, dto.CreateOrderItemRequest{
		OrderID: p.ID, ProductID: 10, Quantity: 3,
	})
	require.Error(t, err)
	assert.Equal(t, "El producto ya está en el pedido", err.Error())
}

func TestOrderCreateItem_CantidadInvalida(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	_, err := uc.CreateItem(context.Background(), creator, dto.CreateOrderItemRequest{
		OrderID: p.ID, ProductID: 10, Quantity: 0,
	})
	require.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resúmenes de copia
// ──────────────────────────────────────────────────────────────────────────────

// El resumen completo agrupa por proveedor en orden de primera aparición y
// suma los subtotales.
func TestCopyFull_AgrupaPorProveedor(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	for _, line := range []struct {
		productID int64
		qty       int
	}{{11, 5}, {10, 2}, {12, 1}} { // Dulce SA aparece primero
		_, err := uc.CreateItem(context.Background(), creator, dto.CreateOrderItemRequest{
			OrderID: p.ID, ProductID: line.productID, Quantity: line.qty,
		})
		require.NoError(t, err)
	}

	out, err := uc.CopyFull(context.Background(), creator, p.ID)
	require.NoError(t, err)

	assert.Equal(t, 8, out.Total)
	require.Len(t, out.Suppliers, 2)
	assert.Equal(t, "Dulce SA", out.Suppliers[0].SupplierName)
	assert.Equal(t, 5, out.Suppliers[0].Total)
	assert.Equal(t, "Molinos Sur", out.Suppliers[1].SupplierName)
	assert.Equal(t, 3, out.Suppliers[1].Total)
	assert.Len(t, out.Suppliers[1].Products, 2)
}

// Sin líneas: total 0 y lista vacía no nula.
func TestCopyFull_PedidoVacio(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	out, err := uc.CopyFull(context.Background(), creator, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Suppliers)
	assert.Empty(t, out.Suppliers)
}

// El resumen por proveedor filtra las líneas y no agrupa.
func TestCopyBySupplier_Filtra(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	for _, line := range []struct {
		productID int64
		qty       int
	}{{10, 2}, {11, 5}, {12, 1}} {
		_, err := uc.CreateItem(context.Background(), creator, dto.CreateOrderItemRequest{
			OrderID: p.ID, ProductID: line.productID, Quantity: line.qty,
		})
		require.NoError(t, err)
	}

	out, err := uc.CopyBySupplier(context.Background(), creator, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Molinos Sur", out.SupplierName)
	assert.Equal(t, 3, out.Total)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Harina", out.Products[0].ProductName)
	assert.Equal(t, "Levadura", out.Products[1].ProductName)
}

// Proveedor inexistente → 404.
func TestCopyBySupplier_ProveedorInexistente(t *testing.T) {
	uc, _ := newUseCase()
	creator := usuario(2, entity.RoleAdminSucursal)
	p := pedidoDe(t, uc, creator, nil)

	_, err := uc.CopyBySupplier(context.Background(), creator, p.ID, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Un ajeno no puede copiar el pedido.
func TestCopyFull_AjenoProhibido(t *testing.T) {
	uc, _ := newUseCase()
	p := pedidoDe(t, uc, usuario(2, entity.RoleAdminSucursal), nil)

	_, err := uc.CopyFull(context.Background(), usuario(3, entity.RoleAdminSucursal), p.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
