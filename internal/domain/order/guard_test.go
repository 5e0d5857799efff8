package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/order"
)

func usuario(id int64, rol string) *entity.User {
	return &entity.User{ID: id, Name: "u", Role: rol}
}

func pedidoCon(creador int64, destino *int64) *entity.Order {
	return &entity.Order{ID: 1, CreatedByID: creador, RecipientID: destino, Status: entity.OrderStatusPending}
}

func TestIsParticipantOrAdmin(t *testing.T) {
	destino := int64(7)
	p := pedidoCon(3, &destino)

	// Creador, destino y admin_general pasan.
	assert.True(t, order.IsParticipantOrAdmin(usuario(3, entity.RoleAdminSucursal), p), "el creador debe poder ver el pedido")
	assert.True(t, order.IsParticipantOrAdmin(usuario(7, entity.RoleAdminSucursal), p), "el usuario destino debe poder ver el pedido")
	assert.True(t, order.IsParticipantOrAdmin(usuario(99, entity.RoleAdminGeneral), p), "admin_general accede a cualquier pedido")

	// Un admin de sucursal ajeno y una petición sin usuario no pasan.
	assert.False(t, order.IsParticipantOrAdmin(usuario(42, entity.RoleAdminSucursal), p), "un usuario sin relación con el pedido no debe verlo")
	assert.False(t, order.IsParticipantOrAdmin(nil, p), "sin usuario autenticado no hay acceso")
}

func TestIsParticipantOrAdmin_SinDestino(t *testing.T) {
	// Pedido sin usuario destino asignado: solo creador y admin.
	p := pedidoCon(3, nil)

	assert.True(t, order.IsParticipantOrAdmin(usuario(3, entity.RoleAdminSucursal), p))
	assert.False(t, order.IsParticipantOrAdmin(usuario(7, entity.RoleAdminSucursal), p))
}

func TestCanManage(t *testing.T) {
	destino := int64(7)
	p := pedidoCon(3, &destino)

	assert.True(t, order.CanManage(usuario(3, entity.RoleAdminSucursal), p), "el creador gestiona su pedido")
	assert.True(t, order.CanManage(usuario(99, entity.RoleAdminGeneral), p), "admin_general gestiona cualquier pedido")

	// El destino puede ver y cambiar estado, pero no gestionar.
	assert.False(t, order.CanManage(usuario(7, entity.RoleAdminSucursal), p), "el usuario destino no debe poder editar la estructura")
	assert.False(t, order.CanManage(nil, p))
}
