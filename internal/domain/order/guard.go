// Package order contiene los servicios de dominio de pedidos: las reglas de
// acceso sobre un pedido y el resumen de líneas para copiar pedidos.
package order

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// IsParticipantOrAdmin indica si el usuario puede ver el pedido o cambiar su
// estado: admin_general, creador o usuario destino. Un usuario nil (petición
// sin autenticar) nunca pasa.
func IsParticipantOrAdmin(u *entity.User, o *entity.Order) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	if o.CreatedByID == u.ID {
		return true
	}
	return o.RecipientID != nil && *o.RecipientID == u.ID
}

// CanManage indica si el usuario puede editar la estructura del pedido
// (asignar destino, eliminar, crear/editar/borrar líneas): admin_general o
// creador. El usuario destino solo puede ver y cambiar el estado.
func CanManage(u *entity.User, o *entity.Order) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return o.CreatedByID == u.ID
}
