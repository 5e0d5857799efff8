package dto

import "time"

// DashboardResponse respuesta de GET /dashboard/estadisticas.
// Conteos globales de catálogo más cuatro conteos de pedidos acotados al
// usuario autenticado; nunca se calculan sobre otro usuario.
type DashboardResponse struct {
	Now               time.Time `json:"fecha_hora_actual"`
	UserName          string    `json:"usuario_autenticado_nombre"`
	UserBranch        string    `json:"usuario_autenticado_sucursal"`
	Suppliers         int       `json:"cantidad_proveedores"`
	Products          int       `json:"cantidad_productos"`
	CreatedPending    int       `json:"cantidad_pedidos_hechos_pendientes"`
	CreatedCompleted  int       `json:"cantidad_pedidos_hechos_completados"`
	ReceivedPending   int       `json:"cantidad_pedidos_recibidos_pendientes"`
	ReceivedCompleted int       `json:"cantidad_pedidos_recibidos_completados"`
}
