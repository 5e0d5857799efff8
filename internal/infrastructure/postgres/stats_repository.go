package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de conteo del dashboard sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountSuppliers cuenta todos los proveedores.
func (r *StatsRepo) CountSuppliers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM proveedores`)
}

// CountProducts cuenta todos los productos.
func (r *StatsRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM productos`)
}

// CountOrdersCreated cuenta los pedidos creados por el usuario con el estado dado.
func (r *StatsRepo) CountOrdersCreated(ctx context.Context, userID int64, status string) (int, error) {
	return r.count(ctx,
		`SELECT count(*) FROM pedidos WHERE creado_por_id = $1 AND estado = $2`,
		userID, status)
}

// CountOrdersReceived cuenta los pedidos recibidos por el usuario con el estado dado.
func (r *StatsRepo) CountOrdersReceived(ctx context.Context, userID int64, status string) (int, error) {
	return r.count(ctx,
		`SELECT count(*) FROM pedidos WHERE usuario_destino_id = $1 AND estado = $2`,
		userID, status)
}

func (r *StatsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
