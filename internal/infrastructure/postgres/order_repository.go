package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/order"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderDetailColumns = `
	p.id, p.creado_por_id, p.usuario_destino_id, p.estado,
	p.fecha_creacion, p.fecha_actualizacion,
	uc.nombre, ud.nombre`

const orderDetailFrom = `
	FROM pedidos p
	JOIN usuarios uc ON uc.id = p.creado_por_id
	LEFT JOIN usuarios ud ON ud.id = p.usuario_destino_id`

const itemDetailColumns = `
	d.id, d.pedido_id, d.producto_id, d.cantidad,
	d.fecha_creacion, d.fecha_actualizacion,
	pr.nombre, pr.imagen`

const itemDetailFrom = `
	FROM pedido_detalles d
	JOIN productos pr ON pr.id = d.producto_id`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido y completa id y fechas.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO pedidos (creado_por_id, usuario_destino_id, estado)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_creacion, fecha_actualizacion`
	err := r.q.QueryRow(ctx, query, o.CreatedByID, o.RecipientID, o.Status).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por id; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, creado_por_id, usuario_destino_id, estado, fecha_creacion, fecha_actualizacion
		FROM pedidos WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CreatedByID, &o.RecipientID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &o, nil
}

// GetDetail obtiene un pedido con los nombres de creador y destino.
func (r *OrderRepo) GetDetail(ctx context.Context, id int64) (*repository.OrderDetail, error) {
	query := `SELECT` + orderDetailColumns + orderDetailFrom + ` WHERE p.id = $1`
	var d repository.OrderDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CreatedByID, &d.RecipientID, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
		&d.CreatorName, &d.RecipientName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle de pedido: %w", err)
	}
	return &d, nil
}

// List lista todos los pedidos, más recientes primero, con búsqueda por
// estado o nombres de los participantes.
func (r *OrderRepo) List(ctx context.Context, search string, limit, offset int) ([]*repository.OrderDetail, error) {
	query := `SELECT` + orderDetailColumns + orderDetailFrom + `
		WHERE ($1 = '' OR p.estado ILIKE '%' || $1 || '%'
		       OR uc.nombre ILIKE '%' || $1 || '%'
		       OR ud.nombre ILIKE '%' || $1 || '%')
		ORDER BY p.id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	return scanOrderDetails(rows)
}

// ListByParticipant lista los pedidos donde el usuario es creador o destino.
func (r *OrderRepo) ListByParticipant(ctx context.Context, userID int64, search string, limit, offset int) ([]*repository.OrderDetail, error) {
	query := `SELECT` + orderDetailColumns + orderDetailFrom + `
		WHERE (p.creado_por_id = $1 OR p.usuario_destino_id = $1)
		  AND ($2 = '' OR p.estado ILIKE '%' || $2 || '%'
		       OR uc.nombre ILIKE '%' || $2 || '%'
		       OR ud.nombre ILIKE '%' || $2 || '%')
		ORDER BY p.id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, userID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos por participante: %w", err)
	}
	defer rows.Close()
	return scanOrderDetails(rows)
}

func scanOrderDetails(rows pgx.Rows) ([]*repository.OrderDetail, error) {
	out := make([]*repository.OrderDetail, 0)
	for rows.Next() {
		var d repository.OrderDetail
		if err := rows.Scan(
			&d.ID, &d.CreatedByID, &d.RecipientID, &d.Status,
			&d.CreatedAt, &d.UpdatedAt,
			&d.CreatorName, &d.RecipientName,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// UpdateRecipient fija o desasigna (nil) el usuario destino.
func (r *OrderRepo) UpdateRecipient(ctx context.Context, id int64, recipientID *int64) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE pedidos SET usuario_destino_id = $2, fecha_actualizacion = now() WHERE id = $1`,
		id, recipientID)
	if err != nil {
		return fmt.Errorf("update destino de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE pedidos SET estado = $2, fecha_actualizacion = now() WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("update estado de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el pedido; sus líneas caen en cascada.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateItem persiste una línea y completa id y fechas.
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO pedido_detalles (pedido_id, producto_id, cantidad)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_creacion, fecha_actualizacion`
	err := r.q.QueryRow(ctx, query, item.OrderID, item.ProductID, item.Quantity).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert detalle de pedido: %w", err)
	}
	return nil
}

// GetItemByID obtiene una línea por id; (nil, nil) si no existe.
func (r *OrderRepo) GetItemByID(ctx context.Context, id int64) (*entity.OrderItem, error) {
	query := `
		SELECT id, pedido_id, producto_id, cantidad, fecha_creacion, fecha_actualizacion
		FROM pedido_detalles WHERE id = $1`
	var it entity.OrderItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle de pedido: %w", err)
	}
	return &it, nil
}

// GetItemDetail obtiene una línea con nombre e imagen del producto.
func (r *OrderRepo) GetItemDetail(ctx context.Context, id int64) (*repository.ItemDetail, error) {
	query := `SELECT` + itemDetailColumns + itemDetailFrom + ` WHERE d.id = $1`
	var d repository.ItemDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.OrderID, &d.ProductID, &d.Quantity,
		&d.CreatedAt, &d.UpdatedAt,
		&d.ProductName, &d.ProductImage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle de línea: %w", err)
	}
	return &d, nil
}

// ListItemsByOrder lista las líneas de un pedido en orden de inserción, con
// búsqueda por nombre de producto.
func (r *OrderRepo) ListItemsByOrder(ctx context.Context, orderID int64, search string, limit, offset int) ([]*repository.ItemDetail, error) {
	query := `SELECT` + itemDetailColumns + itemDetailFrom + `
		WHERE d.pedido_id = $1
		  AND ($2 = '' OR pr.nombre ILIKE '%' || $2 || '%')
		ORDER BY d.id
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, orderID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list detalles de pedido: %w", err)
	}
	defer rows.Close()

	out := make([]*repository.ItemDetail, 0)
	for rows.Next() {
		var d repository.ItemDetail
		if err := rows.Scan(
			&d.ID, &d.OrderID, &d.ProductID, &d.Quantity,
			&d.CreatedAt, &d.UpdatedAt,
			&d.ProductName, &d.ProductImage,
		); err != nil {
			return nil, fmt.Errorf("scan detalle de pedido: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// UpdateItemQuantity cambia la cantidad de una línea.
func (r *OrderRepo) UpdateItemQuantity(ctx context.Context, id int64, quantity int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE pedido_detalles SET cantidad = $2, fecha_actualizacion = now() WHERE id = $1`,
		id, quantity)
	if err != nil {
		return fmt.Errorf("update cantidad de línea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem elimina una línea.
func (r *OrderRepo) DeleteItem(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pedido_detalles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SummaryItems devuelve las líneas del pedido unidas con producto y proveedor,
// ordenadas por id de línea ascendente. Con supplierID no nil filtra a ese
// proveedor.
func (r *OrderRepo) SummaryItems(ctx context.Context, orderID int64, supplierID *int64) ([]order.SummaryItem, error) {
	query := `
		SELECT d.id, d.producto_id, pr.nombre, pv.id, pv.nombre, d.cantidad, d.fecha_creacion
		FROM pedido_detalles d
		JOIN productos pr ON pr.id = d.producto_id
		JOIN proveedores pv ON pv.id = pr.proveedor_id
		WHERE d.pedido_id = $1
		  AND ($2::bigint IS NULL OR pv.id = $2)
		ORDER BY d.id ASC`
	rows, err := r.q.Query(ctx, query, orderID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list líneas para resumen: %w", err)
	}
	defer rows.Close()

	out := make([]order.SummaryItem, 0)
	for rows.Next() {
		var it order.SummaryItem
		if err := rows.Scan(
			&it.ItemID, &it.ProductID, &it.ProductName,
			&it.SupplierID, &it.SupplierName, &it.Quantity, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan línea para resumen: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
