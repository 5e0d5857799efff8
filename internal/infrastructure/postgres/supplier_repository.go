package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, nombre, telefono, creado_por_id, fecha_creacion, fecha_actualizacion`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y completa id y fechas.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO proveedores (nombre, telefono, creado_por_id)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_creacion, fecha_actualizacion`
	err := r.q.QueryRow(ctx, query, supplier.Name, supplier.Phone, supplier.CreatedBy).
		Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// CreateBatch inserta proveedores en lote (pgx.Batch). No completa los ids:
// la carga masiva los relee con ListByNamePrefix.
func (r *SupplierRepo) CreateBatch(ctx context.Context, suppliers []*entity.Supplier) error {
	if len(suppliers) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, s := range suppliers {
		batch.Queue(
			`INSERT INTO proveedores (nombre, telefono, creado_por_id) VALUES ($1, $2, $3)`,
			s.Name, s.Phone, s.CreatedBy,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range suppliers {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert proveedor en lote: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un proveedor por id; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM proveedores WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.Phone, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &s, nil
}

// List lista proveedores con búsqueda por nombre o teléfono.
func (r *SupplierRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM proveedores
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR telefono ILIKE '%' || $1 || '%')
		ORDER BY nombre
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

// ListByNamePrefix relee los proveedores insertados por la carga masiva,
// ordenados por id ascendente.
func (r *SupplierRepo) ListByNamePrefix(ctx context.Context, prefix string) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM proveedores
		WHERE nombre LIKE $1 || '%'
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("list proveedores por prefijo: %w", err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

func scanSuppliers(rows pgx.Rows) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0)
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update actualiza nombre y teléfono.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE proveedores
		SET nombre = $2, telefono = $3, fecha_actualizacion = now()
		WHERE id = $1
		RETURNING fecha_actualizacion`
	err := r.q.QueryRow(ctx, query, supplier.ID, supplier.Name, supplier.Phone).
		Scan(&supplier.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina el proveedor; sus productos caen en cascada.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count cuenta todos los proveedores.
func (r *SupplierRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM proveedores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count proveedores: %w", err)
	}
	return n, nil
}
