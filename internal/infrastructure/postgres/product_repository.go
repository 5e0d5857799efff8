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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productDetailColumns = `
	p.id, p.proveedor_id, p.nombre, p.descripcion, p.precio_compra, p.precio_venta,
	p.categoria_id, p.imagen, p.fecha_creacion, p.fecha_actualizacion,
	pr.nombre, c.nombre`

const productDetailFrom = `
	FROM productos p
	JOIN proveedores pr ON pr.id = p.proveedor_id
	LEFT JOIN categorias_producto c ON c.id = p.categoria_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto y completa id y fechas.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO productos (proveedor_id, nombre, descripcion, precio_compra, precio_venta, categoria_id, imagen)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha_creacion, fecha_actualizacion`
	err := r.q.QueryRow(ctx, query,
		product.SupplierID, product.Name, product.Description,
		product.PurchasePrice, product.SalePrice, product.CategoryID, product.Image,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// CreateBatch inserta productos en lote (pgx.Batch) para la carga masiva.
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(
			`INSERT INTO productos (proveedor_id, nombre, descripcion, precio_compra, precio_venta, categoria_id, imagen)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.SupplierID, p.Name, p.Description, p.PurchasePrice, p.SalePrice, p.CategoryID, p.Image,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range products {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert producto en lote: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un producto por id; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, proveedor_id, nombre, descripcion, precio_compra, precio_venta,
		       categoria_id, imagen, fecha_creacion, fecha_actualizacion
		FROM productos WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SupplierID, &p.Name, &p.Description, &p.PurchasePrice, &p.SalePrice,
		&p.CategoryID, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// GetDetail obtiene un producto con los nombres de proveedor y categoría.
func (r *ProductRepo) GetDetail(ctx context.Context, id int64) (*repository.ProductDetail, error) {
	query := `SELECT` + productDetailColumns + productDetailFrom + ` WHERE p.id = $1`
	var d repository.ProductDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.SupplierID, &d.Name, &d.Description, &d.PurchasePrice, &d.SalePrice,
		&d.CategoryID, &d.Image, &d.CreatedAt, &d.UpdatedAt,
		&d.SupplierName, &d.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle de producto: %w", err)
	}
	return &d, nil
}

// ExistsBySupplierAndName chequea duplicado de nombre dentro del proveedor,
// sin distinguir mayúsculas. excludeID se ignora cuando es 0.
func (r *ProductRepo) ExistsBySupplierAndName(ctx context.Context, supplierID int64, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM productos
			WHERE proveedor_id = $1 AND lower(nombre) = lower($2) AND ($3 = 0 OR id <> $3)
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, supplierID, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists producto: %w", err)
	}
	return exists, nil
}

// List lista productos con búsqueda por nombre, descripción o categoría.
func (r *ProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*repository.ProductDetail, error) {
	query := `SELECT` + productDetailColumns + productDetailFrom + `
		WHERE ($1 = '' OR p.nombre ILIKE '%' || $1 || '%'
		       OR p.descripcion ILIKE '%' || $1 || '%'
		       OR c.nombre ILIKE '%' || $1 || '%')
		ORDER BY p.nombre
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProductDetails(rows)
}

// ListBySupplier lista los productos de un proveedor.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID int64, search string, limit, offset int) ([]*repository.ProductDetail, error) {
	query := `SELECT` + productDetailColumns + productDetailFrom + `
		WHERE p.proveedor_id = $1
		  AND ($2 = '' OR p.nombre ILIKE '%' || $2 || '%'
		       OR p.descripcion ILIKE '%' || $2 || '%'
		       OR c.nombre ILIKE '%' || $2 || '%')
		ORDER BY p.nombre
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, supplierID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos por proveedor: %w", err)
	}
	defer rows.Close()
	return scanProductDetails(rows)
}

func scanProductDetails(rows pgx.Rows) ([]*repository.ProductDetail, error) {
	out := make([]*repository.ProductDetail, 0)
	for rows.Next() {
		var d repository.ProductDetail
		if err := rows.Scan(
			&d.ID, &d.SupplierID, &d.Name, &d.Description, &d.PurchasePrice, &d.SalePrice,
			&d.CategoryID, &d.Image, &d.CreatedAt, &d.UpdatedAt,
			&d.SupplierName, &d.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE productos
		SET proveedor_id = $2, nombre = $3, descripcion = $4, precio_compra = $5,
		    precio_venta = $6, categoria_id = $7, imagen = $8, fecha_actualizacion = now()
		WHERE id = $1
		RETURNING fecha_actualizacion`
	err := r.q.QueryRow(ctx, query,
		product.ID, product.SupplierID, product.Name, product.Description,
		product.PurchasePrice, product.SalePrice, product.CategoryID, product.Image,
	).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina el producto; sus líneas de pedido caen en cascada.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count cuenta todos los productos (para el tope global de altas).
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM productos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return n, nil
}
