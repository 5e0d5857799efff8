package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
// CreateBatch y ListByNamePrefix existen para la carga masiva: la primera
// inserta en lote, la segunda relee lo insertado ordenado por id.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	CreateBatch(ctx context.Context, suppliers []*entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Supplier, error)
	ListByNamePrefix(ctx context.Context, prefix string) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
