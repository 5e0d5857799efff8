package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ProductDetail es un producto con los nombres de proveedor y categoría ya
// resueltos (lectura con JOIN para los listados y detalles).
type ProductDetail struct {
	entity.Product
	SupplierName string
	CategoryName *string
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CreateBatch(ctx context.Context, products []*entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetDetail(ctx context.Context, id int64) (*ProductDetail, error)
	// ExistsBySupplierAndName compara el nombre sin distinguir mayúsculas;
	// excludeID se ignora cuando es 0.
	ExistsBySupplierAndName(ctx context.Context, supplierID int64, name string, excludeID int64) (bool, error)
	List(ctx context.Context, search string, limit, offset int) ([]*ProductDetail, error)
	ListBySupplier(ctx context.Context, supplierID int64, search string, limit, offset int) ([]*ProductDetail, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
