package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/ports"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// maxProducts tope de productos a nivel sistema.
const maxProducts = 2000

var errDuplicateProduct = errors.New("Ya existe un producto con ese nombre en este proveedor")

// ProductUseCase casos de uso CRUD para productos, incluida la imagen.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ports.ImageStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images ports.ImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

// Create da de alta un producto. Falla si se alcanzó el tope global o si el
// proveedor ya tiene un producto con ese nombre (sin distinguir mayúsculas).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= maxProducts {
		return nil, errors.New("Límite de 2000 productos alcanzado, contacte con el programador.")
	}

	exists, err := uc.repo.ExistsBySupplierAndName(ctx, in.SupplierID, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errDuplicateProduct
	}

	product := &entity.Product{
		SupplierID:    in.SupplierID,
		Name:          in.Name,
		Description:   in.Description,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		CategoryID:    in.CategoryID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errDuplicateProduct
		}
		return nil, err
	}
	return uc.GetByID(ctx, product.ID)
}

// GetByID obtiene un producto con los nombres de proveedor y categoría.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	detail, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(detail)
	return &out, nil
}

// Update aplica solo los campos presentes en el payload y repite el chequeo
// de duplicado sobre la combinación final (proveedor, nombre), excluyéndose
// a sí mismo.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	finalSupplier := product.SupplierID
	if in.SupplierID != nil {
		finalSupplier = *in.SupplierID
	}
	finalName := product.Name
	if in.Name != nil {
		finalName = *in.Name
	}
	exists, err := uc.repo.ExistsBySupplierAndName(ctx, finalSupplier, finalName, product.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errDuplicateProduct
	}

	product.SupplierID = finalSupplier
	product.Name = finalName
	if in.Description.Set {
		product.Description = in.Description.Ptr()
	}
	if in.PurchasePrice.Set {
		product.PurchasePrice = toNullDecimal(in.PurchasePrice)
	}
	if in.SalePrice.Set {
		product.SalePrice = toNullDecimal(in.SalePrice)
	}
	if in.CategoryID.Set {
		product.CategoryID = in.CategoryID.Ptr()
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errDuplicateProduct
		}
		return nil, err
	}
	return uc.GetByID(ctx, product.ID)
}

// AttachImage guarda la imagen del producto (reemplaza la anterior si existía)
// y persiste la nueva ruta.
func (uc *ProductUseCase) AttachImage(ctx context.Context, id int64, name string, r io.Reader) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Image != nil {
		_ = uc.images.Remove(*product.Image)
	}
	path, err := uc.images.Save(name, r)
	if err != nil {
		return nil, err
	}
	product.Image = &path
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, product.ID)
}

// List lista todos los productos con búsqueda por nombre, descripción o
// categoría.
func (uc *ProductUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// ListBySupplier lista los productos de un proveedor.
func (uc *ProductUseCase) ListBySupplier(ctx context.Context, supplierID int64, search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListBySupplier(ctx, supplierID, search, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// Delete elimina el producto y su imagen en disco.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.Image != nil {
		_ = uc.images.Remove(*product.Image)
	}
	return uc.repo.Delete(ctx, id)
}

func toNullDecimal(o dto.Optional[decimal.Decimal]) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: o.Value, Valid: o.Valid}
}

func toProductList(list []*repository.ProductDetail, limit, offset int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toProductResponse(p *repository.ProductDetail) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		Image:         p.Image,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
