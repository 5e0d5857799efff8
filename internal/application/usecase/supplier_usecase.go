package usecase

import (
	"context"
	"errors"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create da de alta un proveedor; el creador queda registrado como referencia
// débil.
func (uc *SupplierUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		Name:  in.Name,
		Phone: in.Phone,
	}
	if actor != nil {
		id := actor.ID
		supplier.CreatedBy = &id
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errors.New("Ya existe un proveedor con ese nombre")
		}
		return nil, err
	}
	out := toSupplierResponse(supplier)
	return &out, nil
}

// GetByID obtiene un proveedor por id.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	out := toSupplierResponse(supplier)
	return &out, nil
}

// Update aplica solo los campos presentes en el payload; telefono null lo
// limpia.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Phone.Set {
		supplier.Phone = in.Phone.Ptr()
	}
	if err := uc.repo.Update(ctx, supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errors.New("Ya existe un proveedor con ese nombre")
		}
		return nil, err
	}
	out := toSupplierResponse(supplier)
	return &out, nil
}

// List lista proveedores con paginación y búsqueda por nombre o teléfono.
func (uc *SupplierUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete elimina un proveedor; sus productos caen en cascada.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
