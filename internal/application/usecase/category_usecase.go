package usecase

import (
	"context"
	"errors"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var errDuplicateCategory = errors.New("Ya existe una categoría con ese nombre")

// CategoryUseCase casos de uso CRUD para categorías de producto.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría; el nombre es único sin distinguir
// mayúsculas.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	exists, err := uc.repo.ExistsByName(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errDuplicateCategory
	}
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errDuplicateCategory
		}
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// List lista categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update renombra una categoría con el mismo chequeo de duplicado.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		exists, err := uc.repo.ExistsByName(ctx, *in.Name, category.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errDuplicateCategory
		}
		category.Name = *in.Name
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errDuplicateCategory
		}
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Delete elimina una categoría; los productos que la referencian quedan con
// categoría en NULL.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
