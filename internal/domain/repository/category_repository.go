package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// ExistsByName compara sin distinguir mayúsculas; excludeID se ignora si es 0.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
