package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetByToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateToken(ctx context.Context, id int64, token *string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.User, error)
	ListBranches(ctx context.Context, search string, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
