package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (alta, edición y baja son solo para
// admin_general; el chequeo de rol vive en el middleware HTTP).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func validRole(r string) bool {
	return r == entity.RoleAdminGeneral || r == entity.RoleAdminSucursal
}

// Create da de alta un usuario con la contraseña hasheada con bcrypt.
// Rol vacío equivale a admin_sucursal.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Role == "" {
		in.Role = entity.RoleAdminSucursal
	}
	if !validRole(in.Role) {
		return nil, errors.New("rol inválido")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		PasswordHash: string(hash),
		BranchName:   in.BranchName,
		Role:         in.Role,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errors.New("Ya existe un usuario con ese nombre")
		}
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// GetByID obtiene un usuario por id.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

// Update aplica solo los campos presentes en el payload; si viene contraseña
// la re-hashea.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.BranchName != nil {
		user.BranchName = *in.BranchName
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, errors.New("rol inválido")
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errors.New("Ya existe un usuario con ese nombre")
		}
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// List lista todos los usuarios (solo admin_general).
func (uc *UserUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserList(list, limit, offset), nil
}

// ListBranches lista las sucursales: todos los usuarios menos los
// admin_general (listado público para elegir destino de pedidos).
func (uc *UserUseCase) ListBranches(ctx context.Context, search string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListBranches(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserList(list, limit, offset), nil
}

// Delete elimina un usuario por id.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toUserList(list []*entity.User, limit, offset int) *dto.UserListResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		BranchName: u.BranchName,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
