// Package auth contiene los casos de uso de sesión: login con rotación de
// token opaco, logout y cambio de contraseña del propio usuario.
package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/token"
)

// AuthUseCase casos de uso de autenticación sobre el token opaco del usuario.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Login verifica nombre/contraseña con bcrypt, rota el token opaco del
// usuario y lo devuelve junto con el perfil.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok := token.New()
	if err := uc.users.UpdateToken(ctx, user.ID, &tok); err != nil {
		return nil, err
	}
	user.Token = &tok
	return &dto.LoginResponse{Token: tok, User: toUserResponse(user)}, nil
}

// Logout invalida el token vigente del usuario autenticado.
func (uc *AuthUseCase) Logout(ctx context.Context, actor *entity.User) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	return uc.users.UpdateToken(ctx, actor.ID, nil)
}

// ChangePassword cambia la contraseña del propio usuario: la actual debe
// coincidir y la nueva debe repetirse correctamente.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, actor *entity.User, in dto.ChangePasswordRequest) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	if in.New != in.RepeatNew {
		return errors.New("La nueva contraseña no coincide")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(in.Current)); err != nil {
		return errors.New("La contraseña actual es incorrecta")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.New), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, actor.ID, string(hash))
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
