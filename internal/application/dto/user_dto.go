package dto

import "time"

// UserResponse representación pública de un usuario. Nunca expone el hash de
// contraseña ni el token.
type UserResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nombre"`
	BranchName string    `json:"nombre_sucursal"`
	Role       string    `json:"rol"`
	CreatedAt  time.Time `json:"fecha_creacion"`
	UpdatedAt  time.Time `json:"fecha_actualizacion"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Name     string `json:"nombre"`
	Password string `json:"contrasena"`
}

// LoginResponse token opaco vigente más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

// CreateUserRequest alta de usuario (solo admin_general).
type CreateUserRequest struct {
	Name       string `json:"nombre"`
	Password   string `json:"contrasena"`
	BranchName string `json:"nombre_sucursal"`
	Role       string `json:"rol"`
}

// UpdateUserRequest edición parcial de usuario (solo admin_general).
type UpdateUserRequest struct {
	Name       *string `json:"nombre"`
	Password   *string `json:"contrasena"`
	BranchName *string `json:"nombre_sucursal"`
	Role       *string `json:"rol"`
}

// ChangePasswordRequest cambio de contraseña del propio usuario.
type ChangePasswordRequest struct {
	Current   string `json:"contrasena_actual"`
	New       string `json:"contrasena_nueva"`
	RepeatNew string `json:"repetir_contrasena_nueva"`
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
