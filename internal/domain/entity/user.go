package entity

import "time"

// Roles válidos para User.
const (
	RoleAdminGeneral  = "admin_general"
	RoleAdminSucursal = "admin_sucursal"
)

// User representa un usuario del sistema (administrador de sucursal o general).
// Token es el bearer token opaco vigente; nil cuando la sesión está cerrada.
type User struct {
	ID           int64
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	BranchName   string
	Token        *string
	Role         string // admin_general, admin_sucursal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol admin_general (acceso sin restricción).
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdminGeneral
}
