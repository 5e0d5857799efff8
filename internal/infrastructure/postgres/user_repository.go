package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, nombre, password_hash, nombre_sucursal, token, rol, fecha_creacion, fecha_actualizacion`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y completa id y fechas.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (nombre, password_hash, nombre_sucursal, token, rol)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha_creacion, fecha_actualizacion`
	err := r.q.QueryRow(ctx, query,
		user.Name, user.PasswordHash, user.BranchName, user.Token, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetByName obtiene un usuario por nombre exacto.
func (r *UserRepo) GetByName(ctx context.Context, name string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE nombre = $1`, name)
}

// GetByToken obtiene el usuario dueño de un token de sesión vigente.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE token = $1`, token)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.BranchName, &u.Token, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza nombre, sucursal, rol y hash de contraseña.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE usuarios
		SET nombre = $2, password_hash = $3, nombre_sucursal = $4, rol = $5,
		    fecha_actualizacion = now()
		WHERE id = $1
		RETURNING fecha_actualizacion`
	err := r.q.QueryRow(ctx, query,
		user.ID, user.Name, user.PasswordHash, user.BranchName, user.Role,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// UpdateToken fija o borra (nil) el token de sesión del usuario.
func (r *UserRepo) UpdateToken(ctx context.Context, id int64, token *string) error {
	tag, err := r.q.Exec(ctx, `UPDATE usuarios SET token = $2 WHERE id = $1`, id, token)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword fija el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE usuarios SET password_hash = $2, fecha_actualizacion = now() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista usuarios con búsqueda por nombre o sucursal.
func (r *UserRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR nombre_sucursal ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, search, limit, offset)
}

// ListBranches lista los usuarios que no son admin_general (las sucursales).
func (r *UserRepo) ListBranches(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE rol <> '` + entity.RoleAdminGeneral + `'
		  AND ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR nombre_sucursal ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, search, limit, offset)
}

func (r *UserRepo) list(ctx context.Context, query, search string, limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.PasswordHash, &u.BranchName, &u.Token, &u.Role,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Delete elimina el usuario por id.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
