package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de usuarios y sesión.
type UserHandler struct {
	users *usecase.UserUseCase
	auth  *auth.AuthUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(users *usecase.UserUseCase, authUC *auth.AuthUseCase) *UserHandler {
	return &UserHandler{users: users, auth: authUC}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /usuarios/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" || in.Password == "" {
		return badRequest(c, "nombre y contrasena son requeridos")
	}
	out, err := h.auth.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (invalida el token)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /usuarios/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), CurrentUser(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// MyProfile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /usuarios/mi_perfil [get]
func (h *UserHandler) MyProfile(c *fiber.Ctx) error {
	user := CurrentUser(c)
	out, err := h.users.GetByID(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeMyPassword godoc
// @Summary      Cambiar la contraseña propia
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Contraseñas"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /usuarios/cambiar_mi_contrasena [post]
func (h *UserHandler) ChangeMyPassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.auth.ChangePassword(c.Context(), CurrentUser(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// List godoc
// @Summary      Listar todos los usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        busqueda  query  string  false  "Búsqueda por nombre o sucursal"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.UserListResponse
// @Router       /usuarios/listar_todos [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.users.List(c.Context(), c.Query("busqueda"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBranches godoc
// @Summary      Listar sucursales (usuarios no admin)
// @Tags         usuarios
// @Produce      json
// @Param        busqueda  query  string  false  "Búsqueda por nombre o sucursal"
// @Success      200  {object}  dto.UserListResponse
// @Router       /usuarios/listar_sucursales [get]
func (h *UserHandler) ListBranches(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.users.ListBranches(c.Context(), c.Query("busqueda"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuarios/obtener/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /usuarios/crear [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" || in.Password == "" {
		return badRequest(c, "nombre y contrasena son requeridos")
	}
	out, err := h.users.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /usuarios/actualizar/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.users.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuarios/eliminar/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.users.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
