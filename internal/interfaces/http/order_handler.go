package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP de pedidos, sus líneas y los
// resúmenes de copia.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar todos los pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        busqueda  query  string  false  "Búsqueda por estado o participantes"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /pedidos/listar_todos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListAll(c.Context(), c.Query("busqueda"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar los pedidos donde participo (creador o destino)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        busqueda  query  string  false  "Búsqueda"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /pedidos/mis_pedidos [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListMine(c.Context(), CurrentUser(c), c.Query("busqueda"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/obtener/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Get(c.Context(), CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pedido (el creador es el usuario autenticado)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /pedidos/crear [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido (usuario destino; null lo desasigna)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /pedidos/actualizar/{id} [patch]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), CurrentUser(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar el estado del pedido (pendiente ↔ completado)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.ChangeOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /pedidos/cambiar_estado/{id} [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var in dto.ChangeOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.ChangeStatus(c.Context(), CurrentUser(c), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido (sus líneas caen en cascada)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /pedidos/eliminar/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(c.Context(), CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ListItems godoc
// @Summary      Listar las líneas de un pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id        path   int     true   "ID del pedido"
// @Param        busqueda  query  string  false  "Búsqueda por nombre de producto"
// @Success      200  {object}  dto.OrderItemListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /pedidos/detalles/por_pedido/{id} [get]
func (h *OrderHandler) ListItems(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	limit, offset := pagination(c)
	out, err := h.uc.ListItems(c.Context(), CurrentUser(c), id, c.Query("busqueda"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateItem godoc
// @Summary      Agregar una línea al pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderItemRequest  true  "Línea del pedido"
// @Success      201   {object}  dto.OrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /pedidos/detalles/crear [post]
func (h *OrderHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.OrderID <= 0 || in.ProductID <= 0 {
		return badRequest(c, "pedido_id y producto_id son requeridos")
	}
	out, err := h.uc.CreateItem(c.Context(), CurrentUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Cambiar la cantidad de una línea
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la línea"
// @Param        body  body  dto.UpdateOrderItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrderItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /pedidos/detalles/actualizar/{id} [patch]
func (h *OrderHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var in dto.UpdateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateItem(c.Context(), CurrentUser(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar una línea del pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /pedidos/detalles/eliminar/{id} [delete]
func (h *OrderHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.DeleteItem(c.Context(), CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// CopyFull godoc
// @Summary      Resumen completo del pedido para copiar (agrupado por proveedor)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        pedido_id  path  int  true  "ID del pedido"
// @Success      200  {object}  dto.FullCopyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/copiar_pedido/completo/{pedido_id} [get]
func (h *OrderHandler) CopyFull(c *fiber.Ctx) error {
	id, err := pathID(c, "pedido_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.CopyFull(c.Context(), CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CopyBySupplier godoc
// @Summary      Resumen del pedido acotado a un proveedor
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        pedido_id     path  int  true  "ID del pedido"
// @Param        proveedor_id  path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierCopyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/copiar_pedido/por_proveedor/{pedido_id}/{proveedor_id} [get]
func (h *OrderHandler) CopyBySupplier(c *fiber.Ctx) error {
	orderID, err := pathID(c, "pedido_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	supplierID, err := pathID(c, "proveedor_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.CopyBySupplier(c.Context(), CurrentUser(c), orderID, supplierID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
