package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/analytics"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/orders"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	OrderUC     *orders.OrderUseCase
	DashboardUC *analytics.DashboardUseCase
	Users       repository.UserRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	bearer := RequireUser(deps.Users)
	admin := RequireAdmin()

	// Usuarios y sesión
	users := app.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Post("/login", userHandler.Login)
	users.Get("/listar_sucursales", userHandler.ListBranches)
	users.Get("/obtener/:id", userHandler.GetByID)
	users.Post("/logout", bearer, userHandler.Logout)
	users.Get("/mi_perfil", bearer, userHandler.MyProfile)
	users.Post("/cambiar_mi_contrasena", bearer, userHandler.ChangeMyPassword)
	users.Get("/listar_todos", bearer, admin, userHandler.List)
	users.Post("/crear", bearer, admin, userHandler.Create)
	users.Patch("/actualizar/:id", bearer, admin, userHandler.Update)
	users.Delete("/eliminar/:id", bearer, admin, userHandler.Delete)

	// Proveedores (lecturas públicas, escrituras con bearer)
	suppliers := app.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/listar_todos", supplierHandler.List)
	suppliers.Get("/obtener/:id", supplierHandler.GetByID)
	suppliers.Post("/crear", bearer, supplierHandler.Create)
	suppliers.Patch("/actualizar/:id", bearer, supplierHandler.Update)
	suppliers.Delete("/eliminar/:id", bearer, supplierHandler.Delete)

	// Productos (lecturas públicas, escrituras con bearer)
	products := app.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/listar_todos", productHandler.List)
	products.Get("/listar_por_proveedor/:id", productHandler.ListBySupplier)
	products.Get("/obtener/:id", productHandler.GetByID)
	products.Post("/crear", bearer, productHandler.Create)
	products.Patch("/actualizar/:id", bearer, productHandler.Update)
	products.Post("/imagen/:id", bearer, productHandler.UploadImage)
	products.Delete("/eliminar/:id", bearer, productHandler.Delete)

	// Categorías (públicas, como en el origen)
	categories := app.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/listar_todas", categoryHandler.List)
	categories.Post("/crear", categoryHandler.Create)
	categories.Patch("/actualizar/:id", categoryHandler.Update)
	categories.Delete("/eliminar/:id", categoryHandler.Delete)

	// Pedidos (todo con bearer; el guard fino vive en el caso de uso)
	ordersGroup := app.Group("/pedidos", bearer)
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/listar_todos", admin, orderHandler.List)
	ordersGroup.Get("/mis_pedidos", orderHandler.ListMine)
	ordersGroup.Get("/obtener/:id", orderHandler.GetByID)
	ordersGroup.Post("/crear", orderHandler.Create)
	ordersGroup.Patch("/actualizar/:id", orderHandler.Update)
	ordersGroup.Patch("/cambiar_estado/:id", orderHandler.ChangeStatus)
	ordersGroup.Delete("/eliminar/:id", orderHandler.Delete)

	ordersGroup.Get("/detalles/por_pedido/:id", orderHandler.ListItems)
	ordersGroup.Post("/detalles/crear", orderHandler.CreateItem)
	ordersGroup.Patch("/detalles/actualizar/:id", orderHandler.UpdateItem)
	ordersGroup.Delete("/detalles/eliminar/:id", orderHandler.DeleteItem)

	ordersGroup.Get("/copiar_pedido/completo/:pedido_id", orderHandler.CopyFull)
	ordersGroup.Get("/copiar_pedido/por_proveedor/:pedido_id/:proveedor_id", orderHandler.CopyBySupplier)

	// Dashboard
	dashboard := app.Group("/dashboard", bearer)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/estadisticas", dashboardHandler.Stats)
}
