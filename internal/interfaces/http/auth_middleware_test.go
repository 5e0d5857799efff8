package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	tokenAdmin    = "token-admin-0001"
	tokenSucursal = "token-sucursal-0002"
)

// fakeResolver resuelve tokens contra un mapa en memoria.
type fakeResolver struct {
	byToken map[string]*entity.User
}

func (f *fakeResolver) GetByToken(_ context.Context, token string) (*entity.User, error) {
	return f.byToken[token], nil
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{byToken: map[string]*entity.User{
		tokenAdmin: {
			ID:         1,
			Name:       "central",
			BranchName: "Casa Central",
			Role:       entity.RoleAdminGeneral,
		},
		tokenSucursal: {
			ID:         2,
			Name:       "sucursal_norte",
			BranchName: "Sucursal Norte",
			Role:       entity.RoleAdminSucursal,
		},
	}}
}

// buildTestApp construye una app Fiber mínima con una ruta bearer y una admin.
func buildTestApp() *fiber.App {
	app := fiber.New()
	users := newFakeResolver()
	bearer := apphttp.RequireUser(users)

	app.Get("/protegida", bearer, func(c *fiber.Ctx) error {
		user := apphttp.CurrentUser(c)
		return c.JSON(fiber.Map{"ok": true, "nombre": user.Name, "rol": user.Role})
	})
	app.Get("/solo_admin", bearer, apphttp.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireUser
// ──────────────────────────────────────────────────────────────────────────────

// Token válido → pasa y el usuario queda cargado en el contexto.
func TestRequireUser_TokenValido_CargaUsuario(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", "Bearer "+tokenSucursal)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "sucursal_norte", body["nombre"])
	assert.Equal(t, entity.RoleAdminSucursal, body["rol"])
}

// Sin header Authorization → 401 con el sobre de error.
func TestRequireUser_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No autenticado")
	assert.Contains(t, string(body), `"success":false`)
}

// Token desconocido (no pertenece a ningún usuario) → 401.
func TestRequireUser_TokenDesconocido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", "Bearer token-que-no-existe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Formato de header inválido → 401.
func TestRequireUser_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", tokenSucursal) // sin "Bearer "
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

// admin_general accede a la ruta admin.
func TestRequireAdmin_AdminGeneralAccede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/solo_admin", "Bearer "+tokenAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// admin_sucursal bloqueado en ruta admin → 403 "Se requiere rol admin".
func TestRequireAdmin_AdminSucursalBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/solo_admin", "Bearer "+tokenSucursal)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Se requiere rol admin")
}
