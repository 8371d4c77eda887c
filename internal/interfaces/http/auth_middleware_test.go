package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokos/stokos-api/internal/domain/entity"
	apphttp "github.com/stokos/stokos-api/internal/interfaces/http"
	pkgjwt "github.com/stokos/stokos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "stokos-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"username": apphttp.GetUsername(c),
				"role":     apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el usuario y rol indicados.
func tokenFor(t *testing.T, username, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, username, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_CEOAccedeRutaCEO(t *testing.T) {
	app := buildTestApp(entity.RoleCEO)
	resp := doRequest(t, app, tokenFor(t, "esther", entity.RoleCEO))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la CEO debe poder acceder a una ruta restringida a CEO")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "esther", body["username"])
	assert.Equal(t, entity.RoleCEO, body["role"])
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_EstagiarioAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp(entity.RoleCEO, entity.RoleIntern)
	resp := doRequest(t, app, tokenFor(t, "athyrson", entity.RoleIntern))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un rol incluido en la lista permitida debe pasar")
}

// Caso 2: El usuario NO tiene el rol requerido → HTTP 403.
func TestRequireRole_EstagiarioNoAccedeRutaCEO(t *testing.T) {
	app := buildTestApp(entity.RoleCEO)
	resp := doRequest(t, app, tokenFor(t, "mariana", entity.RoleIntern))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un estagiario no debe acceder a operaciones de CEO")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(entity.RoleCEO)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(entity.RoleCEO)
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"solo se acepta el esquema Bearer")
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", "esther", entity.RoleCEO, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(entity.RoleCEO)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token firmado con otro secret debe rechazarse")
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "esther", entity.RoleCEO, testIssuer, -5)
	require.NoError(t, err)

	app := buildTestApp(entity.RoleCEO)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
