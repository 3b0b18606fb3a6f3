package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/modus-trade/modus-api/internal/interfaces/http"
	pkgjwt "github.com/modus-trade/modus-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "modus-api-test"
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
				"ok":     true,
				"userId": apphttp.GetUserID(c),
				"role":   apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
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

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido con el rol requerido → HTTP 200 y locals cargados.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, "admin", body["role"])
}

// Caso 2: sin header Authorization → 401 con sobre de error completo.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, "MISSING_TOKEN", body["errorCode"])
	assert.Equal(t, float64(http.StatusUnauthorized), body["status"])
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, "/protected", body["path"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["message"])
}

// Caso 3: formato distinto de "Bearer <token>" → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, "INVALID_TOKEN", body["errorCode"])
}

// Caso 4: token firmado con otro secreto → 401 INVALID_TOKEN.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, "INVALID_TOKEN", body["errorCode"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: rol no permitido → 403 FORBIDDEN con sobre de error.
func TestRequireRole_RolNoPermitido(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "operator"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, "FORBIDDEN", body["errorCode"])
	assert.Equal(t, "Forbidden", body["error"])
}

// Caso 6: multi-rol — cualquiera de los permitidos pasa.
func TestRequireRole_MultiRol(t *testing.T) {
	app := buildTestApp("admin", "operator")
	resp := doRequest(t, app, tokenForRole(t, "operator"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
