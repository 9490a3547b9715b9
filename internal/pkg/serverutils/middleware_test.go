package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"medichat-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id": ctx.Locals(LocalsUserId),
			"role":    ctx.Locals(LocalsRole),
		})
	})
	return app
}

func TestJwtMiddlewareMissingHeader(t *testing.T) {
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJwtMiddlewareGarbageToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJwtMiddlewareExpiredToken(t *testing.T) {
	app := newProtectedApp()
	token := signToken(t, jwt.MapClaims{
		"sub": "abc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJwtMiddlewareValidTokenPopulatesLocals(t *testing.T) {
	app := newProtectedApp()
	token := signToken(t, jwt.MapClaims{
		"sub": "3f1e0a34-0000-0000-0000-000000000001",
		"exp": time.Now().Add(time.Hour).Unix(),
		"context": map[string]interface{}{
			"role": "customer",
		},
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "3f1e0a34-0000-0000-0000-000000000001", body["user_id"])
	assert.Equal(t, "customer", body["role"])
}

func TestErrorHandlerMapsKindsToStatuses(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return apperror.NotFound("chat not found")
	})
	app.Get("/conflict", func(ctx *fiber.Ctx) error {
		return apperror.AlreadyExists("email already registered")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, 404, body.Code)
	assert.Equal(t, "chat not found", body.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}
