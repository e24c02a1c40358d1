package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"trainhub/config"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(roles ...string) *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret", JWTTTLHours: 1}

	app := fiber.New()
	app.Get("/", JWTMiddleware, RequireRoles(roles...), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})
	return app
}

func call(t *testing.T, app *fiber.App, authorization string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJWTMiddleware(t *testing.T) {
	app := newTestApp(models.RoleProvider)

	token, err := GenerateJWT("u1", "Ada", models.RoleProvider, "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, call(t, app, "Bearer "+token))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, token))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "Bearer not-a-token"))
}

func TestJWTMiddlewareRejectsForeignSignatures(t *testing.T) {
	app := newTestApp(models.RoleProvider)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"role":   models.RoleProvider,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "Bearer "+signed))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"role":   models.RoleProvider,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	signed, err = expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "Bearer "+signed))
}

func TestRequireRoles(t *testing.T) {
	app := newTestApp(models.RoleProvider, models.RoleAdmin)

	admin, err := GenerateJWT("u1", "Root", models.RoleAdmin, "root@example.com")
	require.NoError(t, err)
	student, err := GenerateJWT("u2", "Sam", models.RoleStudent, "sam@example.com")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, call(t, app, "Bearer "+admin))
	assert.Equal(t, fiber.StatusForbidden, call(t, app, "Bearer "+student))
}
