package serverutils

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "2f5a1f60-0b1c-4b9a-9a57-0d6a3a1f1a11",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedApp(middleware fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

// Tokens are signed with the configured secret, which defaults to
// "default_secret" when JWT_SECRET is unset. Verification must accept
// them under the same default or every protected route rejects logins.
func TestJwtMiddlewareDefaultSecret(t *testing.T) {
	old, had := os.LookupEnv("JWT_SECRET")
	os.Unsetenv("JWT_SECRET")
	defer func() {
		if had {
			os.Setenv("JWT_SECRET", old)
		}
	}()

	app := protectedApp(JwtMiddleware)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "default_secret", "user"))
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestJwtMiddlewareUsesConfiguredSecret(t *testing.T) {
	old, had := os.LookupEnv("JWT_SECRET")
	os.Setenv("JWT_SECRET", "integration-secret")
	defer func() {
		if had {
			os.Setenv("JWT_SECRET", old)
		} else {
			os.Unsetenv("JWT_SECRET")
		}
	}()

	app := protectedApp(JwtMiddleware)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "integration-secret", "user"))
	resp, _ := app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	// A token signed under a different key must not pass.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "some-other-secret", "user"))
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	old, had := os.LookupEnv("JWT_SECRET")
	os.Unsetenv("JWT_SECRET")
	defer func() {
		if had {
			os.Setenv("JWT_SECRET", old)
		}
	}()

	app := protectedApp(AdminMiddleware)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "default_secret", "user"))
	resp, _ := app.Test(req, -1)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "default_secret", "admin"))
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)
}
