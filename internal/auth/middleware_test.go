package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/loanlink-service/internal/domain"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

func newTestApp(handlersChain ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"message": de.Message})
		},
	})
	chain := append(handlersChain, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", chain...)
	return app
}

func TestMiddlewareNoCredential(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	app := newTestApp(NewMiddleware(tm).Handle)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareBearerHeader(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	app := newTestApp(NewMiddleware(tm).Handle)

	token, _, err := tm.GenerateToken("a@x.com", domain.RoleBorrower)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareCookieBeforeHeader(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	app := newTestApp(NewMiddleware(tm).Handle)

	cookieToken, _, err := tm.GenerateToken("cookie@x.com", domain.RoleBorrower)
	require.NoError(t, err)

	// A bogus header must not matter when a valid cookie is present.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: cookieToken})
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	app := newTestApp(NewMiddleware(tm).Handle)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRoles(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	verify := NewMiddleware(tm).Handle

	cases := []struct {
		name    string
		role    domain.Role
		guard   fiber.Handler
		expects int
	}{
		{"borrower denied manager route", domain.RoleBorrower, RequireManager(), http.StatusForbidden},
		{"manager allowed manager route", domain.RoleManager, RequireManager(), http.StatusOK},
		{"admin allowed manager route by set membership", domain.RoleAdmin, RequireManager(), http.StatusOK},
		{"manager denied admin route", domain.RoleManager, RequireAdmin(), http.StatusForbidden},
		{"admin allowed admin route", domain.RoleAdmin, RequireAdmin(), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(verify, tc.guard)
			token, _, err := tm.GenerateToken("a@x.com", tc.role)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.expects, resp.StatusCode)
		})
	}
}

func TestRequireRolesWithoutIdentity(t *testing.T) {
	// Guard without the verifier in front: absent identity is a denial,
	// never an implicit allow.
	app := newTestApp(RequireAdmin())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("p", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "p", hash)

	assert.NoError(t, ComparePassword(hash, "p"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
