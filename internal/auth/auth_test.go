package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/sportstats/internal/domain"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, CheckHash(hash))
	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.Error(t, ComparePassword(hash, "wrong"))
	assert.Error(t, CheckHash("plain-text"))
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	signed, token, err := tm.GenerateToken("editor", domain.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, token.ExpiresAt.Sub(token.IssuedAt))

	claims, err := tm.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "editor", claims.Subject)
	assert.Equal(t, domain.RoleEditor, claims.Role)

	_, err = NewTokenManager("other", 5).ParseToken(signed)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	signed, _, err := tm.GenerateToken("editor", domain.RoleEditor)
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ParseToken(signed)
	assert.Error(t, err)
}

func newProtectedApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).SendString(domainErr.Code)
		},
	})
	mw := NewAuthMiddleware(tm)
	app.Get("/editor", mw.Handle, RequireRole(domain.RoleEditor), func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		return c.SendString(principal.Subject)
	})
	app.Get("/viewer", mw.Handle, RequireRole("viewer"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestMiddleware(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	app := newProtectedApp(tm)
	signed, _, err := tm.GenerateToken("editor", domain.RoleEditor)
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{name: "missing header", path: "/editor", status: http.StatusUnauthorized},
		{name: "wrong scheme", path: "/editor", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "bad token", path: "/editor", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "editor", path: "/editor", header: "Bearer " + signed, status: http.StatusOK},
		{name: "wrong role", path: "/viewer", header: "bearer " + signed, status: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
