package auth

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asistencia/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/protected", RequireUser, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func getWithHeader(t *testing.T, app *fiber.App, headerValue string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	if headerValue != "" {
		req.Header.Set(UserIDHeader, headerValue)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireUserMissingHeader(t *testing.T) {
	app := newGateApp()

	resp := getWithHeader(t, app, "")
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireUserNonNumericHeader(t *testing.T) {
	app := newGateApp()

	resp := getWithHeader(t, app, "not-a-number")
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireUserUnknownUser(t *testing.T) {
	stubUserStore(t)
	app := newGateApp()

	resp := getWithHeader(t, app, "99")
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireUserKnownUser(t *testing.T) {
	store := stubUserStore(t)
	store.users[7] = &models.User{
		ID:        7,
		Name:      "Ana",
		Email:     "ana@x.com",
		Role:      models.RoleTeacher,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	app := newGateApp()

	resp := getWithHeader(t, app, "7")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(7), decodeBody(t, resp)["user_id"])
}

func TestRequireUserStorageFailure(t *testing.T) {
	stubUserStore(t)
	getUserByID = func(_ *sql.DB, _ int) (*models.User, error) {
		return nil, errors.New("connection refused")
	}
	app := newGateApp()

	// A storage failure is a server error, not an authorization failure.
	resp := getWithHeader(t, app, "7")
	assert.Equal(t, 500, resp.StatusCode)
}
