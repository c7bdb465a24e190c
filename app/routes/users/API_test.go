package users

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asistencia/app/config"
	"asistencia/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubUsers(t *testing.T, users []*models.User) {
	t.Helper()
	origAll, origByEmail := getAllUsers, getUserByEmail
	t.Cleanup(func() { getAllUsers, getUserByEmail = origAll, origByEmail })

	getAllUsers = func(_ *sql.DB) ([]*models.User, error) {
		return users, nil
	}
	getUserByEmail = func(_ *sql.DB, email string) (*models.User, error) {
		for _, u := range users {
			if u.Email == email {
				return u, nil
			}
		}
		return nil, sql.ErrNoRows
	}
}

func testUsers() []*models.User {
	now := time.Now()
	return []*models.User{
		{ID: 1, Name: "Ana", Email: "ana@x.com", Password: "$2a$14$hash", RecoveryWord: "girasol", Role: models.RoleAdmin, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Luis", Email: "luis@x.com", Password: "$2a$14$hash", RecoveryWord: "rio", Role: models.RoleStudent, CreatedAt: now, UpdatedAt: now},
	}
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetUsersReturnsPublicProjections(t *testing.T) {
	stubUsers(t, testUsers())
	app := fiber.New()
	app.Get("/api/users", GetUsersAPI)

	resp := doGet(t, app, "/api/users")
	require.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["count"])

	rows := body["users"].([]interface{})
	require.Len(t, rows, 2)
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "ana@x.com", first["email"])
	assert.NotContains(t, first, "password")
	assert.NotContains(t, first, "recoveryWord")
}

func TestGetUserByEmail(t *testing.T) {
	stubUsers(t, testUsers())
	app := fiber.New()
	app.Get("/api/user/:email", GetUserByEmailAPI)

	resp := doGet(t, app, "/api/user/luis@x.com")
	require.Equal(t, 200, resp.StatusCode)
	user := decodeBody(t, resp)["user"].(map[string]interface{})
	assert.Equal(t, float64(2), user["id"])
	assert.NotContains(t, user, "password")

	resp = doGet(t, app, "/api/user/nadie@x.com")
	require.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", decodeBody(t, resp)["error"])
}

func TestDebugUsersOnlyInDevelopment(t *testing.T) {
	stubUsers(t, testUsers())
	origConfig := config.AppConfig
	t.Cleanup(func() { config.AppConfig = origConfig })

	config.AppConfig = &config.Config{Env: "development"}
	devApp := fiber.New()
	SetupUsersRoutes(devApp)

	resp := doGet(t, devApp, "/api/debug/users")
	require.Equal(t, 200, resp.StatusCode)
	rows := decodeBody(t, resp)["users"].([]interface{})
	require.Len(t, rows, 2)
	first := rows[0].(map[string]interface{})
	assert.Contains(t, first, "password", "the debug dump intentionally exposes raw rows")

	config.AppConfig = &config.Config{Env: "production"}
	prodApp := fiber.New()
	SetupUsersRoutes(prodApp)

	resp = doGet(t, prodApp, "/api/debug/users")
	assert.Equal(t, 404, resp.StatusCode)
}
