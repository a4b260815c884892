package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AshleyImmanuel/recovery-log/config"
	"github.com/AshleyImmanuel/recovery-log/database"
	authRoutes "github.com/AshleyImmanuel/recovery-log/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSignupAndLogin(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Test User",
		"email":    "user@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate email is rejected
	resp = postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Test User",
		"email":    "user@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "user@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Status)
	assert.NotEmpty(t, env.Data.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Test User",
		"email":    "user@example.com",
		"password": "secret-password",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "user@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Test User",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
