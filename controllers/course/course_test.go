package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AshleyImmanuel/recovery-log/config"
	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	"github.com/AshleyImmanuel/recovery-log/models"
	courseModels "github.com/AshleyImmanuel/recovery-log/models/course"
	courseRoutes "github.com/AshleyImmanuel/recovery-log/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const adminEmail = "admin@recoverylog.in"

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:       "test-secret",
		SaltRound:    4,
		AdminEmail:   adminEmail,
		EmailSender:  "defaultSecret",
		Password:     "defaultSecret",
		LocalTextApi: "defaultSecret",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep every connection on the same in-memory db

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	return app
}

func bearerToken(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(1, "Test User", "USER", email)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, target, auth string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestGetCoursesDerivesSalesFromLedger(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&courseModels.Course{Title: "X"}).Error)
	require.NoError(t, db.Create(&courseModels.Course{Title: "Y"}).Error)

	require.NoError(t, db.Create(&models.PaymentRequest{
		UserEmail: "buyer@example.com",
		Course:    "X | WA: 1",
		Status:    models.PaymentStatusApproved,
	}).Error)
	// Pending payments never count
	require.NoError(t, db.Create(&models.PaymentRequest{
		UserEmail: "buyer@example.com",
		Course:    "X | WA: 2",
		Status:    models.PaymentStatusPending,
	}).Error)

	resp := doJSON(t, app, "GET", "/courses/", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []courseModels.Course
	env := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 2)

	salesOf := make(map[string]int)
	for _, c := range courses {
		salesOf[c.Title] = c.Sales
	}
	assert.Equal(t, 1, salesOf["X"])
	assert.Equal(t, 0, salesOf["Y"]) // zero, never null
}

func TestGetCoursesDeduplicatesByTitle(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	older := courseModels.Course{Title: "Alpha"}
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&older).Error)

	newer := courseModels.Course{Title: " alpha "}
	newer.CreatedAt = time.Now()
	require.NoError(t, db.Create(&newer).Error)

	resp := doJSON(t, app, "GET", "/courses/", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []courseModels.Course
	env := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 1)

	// Listing is newest-first, so the first occurrence is the newer row
	assert.Equal(t, newer.ID, courses[0].ID)
}

func TestCourseDetailAccessFlag(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	short := courseModels.Course{Title: "Course"}
	require.NoError(t, db.Create(&short).Error)
	pro := courseModels.Course{Title: "Course Pro"}
	require.NoError(t, db.Create(&pro).Error)

	require.NoError(t, db.Create(&models.PaymentRequest{
		UserEmail: "buyer@example.com",
		Course:    "Course Pro | WA: 1 | UPI: a@bank | Name: A",
		Status:    models.PaymentStatusApproved,
	}).Error)

	auth := bearerToken(t, "buyer@example.com")

	type detail struct {
		Course    courseModels.Course `json:"course"`
		HasAccess bool                `json:"hasAccess"`
	}

	// Paid course is unlocked
	resp := doJSON(t, app, "GET", fmt.Sprintf("/courses/%d", pro.ID), auth, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var d detail
	env := decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.True(t, d.HasAccess)

	// A payment for "Course Pro" must not unlock "Course"
	resp = doJSON(t, app, "GET", fmt.Sprintf("/courses/%d", short.ID), auth, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.False(t, d.HasAccess)

	// Anonymous callers get the course, locked
	resp = doJSON(t, app, "GET", fmt.Sprintf("/courses/%d", pro.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.False(t, d.HasAccess)
}

func TestCourseDetailNotFound(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, "GET", "/courses/999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
