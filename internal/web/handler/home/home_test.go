package home

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/db/controller/setting"
	"github.com/olatundun-care/sitecms/internal/site"
)

// mockTemplateEngine accepts any render that carries the settings record.
type mockTemplateEngine struct{}

func (m *mockTemplateEngine) Load() error {
	return nil
}

func (m *mockTemplateEngine) Render(_ io.Writer, _ string, binding interface{}, _ ...string) error {
	if data, ok := binding.(fiber.Map); ok {
		if _, hasSettings := data["Settings"]; hasSettings {
			return nil
		}
	}

	return fiber.ErrInternalServerError
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, setting.EnsureSchema(db), "failed to migrate test database")
	require.NoError(t, setting.SeedDefaults(db, site.DefaultRecord()))

	return db
}

func setupApp(t *testing.T) (*fiber.App, *site.Client) {
	t.Helper()

	db := setupTestDB(t)

	client := site.NewClient(site.NewStoreFetcher(db))
	client.Load(context.Background())

	service := &Service{db: db, client: client}

	app := fiber.New(fiber.Config{Views: &mockTemplateEngine{}})
	app.Get(Path, service.Get)

	return app, client
}

func TestGetRendersWithSettings(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetRendersAfterEdit(t *testing.T) {
	app, client := setupApp(t)

	require.NoError(t, client.Save(context.Background(),
		site.Record{site.KeySiteName: "Renamed Care"}))

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed Care", client.Get(site.KeySiteName))
}
