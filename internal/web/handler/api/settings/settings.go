// Package settings implements the JSON settings API consumed by the admin
// surface and the remote CLI.
package settings

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/config"
	"github.com/olatundun-care/sitecms/internal/db/controller/setting"
	"github.com/olatundun-care/sitecms/internal/site"
)

// Path is the settings API route.
const Path = "/api/settings"

// Service is the settings API handler service.
type Service struct {
	cfg    *config.Config
	db     *gorm.DB
	client *site.Client
}

// Handler is the settings API handler.
var Handler = Service{}

// Init initializes the settings API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, client *site.Client) {
	if app == nil || cfg == nil || db == nil || client == nil {
		log.Fatal().Msg("app, cfg, db or client is nil")
		return
	}

	s.cfg = cfg
	s.db = db
	s.client = client

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
}

// Get returns the full current settings record as a flat key-value object.
func (s *Service) Get(c *fiber.Ctx) error {
	record, err := setting.ReadAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to read settings")

		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to load settings"})
	}

	return c.JSON(record)
}

// Post applies a full or partial key-value object to the store in a single
// transaction. Unknown keys are ignored. Applying the same body twice yields
// the same stored state; there is no conflict detection between writers.
func (s *Service) Post(c *fiber.Ctx) error {
	var pairs map[string]string
	if err := json.Unmarshal(c.Body(), &pairs); err != nil {
		log.Debug().Err(err).Msg("malformed settings payload")

		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := setting.WriteMany(s.db, pairs); err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to save settings"})
	}

	// The rendering cache reads through the client, which this write
	// bypassed; bring it back in line with the store.
	s.client.Refresh(c.UserContext())

	return c.JSON(fiber.Map{"success": true})
}
