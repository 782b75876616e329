// Package home renders the public marketing page from the cached content
// record.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/config"
	"github.com/olatundun-care/sitecms/internal/site"
	"github.com/olatundun-care/sitecms/internal/web/handler"
)

const (
	// Path is the path to the public page.
	Path = handler.RootPath

	// TemplateName is the name of the public page template.
	TemplateName = "home/index"
)

// Service is the public page handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	db     *gorm.DB
	client *site.Client
}

// Handler is the public page handler.
var Handler = Service{}

// Init initializes the public page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, client *site.Client) {
	if app == nil || cfg == nil || db == nil || client == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.client = client

	app.Get(Path, s.Get)
}

// Get renders the marketing page. All content fields come from the cached
// record; the team roster arrives already decoded.
func (s *Service) Get(c *fiber.Ctx) error {
	record := s.client.Record()

	return c.Render(TemplateName, fiber.Map{
		"Settings": record,
		"Team":     s.client.Roster(),
		"Title":    record[site.KeySiteName],
	}, handler.BaseLayout)
}
