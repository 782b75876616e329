// Package dashboard implements the admin editor for the site content record.
package dashboard

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/config"
	"github.com/olatundun-care/sitecms/internal/roster"
	"github.com/olatundun-care/sitecms/internal/site"
	"github.com/olatundun-care/sitecms/internal/web/handler"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/index"
)

// Form field names for the repeated team member rows.
const (
	fieldMemberName      = "member_name"
	fieldMemberRole      = "member_role"
	fieldMemberExpertise = "member_expertise"
	fieldMemberImage     = "member_image"

	// rosterSubmittedField marks that the form carried the team tab, so an
	// empty roster means "all members removed" rather than "not edited".
	rosterSubmittedField = "team_submitted"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	client    *site.Client
	validator *validator.Validate
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, client *site.Client) {
	if app == nil || cfg == nil || db == nil || client == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.client = client
	s.validator = validator.New()

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
}

// Get renders the edit form from the cached record.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, renderState{
		Saved: c.Query("saved") == "1",
	})
}

// Post collects the submitted fields into a draft, validates it and flushes
// it through the client in a single save. A failed save surfaces one generic
// error banner; the cache keeps the pre-save record.
func (s *Service) Post(c *fiber.Ctx) error {
	partial, errs := s.collectDraft(c)
	if len(errs) > 0 {
		return s.render(c, fiber.StatusBadRequest, renderState{Errors: errs})
	}

	if s.client.Source() == site.SourceDefaults {
		// The last load fell back to defaults; this save persists those
		// defaults for every untouched field.
		log.Warn().Msg("dashboard save while content cache runs on fallback defaults")
	}

	if err := s.client.Save(c.UserContext(), partial); err != nil {
		log.Error().Err(err).Msg("dashboard save failed")

		return s.render(c, fiber.StatusInternalServerError, renderState{
			Errors: []string{"Failed to save settings"},
		})
	}

	return c.Redirect(Path + "?saved=1")
}

// renderState carries the banner flags into the template.
type renderState struct {
	Saved  bool
	Errors []string
}

func (s *Service) render(c *fiber.Ctx, status int, state renderState) error {
	record := s.client.Record()

	return c.Status(status).Render(TemplateName, fiber.Map{
		"Settings": record,
		"Team":     s.client.Roster(),
		"Source":   s.client.Source().String(),
		"Title":    record[site.KeySiteName] + " — Site Admin",
		"Saved":    state.Saved,
		"Errors":   state.Errors,
	}, handler.BaseLayout)
}

// collectDraft builds the partial record from the posted form. Only known
// keys are collected; the roster rows are validated and re-encoded into the
// team_members field.
func (s *Service) collectDraft(c *fiber.Ctx) (site.Record, []string) {
	var errs []string

	partial := site.Record{}
	args := c.Request().PostArgs()

	for _, key := range site.Keys() {
		if key == site.KeyTeamMembers {
			continue // assembled from the member rows below
		}

		if args.Has(key) {
			partial[key] = c.FormValue(key)
		}
	}

	if email, ok := partial[site.KeyContactEmail]; ok {
		if err := s.validator.Var(email, "omitempty,email"); err != nil {
			errs = append(errs, "Contact email must be a valid email address")
		}
	}

	if args.Has(rosterSubmittedField) {
		members, memberErrs := s.collectMembers(c)
		errs = append(errs, memberErrs...)

		if len(memberErrs) == 0 {
			encoded, err := roster.Encode(members)
			if err != nil {
				log.Error().Err(err).Msg("failed to encode team roster")
				errs = append(errs, "Failed to encode team roster")
			} else {
				partial[site.KeyTeamMembers] = encoded
			}
		}
	}

	return partial, errs
}

func (s *Service) collectMembers(c *fiber.Ctx) ([]roster.Member, []string) {
	var errs []string

	args := c.Request().PostArgs()

	names := args.PeekMulti(fieldMemberName)
	roles := args.PeekMulti(fieldMemberRole)
	expertises := args.PeekMulti(fieldMemberExpertise)
	images := args.PeekMulti(fieldMemberImage)

	pick := func(values [][]byte, i int) string {
		if i < len(values) {
			return string(values[i])
		}

		return ""
	}

	members := make([]roster.Member, 0, len(names))

	for i := range names {
		member := roster.Member{
			Name:      pick(names, i),
			Role:      pick(roles, i),
			Expertise: pick(expertises, i),
			Image:     pick(images, i),
		}

		if err := s.validator.Struct(member); err != nil {
			errs = append(errs, "Every team member needs a name and a role")
			continue
		}

		members = append(members, member)
	}

	return members, errs
}
