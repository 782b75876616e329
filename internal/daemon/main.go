// Package daemon wires the settings store, the site content client and the
// web service into the running application.
package daemon

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/config"
	"github.com/olatundun-care/sitecms/internal/db/controller/setting"
	"github.com/olatundun-care/sitecms/internal/db/dsn"
	"github.com/olatundun-care/sitecms/internal/site"
	"github.com/olatundun-care/sitecms/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start()
}

// WaitShutdown blocks until the web service has shut down gracefully.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
// An unreachable settings store at boot is fatal.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(dsn.Open(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).
			Str("driver", cfg.DB.Driver).
			Msg("failed to connect settings database")
		return nil
	}

	if err = setting.EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate settings database")
		return nil
	}

	seed(db)

	// Prime the content cache from the freshly seeded store.
	client := site.NewClient(site.NewStoreFetcher(db))
	if source := client.Load(context.Background()); source != site.SourceStore {
		log.Warn().Stringer("source", source).Msg("content cache primed from fallback defaults")
	}

	return &Daemon{
		webService: web.New(cfg, db, client),
	}
}
