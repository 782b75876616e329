// Package web implements the fiber web service serving the public site, the
// admin dashboard and the settings API.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/config"
	fiberlogger "github.com/olatundun-care/sitecms/internal/logger/adapter/fiber"
	"github.com/olatundun-care/sitecms/internal/site"
	"github.com/olatundun-care/sitecms/internal/web/handler"
	apisettings "github.com/olatundun-care/sitecms/internal/web/handler/api/settings"
	"github.com/olatundun-care/sitecms/internal/web/handler/dashboard"
	"github.com/olatundun-care/sitecms/internal/web/handler/home"
)

const (
	// CheckAlivePath answers load balancer liveness probes.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes prometheus metrics.
	MetricsPath = "/metrics"

	// maxBodySize bounds POST bodies; inline data-URL images make settings
	// payloads large.
	maxBodySize = 10 * 1024 * 1024
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	client       *site.Client
}

// Start starts the web service on the configured port.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		addr := fmt.Sprintf(":%d", s.cfg.Webserver.Port)
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, client *site.Client) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if client == nil {
		panic("client cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	addTemplateFuncs(templateEngine)

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "sitecms",
			BodyLimit:      maxBodySize,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// init web service
	service := &Service{
		cfg:    cfg,
		App:    app,
		db:     db,
		client: client,
	}

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	apisettings.Handler.Init(app, cfg, db, client)
	home.Handler.Init(app, cfg, db, client)
	dashboard.Handler.Init(app, cfg, db, client)

	return service
}

// checkAlive reports liveness; it flips to 503 during the shutdown grace
// period so load balancers drain this instance.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

// addTemplateFuncs registers the helpers shared by all templates.
func addTemplateFuncs(engine *html.Engine) {
	// safeImage substitutes a placeholder for empty image references so an
	// unset field renders instead of crashing the page.
	engine.AddFunc("safeImage", func(ref string) string {
		if strings.TrimSpace(ref) == "" {
			return handler.PlaceholderImage
		}

		return ref
	})

	engine.AddFunc("year", func() int {
		return time.Now().Year()
	})
}
