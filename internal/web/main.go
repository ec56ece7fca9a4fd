// Package web hosts the barcode generator pages and the JSON API.
package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cache"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barcode-maker/barcode-maker/internal/config"
	"github.com/barcode-maker/barcode-maker/internal/export"
	fiberlogger "github.com/barcode-maker/barcode-maker/internal/logger/adapter/fiber"
	"github.com/barcode-maker/barcode-maker/internal/web/handler"
	"github.com/barcode-maker/barcode-maker/internal/web/handler/barcode"
	"github.com/barcode-maker/barcode-maker/internal/web/handler/barcodes"
	"github.com/barcode-maker/barcode-maker/internal/web/handler/formats"
	"github.com/barcode-maker/barcode-maker/internal/web/handler/generator"
	"github.com/barcode-maker/barcode-maker/internal/web/handler/settings"
	"github.com/barcode-maker/barcode-maker/internal/web/middleware/profile"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes Prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Options tune optional parts of the service.
type Options struct {
	// CacheStorage backs the response cache, nil keeps entries in memory.
	CacheStorage fiber.Storage

	// DisableCache switches the response cache off.
	DisableCache bool

	// Views replaces the embedded template engine, used by tests.
	Views fiber.Views
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	go func() {
		err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: !s.cfg.DevMode})
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			doneFiber <- err
			return
		}

		doneFiber <- nil
	}()

	return <-doneFiber // wait for fiber to stop
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the service gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails the health check for the configured time and stops the
// http server afterwards.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service. db may be nil, the settings API is disabled then.
func New(cfg *config.Config, db *gorm.DB, gen *export.Generator, opts Options) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if gen == nil {
		panic("generator cannot be nil")
	}

	views := opts.Views
	if views == nil {
		views = newTemplateEngine(cfg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Immutable:      true,
			BodyLimit:      cfg.Webserver.BodyLimit,
			Views:          views,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}

	service.alive.Store(true)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(requestid.New())

	if len(cfg.Webserver.CorsAllowOrigins) > 0 {
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.Webserver.CorsAllowOrigins}))
	}

	if cfg.Webserver.CleanPath {
		app.Use(cleanPath)
	}

	app.Get(CheckAlivePath, service.checkAlive)

	if cfg.Webserver.MetricsEnabled {
		app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	if staticFS, err := fs.Sub(embeddedStaticFiles, "static"); err == nil {
		app.Get("/static*", static.New("", static.Config{FS: staticFS}))
	}

	if !opts.DisableCache {
		app.Use(barcode.CachePrefix, cache.New(cache.Config{
			Expiration:           cfg.Cache.Expiration,
			Storage:              opts.CacheStorage,
			StoreResponseHeaders: true,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.OriginalURL()
			},
		}))
	}

	env := &handler.Env{Cfg: cfg, DB: db, Generator: gen}

	// the retrieval endpoint is cacheable and must not set cookies
	barcode.Handler.Init(app, env)
	formats.Handler.Init(app, env)

	app.Use(profile.New(profile.Config{
		CookieName: cfg.Webserver.ProfileCookie,
		Secure:     cfg.Webserver.CookieSecure,
	}))

	barcodes.Handler.Init(app, env)
	settings.Handler.Init(app, env)
	generator.Handler.Init(app, env)

	return service
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// cleanPath collapses repeated slashes so that //formats reaches /formats.
// Barcode URLs are left alone, their payload may hold slashes.
func cleanPath(c fiber.Ctx) error {
	p := c.Path()
	if strings.Contains(p, "//") && !strings.HasPrefix(p, barcode.CachePrefix+"/") {
		c.Path(path.Clean(p))
	}

	return c.Next()
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.Reload(true)

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("lower", strings.ToLower)
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	return engine
}
