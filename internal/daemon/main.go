// Package daemon wires storage, cache and the web service of the barcode server.
package daemon

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barcode-maker/barcode-maker/internal/cache"
	"github.com/barcode-maker/barcode-maker/internal/config"
	"github.com/barcode-maker/barcode-maker/internal/db"
	"github.com/barcode-maker/barcode-maker/internal/export"
	"github.com/barcode-maker/barcode-maker/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	store      fiber.Storage
	webService *web.Service
	stop       chan struct{}
	wg         sync.WaitGroup
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		runJanitor(d.db, d.cfg.DB.ProfileTTL, d.stop)
	}()

	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting barcode web service")

	err := d.webService.Start(addr)

	d.close()

	return err
}

func (d *Daemon) close() {
	close(d.stop)
	d.wg.Wait()

	if d.store != nil {
		if err := d.store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close cache storage")
		}
	}

	if sqlDB, err := d.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	gdb, err := db.Open(cfg.DB, cfg.DevMode)
	if err != nil {
		return nil, err
	}

	store, err := cache.NewStorage(cfg)

	disableCache := errors.Is(err, cache.ErrDisabled)
	if err != nil && !disableCache {
		return nil, err
	}

	gen := export.New(cfg.Barcode.Workers, cfg.Barcode.MaxLines)

	return &Daemon{
		cfg:   cfg,
		db:    gdb,
		store: store,
		stop:  make(chan struct{}),
		webService: web.New(cfg, gdb, gen, web.Options{
			CacheStorage: store,
			DisableCache: disableCache,
		}),
	}, nil
}
