// Package cache builds the fiber.Storage backing the response cache of the
// barcode retrieval endpoint.
package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"

	"github.com/barcode-maker/barcode-maker/internal/config"
	"github.com/barcode-maker/barcode-maker/internal/db/dsn"
)

const gcInterval = 10 * time.Minute

// ErrDisabled is returned when the response cache is switched off.
var ErrDisabled = errors.New("response cache disabled")

// NewStorage returns the storage of the configured backend. The memory
// backend returns a nil storage: the cache middleware keeps entries in
// process memory then.
func NewStorage(cfg *config.Config) (s fiber.Storage, err error) {
	// the sql storages panic when the database can not be reached
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("open %s cache storage: %v", cfg.Cache.Backend, r)
		}
	}()

	switch cfg.Cache.Backend {
	case config.CacheNone:
		return nil, ErrDisabled
	case config.CacheMemory, "":
		return nil, nil
	case config.CacheMySQL:
		return mysql.New(mysql.Config{
			ConnectionURI: dsn.MySQL(cfg.DB),
			Table:         cfg.Cache.Table,
			GCInterval:    gcInterval,
		}), nil
	case config.CachePostgres:
		return postgres.New(postgres.Config{
			ConnectionURI: dsn.Postgres(cfg.DB),
			Table:         cfg.Cache.Table,
			GCInterval:    gcInterval,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownCacheBackend, cfg.Cache.Backend)
	}
}
