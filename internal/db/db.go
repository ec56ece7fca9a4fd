// Package db opens the gorm connection of the configured engine.
package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/barcode-maker/barcode-maker/internal/config"
	"github.com/barcode-maker/barcode-maker/internal/db/dsn"
	"github.com/barcode-maker/barcode-maker/internal/db/models"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg config.DB, devMode bool) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Engine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	case config.EngineSQLite, "":
		if dir := filepath.Dir(cfg.Path); cfg.Path != ":memory:" && dir != "" {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("create sqlite directory %s: %w", dir, err)
			}
		}

		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownDBEngine, cfg.Engine)
	}

	logLevel := gormlogger.Silent
	if devMode {
		logLevel = gormlogger.Info
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("connect %s database: %w", cfg.Engine, err)
	}

	if err = Migrate(gdb); err != nil {
		return nil, err
	}

	log.Info().Str("engine", cfg.Engine).Msg("database ready")

	return gdb, nil
}

// Migrate creates or updates the tables.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Setting{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	return nil
}
