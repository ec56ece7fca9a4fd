package config

import (
	"time"

	"github.com/barcode-maker/barcode-maker/internal/logger"
)

// Database engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// Cache backends.
const (
	CacheNone     = "none"
	CacheMemory   = "memory"
	CacheMySQL    = "mysql"
	CachePostgres = "postgres"
)

// Config overall data structure.
type Config struct {
	DevMode   bool       `toml:"devMode"   json:"DevMode"` // enable dev mode for development
	Title     string     `toml:"title"     json:"Title"`
	DB        DB         `toml:"db"        json:"DB"`
	Cache     Cache      `toml:"cache"     json:"Cache"`
	Log       logger.Log `toml:"log"       json:"Log"`
	Webserver Webserver  `toml:"webserver" json:"Webserver"`
	Barcode   Barcode    `toml:"barcode"   json:"Barcode"`
}

// DB holds the database configuration settings.
type DB struct {
	Engine     string        `toml:"engine"` // sqlite, mysql or postgres
	Path       string        `toml:"path"`   // sqlite database file
	Extras     string        `toml:"extras"`
	Host       string        `toml:"host"`
	Port       int           `toml:"port"`
	User       string        `toml:"user"`
	Password   string        `toml:"password"`
	Name       string        `toml:"name"`
	ProfileTTL time.Duration `toml:"profileTTL"` // drop profiles not touched for this long, 0 keeps them forever
}

// Cache configures the response cache of the barcode retrieval endpoint.
type Cache struct {
	Backend    string        `toml:"backend"`
	Expiration time.Duration `toml:"expiration"`
	Table      string        `toml:"table"`
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath        bool     `toml:"cleanPath"`      // use clean path middleware to allow multi slash requests
	DisableRecover   bool     `toml:"disableRecover"` // disable recover middleware
	Port             int      `toml:"port"`           // listening port for the webserver
	ShutDownTime     int      `toml:"shutDownTime"`   // wait time for shutdown
	URL              string   `toml:"url"`            // base url for the webserver
	CorsAllowOrigins []string `toml:"corsAllowOrigins"`
	BodyLimit        int      `toml:"bodyLimit"` // max request body in bytes
	ProfileCookie    string   `toml:"profileCookie"`
	CookieSecure     bool     `toml:"cookieSecure"`
	MetricsEnabled   bool     `toml:"metricsEnabled"`
}

// Barcode holds rendering limits and defaults.
type Barcode struct {
	DefaultFormat string `toml:"defaultFormat"`
	MaxLines      int    `toml:"maxLines"` // max values per preview or export
	Workers       int    `toml:"workers"`  // concurrent renders per export
}
