// Package config handles input from etc/main.toml.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/barcode-maker/barcode-maker/internal/symbology"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. BARCODE_MAKER_WEBSERVER_PORT.
	EnvPrefix = "BARCODE_MAKER"

	// EnvJSONConfig holds a JSON document merged over the file config.
	EnvJSONConfig = "BARCODE_MAKER_CONFIG_JSON"

	configFile = "main.toml"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(filepath.Join(path, configFile))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if configAsJSON := os.Getenv(EnvJSONConfig); configAsJSON != "" {
		c, err = decodeAndMergeConfig(c, configAsJSON)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "Barcode Maker")
	v.SetDefault("db.engine", EngineSQLite)
	v.SetDefault("db.path", "./data/barcode-maker.db")
	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.expiration", time.Hour)
	v.SetDefault("cache.table", "barcode_cache")
	v.SetDefault("log.logLevel", "info")
	v.SetDefault("log.appName", "barcode-maker")
	v.SetDefault("log.serviceName", "barcode-maker")
	v.SetDefault("webserver.port", 8080) //nolint:mnd
	v.SetDefault("webserver.shutDownTime", 5)
	v.SetDefault("webserver.bodyLimit", 1<<20)
	v.SetDefault("webserver.profileCookie", "bm_profile")
	v.SetDefault("webserver.metricsEnabled", true)
	v.SetDefault("barcode.defaultFormat", symbology.DefaultFormat)
	v.SetDefault("barcode.maxLines", 500)
	v.SetDefault("barcode.workers", 4)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	t := toml.NewEncoder(&buffer)
	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill in what may be left empty.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.DB.Engine == "" {
		c.DB.Engine = EngineSQLite
	}

	if !slices.Contains([]string{EngineSQLite, EngineMySQL, EnginePostgres}, c.DB.Engine) {
		return errors.Wrap(ErrUnknownDBEngine, invalidErrMessage)
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheMemory
	}

	if !slices.Contains([]string{CacheNone, CacheMemory, CacheMySQL, CachePostgres}, c.Cache.Backend) {
		return errors.Wrap(ErrUnknownCacheBackend, invalidErrMessage)
	}

	if c.Barcode.DefaultFormat == "" {
		c.Barcode.DefaultFormat = symbology.DefaultFormat
	}

	if _, ok := symbology.Lookup(c.Barcode.DefaultFormat); !ok {
		return errors.Wrap(ErrUnknownDefaultFormat, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.ProfileCookie == "" {
		c.Webserver.ProfileCookie = "bm_profile"
	}

	if c.Barcode.MaxLines <= 0 {
		c.Barcode.MaxLines = 500
	}

	if c.Barcode.Workers <= 0 {
		c.Barcode.Workers = 4
	}

	return nil
}
