package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.engine is not sqlite, mysql or postgres.
	ErrUnknownDBEngine = errors.New("config db.engine must be sqlite, mysql or postgres")

	// ErrUnknownCacheBackend error if config cache.backend is not supported.
	ErrUnknownCacheBackend = errors.New("config cache.backend must be none, memory, mysql or postgres")

	// ErrUnknownDefaultFormat error if config barcode.defaultFormat is not in the catalog.
	ErrUnknownDefaultFormat = errors.New("config barcode.defaultFormat is not a known barcode format")
)
