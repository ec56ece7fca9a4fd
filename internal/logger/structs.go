package logger

import (
	"time"
)

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"          mapstructure:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter" mapstructure:"useConsoleWriter"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `toml:"enabled" mapstructure:"enabled"`
	Path    string `toml:"path"    mapstructure:"path"`

	AccessLog        string `toml:"access"           mapstructure:"access"`
	AccessMaxSize    int    `toml:"accessMaxSize"    mapstructure:"accessMaxSize"`
	AccessMaxBackups int    `toml:"accessMaxBackups" mapstructure:"accessMaxBackups"`
	AccessMaxAge     int    `toml:"accessMaxAge"     mapstructure:"accessMaxAge"`

	ErrorLog        string `toml:"error"           mapstructure:"error"`
	ErrorMaxSize    int    `toml:"errorMaxSize"    mapstructure:"errorMaxSize"`
	ErrorMaxBackups int    `toml:"errorMaxBackups" mapstructure:"errorMaxBackups"`
	ErrorMaxAge     int    `toml:"errorMaxAge"     mapstructure:"errorMaxAge"`

	InfoLog        string `toml:"info"           mapstructure:"info"`
	InfoMaxSize    int    `toml:"infoMaxSize"    mapstructure:"infoMaxSize"`
	InfoMaxBackups int    `toml:"infoMaxBackups" mapstructure:"infoMaxBackups"`
	InfoMaxAge     int    `toml:"infoMaxAge"     mapstructure:"infoMaxAge"`

	TraceLog        string `toml:"trace"           mapstructure:"trace"`
	TraceMaxSize    int    `toml:"traceMaxSize"    mapstructure:"traceMaxSize"`
	TraceMaxBackups int    `toml:"traceMaxBackups" mapstructure:"traceMaxBackups"`
	TraceMaxAge     int    `toml:"traceMaxAge"     mapstructure:"traceMaxAge"`

	WarnLog        string `toml:"warn"           mapstructure:"warn"`
	WarnMaxSize    int    `toml:"warnMaxSize"    mapstructure:"warnMaxSize"`
	WarnMaxBackups int    `toml:"warnMaxBackups" mapstructure:"warnMaxBackups"`
	WarnMaxAge     int    `toml:"warnMaxAge"     mapstructure:"warnMaxAge"`
}

// DataDog implements a datadog config.
type DataDog struct {
	Enabled     bool          `toml:"enabled"     mapstructure:"enabled"`
	ServiceName string        `toml:"serviceName" mapstructure:"serviceName"`
	APIKey      string        `toml:"apiKey"      mapstructure:"apiKey"` // API Key defined at datadog
	Site        string        `toml:"site"        mapstructure:"site"`   // Regional Site aka DD_SITE ("datadoghq.eu")
	Source      string        `toml:"source"      mapstructure:"source"`
	Tags        string        `toml:"tags"        mapstructure:"tags"`    // comma separated, e.g. "env:prod,team:web"
	Timeout     time.Duration `toml:"timeout"     mapstructure:"timeout"` // how long to wait to send a log entry to datadog.
}

// Log implements the logger config.
type Log struct {
	LogLevel string `toml:"logLevel" mapstructure:"logLevel"` // info, warn, error.
	LogEnv   string `toml:"logEnv"   mapstructure:"logEnv"`

	// EnableAccessLogToConsole if true the web service logs every request to the console.
	// Does not overrule flag Console.Enabled!
	// If Console.Enabled is false, still no access log output to the console will be shown.
	EnableAccessLogToConsole bool `toml:"enableAccessLogToConsole" mapstructure:"enableAccessLogToConsole"`
	ReportCaller             bool `toml:"reportCaller"             mapstructure:"reportCaller"`
	DisableCheckAlive        bool `toml:"disableCheckAlive"        mapstructure:"disableCheckAlive"` // do not log /checkalive calls

	AppName     string `toml:"appName"     mapstructure:"appName"`
	ServiceName string `toml:"serviceName" mapstructure:"serviceName"`

	// Console used mainly for docker and dev.
	Console Console `toml:"console" mapstructure:"console"`

	// Legacy non docker env file logging.
	File LogFile `toml:"file" mapstructure:"file"`

	// DataDog ships log lines to the Datadog logs intake.
	DataDog DataDog `toml:"dataDog" mapstructure:"dataDog"`
}
