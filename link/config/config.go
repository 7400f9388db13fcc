// Package config loads the small set of parameters a popcop endpoint
// needs from a TOML file: parser capacity, an endpoint name and
// description, and the logging level.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trigrass2/popcop/logger"
)

// Config holds the settings a popcop endpoint or host tool loads at
// startup. Unset fields keep the defaults from Default().
type Config struct {
	// ParserCapacity bounds the largest frame payload a Session will
	// accept.
	ParserCapacity int
	// EndpointName and EndpointDescription identify the endpoint. They are
	// loaded and defaulted here; no other package of this module reads them.
	EndpointName        string
	EndpointDescription string
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// Default returns the configuration used when no file is loaded or a
// field is left unset.
func Default() Config {
	return Config{
		ParserCapacity:      1024,
		EndpointName:        "popcop-endpoint",
		EndpointDescription: "",
		LogLevel:            "info",
	}
}

type fileConfig struct {
	ParserCapacity      int    `toml:"parser_capacity"`
	EndpointName        string `toml:"endpoint_name"`
	EndpointDescription string `toml:"endpoint_description"`
	LogLevel            string `toml:"log_level"`
}

// Load reads a TOML file at path and overlays its defined fields onto
// Default(). A field absent from the file keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	if meta.IsDefined("parser_capacity") {
		cfg.ParserCapacity = raw.ParserCapacity
	}
	if meta.IsDefined("endpoint_name") {
		cfg.EndpointName = strings.TrimSpace(raw.EndpointName)
	}
	if meta.IsDefined("endpoint_description") {
		cfg.EndpointDescription = strings.TrimSpace(raw.EndpointDescription)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	return cfg, nil
}

// ParseLogLevel maps a Config's LogLevel string to a logger.Level,
// defaulting to logger.InfoLevel for an unrecognized value.
func ParseLogLevel(s string) logger.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logger.DebugLevel
	case "warn", "warning":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
