// Package config loads the application settings from layered TOML files
// and environment variables. Settings are loaded once at startup and are
// read-only afterwards.
//
// Merge order (later layers win):
//
//	hardcoded defaults
//	config/default.toml        (required)
//	config/{RUN_ENVIRONMENT}.toml  (optional)
//	config/local.toml          (optional, never merged twice)
//	APP_* environment variables (double-underscore nesting, e.g. APP_SERVER__PORT)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"greenscape/internal/version"
)

// EnvironmentVar selects the environment overlay file (e.g. "production"
// picks config/production.toml). Empty means "local".
const EnvironmentVar = "RUN_ENVIRONMENT"

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "app"

// Settings is the complete application configuration.
type Settings struct {
	Server   ServerSettings `mapstructure:"server" toml:"server"`
	Log      LogSettings    `mapstructure:"log" toml:"log"`
	Metadata Metadata       `mapstructure:"metadata" toml:"metadata"`
}

// ServerSettings contains the listener configuration.
type ServerSettings struct {
	Host string `mapstructure:"host" toml:"host"`
	Port int    `mapstructure:"port" toml:"port"`
}

// Addr returns the host:port address to bind to.
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogSettings contains logging configuration.
type LogSettings struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// Metadata identifies the application.
type Metadata struct {
	Name    string `mapstructure:"name" toml:"name"`
	Version string `mapstructure:"version" toml:"version"`
}

// Error represents a configuration error. It is startup-fatal: the caller
// is expected to exit non-zero.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in '" + e.Field + "': " + e.Message
}

// Environment returns the active run environment ("local" when
// RUN_ENVIRONMENT is unset).
func Environment() string {
	if env := os.Getenv(EnvironmentVar); env != "" {
		return env
	}
	return "local"
}

// DefaultSettings returns the hardcoded defaults, before any file or
// environment layer is applied.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
		Metadata: Metadata{
			Name:    version.Name,
			Version: version.Version,
		},
	}
}

// Load merges all configuration layers from the given directory and
// returns the validated settings. The base file default.toml must exist;
// overlay files are optional.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("toml")

	defaults := DefaultSettings()
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("metadata.name", defaults.Metadata.Name)
	v.SetDefault("metadata.version", defaults.Metadata.Version)

	basePath := filepath.Join(dir, "default.toml")
	v.SetConfigFile(basePath)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Field: basePath, Message: "required configuration file is missing"}
		}
		return nil, &Error{Field: basePath, Message: err.Error()}
	}

	env := Environment()
	overlays := []string{filepath.Join(dir, env+".toml")}
	if env != "local" {
		overlays = append(overlays, filepath.Join(dir, "local.toml"))
	}
	for _, overlay := range overlays {
		v.SetConfigFile(overlay)
		if err := v.MergeInConfig(); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, &Error{Field: overlay, Message: err.Error()}
		}
	}

	// APP_SERVER__PORT, APP_LOG__LEVEL, ... override file values.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, &Error{Field: "settings", Message: err.Error()}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Validate checks that every required key is usable after all layers are
// merged. It returns the first problem found.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Server.Host) == "" {
		return &Error{Field: "server.host", Message: "must not be empty"}
	}
	if s.Server.Port < 1 || s.Server.Port > 65535 {
		return &Error{Field: "server.port", Message: fmt.Sprintf("must be between 1 and 65535, got %d", s.Server.Port)}
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &Error{Field: "log.level", Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", s.Log.Level)}
	}
	switch s.Log.Format {
	case "json", "console":
	default:
		return &Error{Field: "log.format", Message: fmt.Sprintf("must be json or console, got %q", s.Log.Format)}
	}
	if s.Metadata.Name == "" {
		return &Error{Field: "metadata.name", Message: "must not be empty"}
	}
	if s.Metadata.Version == "" {
		return &Error{Field: "metadata.version", Message: "must not be empty"}
	}
	return nil
}
