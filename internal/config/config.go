// Package config manages environment variables.
//
// It reads variables from the process environment (and from a `.env` file
// when one exists), maps them onto structured Go types and validates them
// so the app fails fast on bad config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Apply defaults for everything that has a sane local value.
//   - Map env vars into a structured Go config (structs).
//   - Validate the result, including observability settings.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the HUMANIZER_ prefix. After the prefix is
	removed the key is lowercased and every "__" becomes ".", which is the
	koanf nesting delimiter:

	  HUMANIZER_SERVER__PORT           -> server.port
	  HUMANIZER_CLIENT__ENDPOINT       -> client.endpoint
	  HUMANIZER_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// EnvPrefix is the prefix every recognised environment variable carries.
const EnvPrefix = "HUMANIZER_"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Client        ClientConfig         `koanf:"client" validate:"required"`
	Engine        EngineConfig         `koanf:"engine"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the backend HTTP server.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// ClientConfig configures the humanize request handler.
//
// Endpoint is the complete URL requests are posted to, base and path
// together, e.g. "https://humanizer.example.com/humanize".
type ClientConfig struct {
	Endpoint string `koanf:"endpoint" validate:"required,url"`
}

// EngineConfig configures what the backend does with a humanize request.
//
// With UpstreamURL empty the backend echoes the text back with a fixed
// Confidence. Otherwise it forwards the request to UpstreamURL.
type EngineConfig struct {
	Confidence  float64 `koanf:"confidence" validate:"min=0,max=100"`
	UpstreamURL string  `koanf:"upstream_url" validate:"omitempty,url"`
}

// DefaultConfig returns the configuration used for anything the
// environment does not set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "5000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Client: ClientConfig{
			Endpoint: "http://127.0.0.1:5000/humanize",
		},
		Engine: EngineConfig{
			Confidence: 50,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it and returns it.
//
// Unlike a fatal loader it returns errors, so the caller decides how to
// report them.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal over the defaults: keys missing from the env keep their
	// default values.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	mainConfig.Server.CORSAllowedOrigins = splitList(mainConfig.Server.CORSAllowedOrigins)

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs the struct-tag validation and the observability rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Observability != nil {
		if err := c.Observability.Validate(); err != nil {
			return fmt.Errorf("invalid observability config: %w", err)
		}
	}

	return nil
}

// splitList expands comma-separated entries, so
// HUMANIZER_SERVER__CORS_ALLOWED_ORIGINS="https://a.com,https://b.com"
// becomes two origins.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
