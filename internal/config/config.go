// Package config loads service configuration from environment variables.
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/spellscribe/spells-api/internal/errors"
)

// Config holds the full service configuration.
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Source   SourceConfig
	Render   RenderConfig
	Server   ServerConfig
}

// DatabaseConfig configures the sqlite registry database.
type DatabaseConfig struct {
	Path string `env:"DB_PATH" env-default:"spells.db"`
}

// StorageConfig configures on-disk image storage.
type StorageConfig struct {
	DataRootDir string `env:"DATA_ROOT_DIR" env-default:"data"`
}

// RedisConfig configures the chat settings store.
type RedisConfig struct {
	Endpoint string `env:"REDIS_ENDPOINT" env-default:"localhost:6379"`
}

// SourceConfig points at the upstream reference site. The spell list page
// carries the embedded registry data; the two class list pages supply the
// alias/book/description fields missing from it.
type SourceConfig struct {
	SpellListURL         string        `env:"SOURCE_SPELL_LIST_URL" env-required:"true"`
	ClassListURL         string        `env:"SOURCE_CLASS_LIST_URL" env-required:"true"`
	PrestigeClassListURL string        `env:"SOURCE_PRESTIGE_CLASS_LIST_URL" env-required:"true"`
	SpellInfoURLPrefix   string        `env:"SOURCE_SPELL_INFO_URL_PREFIX" env-required:"true"`
	HTTPTimeout          time.Duration `env:"SOURCE_HTTP_TIMEOUT" env-default:"30s"`
}

// RenderConfig configures the external HTML-to-image render API.
type RenderConfig struct {
	URL         string        `env:"RENDER_URL" env-required:"true"`
	UserID      string        `env:"RENDER_USER_ID" env-required:"true"`
	APIKey      string        `env:"RENDER_API_KEY" env-required:"true"`
	CSSFile     string        `env:"RENDER_CSS_FILE" env-default:"assets/tables.css"`
	HTTPTimeout time.Duration `env:"RENDER_HTTP_TIMEOUT" env-default:"60s"`
}

// ServerConfig configures the process's ops surface.
type ServerConfig struct {
	GRPCPort int `env:"GRPC_PORT" env-default:"50051"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return &cfg, nil
}
