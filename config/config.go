package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload" // picks up a local .env before the env provider runs
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const EnvPrefix = "ATTRACTIONS_"

type Config struct {
	BindAddress string `koanf:"bind_address" validate:"required"`
	TLSDomains  string `koanf:"tls_domains"`  // e.g. "example.com,example2.com"
	MySQLDSN    string `koanf:"mysql_dsn"`    // MySQL will be used if this is set
	PostgresDSN string `koanf:"postgres_dsn"` // Postgres will be used if MYSQL_DSN is not set and this is
	SQLiteFile  string `koanf:"sqlite_file" validate:"required_without_all=MySQLDSN PostgresDSN"`
	DebugMode   bool   `koanf:"debug_mode"`
	LogLevel    string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	CORSOrigins string `koanf:"cors_origins" validate:"required"` // comma separated
}

func Default() *Config {
	return &Config{
		BindAddress: "0.0.0.0:8080",
		SQLiteFile:  "attractions.db",
		DebugMode:   true,
		LogLevel:    "info",
		CORSOrigins: "*",
	}
}

// Load reads ATTRACTIONS_* variables on top of Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "load env")
	}
	cfg := Default()
	if err = k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err = validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) TLSDomainList() []string {
	return splitList(c.TLSDomains)
}

func (c *Config) CORSOriginList() []string {
	return splitList(c.CORSOrigins)
}

func splitList(s string) []string {
	result := []string{}
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
