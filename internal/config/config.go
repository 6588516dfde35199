package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr         string        `mapstructure:"addr"`
	DBPath       string        `mapstructure:"db_path"`
	CookieSecret string        `mapstructure:"cookie_secret"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	StaticDir    string        `mapstructure:"static_dir"`
}

// Load reads sketchbook.yaml from the working directory if present,
// with SKETCHBOOK_* environment variables taking precedence. A missing
// config file is fine; a missing cookie secret is not, since a guessable
// secret makes every session forgeable.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("sketchbook")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "sketchbook.db")
	v.SetDefault("session_ttl", 8*time.Hour)
	v.SetDefault("static_dir", "static")
	// The key must exist for AutomaticEnv to surface it in Unmarshal.
	v.SetDefault("cookie_secret", "")

	v.SetEnvPrefix("sketchbook")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.CookieSecret == "" {
		return nil, errors.New("cookie_secret is required (set SKETCHBOOK_COOKIE_SECRET)")
	}
	return &cfg, nil
}
