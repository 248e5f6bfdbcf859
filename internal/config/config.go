package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	HTTPAddr        string        `toml:"http_addr"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	LogLevel        string        `toml:"log_level"`
	Production      bool          `toml:"production"`
}

func New() Config {
	return Config{
		HTTPAddr:        ":8080",
		ShutdownTimeout: time.Second * 10,
		LogLevel:        "info",
	}
}

// Load starts from the defaults, overlays the TOML file at path (if path is
// not empty) and then the environment.
func Load(path string) (Config, error) {
	cfg := New()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("HTTP_ADDR"); ok && v != "" {
		cfg.HTTPAddr = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("APP_ENV"); ok && v != "" {
		cfg.Production = v == "production"
	}
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("%w: http_addr is empty", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
