package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/aretw0/vine/internal/logging"
)

// Config holds CLI configuration.
type Config struct {
	Log   LogConfig
	Serve ServeConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	Debug bool
}

// ServeConfig holds inspector server settings.
type ServeConfig struct {
	Host string
	Port string
}

// LoadConfig reads configuration from file and env. Env var overrides use prefix VINE_.
func LoadConfig() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.debug", false)
	v.SetDefault("serve.host", "127.0.0.1")
	v.SetDefault("serve.port", "8080")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("VINE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vine"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// NewLogger builds the application logger from config.
// Debug mode forces the debug level regardless of log.level.
func NewLogger(cfg Config) *slog.Logger {
	if cfg.Log.Debug {
		return logging.New(slog.LevelDebug)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return logging.New(slog.LevelInfo)
	}
	return logging.New(level)
}
