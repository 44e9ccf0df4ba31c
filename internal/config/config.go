// Package config loads cricmetrics settings and sets up logging.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Analyze AnalyzeConfig `yaml:"analyze" mapstructure:"analyze"`
}

// DataConfig points at the ball log.
type DataConfig struct {
	Path      string `yaml:"path" mapstructure:"path"`
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	Source    string `yaml:"source" mapstructure:"source"` // "csv" or "db"
	Dataset   string `yaml:"dataset" mapstructure:"dataset"`
}

// StoreConfig configures the SQLite ball log store.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// AnalyzeConfig configures the AI narrative command.
type AnalyzeConfig struct {
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DelimiterRune returns the configured delimiter, ',' if unset.
func (d DataConfig) DelimiterRune() rune {
	if d.Delimiter == "" {
		return ','
	}
	if d.Delimiter == `\t` || d.Delimiter == "tab" {
		return '\t'
	}
	return []rune(d.Delimiter)[0]
}

// Load reads configuration from file and environment. v may carry bound
// command-line flags; nil uses a fresh viper instance.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	// Config file
	v.SetConfigName("cricmetrics")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".cricmetrics"))

	// Environment
	v.SetEnvPrefix("CRICMETRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.path", "IPL.csv")
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("data.source", "csv")
	v.SetDefault("data.dataset", "")
	v.SetDefault("store.path", filepath.Join(homeDir(), ".cricmetrics", "deliveries.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("analyze.model", "claude-haiku-4-5-20251001")
	v.SetDefault("analyze.api_key", "")
	v.SetDefault("analyze.max_tokens", 1024)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	switch cfg.Data.Source {
	case "csv", "db":
	default:
		return nil, eris.Errorf("config: data.source must be csv or db, got %q", cfg.Data.Source)
	}
	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
