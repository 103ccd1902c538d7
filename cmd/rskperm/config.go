package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "RSKPERM"

// Config holds the resolved settings of one command invocation.
type Config struct {
	Format      string `mapstructure:"format" validate:"required,oneof=text json yaml"`
	Verbose     bool   `mapstructure:"verbose"`
	Shape       string `mapstructure:"shape"`
	Cells       int    `mapstructure:"cells" validate:"gte=0"`
	Mode        string `mapstructure:"mode" validate:"omitempty,oneof=shortcut bumping"`
	Seed        uint64 `mapstructure:"seed"`
	Parallel    bool   `mapstructure:"parallel"`
	MaxAttempts int    `mapstructure:"max-attempts" validate:"gte=0"`
	Mark        string `mapstructure:"mark" validate:"required"`
	Blank       string `mapstructure:"blank" validate:"required"`

	// Seeded is true when a seed came from a flag, env var or config file.
	Seeded bool `mapstructure:"-"`
}

// loadConfig merges flags, RSKPERM_* env vars and the optional config file.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Seeded = v.IsSet("seed")
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Mode = strings.ToLower(cfg.Mode)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// newLogger builds a production-style JSON logger on w; Debug under verbose,
// Warn otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
