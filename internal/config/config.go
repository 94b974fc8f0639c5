package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Fetch    FetchConfig    `yaml:"fetch" mapstructure:"fetch"`
	Validate ValidateConfig `yaml:"validate" mapstructure:"validate"`
	Sheet    SheetConfig    `yaml:"sheet" mapstructure:"sheet"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// FetchConfig configures the homepage brand fetchers.
type FetchConfig struct {
	TimeoutSecs         int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	FallbackTimeoutSecs int    `yaml:"fallback_timeout_secs" mapstructure:"fallback_timeout_secs"`
	UserAgent           string `yaml:"user_agent" mapstructure:"user_agent"`
	InsecureTLS         bool   `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	NoFallback          bool   `yaml:"no_fallback" mapstructure:"no_fallback"`
	RetryAttempts       int    `yaml:"retry_attempts" mapstructure:"retry_attempts"`
	RetryBackoffMs      int    `yaml:"retry_backoff_ms" mapstructure:"retry_backoff_ms"`
}

// ValidateConfig configures the validation batch.
type ValidateConfig struct {
	DelayMs           int `yaml:"delay_ms" mapstructure:"delay_ms"`
	RevalidateDelayMs int `yaml:"revalidate_delay_ms" mapstructure:"revalidate_delay_ms"`
	ProgressEvery     int `yaml:"progress_every" mapstructure:"progress_every"`
}

// SheetConfig names the workbook sheets.
type SheetConfig struct {
	Directory string `yaml:"directory" mapstructure:"directory"`
	Results   string `yaml:"results" mapstructure:"results"`
	Summary   string `yaml:"summary" mapstructure:"summary"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("APPDIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("fetch.timeout_secs", 12)
	v.SetDefault("fetch.fallback_timeout_secs", 16)
	v.SetDefault("fetch.insecure_tls", true)
	v.SetDefault("fetch.retry_attempts", 2)
	v.SetDefault("fetch.retry_backoff_ms", 250)
	v.SetDefault("validate.delay_ms", 500)
	v.SetDefault("validate.revalidate_delay_ms", 200)
	v.SetDefault("validate.progress_every", 25)
	v.SetDefault("sheet.directory", "App Directory")
	v.SetDefault("sheet.results", "Validation Results")
	v.SetDefault("sheet.summary", "Summary")

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

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
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
