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
	Socrata SocrataConfig `yaml:"socrata" mapstructure:"socrata"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SocrataConfig configures the SODA endpoint the CLI talks to.
type SocrataConfig struct {
	// Host is the default API host for the rows command, e.g.
	// "www.dallasopendata.com". The --host flag overrides it.
	Host string `yaml:"host" mapstructure:"host"`

	// TimeoutSecs bounds each page request. Zero leaves the HTTP client
	// without a timeout, so the client's own default governs.
	TimeoutSecs int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
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
	v.SetEnvPrefix("SODA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("socrata.host", "www.dallasopendata.com")
	v.SetDefault("socrata.timeout_secs", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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

// Validate checks field ranges that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	var problems []string

	if c.Socrata.TimeoutSecs < 0 {
		problems = append(problems, "socrata.timeout_secs must be >= 0")
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		problems = append(problems, "log.format must be json or console")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level is not a valid zap level")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
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
