package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "AUREA_WEB"

const (
	defaultAddr              = ":8080"
	defaultLogLevel          = "info"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultRequestTimeout    = 30 * time.Second
	defaultAssetMaxAge       = 7 * 24 * time.Hour
)

// Config is the runtime configuration of the web server.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Site   SiteConfig   `mapstructure:"site"`
}

// ServerConfig holds listener settings.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// SiteConfig carries page level settings.
type SiteConfig struct {
	// BaseURL is the public origin used for canonical and Open Graph URLs.
	BaseURL string `mapstructure:"base_url"`
	// ContentFile replaces the embedded landing content when set.
	ContentFile string        `mapstructure:"content_file"`
	AssetMaxAge time.Duration `mapstructure:"asset_max_age"`
}

var defaults = map[string]any{
	"server.addr":                defaultAddr,
	"server.read_header_timeout": defaultReadHeaderTimeout,
	"server.read_timeout":        defaultReadTimeout,
	"server.write_timeout":       defaultWriteTimeout,
	"server.idle_timeout":        defaultIdleTimeout,
	"server.shutdown_timeout":    defaultShutdownTimeout,
	"server.request_timeout":     defaultRequestTimeout,
	"log.level":                  defaultLogLevel,
	"log.development":            false,
	"site.base_url":              "",
	"site.content_file":          "",
	"site.asset_max_age":         defaultAssetMaxAge,
}

// EnvName returns the environment variable bound to a configuration key,
// e.g. server.addr becomes AUREA_WEB_SERVER_ADDR.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ValidationError is returned when configuration fields are invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	configFile   string
	envMap       map[string]string
	useSystemEnv bool
}

// WithConfigFile reads a YAML file before applying environment overrides.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) {
		o.configFile = strings.TrimSpace(path)
	}
}

// WithEnvMap injects environment values. They take precedence over the
// process environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration from defaults, an optional file and the
// environment, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	lookup := func(name string) (string, bool) {
		if v, ok := options.envMap[name]; ok {
			return v, true
		}
		if options.useSystemEnv {
			return os.LookupEnv(name)
		}
		return "", false
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if options.configFile != "" {
		v.SetConfigFile(options.configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", options.configFile, err)
		}
	}

	for key := range defaults {
		if value, ok := lookup(EnvName(key)); ok {
			v.Set(key, strings.TrimSpace(value))
		}
	}

	// Platforms such as Cloud Run only announce PORT.
	if _, explicit := lookup(EnvName("server.addr")); !explicit && !v.InConfig("server.addr") {
		if port, ok := lookup("PORT"); ok && strings.TrimSpace(port) != "" {
			v.Set("server.addr", ":"+strings.TrimSpace(port))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var fields []string
	if strings.TrimSpace(c.Server.Addr) == "" {
		fields = append(fields, "server.addr")
	}
	durations := []struct {
		key string
		val time.Duration
	}{
		{"server.read_header_timeout", c.Server.ReadHeaderTimeout},
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.idle_timeout", c.Server.IdleTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"server.request_timeout", c.Server.RequestTimeout},
	}
	for _, d := range durations {
		if d.val <= 0 {
			fields = append(fields, d.key)
		}
	}
	if c.Site.AssetMaxAge < 0 {
		fields = append(fields, "site.asset_max_age")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		fields = append(fields, "log.level")
	}
	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			fields = append(fields, "site.base_url")
		}
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
