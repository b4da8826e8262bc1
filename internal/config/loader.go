package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/whirl-cli/whirl/internal/build"
	"github.com/whirl-cli/whirl/internal/fileutil"
	"github.com/whirl-cli/whirl/internal/spinner"
)

// Definition is the raw shape of the config file as viper unmarshals it.
// The loader turns it into a validated Config.
type Definition struct {
	Spinner      string `mapstructure:"spinner"`
	Interval     string `mapstructure:"interval"`
	Matching     string `mapstructure:"matching"`
	UI           string `mapstructure:"ui"`
	Color        *bool  `mapstructure:"color"`
	SpinnersFile string `mapstructure:"spinnersFile"`
	Debug        bool   `mapstructure:"debug"`
	LogFormat    string `mapstructure:"logFormat"`
	Quiet        bool   `mapstructure:"quiet"`
}

// ConfigLoader reads and merges configuration from the config file,
// environment variables and defaults.
type ConfigLoader struct {
	v          *viper.Viper
	configFile string
	warnings   []string
}

// ConfigLoaderOption defines a functional option for configuring a ConfigLoader.
type ConfigLoaderOption func(*ConfigLoader)

// WithConfigFile returns a ConfigLoaderOption that sets the configuration file path.
func WithConfigFile(configFile string) ConfigLoaderOption {
	return func(l *ConfigLoader) {
		l.configFile = configFile
	}
}

// NewConfigLoader creates a ConfigLoader with the given viper instance and options.
func NewConfigLoader(v *viper.Viper, options ...ConfigLoaderOption) *ConfigLoader {
	loader := &ConfigLoader{v: v}
	for _, opt := range options {
		opt(loader)
	}
	return loader
}

// Load reads the configuration file, applies defaults and environment
// overrides, and returns a validated Config.
func (l *ConfigLoader) Load() (*Config, error) {
	l.configureViper()
	l.bindEnvironmentVariables()
	l.setDefaultValues()

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var def Definition
	if err := l.v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg, err := l.buildConfig(def)
	if err != nil {
		return nil, fmt.Errorf("failed to build config: %w", err)
	}

	cfg.ConfigFileUsed = l.v.ConfigFileUsed()
	cfg.Warnings = l.warnings

	return cfg, nil
}

// buildConfig transforms the Definition into a validated Config.
func (l *ConfigLoader) buildConfig(def Definition) (*Config, error) {
	cfg := Config{
		Spinner:   def.Spinner,
		UI:        UIMode(def.UI),
		Debug:     def.Debug,
		LogFormat: def.LogFormat,
		Quiet:     def.Quiet,
	}

	cfg.Interval = l.parseDuration("interval", def.Interval)

	matching, err := spinner.ParseMatchMode(def.Matching)
	if err != nil {
		l.warnings = append(l.warnings, fmt.Sprintf("%v, using lenient", err))
	}
	cfg.Matching = matching

	if def.Color != nil {
		cfg.NoColor = !*def.Color
	}

	if def.SpinnersFile != "" {
		resolved, err := fileutil.ResolvePath(def.SpinnersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve spinnersFile path %q: %w", def.SpinnersFile, err)
		}
		cfg.SpinnersFile = resolved
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parseDuration parses a duration string, returning zero and adding a
// warning if invalid.
func (l *ConfigLoader) parseDuration(fieldName, value string) time.Duration {
	if value == "" {
		return 0
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		l.warnings = append(l.warnings, fmt.Sprintf("Invalid %s value: %s", fieldName, value))
		return 0
	}
	return duration
}

func (l *ConfigLoader) setDefaultValues() {
	l.v.SetDefault("spinner", spinner.DefaultName)
	l.v.SetDefault("matching", "lenient")
	l.v.SetDefault("ui", string(UIFancy))
	l.v.SetDefault("color", true)
	l.v.SetDefault("debug", false)
	l.v.SetDefault("logFormat", "text")
	l.v.SetDefault("quiet", false)
}

type envBinding struct {
	key string
	env string
}

var envBindings = []envBinding{
	{key: "spinner", env: "SPINNER"},
	{key: "interval", env: "INTERVAL"},
	{key: "matching", env: "MATCHING"},
	{key: "ui", env: "UI"},
	{key: "color", env: "COLOR"},
	{key: "spinnersFile", env: "SPINNERS_FILE"},
	{key: "debug", env: "DEBUG"},
	{key: "logFormat", env: "LOG_FORMAT"},
	{key: "quiet", env: "QUIET"},
}

func (l *ConfigLoader) bindEnvironmentVariables() {
	prefix := strings.ToUpper(build.Slug) + "_"
	for _, b := range envBindings {
		_ = l.v.BindEnv(b.key, prefix+b.env)
	}
}

func (l *ConfigLoader) configureViper() {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.AddConfigPath(ConfigDir())
		l.v.SetConfigName("config")
	}
	l.v.SetConfigType("yaml")
	l.v.SetEnvPrefix(strings.ToUpper(build.Slug))
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.v.AutomaticEnv()
}

// ConfigDir returns the directory searched for the config file:
// $WHIRL_HOME when set, the XDG config home otherwise.
func ConfigDir() string {
	homeEnv := strings.ToUpper(build.Slug) + "_HOME"
	if home := fileutil.ResolvePathOrBlank(os.Getenv(homeEnv)); home != "" {
		return home
	}
	return filepath.Join(xdg.ConfigHome, build.Slug)
}
