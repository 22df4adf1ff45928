// Package config resolves CLI and server settings from defaults, a config
// file, .env files, the environment and flag overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyThemesFile         = "themes.file"
	KeyThemesName         = "themes.name"
	KeyThemesStrictColors = "themes.strict_colors"
	KeyLogLevel           = "log.level"
	KeyLogHuman           = "log.human"
	KeyServerAddr         = "server.addr"
	KeyServerMetrics      = "server.metrics"
)

const (
	envPrefix         = "THEMER"
	defaultConfigName = "themer.yaml"
	defaultEnvFile    = ".env"
)

// Settings is the validated configuration of the themer tools.
type Settings struct {
	Themes ThemesSettings `mapstructure:"themes"`
	Log    LogSettings    `mapstructure:"log"`
	Server ServerSettings `mapstructure:"server"`
}

// ThemesSettings selects the theme document and the active theme.
type ThemesSettings struct {
	File         string `mapstructure:"file" validate:"required,theme_file"`
	Name         string `mapstructure:"name"`
	StrictColors bool   `mapstructure:"strict_colors"`
}

// LogSettings configures the zerolog logger.
type LogSettings struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// ServerSettings configures the HTTP resolution service.
type ServerSettings struct {
	Addr    string `mapstructure:"addr" validate:"required,hostport"`
	Metrics bool   `mapstructure:"metrics"`
}

type loadSettings struct {
	workingDir string
	configFile string
	envFiles   []string
	overrides  map[string]any
}

// Option configures Load.
type Option func(*loadSettings)

// WithWorkingDir overrides the directory searched for themer.yaml and .env.
func WithWorkingDir(dir string) Option {
	return func(s *loadSettings) {
		s.workingDir = dir
	}
}

// WithConfigFile reads settings from path instead of discovering themer.yaml.
// An explicit file must exist.
func WithConfigFile(path string) Option {
	return func(s *loadSettings) {
		s.configFile = path
	}
}

// WithEnvFiles loads the given .env files instead of the working directory's .env.
func WithEnvFiles(paths ...string) Option {
	return func(s *loadSettings) {
		s.envFiles = append(s.envFiles, paths...)
	}
}

// WithOverrides applies values that take precedence over every other source,
// typically flags the user set explicitly.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) {
		if s.overrides == nil {
			s.overrides = make(map[string]any, len(overrides))
		}
		for k, v := range overrides {
			s.overrides[k] = v
		}
	}
}

// Load resolves settings using the precedence:
// defaults < config file < environment (.env included) < overrides.
func Load(opts ...Option) (*Settings, error) {
	cfg := loadSettings{}
	for _, opt := range opts {
		opt(&cfg)
	}

	workingDir := strings.TrimSpace(cfg.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	if err := loadEnvFiles(workingDir, cfg.envFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configFile := strings.TrimSpace(cfg.configFile)
	explicit := configFile != ""
	if !explicit {
		configFile = filepath.Join(workingDir, defaultConfigName)
	}
	if err := mergeConfigFile(v, configFile, explicit); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for k, value := range cfg.overrides {
		v.Set(k, value)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := validatorInstance().Struct(&settings); err != nil {
		return nil, convertValidationError(err)
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyThemesFile, "themes.yaml")
	v.SetDefault(KeyThemesName, "")
	v.SetDefault(KeyThemesStrictColors, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogHuman, false)
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerMetrics, true)
}

// loadEnvFiles populates the process environment from .env files without
// replacing variables that are already set.
func loadEnvFiles(workingDir string, paths []string) error {
	if len(paths) == 0 {
		candidate := filepath.Join(workingDir, defaultEnvFile)
		if _, err := os.Stat(candidate); err != nil {
			return nil
		}
		paths = []string{candidate}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

func mergeConfigFile(v *viper.Viper, path string, required bool) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
