package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themer/internal/config"
	"github.com/alexisbeaulieu97/themer/pkg/logger"
	"github.com/alexisbeaulieu97/themer/pkg/loader"
	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

// AppContext bundles the services a command needs once settings are resolved.
type AppContext struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Registry *loader.Registry
}

// loadSettings resolves settings, letting flags the user set explicitly win
// over the config file and the environment.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (*config.Settings, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("file") {
		overrides[config.KeyThemesFile] = flags.file
	}
	if cmd.Flags().Changed("theme") {
		overrides[config.KeyThemesName] = flags.theme
	}
	if cmd.Flags().Changed("log-level") {
		overrides[config.KeyLogLevel] = flags.logLevel
	}

	opts := []config.Option{config.WithOverrides(overrides)}
	if flags.config != "" {
		opts = append(opts, config.WithConfigFile(flags.config))
	}

	settings, err := config.Load(opts...)
	if err != nil {
		return nil, newCommandError("load settings", "resolving themer settings", err, "Check themer.yaml, THEMER_* variables and the flags you passed.")
	}
	return settings, nil
}

func newLogger(cmd *cobra.Command, settings *config.Settings) (*logger.Logger, error) {
	writer := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         settings.Log.Level,
		HumanReadable: settings.Log.Human || supportsTerminal(writer),
		Writer:        writer,
		Component:     "cli",
	})
	if err != nil {
		return nil, newCommandError("create logger", "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}
	return log, nil
}

// newAppContext resolves settings, builds the logger and loads the theme
// document.
func newAppContext(cmd *cobra.Command, flags *rootFlags, themeOpts ...theme.Option) (*AppContext, error) {
	settings, err := loadSettings(cmd, flags)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cmd, settings)
	if err != nil {
		return nil, err
	}

	registry, err := loader.LoadFile(settings.Themes.File,
		loader.WithLogger(log),
		loader.WithStrictColors(settings.Themes.StrictColors),
		loader.WithThemeOptions(themeOpts...),
	)
	if err != nil {
		return nil, newCommandError("load themes", settings.Themes.File, err, "Run 'themer validate' to list every problem in the document.")
	}

	return &AppContext{Settings: settings, Logger: log, Registry: registry}, nil
}

// Theme returns the theme selected by settings, or the default theme.
func (a *AppContext) Theme() (*theme.Theme, error) {
	name := a.Settings.Themes.Name
	if name == "" {
		return a.Registry.Default(), nil
	}
	t, err := a.Registry.MustTheme(name)
	if err != nil {
		return nil, newCommandError("select theme", name, err, "Run 'themer list' to see the available themes.")
	}
	return t, nil
}

func supportsTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
