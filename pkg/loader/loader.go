// Package loader builds a registry of themes from a configuration document
// whose top-level entries are named theme sections.
package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/themer/internal/coerce"
	"github.com/alexisbeaulieu97/themer/internal/document"
	"github.com/alexisbeaulieu97/themer/pkg/logger"
	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

// DefaultThemeName is matched case-insensitively against section names.
const DefaultThemeName = "default"

// Registry holds every theme of a loaded document and its default theme.
type Registry struct {
	themes []*theme.Theme
	def    *theme.Theme
}

type options struct {
	log          *logger.Logger
	themeOptions []theme.Option
	strictColors bool
}

// Option configures loading.
type Option func(*options)

// WithLogger sets the logger used while loading. Themes inherit it unless
// WithThemeOptions supplies another.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithThemeOptions passes opts to every constructed theme.
func WithThemeOptions(opts ...theme.Option) Option {
	return func(o *options) {
		o.themeOptions = append(o.themeOptions, opts...)
	}
}

// WithStrictColors toggles load-time validation of every hex color field.
// It is enabled by default.
func WithStrictColors(strict bool) Option {
	return func(o *options) {
		o.strictColors = strict
	}
}

// LoadFile decodes the document at path and loads it.
func LoadFile(path string, opts ...Option) (*Registry, error) {
	doc, err := document.Decode(path)
	if err != nil {
		return nil, err
	}
	return Load(doc, opts...)
}

// Load constructs one theme per mapping section of doc. Exactly one section
// must be named "default" (any case); every other theme inherits from it.
func Load(doc map[string]any, opts ...Option) (*Registry, error) {
	cfg := options{log: logger.Nop(), strictColors: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		sections   = make(map[string]map[string]any, len(names))
		kept       = make([]string, 0, len(names))
		defaults   []string
		colorFails []error
	)
	for _, name := range names {
		section := coerce.Map(doc[name])
		if section == nil {
			log.WithFields(map[string]any{"section": name}).Debug("skipping non-mapping section")
			continue
		}
		if cfg.strictColors {
			colorFails = append(colorFails, validateColors(name, section)...)
		}
		if strings.EqualFold(name, DefaultThemeName) {
			defaults = append(defaults, name)
		}
		sections[name] = section
		kept = append(kept, name)
		log.WithFields(map[string]any{"section": name}).Debug("theme section found")
	}

	if len(colorFails) > 0 {
		return nil, errors.Join(colorFails...)
	}
	switch len(defaults) {
	case 0:
		return nil, themeerrors.NewValidationError("", "no default theme section", nil)
	case 1:
	default:
		return nil, themeerrors.NewValidationError("", fmt.Sprintf("multiple default theme sections: %s", strings.Join(defaults, ", ")), nil)
	}

	themeOpts := append([]theme.Option{theme.WithLogger(log)}, cfg.themeOptions...)
	registry := &Registry{themes: make([]*theme.Theme, 0, len(kept))}
	for _, name := range kept {
		registry.themes = append(registry.themes, theme.New(name, sections[name], themeOpts...))
	}

	def, _ := registry.Theme(defaults[0])
	registry.def = def
	for _, t := range registry.themes {
		if t == def {
			continue
		}
		if err := t.SetParent(def); err != nil {
			return nil, fmt.Errorf("link theme %s: %w", t.Name(), err)
		}
	}

	log.WithFields(map[string]any{"themes": len(registry.themes), "default": def.Name()}).Info("themes loaded")
	return registry, nil
}

// Theme returns the theme with the exact given name.
func (r *Registry) Theme(name string) (*theme.Theme, bool) {
	for _, t := range r.themes {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// MustTheme returns the named theme or an error wrapping ErrThemeNotFound.
func (r *Registry) MustTheme(name string) (*theme.Theme, error) {
	t, ok := r.Theme(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", themeerrors.ErrThemeNotFound, name)
	}
	return t, nil
}

// Default returns the default theme.
func (r *Registry) Default() *theme.Theme {
	return r.def
}

// Themes returns every theme ordered by name.
func (r *Registry) Themes() []*theme.Theme {
	out := make([]*theme.Theme, len(r.themes))
	copy(out, r.themes)
	return out
}

// Names returns the theme names in order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.themes))
	for i, t := range r.themes {
		out[i] = t.Name()
	}
	return out
}

// validateColors checks every "hex" field in section: non-empty strings must
// parse and any other non-nil value is rejected.
func validateColors(name string, section map[string]any) []error {
	var errs []error
	walk(name, section, func(path string, raw any) {
		hex, ok := raw.(string)
		if !ok {
			errs = append(errs, themeerrors.NewValidationError(path, "hex color must be a string", theme.NonStringHexError(raw)))
			return
		}
		if hex == "" {
			return
		}
		if _, err := theme.ParseHex(hex); err != nil {
			errs = append(errs, themeerrors.NewValidationError(path, "malformed hex color", err))
		}
	})
	return errs
}

func walk(path string, value any, visit func(path string, hex any)) {
	switch typed := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for k := range typed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := path + "." + k
			if k == "hex" && typed[k] != nil {
				visit(child, typed[k])
				continue
			}
			walk(child, typed[k], visit)
		}
	case []any:
		for i, item := range typed {
			walk(fmt.Sprintf("%s[%d]", path, i), item, visit)
		}
	}
}
