package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/themer/internal/coerce"
	"github.com/alexisbeaulieu97/themer/pkg/logger"
	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
)

var (
	// ErrParentAlreadySet is returned when a theme's parent is assigned twice.
	ErrParentAlreadySet = errors.New("theme parent already set")
	// ErrInheritanceCycle is returned when a parent assignment would make a theme its own ancestor.
	ErrInheritanceCycle = errors.New("theme inheritance cycle")
)

// Specifier kinds used in *MissingSpecifierError.
const (
	KindView          = "view"
	KindTextLabel     = "text label"
	KindNavigationBar = "navigation bar"
	KindDashedBorder  = "dashed border"
	KindAnimation     = "animation"
)

// Theme is a named configuration document with an optional parent it
// inherits absent keys from, plus per-type caches of derived values.
// A Theme is safe for concurrent use.
type Theme struct {
	name   string
	doc    map[string]any
	parent atomic.Pointer[Theme]

	colors  *valueCache[Color]
	fonts   *valueCache[Font]
	views   *valueCache[ViewSpecifier]
	navBars *valueCache[NavigationBarSpecifier]
	labels  *valueCache[TextLabelSpecifier]

	resolveFont FontResolver
	observer    CacheObserver
	log         *logger.Logger
}

// Option configures a Theme.
type Option func(*Theme)

// WithFontResolver sets the check used to decide whether a named font exists.
// By default every non-empty name resolves.
func WithFontResolver(resolve FontResolver) Option {
	return func(t *Theme) {
		if resolve != nil {
			t.resolveFont = resolve
		}
	}
}

// WithCacheObserver reports cache hits, misses and clears to o.
func WithCacheObserver(o CacheObserver) Option {
	return func(t *Theme) {
		if o != nil {
			t.observer = o
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *logger.Logger) Option {
	return func(t *Theme) {
		if log != nil {
			t.log = log
		}
	}
}

// New creates a theme owning a deep copy of doc.
func New(name string, doc map[string]any, opts ...Option) *Theme {
	t := &Theme{
		name:        name,
		doc:         copyMap(doc),
		colors:      newValueCache[Color](CacheColor),
		fonts:       newValueCache[Font](CacheFont),
		views:       newValueCache[ViewSpecifier](CacheView),
		navBars:     newValueCache[NavigationBarSpecifier](CacheNavigationBar),
		labels:      newValueCache[TextLabelSpecifier](CacheTextLabel),
		resolveFont: anyFont,
		observer:    noopObserver{},
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With("theme", name)
	return t
}

// Name returns the theme's name.
func (t *Theme) Name() string {
	return t.name
}

// Parent returns the theme absent keys are delegated to, or nil.
func (t *Theme) Parent() *Theme {
	return t.parent.Load()
}

// SetParent links t to parent. A parent can be set only once and may not
// have t among its ancestors.
func (t *Theme) SetParent(parent *Theme) error {
	if parent == nil {
		return fmt.Errorf("set parent of %s: parent is nil", t.name)
	}
	for ancestor := parent; ancestor != nil; ancestor = ancestor.Parent() {
		if ancestor == t {
			return fmt.Errorf("set parent of %s to %s: %w", t.name, parent.name, ErrInheritanceCycle)
		}
	}
	if !t.parent.CompareAndSwap(nil, parent) {
		return fmt.Errorf("set parent of %s: %w", t.name, ErrParentAlreadySet)
	}
	return nil
}

// Equal reports whether two themes share a name.
func (t *Theme) Equal(other *Theme) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.name == other.name
}

// Value resolves a dotted key path against the theme's own document, then
// against its ancestors. It returns nil when no theme in the chain has it.
func (t *Theme) Value(key string) any {
	if value := lookupPath(t.doc, key); value != nil {
		return value
	}
	if parent := t.Parent(); parent != nil {
		return parent.Value(key)
	}
	return nil
}

// Map returns the nested mapping at key, or nil.
func (t *Theme) Map(key string) map[string]any {
	return coerce.Map(t.Value(key))
}

// Contains reports whether the theme's own document defines key.
func (t *Theme) Contains(key string) bool {
	return lookupPath(t.doc, key) != nil
}

// ContainsOrInherits reports whether key resolves in the theme or an ancestor.
func (t *Theme) ContainsOrInherits(key string) bool {
	return t.Value(key) != nil
}

// Document returns a deep copy of the theme's own document.
func (t *Theme) Document() map[string]any {
	return copyMap(t.doc)
}

// Bool returns the boolean at key, or false.
func (t *Theme) Bool(key string) bool {
	return coerce.Bool(t.Value(key))
}

// String returns the string form of the value at key; ok is false when absent.
func (t *Theme) String(key string) (string, bool) {
	return coerce.String(t.Value(key))
}

// Int returns the integer at key, or 0.
func (t *Theme) Int(key string) int {
	return coerce.Int(t.Value(key))
}

// Float returns the number at key, or 0.
func (t *Theme) Float(key string) float64 {
	return coerce.Float(t.Value(key))
}

// Duration returns the number of seconds at key as a duration, or 0.
func (t *Theme) Duration(key string) time.Duration {
	return coerce.Duration(t.Value(key))
}

// ImageName returns a non-empty image name at key.
func (t *Theme) ImageName(key string) (string, bool) {
	name, ok := t.String(key)
	if coerce.IsEmpty(name, ok) {
		return "", false
	}
	return name, true
}

// LookupColor resolves the color mapping at key. Malformed hex data yields a
// *errors.ColorError and is not cached.
func (t *Theme) LookupColor(key string) (Color, error) {
	return cached(t, t.colors, key, func() (Color, error) {
		color, err := colorFromMap(t.Map(key))
		if err != nil {
			return Color{}, fmt.Errorf("color %q in theme %s: %w", key, t.name, err)
		}
		return color, nil
	})
}

// Color resolves the color at key, defaulting to opaque black. It panics on
// malformed hex data; themes built by the loader are validated up front.
func (t *Theme) Color(key string) Color {
	color, err := t.LookupColor(key)
	if err != nil {
		panic(err)
	}
	return color
}

// Point returns the point at key; missing fields are zero.
func (t *Theme) Point(key string) Point {
	return pointFromMap(t.Map(key))
}

// Size returns the size at key; missing fields are zero.
func (t *Theme) Size(key string) Size {
	return sizeFromMap(t.Map(key))
}

// EdgeInsets returns the insets at key; missing fields are zero.
func (t *Theme) EdgeInsets(key string) EdgeInsets {
	return edgeInsetsFromMap(t.Map(key))
}

// Font resolves the font at key without size adjustment.
func (t *Theme) Font(key string) Font {
	return t.FontWithAdjustment(key, 0)
}

// FontWithAdjustment resolves the font at key with sizeAdjustment added to
// its size.
func (t *Theme) FontWithAdjustment(key string, sizeAdjustment float64) Font {
	font, _ := cached(t, t.fonts, adjustedKey(key, sizeAdjustment), func() (Font, error) {
		font, fellBack := fontFromMap(t.Map(key), sizeAdjustment, t.resolveFont)
		if fellBack {
			t.log.WithFields(map[string]any{"key": key}).Debug("named font unavailable, using system font")
		}
		return font, nil
	})
	return font
}

// FontForScreen resolves a system font whose size is read from the field
// for the given display class and whose weight comes from "weight".
func (t *Theme) FontForScreen(key string, screen ScreenClass) Font {
	font, _ := cached(t, t.fonts, key+"_"+screen.SizeKey(), func() (Font, error) {
		return screenFontFromMap(t.Map(key), screen), nil
	})
	return font
}

// TextAlignment returns the alignment named at key, defaulting to left.
func (t *Theme) TextAlignment(key string) TextAlignment {
	return textAlignmentFrom(t.Value(key))
}

// LineBreakMode returns the line break mode named at key, defaulting to truncate tail.
func (t *Theme) LineBreakMode(key string) LineBreakMode {
	return lineBreakModeFrom(t.Value(key))
}

// TextCaseTransform returns the transform named at key, defaulting to none.
func (t *Theme) TextCaseTransform(key string) TextCaseTransform {
	return textCaseTransformFrom(t.Value(key))
}

// StatusBarStyle returns the status bar style named at key.
func (t *Theme) StatusBarStyle(key string) StatusBarStyle {
	return statusBarStyleFrom(t.Value(key))
}

// KeyboardAppearance returns the keyboard appearance named at key.
func (t *Theme) KeyboardAppearance(key string) KeyboardAppearance {
	return keyboardAppearanceFrom(t.Value(key))
}

// LookupViewSpecifier builds the view specifier at key. It fails with
// *errors.MissingSpecifierError when key is absent and *errors.ColorError on
// malformed colors.
func (t *Theme) LookupViewSpecifier(key string) (ViewSpecifier, error) {
	spec, err := cached(t, t.views, key, func() (ViewSpecifier, error) {
		m := t.Map(key)
		if m == nil {
			return ViewSpecifier{}, t.missing(key, KindView)
		}
		spec, err := buildViewSpecifier(m)
		if err != nil {
			return ViewSpecifier{}, t.malformed(key, err)
		}
		return spec, nil
	})
	return spec.clone(), err
}

// ViewSpecifier returns the view specifier at key; ok is false when absent.
func (t *Theme) ViewSpecifier(key string) (ViewSpecifier, bool) {
	spec, err := t.LookupViewSpecifier(key)
	return spec, t.present(err)
}

// MustViewSpecifier is ViewSpecifier for callers that require the specifier.
func (t *Theme) MustViewSpecifier(key string) ViewSpecifier {
	return must(t.LookupViewSpecifier(key))
}

// LookupTextLabelSpecifier builds the label specifier at key with the
// given size adjustment applied to its font.
func (t *Theme) LookupTextLabelSpecifier(key string, sizeAdjustment float64) (TextLabelSpecifier, error) {
	spec, err := cached(t, t.labels, adjustedKey(key, sizeAdjustment), func() (TextLabelSpecifier, error) {
		m := t.Map(key)
		if m == nil {
			return TextLabelSpecifier{}, t.missing(key, KindTextLabel)
		}
		spec, fellBack, err := buildTextLabelSpecifier(m, sizeAdjustment, t.resolveFont)
		if err != nil {
			return TextLabelSpecifier{}, t.malformed(key, err)
		}
		if fellBack {
			t.log.WithFields(map[string]any{"key": key}).Debug("named font unavailable, using system font")
		}
		return spec, nil
	})
	return spec.clone(), err
}

// TextLabelSpecifier returns the label specifier at key; ok is false when absent.
func (t *Theme) TextLabelSpecifier(key string) (TextLabelSpecifier, bool) {
	return t.TextLabelSpecifierWithAdjustment(key, 0)
}

// TextLabelSpecifierWithAdjustment returns the label specifier at key with
// its font size adjusted.
func (t *Theme) TextLabelSpecifierWithAdjustment(key string, sizeAdjustment float64) (TextLabelSpecifier, bool) {
	spec, err := t.LookupTextLabelSpecifier(key, sizeAdjustment)
	return spec, t.present(err)
}

// MustTextLabelSpecifier is TextLabelSpecifierWithAdjustment for callers
// that require the specifier.
func (t *Theme) MustTextLabelSpecifier(key string, sizeAdjustment float64) TextLabelSpecifier {
	return must(t.LookupTextLabelSpecifier(key, sizeAdjustment))
}

// LookupNavigationBarSpecifier builds the navigation bar specifier at key,
// adjusting both label fonts.
func (t *Theme) LookupNavigationBarSpecifier(key string, sizeAdjustment float64) (NavigationBarSpecifier, error) {
	spec, err := cached(t, t.navBars, adjustedKey(key, sizeAdjustment), func() (NavigationBarSpecifier, error) {
		m := t.Map(key)
		if m == nil {
			return NavigationBarSpecifier{}, t.missing(key, KindNavigationBar)
		}
		spec, err := buildNavigationBarSpecifier(m, sizeAdjustment, t.resolveFont)
		if err != nil {
			return NavigationBarSpecifier{}, t.malformed(key, err)
		}
		return spec, nil
	})
	return spec.clone(), err
}

// NavigationBarSpecifier returns the navigation bar specifier at key; ok is
// false when absent.
func (t *Theme) NavigationBarSpecifier(key string) (NavigationBarSpecifier, bool) {
	return t.NavigationBarSpecifierWithAdjustment(key, 0)
}

// NavigationBarSpecifierWithAdjustment returns the navigation bar specifier
// at key with label font sizes adjusted.
func (t *Theme) NavigationBarSpecifierWithAdjustment(key string, sizeAdjustment float64) (NavigationBarSpecifier, bool) {
	spec, err := t.LookupNavigationBarSpecifier(key, sizeAdjustment)
	return spec, t.present(err)
}

// LookupDashedBorderSpecifier builds the dashed border specifier at key. It
// is not cached.
func (t *Theme) LookupDashedBorderSpecifier(key string) (DashedBorderSpecifier, error) {
	m := t.Map(key)
	if m == nil {
		return DashedBorderSpecifier{}, t.missing(key, KindDashedBorder)
	}
	spec, err := buildDashedBorderSpecifier(m)
	if err != nil {
		return DashedBorderSpecifier{}, t.malformed(key, err)
	}
	return spec, nil
}

// DashedBorderSpecifier returns the dashed border specifier at key; ok is
// false when absent.
func (t *Theme) DashedBorderSpecifier(key string) (DashedBorderSpecifier, bool) {
	spec, err := t.LookupDashedBorderSpecifier(key)
	return spec, t.present(err)
}

// AnimationSpecifier returns the animation specifier at key; ok is false
// when absent. It is not cached.
func (t *Theme) AnimationSpecifier(key string) (AnimationSpecifier, bool) {
	m := t.Map(key)
	if m == nil {
		return AnimationSpecifier{}, false
	}
	return buildAnimationSpecifier(m), true
}

// MustAnimationSpecifier is AnimationSpecifier for callers that require the specifier.
func (t *Theme) MustAnimationSpecifier(key string) AnimationSpecifier {
	spec, ok := t.AnimationSpecifier(key)
	if !ok {
		panic(t.missing(key, KindAnimation))
	}
	return spec
}

// ClearColorCache drops every cached color.
func (t *Theme) ClearColorCache() { clearCache(t, t.colors) }

// ClearFontCache drops every cached font.
func (t *Theme) ClearFontCache() { clearCache(t, t.fonts) }

// ClearViewSpecifierCache drops every cached view specifier.
func (t *Theme) ClearViewSpecifierCache() { clearCache(t, t.views) }

// ClearNavigationBarSpecifierCache drops every cached navigation bar specifier.
func (t *Theme) ClearNavigationBarSpecifierCache() { clearCache(t, t.navBars) }

// ClearTextLabelSpecifierCache drops every cached text label specifier.
func (t *Theme) ClearTextLabelSpecifierCache() { clearCache(t, t.labels) }

// ClearCaches drops the contents of all five caches.
func (t *Theme) ClearCaches() {
	t.ClearColorCache()
	t.ClearFontCache()
	t.ClearViewSpecifierCache()
	t.ClearNavigationBarSpecifierCache()
	t.ClearTextLabelSpecifierCache()
}

// CacheSizes reports the number of entries held by each cache.
func (t *Theme) CacheSizes() map[string]int {
	return map[string]int{
		CacheColor:         t.colors.len(),
		CacheFont:          t.fonts.len(),
		CacheView:          t.views.len(),
		CacheNavigationBar: t.navBars.len(),
		CacheTextLabel:     t.labels.len(),
	}
}

func clearCache[V any](t *Theme, c *valueCache[V]) {
	n := c.clear()
	t.observer.CacheCleared(t.name, c.name, n)
	t.log.WithFields(map[string]any{"cache": c.name, "entries": n}).Debug("cache cleared")
}

func (t *Theme) missing(key, kind string) error {
	return themeerrors.NewMissingSpecifierError(t.name, key, kind)
}

func (t *Theme) malformed(key string, err error) error {
	return fmt.Errorf("%s in theme %s: %w", key, t.name, err)
}

// present converts a lookup error to an ok flag. Only hard-missing errors
// are absorbed; malformed data panics.
func (t *Theme) present(err error) bool {
	if err == nil {
		return true
	}
	var missing *themeerrors.MissingSpecifierError
	if errors.As(err, &missing) {
		return false
	}
	panic(err)
}

func must[V any](value V, err error) V {
	if err != nil {
		panic(err)
	}
	return value
}

// lookupPath walks a dotted key path through nested mappings.
func lookupPath(doc map[string]any, key string) any {
	var current any = doc
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}

func copyMap(src map[string]any) map[string]any {
	if src == nil {
		return map[string]any{}
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = copyValue(v)
	}
	return dst
}

func copyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return copyMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
