// Package query resolves a theme value of a named type, as requested by the
// CLI and the HTTP service.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

// ErrInvalidRequest marks malformed queries: an unknown type or an
// unparsable parameter.
var ErrInvalidRequest = errors.New("invalid query")

// Type names a typed getter.
type Type string

const (
	TypeRaw        Type = "raw"
	TypeBool       Type = "bool"
	TypeString     Type = "string"
	TypeInt        Type = "int"
	TypeFloat      Type = "float"
	TypeDuration   Type = "duration"
	TypeColor      Type = "color"
	TypePoint      Type = "point"
	TypeSize       Type = "size"
	TypeInsets     Type = "insets"
	TypeFont       Type = "font"
	TypeLabel      Type = "label"
	TypeView       Type = "view"
	TypeNavBar     Type = "navbar"
	TypeBorder     Type = "border"
	TypeAnimation  Type = "animation"
	TypeImage      Type = "image"
	TypeAlignment  Type = "alignment"
	TypeLineBreak  Type = "linebreak"
	TypeStatusBar  Type = "statusbar"
	TypeKeyboard   Type = "keyboard"
	TypeTransform  Type = "transform"
	TypeScreenFont Type = "screenfont"
)

var knownTypes = map[Type]struct{}{
	TypeRaw: {}, TypeBool: {}, TypeString: {}, TypeInt: {}, TypeFloat: {}, TypeDuration: {},
	TypeColor: {}, TypePoint: {}, TypeSize: {}, TypeInsets: {}, TypeFont: {}, TypeLabel: {},
	TypeView: {}, TypeNavBar: {}, TypeBorder: {}, TypeAnimation: {}, TypeImage: {},
	TypeAlignment: {}, TypeLineBreak: {}, TypeStatusBar: {}, TypeKeyboard: {}, TypeTransform: {},
	TypeScreenFont: {},
}

// Types lists every supported type name in order.
func Types() []string {
	names := make([]string, 0, len(knownTypes))
	for t := range knownTypes {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// Request is one typed lookup.
type Request struct {
	Key            string
	Type           Type
	SizeAdjustment float64
	Screen         theme.ScreenClass
}

// Params holds the unparsed request parameters.
type Params struct {
	Key    string
	Type   string
	Adjust string
	Screen string
}

// Parse validates params. An empty type means raw.
func Parse(p Params) (Request, error) {
	req := Request{Key: strings.TrimSpace(p.Key), Type: Type(strings.ToLower(strings.TrimSpace(p.Type)))}
	if req.Key == "" {
		return Request{}, fmt.Errorf("%w: key is required", ErrInvalidRequest)
	}
	if req.Type == "" {
		req.Type = TypeRaw
	}
	if _, ok := knownTypes[req.Type]; !ok {
		return Request{}, fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, p.Type)
	}
	if p.Adjust != "" {
		adj, err := strconv.ParseFloat(p.Adjust, 64)
		if err != nil {
			return Request{}, fmt.Errorf("%w: adjust %q is not a number", ErrInvalidRequest, p.Adjust)
		}
		req.SizeAdjustment = adj
	}
	if p.Screen != "" {
		req.Screen = theme.ParseScreenClass(p.Screen)
	}
	return req, nil
}

// ColorValue is a color with its hex form.
type ColorValue struct {
	theme.Color
	Hex string `json:"hex"`
}

// DurationValue is a duration in seconds with its display form.
type DurationValue struct {
	Seconds float64 `json:"seconds"`
	Text    string  `json:"text"`
}

func durationValue(d time.Duration) DurationValue {
	return DurationValue{Seconds: d.Seconds(), Text: d.String()}
}

// AnimationValue is an animation specifier with durations in seconds.
type AnimationValue struct {
	Duration DurationValue        `json:"duration"`
	Delay    DurationValue        `json:"delay"`
	Total    DurationValue        `json:"total"`
	Curve    theme.AnimationCurve `json:"curve"`
}

// Resolve runs req against t. Absent primitive values resolve to their
// defaults; absent specifiers fail with *errors.MissingSpecifierError and
// malformed colors with *errors.ColorError.
func Resolve(t *theme.Theme, req Request) (any, error) {
	key := req.Key
	switch req.Type {
	case TypeRaw:
		return t.Value(key), nil
	case TypeBool:
		return t.Bool(key), nil
	case TypeString:
		if s, ok := t.String(key); ok {
			return s, nil
		}
		return nil, nil
	case TypeInt:
		return t.Int(key), nil
	case TypeFloat:
		return t.Float(key), nil
	case TypeDuration:
		return durationValue(t.Duration(key)), nil
	case TypeImage:
		if name, ok := t.ImageName(key); ok {
			return name, nil
		}
		return nil, nil
	case TypeColor:
		c, err := t.LookupColor(key)
		if err != nil {
			return nil, err
		}
		return ColorValue{Color: c, Hex: c.Hex()}, nil
	case TypePoint:
		return t.Point(key), nil
	case TypeSize:
		return t.Size(key), nil
	case TypeInsets:
		return t.EdgeInsets(key), nil
	case TypeFont:
		return t.FontWithAdjustment(key, req.SizeAdjustment), nil
	case TypeScreenFont:
		return t.FontForScreen(key, req.Screen), nil
	case TypeAlignment:
		return t.TextAlignment(key), nil
	case TypeLineBreak:
		return t.LineBreakMode(key), nil
	case TypeTransform:
		return t.TextCaseTransform(key), nil
	case TypeStatusBar:
		return t.StatusBarStyle(key), nil
	case TypeKeyboard:
		return t.KeyboardAppearance(key), nil
	case TypeLabel:
		return t.LookupTextLabelSpecifier(key, req.SizeAdjustment)
	case TypeView:
		return t.LookupViewSpecifier(key)
	case TypeNavBar:
		return t.LookupNavigationBarSpecifier(key, req.SizeAdjustment)
	case TypeBorder:
		return t.LookupDashedBorderSpecifier(key)
	case TypeAnimation:
		spec, ok := t.AnimationSpecifier(key)
		if !ok {
			return nil, themeerrors.NewMissingSpecifierError(t.Name(), key, theme.KindAnimation)
		}
		return AnimationValue{
			Duration: durationValue(spec.Duration),
			Delay:    durationValue(spec.Delay),
			Total:    durationValue(spec.Total()),
			Curve:    spec.Curve,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, req.Type)
	}
}

// CacheAll clears every cache of a theme.
const CacheAll = "all"

var cacheAliases = map[string]string{
	"color":          theme.CacheColor,
	"font":           theme.CacheFont,
	"view":           theme.CacheView,
	"navbar":         theme.CacheNavigationBar,
	"navigation_bar": theme.CacheNavigationBar,
	"label":          theme.CacheTextLabel,
	"text_label":     theme.CacheTextLabel,
}

// ClearCache clears one cache of t, or all of them, and reports how many
// entries each cleared cache held.
func ClearCache(t *theme.Theme, name string) (map[string]int, error) {
	before := t.CacheSizes()
	name = strings.ToLower(strings.TrimSpace(name))
	if name == CacheAll {
		t.ClearCaches()
		return before, nil
	}

	cache, ok := cacheAliases[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown cache %q", ErrInvalidRequest, name)
	}
	switch cache {
	case theme.CacheColor:
		t.ClearColorCache()
	case theme.CacheFont:
		t.ClearFontCache()
	case theme.CacheView:
		t.ClearViewSpecifierCache()
	case theme.CacheNavigationBar:
		t.ClearNavigationBarSpecifierCache()
	case theme.CacheTextLabel:
		t.ClearTextLabelSpecifierCache()
	}
	return map[string]int{cache: before[cache]}, nil
}
