package theme

import (
	"math"
	"strings"

	"github.com/alexisbeaulieu97/themer/internal/coerce"
)

// fallbackFontSize replaces resolved sizes below minFontSize.
const (
	fallbackFontSize = 15.0
	minFontSize      = 1.0
)

// Font is a resolved font. An empty Name means the platform system font.
type Font struct {
	Name   string     `json:"name,omitempty"`
	Size   float64    `json:"size"`
	Weight FontWeight `json:"weight"`
}

// IsSystem reports whether the font is the platform system font.
func (f Font) IsSystem() bool {
	return f.Name == ""
}

// FontResolver reports whether a named font is available to the consumer.
type FontResolver func(name string) bool

func anyFont(string) bool { return true }

// FontWeight is one of nine system font weights.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightUltraLight
	WeightThin
	WeightLight
	WeightMedium
	WeightSemibold
	WeightBold
	WeightHeavy
	WeightBlack
)

var fontWeightNames = map[FontWeight]string{
	WeightUltraLight: "ultralight",
	WeightThin:       "thin",
	WeightLight:      "light",
	WeightRegular:    "regular",
	WeightMedium:     "medium",
	WeightSemibold:   "semibold",
	WeightBold:       "bold",
	WeightHeavy:      "heavy",
	WeightBlack:      "black",
}

func (w FontWeight) String() string {
	if name, ok := fontWeightNames[w]; ok {
		return name
	}
	return "regular"
}

// MarshalText encodes the weight by name.
func (w FontWeight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// ParseFontWeight maps a weight name case-insensitively; unknown names are regular.
func ParseFontWeight(s string) FontWeight {
	lower := strings.ToLower(strings.TrimSpace(s))
	for weight, name := range fontWeightNames {
		if name == lower {
			return weight
		}
	}
	return WeightRegular
}

// ScreenClass identifies a physical display class used by size-keyed fonts.
type ScreenClass int

const (
	ScreenUnknown ScreenClass = iota
	Screen38mm
	Screen40mm
	Screen42mm
	Screen44mm
)

// screenPointSizes lists the point dimensions of each known display class.
var screenPointSizes = map[ScreenClass]Size{
	Screen38mm: {Width: 136, Height: 170},
	Screen40mm: {Width: 162, Height: 197},
	Screen42mm: {Width: 156, Height: 195},
	Screen44mm: {Width: 184, Height: 224},
}

// ScreenClassForSize identifies the display class with the given point size.
func ScreenClassForSize(size Size) ScreenClass {
	for class, known := range screenPointSizes {
		if known == size {
			return class
		}
	}
	return ScreenUnknown
}

// ParseScreenClass accepts "38mm", "size38mm" and similar spellings.
func ParseScreenClass(s string) ScreenClass {
	lower := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "size")
	switch lower {
	case "38mm":
		return Screen38mm
	case "40mm":
		return Screen40mm
	case "42mm":
		return Screen42mm
	case "44mm":
		return Screen44mm
	default:
		return ScreenUnknown
	}
}

// SizeKey is the font field holding the size for this display class.
func (s ScreenClass) SizeKey() string {
	switch s {
	case Screen38mm:
		return "size38mm"
	case Screen40mm:
		return "size40mm"
	case Screen42mm:
		return "size42mm"
	case Screen44mm:
		return "size44mm"
	default:
		return "size"
	}
}

func (s ScreenClass) String() string {
	if s == ScreenUnknown {
		return "unknown"
	}
	return strings.TrimPrefix(s.SizeKey(), "size")
}

func floorFontSize(size float64) float64 {
	if size < minFontSize || math.IsNaN(size) {
		return fallbackFontSize
	}
	return size
}

// fontFromMap resolves {name, size}. Unresolvable or empty names fall back to
// the system font; the second result reports such a fallback for a non-empty name.
func fontFromMap(m map[string]any, sizeAdjustment float64, resolve FontResolver) (Font, bool) {
	size := floorFontSize(coerce.Float(m["size"]) + sizeAdjustment)

	name, ok := coerce.String(m["name"])
	if coerce.IsEmpty(name, ok) {
		return Font{Size: size}, false
	}
	if resolve != nil && !resolve(name) {
		return Font{Size: size}, true
	}
	return Font{Name: name, Size: size}, false
}

// screenFontFromMap resolves a system font from the size field of the given
// display class plus {weight}; the name field is ignored.
func screenFontFromMap(m map[string]any, screen ScreenClass) Font {
	size := floorFontSize(coerce.Float(m[screen.SizeKey()]))
	weight, _ := coerce.String(m["weight"])
	return Font{Size: size, Weight: ParseFontWeight(weight)}
}
