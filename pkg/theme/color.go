package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/themer/internal/coerce"
	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

var (
	// Black is the fallback for absent color data.
	Black = Color{A: 1}
	// Clear is fully transparent black.
	Clear = Color{}
)

// Hex renders the color channels as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Colorful converts the color channels for use with go-colorful.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// RGBA8 returns the components scaled to 0-255.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A)
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clampUnit(alpha)
	return c
}

func channel8(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// ParseHex parses an RRGGBB string, tolerating surrounding whitespace and a
// leading '#'. Anything other than exactly six hex digits is a *ColorError.
func ParseHex(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return Color{}, themeerrors.NewColorError(s, "expected exactly 6 hex digits")
	}
	for _, r := range trimmed {
		if !isHexDigit(r) {
			return Color{}, themeerrors.NewColorError(s, "contains a non-hex character")
		}
	}
	parsed, err := colorful.Hex("#" + strings.ToLower(trimmed))
	if err != nil {
		return Color{}, themeerrors.NewColorError(s, err.Error())
	}
	return Color{R: parsed.R, G: parsed.G, B: parsed.B, A: 1}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// NonStringHexError reports a hex field that did not decode as a string,
// such as an unquoted all-digit YAML value.
func NonStringHexError(raw any) error {
	return themeerrors.NewColorError(fmt.Sprint(raw), fmt.Sprintf("hex must be a string, got %T", raw))
}

// colorFromMap builds a color from {hex, alpha}. A hex string wins, with
// alpha as an override; alpha 0 alone means clear; everything else is black.
func colorFromMap(m map[string]any) (Color, error) {
	if m == nil {
		return Black, nil
	}

	alphaRaw, hasAlpha := m["alpha"]
	hasAlpha = hasAlpha && alphaRaw != nil

	hexRaw := m["hex"]
	if hexRaw != nil {
		hex, ok := hexRaw.(string)
		if !ok {
			return Color{}, NonStringHexError(hexRaw)
		}
		color := Black
		if !coerce.IsEmpty(hex, true) {
			parsed, err := ParseHex(hex)
			if err != nil {
				return Color{}, err
			}
			color = parsed
		}
		if hasAlpha {
			color = color.WithAlpha(coerce.Float(alphaRaw))
		}
		return color, nil
	}

	if hasAlpha && coerce.Float(alphaRaw) == 0 {
		return Clear, nil
	}
	return Black, nil
}

// optionalColor builds a color only when raw is a nested mapping.
func optionalColor(raw any) (*Color, error) {
	m := coerce.Map(raw)
	if m == nil {
		return nil, nil
	}
	color, err := colorFromMap(m)
	if err != nil {
		return nil, err
	}
	return &color, nil
}
