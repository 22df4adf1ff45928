package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/themer/internal/coerce"
)

// lookupName lowercases the string form of raw; ok is false when raw is
// absent or empty.
func lookupName(raw any) (string, bool) {
	s, ok := coerce.String(raw)
	if coerce.IsEmpty(s, ok) {
		return "", false
	}
	return strings.ToLower(s), true
}

// TextAlignment is the horizontal alignment of label text.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignRight
	AlignJustified
	AlignNatural
	AlignCenter
)

func (a TextAlignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignJustified:
		return "justified"
	case AlignNatural:
		return "natural"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// MarshalText encodes the alignment by name.
func (a TextAlignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func textAlignmentFrom(raw any) TextAlignment {
	name, _ := lookupName(raw)
	switch name {
	case "right":
		return AlignRight
	case "justified":
		return AlignJustified
	case "natural":
		return AlignNatural
	case "center":
		return AlignCenter
	default:
		return AlignLeft
	}
}

// LineBreakMode controls wrapping and truncation of label text.
type LineBreakMode int

const (
	LineBreakTruncateTail LineBreakMode = iota
	LineBreakWordWrap
	LineBreakCharWrap
	LineBreakClip
	LineBreakTruncateHead
	LineBreakTruncateMiddle
)

func (m LineBreakMode) String() string {
	switch m {
	case LineBreakWordWrap:
		return "wordwrap"
	case LineBreakCharWrap:
		return "charwrap"
	case LineBreakClip:
		return "clip"
	case LineBreakTruncateHead:
		return "truncatehead"
	case LineBreakTruncateMiddle:
		return "truncatemiddle"
	default:
		return "truncatetail"
	}
}

// MarshalText encodes the mode by name.
func (m LineBreakMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func lineBreakModeFrom(raw any) LineBreakMode {
	name, _ := lookupName(raw)
	switch name {
	case "wordwrap":
		return LineBreakWordWrap
	case "charwrap":
		return LineBreakCharWrap
	case "clip":
		return LineBreakClip
	case "truncatehead":
		return LineBreakTruncateHead
	case "truncatemiddle":
		return LineBreakTruncateMiddle
	default:
		return LineBreakTruncateTail
	}
}

// TextCaseTransform rewrites label text case before display.
type TextCaseTransform int

const (
	TextCaseNone TextCaseTransform = iota
	TextCaseUpper
	TextCaseLower
)

func (t TextCaseTransform) String() string {
	switch t {
	case TextCaseUpper:
		return "uppercase"
	case TextCaseLower:
		return "lowercase"
	default:
		return "none"
	}
}

// MarshalText encodes the transform by name.
func (t TextCaseTransform) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Apply transforms text according to t.
func (t TextCaseTransform) Apply(text string) string {
	switch t {
	case TextCaseUpper:
		return strings.ToUpper(text)
	case TextCaseLower:
		return strings.ToLower(text)
	default:
		return text
	}
}

func textCaseTransformFrom(raw any) TextCaseTransform {
	name, _ := lookupName(raw)
	switch name {
	case "uppercase":
		return TextCaseUpper
	case "lowercase":
		return TextCaseLower
	default:
		return TextCaseNone
	}
}

// AnimationCurve is the timing curve of an animation.
type AnimationCurve int

const (
	CurveEaseInOut AnimationCurve = iota
	CurveEaseOut
	CurveEaseIn
	CurveLinear
)

func (c AnimationCurve) String() string {
	switch c {
	case CurveEaseOut:
		return "easeout"
	case CurveEaseIn:
		return "easein"
	case CurveLinear:
		return "linear"
	default:
		return "easeinout"
	}
}

// MarshalText encodes the curve by name.
func (c AnimationCurve) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func animationCurveFrom(raw any) AnimationCurve {
	name, _ := lookupName(raw)
	switch name {
	case "easeout":
		return CurveEaseOut
	case "easein":
		return CurveEaseIn
	case "linear":
		return CurveLinear
	default:
		return CurveEaseInOut
	}
}

// StatusBarStyle selects dark or light status bar content.
type StatusBarStyle int

const (
	StatusBarDefault StatusBarStyle = iota
	StatusBarLightContent
)

func (s StatusBarStyle) String() string {
	if s == StatusBarLightContent {
		return "lightcontent"
	}
	return "default"
}

// MarshalText encodes the style by name.
func (s StatusBarStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func statusBarStyleFrom(raw any) StatusBarStyle {
	name, _ := lookupName(raw)
	if name == "lightcontent" {
		return StatusBarLightContent
	}
	// "darkcontent" is the default style
	return StatusBarDefault
}

// KeyboardAppearance selects the keyboard color scheme.
type KeyboardAppearance int

const (
	KeyboardDefault KeyboardAppearance = iota
	KeyboardDark
	KeyboardLight
)

func (k KeyboardAppearance) String() string {
	switch k {
	case KeyboardDark:
		return "dark"
	case KeyboardLight:
		return "light"
	default:
		return "default"
	}
}

// MarshalText encodes the appearance by name.
func (k KeyboardAppearance) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func keyboardAppearanceFrom(raw any) KeyboardAppearance {
	name, _ := lookupName(raw)
	switch name {
	case "dark":
		return KeyboardDark
	case "light":
		return KeyboardLight
	default:
		return KeyboardDefault
	}
}
