package theme

import (
	"time"

	"github.com/alexisbeaulieu97/themer/internal/coerce"
)

// ViewSpecifier describes a plain rectangular view. Padding is not applied by
// the engine; its meaning is left to the consumer.
type ViewSpecifier struct {
	Size                       Size       `json:"size"`
	Position                   Point      `json:"position"`
	BackgroundColor            *Color     `json:"backgroundColor,omitempty"`
	HighlightedBackgroundColor *Color     `json:"highlightedBackgroundColor,omitempty"`
	Padding                    EdgeInsets `json:"padding"`
}

// TextLabelSpecifier describes a text label. When SizeToFit is set the
// consumer should ignore Size.
type TextLabelSpecifier struct {
	Font          Font  `json:"font"`
	Size          Size  `json:"size"`
	SizeToFit     bool  `json:"sizeToFit"`
	Position      Point `json:"position"`
	NumberOfLines int   `json:"numberOfLines"`

	// A multiple greater than zero is applied to the font size and takes
	// precedence over the matching absolute spacing.
	ParagraphSpacing               float64 `json:"paragraphSpacing"`
	ParagraphSpacingBefore         float64 `json:"paragraphSpacingBefore"`
	ParagraphSpacingMultiple       float64 `json:"paragraphSpacingMultiple"`
	ParagraphSpacingBeforeMultiple float64 `json:"paragraphSpacingBeforeMultiple"`

	Alignment                  TextAlignment     `json:"alignment"`
	LineBreakMode              LineBreakMode     `json:"lineBreakMode"`
	TextTransform              TextCaseTransform `json:"textTransform"`
	Color                      *Color            `json:"color,omitempty"`
	HighlightedColor           *Color            `json:"highlightedColor,omitempty"`
	BackgroundColor            *Color            `json:"backgroundColor,omitempty"`
	HighlightedBackgroundColor *Color            `json:"highlightedBackgroundColor,omitempty"`
	Padding                    EdgeInsets        `json:"padding"`
}

// AttributeKey selects one member of a label's attribute set.
type AttributeKey int

const (
	AttributeFont AttributeKey = iota
	AttributeForegroundColor
	AttributeBackgroundColor
	AttributeParagraphStyle
)

var allAttributeKeys = []AttributeKey{
	AttributeFont,
	AttributeForegroundColor,
	AttributeBackgroundColor,
	AttributeParagraphStyle,
}

// ParagraphStyle is the resolved paragraph layout of a label.
type ParagraphStyle struct {
	Alignment     TextAlignment `json:"alignment"`
	LineBreakMode LineBreakMode `json:"lineBreakMode"`
	Spacing       float64       `json:"spacing"`
	SpacingBefore float64       `json:"spacingBefore"`
}

// Attributes is the set of text attributes derived from a label. Members
// are nil when the underlying field was not set or not requested.
type Attributes struct {
	Font            *Font           `json:"font,omitempty"`
	ForegroundColor *Color          `json:"foregroundColor,omitempty"`
	BackgroundColor *Color          `json:"backgroundColor,omitempty"`
	ParagraphStyle  *ParagraphStyle `json:"paragraphStyle,omitempty"`
}

// StyledText pairs transformed text with the attributes to draw it with.
type StyledText struct {
	Text       string     `json:"text"`
	Attributes Attributes `json:"attributes"`
}

// ParagraphStyle resolves paragraph spacing, applying multiples of the font size.
func (s TextLabelSpecifier) ParagraphStyle() ParagraphStyle {
	style := ParagraphStyle{
		Alignment:     s.Alignment,
		LineBreakMode: s.LineBreakMode,
		Spacing:       s.ParagraphSpacing,
		SpacingBefore: s.ParagraphSpacingBefore,
	}
	if s.ParagraphSpacingMultiple > 0 {
		style.Spacing = s.Font.Size * s.ParagraphSpacingMultiple
	}
	if s.ParagraphSpacingBeforeMultiple > 0 {
		style.SpacingBefore = s.Font.Size * s.ParagraphSpacingBeforeMultiple
	}
	return style
}

// Attributes returns the requested attribute members, or all of them when
// no keys are given.
func (s TextLabelSpecifier) Attributes(keys ...AttributeKey) Attributes {
	if len(keys) == 0 {
		keys = allAttributeKeys
	}

	var attrs Attributes
	for _, key := range keys {
		switch key {
		case AttributeFont:
			font := s.Font
			attrs.Font = &font
		case AttributeForegroundColor:
			attrs.ForegroundColor = copyColor(s.Color)
		case AttributeBackgroundColor:
			attrs.BackgroundColor = copyColor(s.BackgroundColor)
		case AttributeParagraphStyle:
			style := s.ParagraphStyle()
			attrs.ParagraphStyle = &style
		}
	}
	return attrs
}

// FontAndColorAttributes returns font, foreground and background attributes.
func (s TextLabelSpecifier) FontAndColorAttributes() Attributes {
	return s.Attributes(AttributeFont, AttributeForegroundColor, AttributeBackgroundColor)
}

// Transform applies the label's text case transform.
func (s TextLabelSpecifier) Transform(text string) string {
	return s.TextTransform.Apply(text)
}

// StyledText transforms text and attaches the full attribute set.
func (s TextLabelSpecifier) StyledText(text string) StyledText {
	return StyledText{Text: s.Transform(text), Attributes: s.Attributes()}
}

// NavigationBarSpecifier describes a navigation bar and its two label styles.
type NavigationBarSpecifier struct {
	Translucent            bool                `json:"translucent"`
	PopoverBackgroundColor *Color              `json:"popoverBackgroundColor,omitempty"`
	BarColor               *Color              `json:"barColor,omitempty"`
	TintColor              *Color              `json:"tintColor,omitempty"`
	TitleLabel             *TextLabelSpecifier `json:"titleLabel,omitempty"`
	ButtonsLabel           *TextLabelSpecifier `json:"buttonsLabel,omitempty"`
}

// TitleTextAttributes returns the font and foreground color of the title label.
func (n NavigationBarSpecifier) TitleTextAttributes() Attributes {
	if n.TitleLabel == nil {
		return Attributes{}
	}
	return n.TitleLabel.Attributes(AttributeFont, AttributeForegroundColor)
}

// ButtonTextAttributes returns the font and foreground color of the buttons label.
func (n NavigationBarSpecifier) ButtonTextAttributes() Attributes {
	if n.ButtonsLabel == nil {
		return Attributes{}
	}
	return n.ButtonsLabel.Attributes(AttributeFont, AttributeForegroundColor)
}

// DashedBorderSpecifier describes a dashed outline.
type DashedBorderSpecifier struct {
	Color                *Color     `json:"color,omitempty"`
	LineWidth            float64    `json:"lineWidth"`
	CornerRadius         float64    `json:"cornerRadius"`
	PaintedSegmentLength float64    `json:"paintedSegmentLength"`
	SpacingSegmentLength float64    `json:"spacingSegmentLength"`
	Insets               EdgeInsets `json:"insets"`
}

// AnimationSpecifier describes the timing of an animation.
type AnimationSpecifier struct {
	Duration time.Duration  `json:"duration"`
	Delay    time.Duration  `json:"delay"`
	Curve    AnimationCurve `json:"curve"`
}

// Total is the time from start until the animation completes.
func (a AnimationSpecifier) Total() time.Duration {
	return a.Delay + a.Duration
}

func copyColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}

// clone returns a copy that shares no memory with s.
func (s ViewSpecifier) clone() ViewSpecifier {
	s.BackgroundColor = copyColor(s.BackgroundColor)
	s.HighlightedBackgroundColor = copyColor(s.HighlightedBackgroundColor)
	return s
}

func (s TextLabelSpecifier) clone() TextLabelSpecifier {
	s.Color = copyColor(s.Color)
	s.HighlightedColor = copyColor(s.HighlightedColor)
	s.BackgroundColor = copyColor(s.BackgroundColor)
	s.HighlightedBackgroundColor = copyColor(s.HighlightedBackgroundColor)
	return s
}

func (n NavigationBarSpecifier) clone() NavigationBarSpecifier {
	n.PopoverBackgroundColor = copyColor(n.PopoverBackgroundColor)
	n.BarColor = copyColor(n.BarColor)
	n.TintColor = copyColor(n.TintColor)
	n.TitleLabel = copyLabel(n.TitleLabel)
	n.ButtonsLabel = copyLabel(n.ButtonsLabel)
	return n
}

func copyLabel(l *TextLabelSpecifier) *TextLabelSpecifier {
	if l == nil {
		return nil
	}
	dup := l.clone()
	return &dup
}

type colorField struct {
	name   string
	target **Color
}

// colorFields resolves several optional colors in order, stopping at the
// first malformed one.
func colorFields(m map[string]any, fields ...colorField) error {
	for _, f := range fields {
		color, err := optionalColor(m[f.name])
		if err != nil {
			return err
		}
		*f.target = color
	}
	return nil
}

func buildViewSpecifier(m map[string]any) (ViewSpecifier, error) {
	spec := ViewSpecifier{
		Size:     sizeFromMap(coerce.Map(m["size"])),
		Position: pointFromMap(coerce.Map(m["position"])),
		Padding:  edgeInsetsFromMap(coerce.Map(m["padding"])),
	}
	err := colorFields(m,
		colorField{"backgroundColor", &spec.BackgroundColor},
		colorField{"highlightedBackgroundColor", &spec.HighlightedBackgroundColor},
	)
	if err != nil {
		return ViewSpecifier{}, err
	}
	return spec, nil
}

// buildTextLabelSpecifier also reports whether a named font fell back to the system font.
func buildTextLabelSpecifier(m map[string]any, sizeAdjustment float64, resolve FontResolver) (TextLabelSpecifier, bool, error) {
	font, fellBack := fontFromMap(coerce.Map(m["font"]), sizeAdjustment, resolve)

	spec := TextLabelSpecifier{
		Font:                           font,
		Size:                           sizeFromMap(coerce.Map(m["size"])),
		SizeToFit:                      coerce.Bool(m["sizeToFit"]),
		Position:                       pointFromMap(coerce.Map(m["position"])),
		NumberOfLines:                  1,
		ParagraphSpacing:               coerce.Float(m["paragraphSpacing"]),
		ParagraphSpacingBefore:         coerce.Float(m["paragraphSpacingBefore"]),
		ParagraphSpacingMultiple:       coerce.Float(m["paragraphSpacingMultiple"]),
		ParagraphSpacingBeforeMultiple: coerce.Float(m["paragraphSpacingBeforeMultiple"]),
		Alignment:                      textAlignmentFrom(m["alignment"]),
		LineBreakMode:                  lineBreakModeFrom(m["lineBreakMode"]),
		TextTransform:                  textCaseTransformFrom(m["textTransform"]),
		Padding:                        edgeInsetsFromMap(coerce.Map(m["padding"])),
	}
	if raw, ok := m["numberOfLines"]; ok && raw != nil {
		spec.NumberOfLines = coerce.Int(raw)
	}

	err := colorFields(m,
		colorField{"color", &spec.Color},
		colorField{"highlightedColor", &spec.HighlightedColor},
		colorField{"backgroundColor", &spec.BackgroundColor},
		colorField{"highlightedBackgroundColor", &spec.HighlightedBackgroundColor},
	)
	if err != nil {
		return TextLabelSpecifier{}, false, err
	}
	return spec, fellBack, nil
}

func buildNavigationBarSpecifier(m map[string]any, sizeAdjustment float64, resolve FontResolver) (NavigationBarSpecifier, error) {
	spec := NavigationBarSpecifier{
		// translucent unless explicitly disabled
		Translucent: !coerce.Bool(m["disableTranslucency"]),
	}
	err := colorFields(m,
		colorField{"popoverBackgroundColor", &spec.PopoverBackgroundColor},
		colorField{"barColor", &spec.BarColor},
		colorField{"tintColor", &spec.TintColor},
	)
	if err != nil {
		return NavigationBarSpecifier{}, err
	}

	for _, field := range []struct {
		name   string
		target **TextLabelSpecifier
	}{
		{"titleLabel", &spec.TitleLabel},
		{"buttonsLabel", &spec.ButtonsLabel},
	} {
		sub := coerce.Map(m[field.name])
		if sub == nil {
			continue
		}
		label, _, err := buildTextLabelSpecifier(sub, sizeAdjustment, resolve)
		if err != nil {
			return NavigationBarSpecifier{}, err
		}
		*field.target = &label
	}
	return spec, nil
}

func buildDashedBorderSpecifier(m map[string]any) (DashedBorderSpecifier, error) {
	color, err := optionalColor(m["color"])
	if err != nil {
		return DashedBorderSpecifier{}, err
	}
	return DashedBorderSpecifier{
		Color:                color,
		LineWidth:            coerce.Float(m["lineWidth"]),
		CornerRadius:         coerce.Float(m["cornerRadius"]),
		PaintedSegmentLength: coerce.Float(m["paintedSegmentLength"]),
		SpacingSegmentLength: coerce.Float(m["spacingSegmentLength"]),
		Insets:               edgeInsetsFromMap(coerce.Map(m["insets"])),
	}, nil
}

func buildAnimationSpecifier(m map[string]any) AnimationSpecifier {
	return AnimationSpecifier{
		Duration: coerce.Duration(m["duration"]),
		Delay:    coerce.Duration(m["delay"]),
		Curve:    animationCurveFrom(m["curve"]),
	}
}
