// Package render turns theme specifiers into lipgloss styles so theme
// documents can be previewed in a terminal.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

const (
	defaultPointsPerColumn = 8.0
	defaultPointsPerRow    = 16.0
	// translucentAlpha scales the bar color of translucent navigation bars.
	translucentAlpha = 0.85
	ellipsis         = "…"
)

// Renderer maps point-based geometry to terminal cells and blends
// translucent colors over a fixed background.
type Renderer struct {
	background      colorful.Color
	pointsPerColumn float64
	pointsPerRow    float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground sets the color translucent colors are blended onto.
func WithBackground(c theme.Color) Option {
	return func(r *Renderer) {
		r.background = c.Colorful()
	}
}

// WithCellSize sets how many points one terminal column and row represent.
func WithCellSize(pointsPerColumn, pointsPerRow float64) Option {
	return func(r *Renderer) {
		if pointsPerColumn > 0 {
			r.pointsPerColumn = pointsPerColumn
		}
		if pointsPerRow > 0 {
			r.pointsPerRow = pointsPerRow
		}
	}
}

// New creates a Renderer. The default background is black.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		background:      colorful.Color{},
		pointsPerColumn: defaultPointsPerColumn,
		pointsPerRow:    defaultPointsPerRow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Color converts c to a terminal color, blending its alpha over the
// background. Nil and fully transparent colors yield no color.
func (r *Renderer) Color(c *theme.Color) lipgloss.TerminalColor {
	if c == nil || c.A <= 0 {
		return lipgloss.NoColor{}
	}
	blended := r.background.BlendRgb(c.Colorful(), math.Min(c.A, 1)).Clamped()
	return lipgloss.Color(blended.Hex())
}

func (r *Renderer) columns(points float64) int {
	return int(math.Round(points / r.pointsPerColumn))
}

func (r *Renderer) rows(points float64) int {
	return int(math.Round(points / r.pointsPerRow))
}

func (r *Renderer) padding(style lipgloss.Style, insets theme.EdgeInsets) lipgloss.Style {
	return style.Padding(r.rows(insets.Top), r.columns(insets.Right), r.rows(insets.Bottom), r.columns(insets.Left))
}

// LabelStyle builds the style for a text label.
func (r *Renderer) LabelStyle(spec theme.TextLabelSpecifier) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(r.Color(spec.Color)).
		Background(r.Color(spec.BackgroundColor)).
		Align(alignment(spec.Alignment))

	switch spec.Font.Weight {
	case theme.WeightSemibold, theme.WeightBold, theme.WeightHeavy, theme.WeightBlack:
		style = style.Bold(true)
	case theme.WeightUltraLight, theme.WeightThin, theme.WeightLight:
		style = style.Faint(true)
	}

	if !spec.SizeToFit {
		if width := r.columns(spec.Size.Width); width > 0 {
			style = style.Width(width)
		}
	}
	if spec.NumberOfLines > 0 {
		style = style.MaxHeight(spec.NumberOfLines)
	}
	if before := r.rows(spec.ParagraphStyle().SpacingBefore); before > 0 {
		style = style.MarginTop(before)
	}
	return r.padding(style, spec.Padding)
}

// Label renders text with the label's case transform, truncation and style.
func (r *Renderer) Label(spec theme.TextLabelSpecifier, text string) string {
	text = spec.Transform(text)
	if spec.NumberOfLines == 1 && !spec.SizeToFit {
		if width := r.columns(spec.Size.Width); width > 0 {
			text = truncate(strings.ReplaceAll(text, "\n", " "), width, spec.LineBreakMode)
		}
	}
	return r.LabelStyle(spec).Render(text)
}

// ViewStyle builds the style for a plain view.
func (r *Renderer) ViewStyle(spec theme.ViewSpecifier) lipgloss.Style {
	style := lipgloss.NewStyle().Background(r.Color(spec.BackgroundColor))
	if width := r.columns(spec.Size.Width); width > 0 {
		style = style.Width(width)
	}
	if height := r.rows(spec.Size.Height); height > 0 {
		style = style.Height(height)
	}
	return r.padding(style, spec.Padding)
}

// View renders content inside the view.
func (r *Renderer) View(spec theme.ViewSpecifier, content string) string {
	return r.ViewStyle(spec).Render(content)
}

// NavigationBar renders a one-line bar with buttons on the left and the
// title centered in the remaining width.
func (r *Renderer) NavigationBar(spec theme.NavigationBarSpecifier, width int, title string, buttons ...string) string {
	bar := lipgloss.NewStyle()
	if spec.BarColor != nil {
		color := *spec.BarColor
		if spec.Translucent {
			color = color.WithAlpha(color.A * translucentAlpha)
		}
		bar = bar.Background(r.Color(&color))
	}

	left := ""
	if len(buttons) > 0 {
		buttonStyle := lipgloss.NewStyle().Foreground(r.Color(spec.TintColor))
		if spec.ButtonsLabel != nil {
			buttonStyle = r.LabelStyle(*spec.ButtonsLabel).UnsetWidth().UnsetMaxHeight().UnsetMargins()
		}
		rendered := make([]string, len(buttons))
		for i, b := range buttons {
			if spec.ButtonsLabel != nil {
				b = spec.ButtonsLabel.Transform(b)
			}
			rendered[i] = buttonStyle.Render(b)
		}
		left = strings.Join(rendered, " ") + " "
	}

	titleStyle := lipgloss.NewStyle()
	if spec.TitleLabel != nil {
		titleStyle = r.LabelStyle(*spec.TitleLabel).UnsetWidth().UnsetMaxHeight().UnsetMargins()
		title = spec.TitleLabel.Transform(title)
	}

	remaining := width - lipgloss.Width(left)
	if remaining < 0 {
		remaining = 0
	}
	title = truncate(title, remaining, theme.LineBreakTruncateTail)
	center := titleStyle.Width(remaining).Align(lipgloss.Center).Render(title)
	return bar.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, center))
}

// DashedBorder builds a lipgloss border whose edges repeat the painted and
// spacing segments.
func (r *Renderer) DashedBorder(spec theme.DashedBorderSpecifier) lipgloss.Border {
	horizontal, vertical := "─", "│"
	corners := [4]string{"┌", "┐", "└", "┘"}
	if spec.LineWidth >= 2 {
		horizontal, vertical = "━", "┃"
		corners = [4]string{"┏", "┓", "┗", "┛"}
	} else if spec.CornerRadius > 0 {
		corners = [4]string{"╭", "╮", "╰", "╯"}
	}

	painted := max(1, int(math.Round(spec.PaintedSegmentLength/4)))
	spacing := int(math.Round(spec.SpacingSegmentLength / 4))
	pattern := func(line string) string {
		return strings.Repeat(line, painted) + strings.Repeat(" ", spacing)
	}

	return lipgloss.Border{
		Top:         pattern(horizontal),
		Bottom:      pattern(horizontal),
		Left:        pattern(vertical),
		Right:       pattern(vertical),
		TopLeft:     corners[0],
		TopRight:    corners[1],
		BottomLeft:  corners[2],
		BottomRight: corners[3],
	}
}

// Bordered renders content surrounded by the dashed border.
func (r *Renderer) Bordered(spec theme.DashedBorderSpecifier, content string) string {
	style := lipgloss.NewStyle().
		Border(r.DashedBorder(spec)).
		BorderForeground(r.Color(spec.Color))
	return r.padding(style, spec.Insets).Render(content)
}

func alignment(a theme.TextAlignment) lipgloss.Position {
	switch a {
	case theme.AlignCenter:
		return lipgloss.Center
	case theme.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// truncate shortens text to width cells according to mode. Wrapping modes
// leave text untouched.
func truncate(text string, width int, mode theme.LineBreakMode) string {
	textWidth := ansi.StringWidth(text)
	if width <= 0 || textWidth <= width {
		return text
	}

	switch mode {
	case theme.LineBreakClip:
		return ansi.Truncate(text, width, "")
	case theme.LineBreakTruncateHead:
		return ellipsis + ansi.TruncateLeft(text, textWidth-(width-1), "")
	case theme.LineBreakTruncateMiddle:
		right := (width - 1) / 2
		left := width - 1 - right
		return ansi.Truncate(text, left, "") + ellipsis + ansi.TruncateLeft(text, textWidth-right, "")
	case theme.LineBreakTruncateTail:
		return ansi.Truncate(text, width, ellipsis)
	default:
		return text
	}
}
