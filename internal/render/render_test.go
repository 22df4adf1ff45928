package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

func colorPtr(t *testing.T, hex string, alpha float64) *theme.Color {
	t.Helper()

	c, err := theme.ParseHex(hex)
	require.NoError(t, err)
	c = c.WithAlpha(alpha)
	return &c
}

func TestColorBlendsAlphaOverBackground(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Equal(t, lipgloss.Color("#ff0000"), r.Color(colorPtr(t, "#FF0000", 1)))
	assert.Equal(t, lipgloss.Color("#800000"), r.Color(colorPtr(t, "#FF0000", 0.5)))
	assert.Equal(t, lipgloss.NoColor{}, r.Color(nil))
	assert.Equal(t, lipgloss.NoColor{}, r.Color(&theme.Clear))

	white := New(WithBackground(theme.Color{R: 1, G: 1, B: 1, A: 1}))
	assert.Equal(t, lipgloss.Color("#ff8080"), white.Color(colorPtr(t, "#FF0000", 0.5)))
}

func TestLabelStyle(t *testing.T) {
	t.Parallel()

	r := New()
	spec := theme.TextLabelSpecifier{
		Font:          theme.Font{Size: 17, Weight: theme.WeightBold},
		Size:          theme.Size{Width: 160, Height: 20},
		NumberOfLines: 2,
		Alignment:     theme.AlignRight,
		Color:         colorPtr(t, "#112233", 1),
		Padding:       theme.EdgeInsets{Left: 16, Right: 8},
	}

	style := r.LabelStyle(spec)
	assert.True(t, style.GetBold())
	assert.False(t, style.GetFaint())
	assert.Equal(t, lipgloss.Color("#112233"), style.GetForeground())
	assert.Equal(t, lipgloss.Right, style.GetAlignHorizontal())
	assert.Equal(t, 20, style.GetWidth())
	assert.Equal(t, 2, style.GetMaxHeight())
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 1, style.GetPaddingRight())

	spec.SizeToFit = true
	spec.Font.Weight = theme.WeightLight
	style = r.LabelStyle(spec)
	assert.Zero(t, style.GetWidth())
	assert.True(t, style.GetFaint())
}

func TestLabelAppliesTransformAndTruncation(t *testing.T) {
	t.Parallel()

	r := New()
	spec := theme.TextLabelSpecifier{
		Size:          theme.Size{Width: 40},
		NumberOfLines: 1,
		TextTransform: theme.TextCaseUpper,
		LineBreakMode: theme.LineBreakTruncateTail,
	}

	out := ansi.Strip(r.Label(spec, "hello world"))
	assert.Equal(t, "HELL…", strings.TrimSpace(out))

	spec.NumberOfLines = 0
	spec.LineBreakMode = theme.LineBreakWordWrap
	out = ansi.Strip(r.Label(spec, "hello world"))
	assert.Contains(t, out, "HELLO")
	assert.Contains(t, out, "WORLD")
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode theme.LineBreakMode
		want string
	}{
		{mode: theme.LineBreakTruncateTail, want: "Hell…"},
		{mode: theme.LineBreakTruncateHead, want: "…orld"},
		{mode: theme.LineBreakTruncateMiddle, want: "He…ld"},
		{mode: theme.LineBreakClip, want: "Hello"},
		{mode: theme.LineBreakWordWrap, want: "Hello World"},
		{mode: theme.LineBreakCharWrap, want: "Hello World"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.mode.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, truncate("Hello World", 5, tc.mode))
		})
	}

	assert.Equal(t, "short", truncate("short", 10, theme.LineBreakTruncateTail))
	assert.Equal(t, "any", truncate("any", 0, theme.LineBreakClip))
}

func TestViewStyle(t *testing.T) {
	t.Parallel()

	r := New()
	style := r.ViewStyle(theme.ViewSpecifier{
		Size:            theme.Size{Width: 80, Height: 48},
		BackgroundColor: colorPtr(t, "#00FF00", 1),
		Padding:         theme.EdgeInsets{Top: 16},
	})

	assert.Equal(t, 10, style.GetWidth())
	assert.Equal(t, 3, style.GetHeight())
	assert.Equal(t, 1, style.GetPaddingTop())
	assert.Equal(t, lipgloss.Color("#00ff00"), style.GetBackground())

	out := r.View(theme.ViewSpecifier{Size: theme.Size{Width: 80}}, "x")
	assert.Equal(t, 10, lipgloss.Width(out))
}

func TestDashedBorder(t *testing.T) {
	t.Parallel()

	r := New()

	border := r.DashedBorder(theme.DashedBorderSpecifier{
		LineWidth:            1,
		CornerRadius:         4,
		PaintedSegmentLength: 8,
		SpacingSegmentLength: 4,
	})
	assert.Equal(t, "── ", border.Top)
	assert.Equal(t, "││ ", border.Left)
	assert.Equal(t, "╭", border.TopLeft)

	thick := r.DashedBorder(theme.DashedBorderSpecifier{LineWidth: 2})
	assert.Equal(t, "━", thick.Top)
	assert.Equal(t, "┏", thick.TopLeft)

	out := ansi.Strip(r.Bordered(theme.DashedBorderSpecifier{PaintedSegmentLength: 4}, "hi"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "┌──┐", lines[0])
	assert.Equal(t, "│hi│", lines[1])
}

func TestNavigationBar(t *testing.T) {
	t.Parallel()

	r := New()
	bar := colorPtr(t, "#336699", 1)
	spec := theme.NavigationBarSpecifier{
		Translucent: false,
		BarColor:    bar,
		TitleLabel:  &theme.TextLabelSpecifier{TextTransform: theme.TextCaseUpper},
	}

	out := ansi.Strip(r.NavigationBar(spec, 20, "inbox", "‹ Back"))
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.True(t, strings.HasPrefix(out, "‹ Back "))
	assert.Contains(t, out, "INBOX")

	narrow := ansi.Strip(r.NavigationBar(spec, 4, "settings"))
	assert.Equal(t, "SET…", narrow)
}
