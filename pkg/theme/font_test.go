package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontFromMap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		doc        map[string]any
		adjustment float64
		resolve    FontResolver
		want       Font
		fellBack   bool
	}{
		{name: "absent mapping", doc: nil, want: Font{Size: 15}},
		{name: "named font", doc: map[string]any{"name": "Avenir", "size": 18}, want: Font{Name: "Avenir", Size: 18}},
		{name: "empty name is system", doc: map[string]any{"name": "", "size": 12}, want: Font{Size: 12}},
		{name: "adjustment added", doc: map[string]any{"name": "Avenir", "size": 18}, adjustment: 2, want: Font{Name: "Avenir", Size: 20}},
		{name: "floor after adjustment", doc: map[string]any{"size": 4}, adjustment: -4, want: Font{Size: 15}},
		{name: "size below one", doc: map[string]any{"size": 0.5}, want: Font{Size: 15}},
		{
			name:     "unresolvable name",
			doc:      map[string]any{"name": "Missing", "size": 11},
			resolve:  func(string) bool { return false },
			want:     Font{Size: 11},
			fellBack: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resolve := tc.resolve
			if resolve == nil {
				resolve = anyFont
			}
			font, fellBack := fontFromMap(tc.doc, tc.adjustment, resolve)
			assert.Equal(t, tc.want, font)
			assert.Equal(t, tc.fellBack, fellBack)
		})
	}
}

func TestParseFontWeight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, WeightUltraLight, ParseFontWeight("ultraLight"))
	assert.Equal(t, WeightSemibold, ParseFontWeight("SEMIBOLD"))
	assert.Equal(t, WeightBlack, ParseFontWeight("black"))
	assert.Equal(t, WeightRegular, ParseFontWeight("chunky"))
	assert.Equal(t, WeightRegular, ParseFontWeight(""))
	assert.Equal(t, "heavy", WeightHeavy.String())
}

func TestScreenFontFromMap(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"name":     "Ignored",
		"size":     14,
		"size38mm": 12,
		"size44mm": 17,
		"weight":   "bold",
	}

	assert.Equal(t, Font{Size: 12, Weight: WeightBold}, screenFontFromMap(doc, Screen38mm))
	assert.Equal(t, Font{Size: 17, Weight: WeightBold}, screenFontFromMap(doc, Screen44mm))
	assert.Equal(t, Font{Size: 15, Weight: WeightBold}, screenFontFromMap(doc, Screen40mm))
	assert.Equal(t, Font{Size: 14, Weight: WeightBold}, screenFontFromMap(doc, ScreenUnknown))
}

func TestScreenClassForSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Screen38mm, ScreenClassForSize(Size{Width: 136, Height: 170}))
	assert.Equal(t, Screen40mm, ScreenClassForSize(Size{Width: 162, Height: 197}))
	assert.Equal(t, Screen42mm, ScreenClassForSize(Size{Width: 156, Height: 195}))
	assert.Equal(t, Screen44mm, ScreenClassForSize(Size{Width: 184, Height: 224}))
	assert.Equal(t, ScreenUnknown, ScreenClassForSize(Size{Width: 320, Height: 480}))
}

func TestParseScreenClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Screen42mm, ParseScreenClass("42mm"))
	assert.Equal(t, Screen38mm, ParseScreenClass("size38mm"))
	assert.Equal(t, ScreenUnknown, ParseScreenClass("watch"))
	assert.Equal(t, "44mm", Screen44mm.String())
	assert.Equal(t, "unknown", ScreenUnknown.String())
}
