package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "leading hash", input: "#FF0000", want: "#ff0000"},
		{name: "no hash", input: "00ff7f", want: "#00ff7f"},
		{name: "surrounding whitespace", input: "  #1a2b3c ", want: "#1a2b3c"},
		{name: "short form rejected", input: "#FFF", wantErr: true},
		{name: "too long", input: "#FF000000", wantErr: true},
		{name: "non hex", input: "#GG0000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			color, err := ParseHex(tc.input)
			if tc.wantErr {
				var colorErr *themeerrors.ColorError
				require.ErrorAs(t, err, &colorErr)
				assert.Equal(t, tc.input, colorErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, color.Hex())
			assert.Equal(t, 1.0, color.A)
		})
	}
}

func TestColorFromMap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  map[string]any
		want [4]uint8
	}{
		{name: "nil mapping is opaque black", doc: nil, want: [4]uint8{0, 0, 0, 255}},
		{name: "no fields is opaque black", doc: map[string]any{}, want: [4]uint8{0, 0, 0, 255}},
		{name: "hex with alpha", doc: map[string]any{"hex": "#FF0000", "alpha": 0.5}, want: [4]uint8{255, 0, 0, 128}},
		{name: "hex without alpha", doc: map[string]any{"hex": "0000FF"}, want: [4]uint8{0, 0, 255, 255}},
		{name: "alpha zero alone is clear", doc: map[string]any{"alpha": 0}, want: [4]uint8{0, 0, 0, 0}},
		{name: "nonzero alpha alone is black", doc: map[string]any{"alpha": 0.4}, want: [4]uint8{0, 0, 0, 255}},
		{name: "empty hex is black with alpha", doc: map[string]any{"hex": "", "alpha": 0.5}, want: [4]uint8{0, 0, 0, 128}},
		{name: "alpha clamps", doc: map[string]any{"hex": "#FFFFFF", "alpha": 3}, want: [4]uint8{255, 255, 255, 255}},
		{name: "null hex is absent", doc: map[string]any{"hex": nil, "alpha": 0}, want: [4]uint8{0, 0, 0, 0}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			color, err := colorFromMap(tc.doc)
			require.NoError(t, err)
			r, g, b, a := color.RGBA8()
			assert.Equal(t, tc.want, [4]uint8{r, g, b, a})
		})
	}
}

func TestColorFromMapHalfAlphaPrecision(t *testing.T) {
	t.Parallel()

	color, err := colorFromMap(map[string]any{"hex": "#FF0000", "alpha": 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, color.R, 1e-9)
	assert.InDelta(t, 128.0/255.0, color.A, 0.005)
}

func TestColorFromMapMalformedHex(t *testing.T) {
	t.Parallel()

	_, err := colorFromMap(map[string]any{"hex": "#12"})
	var colorErr *themeerrors.ColorError
	require.ErrorAs(t, err, &colorErr)
}

func TestColorFromMapRejectsNonStringHex(t *testing.T) {
	t.Parallel()

	// unquoted all-digit YAML hex values decode as integers
	for _, raw := range []any{336699, 0, 1.5, true} {
		_, err := colorFromMap(map[string]any{"hex": raw, "alpha": 0.5})
		var colorErr *themeerrors.ColorError
		require.ErrorAs(t, err, &colorErr, "%v", raw)
		assert.Contains(t, colorErr.Message, "hex must be a string")
	}
}

func TestOptionalColor(t *testing.T) {
	t.Parallel()

	color, err := optionalColor(nil)
	require.NoError(t, err)
	assert.Nil(t, color)

	color, err = optionalColor("red")
	require.NoError(t, err)
	assert.Nil(t, color)

	color, err = optionalColor(map[string]any{"hex": "#00FF00"})
	require.NoError(t, err)
	require.NotNil(t, color)
	assert.Equal(t, "#00ff00", color.Hex())
}
