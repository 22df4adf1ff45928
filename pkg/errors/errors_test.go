package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("themes.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "themes.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "themes.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("themes.plist", 0, stdErrors.New("bad header"))
	require.Equal(t, "parse error: themes.plist: bad header", err.Error())
}

func TestValidationErrorWrapsColorError(t *testing.T) {
	t.Parallel()

	colorErr := NewColorError("#FFF", "expected 6 hex digits")
	err := NewValidationError("Dark.label.color.hex", "malformed color", colorErr)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "Dark.label.color.hex", validationErr.Field)

	var target *ColorError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "#FFF", target.Value)
}

func TestMissingSpecifierErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewMissingSpecifierError("Dark", "square", "view")
	require.Equal(t, `missing view specifier for key "square" in theme Dark`, err.Error())

	err = NewMissingSpecifierError("", "label", "text label")
	require.Equal(t, `missing text label specifier for key "label"`, err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var colorErr *ColorError
	var missingErr *MissingSpecifierError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, colorErr.Error())
	require.Empty(t, missingErr.Error())
}
