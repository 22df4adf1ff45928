package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "themes.yaml", sampleThemes)

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, stdout string)
	}{
		{
			name: "string from selected theme",
			args: []string{"get", "title", "--theme", "Dark", "--type", "string"},
			check: func(t *testing.T, stdout string) {
				assert.Equal(t, "Dark\n", stdout)
			},
		},
		{
			name: "inherited raw value",
			args: []string{"get", "fade", "--theme", "Dark"},
			check: func(t *testing.T, stdout string) {
				assert.Equal(t, "0.25\n", stdout)
			},
		},
		{
			name: "default theme when none selected",
			args: []string{"get", "title"},
			check: func(t *testing.T, stdout string) {
				assert.Equal(t, "Default\n", stdout)
			},
		},
		{
			name: "color as json",
			args: []string{"get", "accent", "--type", "color"},
			check: func(t *testing.T, stdout string) {
				var value map[string]any
				require.NoError(t, json.Unmarshal([]byte(stdout), &value))
				assert.Equal(t, "#ff0000", value["hex"])
				assert.Equal(t, 0.5, value["a"])
			},
		},
		{
			name: "adjusted font",
			args: []string{"get", "headline.font", "--type", "font", "--adjust", "3"},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, `"size": 20`)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--file", path}, tt.args...)
			stdout, err := executeCommand(t, args...)
			require.NoError(t, err)
			tt.check(t, stdout)
		})
	}
}

func TestGetCommand_Errors(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "themes.yaml", sampleThemes)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{name: "unknown type", args: []string{"get", "title", "--type", "matrix"}, message: `unknown type "matrix"`},
		{name: "unknown theme", args: []string{"get", "title", "--theme", "Light"}, message: "theme not found"},
		{name: "missing specifier", args: []string{"get", "nothing", "--type", "view"}, message: `missing view specifier for key "nothing"`},
		{name: "missing key argument", args: []string{"get"}, message: "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--file", path}, tt.args...)
			_, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
