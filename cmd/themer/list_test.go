package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCommand_TableOutput(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "themes.yaml", sampleThemes)

	stdout, err := executeCommand(t, "list", "--file", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME     PARENT   KEYS  DEFAULT")
	require.Regexp(t, `(?m)^Default\s+-\s+7\s+yes$`, stdout)
	require.Regexp(t, `(?m)^Dark\s+Default\s+1\s*$`, stdout)
}

func TestListCommand_JSONOutput(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "themes.yaml", sampleThemes)

	stdout, err := executeCommand(t, "list", "--file", path, "--json")
	require.NoError(t, err)

	var entries []themeEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Equal(t, []themeEntry{
		{Name: "Dark", Parent: "Default", Keys: 1},
		{Name: "Default", Default: true, Keys: 7},
	}, entries)
}

func TestListCommand_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(t, "list", "--file", "/nonexistent/themes.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load themes")
	require.Contains(t, err.Error(), "themer validate")
}
