package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleThemes = `Default:
  title: Default
  fade: 0.25
  accent:
    hex: "#FF0000"
    alpha: 0.5
  headline:
    font:
      name: Avenir
      size: 17
    textTransform: uppercase
  card:
    backgroundColor:
      hex: "#202020"
  divider:
    lineWidth: 1
    paintedSegmentLength: 8
    spacingSegmentLength: 4
  nav:
    barColor:
      hex: "#336699"
    titleLabel:
      font:
        size: 17
Dark:
  title: Dark
`

func writeThemeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// executeCommand runs the root command and returns what it wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}
