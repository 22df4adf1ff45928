// Package document decodes theme configuration files into the nested
// mapping consumed by the loader.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
	"howett.net/plist"

	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
)

// Format identifies the encoding of a theme document.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatPlist Format = "plist"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".plist":
		return FormatPlist, nil
	default:
		return "", fmt.Errorf("unsupported theme document extension %q", filepath.Ext(path))
	}
}

// Decode reads and decodes the document at path.
func Decode(path string) (map[string]any, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}

	doc, err := DecodeBytes(data, format)
	if err != nil {
		return nil, themeerrors.NewParseError(path, extractLine(err), err)
	}
	return doc, nil
}

// DecodeBytes decodes data in the given format. Keys of nested mappings are
// converted to strings.
func DecodeBytes(data []byte, format Format) (map[string]any, error) {
	var raw any
	switch format {
	case FormatYAML, FormatJSON:
		// JSON documents are valid YAML.
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatPlist:
		if _, err := plist.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported theme document format %q", format)
	}

	if raw == nil {
		return map[string]any{}, nil
	}
	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("theme document must be a mapping of theme names, got %T", raw)
	}
	return doc, nil
}

// Encode writes doc in the given format. Only YAML and property lists are
// supported as outputs.
func Encode(doc map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatPlist:
		var buf bytes.Buffer
		enc := plist.NewEncoderForFormat(&buf, plist.XMLFormat)
		enc.Indent("\t")
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func normalize(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
