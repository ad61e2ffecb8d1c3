// Package overrides decodes partial themes from files and streams.
package overrides

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"themekit/theme"
)

// Format names an override encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unrecognized format or file extension.
var ErrUnknownFormat = errors.New("unknown override format")

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// LoadFile reads and decodes the override stored at path.
func LoadFile(path string) (theme.Tree, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read override: %w", err)
	}
	partial, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse override %s: %w", path, err)
	}
	return partial, nil
}

// Decode parses data as a partial theme. The document root must be a
// mapping; an empty document yields an empty tree. The result is
// normalized (see theme.Normalize).
func Decode(data []byte, format Format) (theme.Tree, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		stripped := jsonc.ToJSON(data)
		if len(strings.TrimSpace(string(stripped))) == 0 {
			break
		}
		if err := json.Unmarshal(stripped, &raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if raw == nil {
		return theme.Tree{}, nil
	}
	return theme.Clone(raw), nil
}
