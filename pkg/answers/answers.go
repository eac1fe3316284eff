// Package answers loads per-invocation variable values from an answers file
// or from key=value command-line pairs.
package answers

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/knadh/koanf/maps"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies an answers file syntax
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DetectFormat returns the format implied by a file extension
func DetectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json", ".jsonc":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	}
	return "", false
}

// LoadFile reads an answers file and returns it as a variable source.
// Nested tables are flattened to dotted keys.
func LoadFile(path string) (variables.Source, error) {
	format, ok := DetectFormat(path)
	if !ok {
		return variables.Source{}, errors.Newf(errors.ErrInvalidInput,
			"unsupported answers file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return variables.Source{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read answers file %s", path).
			WithDetail("path", path)
	}

	values, err := Parse(data, format)
	if err != nil {
		return variables.Source{}, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse answers file %s", path).
			WithDetail("path", path)
	}

	return variables.Source{Name: "answers file " + path, Values: values}, nil
}

// Parse decodes answers data in the given format
func Parse(data []byte, format Format) (map[string]any, error) {
	raw := make(map[string]any)

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		raw = convertNumbers(raw).(map[string]any)
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown answers format %q", format)
	}

	flat, _ := maps.Flatten(raw, nil, ".")
	return flat, nil
}

// convertNumbers turns json.Number into int64 when integral, float64 otherwise.
// Integers outside the int64 range keep their digits as a string.
func convertNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = convertNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = convertNumbers(item)
		}
		return val
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if !strings.ContainsAny(val.String(), ".eE") {
			return val.String()
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

// ParseSet parses repeated key=value flags into a variable source.
// Later pairs override earlier ones.
func ParseSet(pairs []string) (variables.Source, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return variables.Source{}, errors.Newf(errors.ErrInvalidInput,
				"invalid --set value %q, expected key=value", pair).
				WithDetail("value", pair)
		}
		values[key] = variables.ParseScalar(value)
	}
	return variables.Source{Name: "command-line flags", Values: values}, nil
}
