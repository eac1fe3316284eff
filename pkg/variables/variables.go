package variables

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
)

// Source is a named layer of raw values
type Source struct {
	// Name identifies the layer in error messages, e.g. "defaults" or a file path
	Name   string
	Values map[string]any
}

// VariableSet is an immutable mapping from variable name to scalar value.
// Values are one of string, bool, int64 or float64.
type VariableSet struct {
	values map[string]any
}

// NewVariableSet builds a set from a single map, normalizing every value
func NewVariableSet(values map[string]any) (VariableSet, error) {
	return Resolve(nil, Source{Name: "values", Values: values})
}

// Resolve merges sources in order, later sources overriding earlier ones,
// then checks that every required key is present in the merged result.
func Resolve(required []string, sources ...Source) (VariableSet, error) {
	merged := make(map[string]any)

	for _, src := range sources {
		if err := mergeSource(merged, src); err != nil {
			return VariableSet{}, err
		}
	}

	var missing []string
	seen := make(map[string]bool)
	for _, key := range required {
		if _, ok := merged[key]; !ok && !seen[key] {
			missing = append(missing, key)
			seen[key] = true
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return VariableSet{}, errors.Newf(errors.ErrMissingRequiredVariable,
			"missing required variables: %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}

	return VariableSet{values: merged}, nil
}

func mergeSource(dst map[string]any, src Source) error {
	for key, raw := range src.Values {
		if raw == nil {
			continue
		}
		value, err := normalize(raw)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidVariable,
				"variable %q from %s has unsupported type %T", key, src.Name, raw).
				WithDetail("key", key).
				WithDetail("source", src.Name)
		}
		dst[key] = value
	}
	return nil
}

func normalize(raw any) (any, error) {
	switch v := raw.(type) {
	case string, bool, int64, float64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return float64(v), nil
	case []string:
		return strings.Join(v, ", "), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			switch item.(type) {
			case []any, []string:
				return nil, fmt.Errorf("nested lists are not supported")
			}
			scalar, err := normalize(item)
			if err != nil {
				return nil, err
			}
			parts = append(parts, Format(scalar))
		}
		return strings.Join(parts, ", "), nil
	default:
		return nil, fmt.Errorf("value must be a string, bool, number or list of those")
	}
}

// fromUint keeps the decimal text of values that do not fit in an int64
func fromUint(v uint64) any {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10)
	}
	return int64(v)
}

// Get returns the raw value for key
func (s VariableSet) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Lookup returns the canonical string form of key
func (s VariableSet) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	return Format(v), true
}

// Has reports whether key is defined
func (s VariableSet) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Truthy reports whether key is defined and truthy. Missing keys are false.
func (s VariableSet) Truthy(key string) bool {
	v, ok := s.values[key]
	return ok && Truthy(v)
}

// Keys returns all variable names, sorted
func (s VariableSet) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of variables
func (s VariableSet) Len() int {
	return len(s.values)
}

// Map returns a copy of the underlying values
func (s VariableSet) Map() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// With returns a new set with src layered on top. The receiver is unchanged.
func (s VariableSet) With(src Source) (VariableSet, error) {
	return Resolve(nil, Source{Name: "base", Values: s.Map()}, src)
}
