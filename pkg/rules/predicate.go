package rules

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/variables"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// Predicate is a condition over resolved variables
type Predicate interface {
	Eval(vars variables.VariableSet) bool
	String() string
}

type constPredicate bool

func (c constPredicate) Eval(variables.VariableSet) bool { return bool(c) }

func (c constPredicate) String() string {
	if c {
		return "always"
	}
	return "never"
}

// Always includes unconditionally
var Always Predicate = constPredicate(true)

// Never excludes unconditionally
var Never Predicate = constPredicate(false)

type truthyPredicate struct {
	key    string
	negate bool
}

// Truthy is satisfied when key is defined and truthy
func Truthy(key string) Predicate { return truthyPredicate{key: key} }

// Falsy is satisfied when key is missing or falsy
func Falsy(key string) Predicate { return truthyPredicate{key: key, negate: true} }

func (p truthyPredicate) Eval(vars variables.VariableSet) bool {
	return vars.Truthy(p.key) != p.negate
}

func (p truthyPredicate) String() string {
	if p.negate {
		return "!" + p.key
	}
	return p.key
}

type equalsPredicate struct {
	key    string
	value  string
	negate bool
}

// Equals is satisfied when key is defined and formats to value
func Equals(key, value string) Predicate { return equalsPredicate{key: key, value: value} }

// NotEquals is the negation of Equals
func NotEquals(key, value string) Predicate {
	return equalsPredicate{key: key, value: value, negate: true}
}

func (p equalsPredicate) Eval(vars variables.VariableSet) bool {
	got, ok := vars.Lookup(p.key)
	return (ok && got == p.value) != p.negate
}

func (p equalsPredicate) String() string {
	op := "=="
	if p.negate {
		op = "!="
	}
	return p.key + " " + op + " " + `"` + p.value + `"`
}

// ParsePredicate parses a `when` expression
func ParsePredicate(expr string) (Predicate, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, invalidExpr(expr, "empty expression")
	}

	for _, op := range []string{"!=", "=="} {
		key, value, found := strings.Cut(trimmed, op)
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if !keyPattern.MatchString(key) {
			return nil, invalidExpr(expr, "invalid variable name "+key)
		}
		value = unquote(strings.TrimSpace(value))
		if op == "!=" {
			return NotEquals(key, value), nil
		}
		return Equals(key, value), nil
	}

	if strings.HasPrefix(trimmed, "!") {
		key := strings.TrimSpace(trimmed[1:])
		if !keyPattern.MatchString(key) {
			return nil, invalidExpr(expr, "invalid variable name "+key)
		}
		return Falsy(key), nil
	}

	if !keyPattern.MatchString(trimmed) {
		return nil, invalidExpr(expr, "invalid variable name "+trimmed)
	}
	return Truthy(trimmed), nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func invalidExpr(expr, reason string) error {
	return errors.Newf(errors.ErrInvalidInput, "invalid rule expression %q: %s", expr, reason).
		WithDetail("expression", expr)
}
