package scaffold

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/scaffold/pkg/errors"
)

// ReservedNames cannot be used as project names
var ReservedNames = []string{"test", "src", "lib", "module", "package"}

// ValidateProjectName accepts identifier-like names. Underscores may appear
// anywhere but the name must otherwise start with a letter.
func ValidateProjectName(name string) error {
	invalid := func(reason string) error {
		return errors.Newf(errors.ErrInvalidInput, "invalid project name %q: %s", name, reason).
			WithDetail("project_name", name)
	}

	stripped := strings.ReplaceAll(name, "_", "")
	if stripped == "" {
		return invalid("must contain a letter")
	}
	for i, r := range stripped {
		if i == 0 && !unicode.IsLetter(r) {
			return invalid("must start with a letter")
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return invalid("only letters, digits and underscores are allowed")
		}
	}
	for _, reserved := range ReservedNames {
		if name == reserved {
			return invalid("name is reserved")
		}
	}
	return nil
}

// ModuleName converts a project name to a snake_case package name
func ModuleName(project string) string {
	return joinWords(project, '_')
}

// Slug converts a project name to a lowercase, hyphenated slug
func Slug(project string) string {
	return joinWords(project, '-')
}

// joinWords lowercases s and joins its words with sep. Words break on any
// non-alphanumeric rune and on lower-to-upper case changes.
func joinWords(s string, sep rune) string {
	var b strings.Builder
	pending := false
	var prev rune
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				pending = true
			}
			if pending && b.Len() > 0 {
				b.WriteRune(sep)
			}
			pending = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pending = true
		}
		prev = r
	}
	return b.String()
}
