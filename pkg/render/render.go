package render

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/variables"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
	escape     = `\{{`

	// TemplateSuffix is stripped from rendered file names
	TemplateSuffix = ".tmpl"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// token is one {{ key }} occurrence
type token struct {
	start, end int
	key        string
}

// scan walks text and calls emit for literal runs and tok for tokens
func scan(text, location string, literal func(string), tok func(token) error) error {
	i := 0
	for i < len(text) {
		next := strings.Index(text[i:], openDelim)
		if next < 0 {
			literal(text[i:])
			return nil
		}
		at := i + next

		if at > 0 && text[at-1] == '\\' {
			literal(text[i : at-1])
			literal(openDelim)
			i = at + len(openDelim)
			continue
		}

		literal(text[i:at])

		end := strings.Index(text[at+len(openDelim):], closeDelim)
		if end < 0 {
			return malformed(text, at, location, "unterminated token")
		}
		end += at + len(openDelim)

		key := strings.Trim(text[at+len(openDelim):end], " \t")
		if !keyPattern.MatchString(key) {
			return malformed(text, at, location, "invalid token "+text[at:end+len(closeDelim)])
		}

		if err := tok(token{start: at, end: end + len(closeDelim), key: key}); err != nil {
			return err
		}
		i = end + len(closeDelim)
	}
	return nil
}

// Render replaces every token in text with its canonical value
func Render(text string, vars variables.VariableSet, location string) (string, error) {
	if !strings.Contains(text, openDelim) {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))

	err := scan(text, location,
		func(s string) { b.WriteString(s) },
		func(t token) error {
			value, ok := vars.Lookup(t.key)
			if !ok {
				return errors.Newf(errors.ErrUnresolvedToken,
					"unresolved token {{ %s }} in %s", t.key, location).
					WithDetail("key", t.key).
					WithDetail("location", location).
					WithDetail("line", lineOf(text, t.start))
			}
			b.WriteString(value)
			return nil
		})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Tokens returns the distinct keys referenced by well-formed tokens, sorted.
// Malformed tokens are ignored.
func Tokens(text string) []string {
	seen := make(map[string]bool)
	i := 0
	for i < len(text) {
		// scan stops at the first malformed token, so resume after it
		err := scan(text[i:], "", func(string) {}, func(t token) error {
			seen[t.key] = true
			return nil
		})
		if err == nil {
			break
		}
		at := errors.GetErrorDetail(err, "offset").(int)
		i += at + len(openDelim)
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func malformed(text string, at int, location, reason string) error {
	return errors.Newf(errors.ErrUnresolvedToken, "%s in %s", reason, location).
		WithDetail("location", location).
		WithDetail("line", lineOf(text, at)).
		WithDetail("offset", at)
}

func lineOf(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
