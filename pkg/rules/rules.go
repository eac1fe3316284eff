package rules

import (
	"sort"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/variables"
)

// Origin records where a rule came from
type Origin string

const (
	OriginIgnore     Origin = "ignore"
	OriginManifest   Origin = "manifest"
	OriginConvention Origin = "convention"
)

// Rule includes or excludes the entries its pattern matches
type Rule struct {
	Pattern   string
	Predicate Predicate
	Origin    Origin
}

// DefaultConventions maps optional module directories to their variables
var DefaultConventions = map[string]string{
	"ai":      "include_ai",
	"trainer": "include_trainer",
	"docker":  "include_docker",
}

// DefaultIgnores are never copied from a template
var DefaultIgnores = []string{".DS_Store", "*.swp", "*~", ".git/"}

// IgnoreRules turns patterns into rules that always exclude
func IgnoreRules(patterns []string) []Rule {
	out := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Rule{Pattern: p, Predicate: Never, Origin: OriginIgnore})
	}
	return out
}

// ConventionRules builds directory rules from a convention map, sorted by directory
func ConventionRules(conventions map[string]string) []Rule {
	dirs := make([]string, 0, len(conventions))
	for dir := range conventions {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	out := make([]Rule, 0, len(dirs))
	for _, dir := range dirs {
		key := strings.TrimSpace(conventions[dir])
		if key == "" {
			continue
		}
		out = append(out, Rule{
			Pattern:   strings.TrimSuffix(dir, "/") + "/",
			Predicate: Truthy(key),
			Origin:    OriginConvention,
		})
	}
	return out
}

// Build orders rules for evaluation: ignores, manifest rules, conventions
func Build(manifestRules, conventions, ignores []Rule) []Rule {
	out := make([]Rule, 0, len(manifestRules)+len(conventions)+len(ignores))
	out = append(out, ignores...)
	out = append(out, manifestRules...)
	out = append(out, conventions...)
	return out
}

// Evaluate returns the inclusion decision and the rule that made it,
// or nil when no rule matched
func Evaluate(entry Entry, rules []Rule, vars variables.VariableSet) (bool, *Rule) {
	for i := range rules {
		if MatchPattern(rules[i].Pattern, entry) {
			return rules[i].Predicate.Eval(vars), &rules[i]
		}
	}
	return true, nil
}

// ShouldInclude reports whether entry is materialized. First match wins;
// no match means include.
func ShouldInclude(entry Entry, rules []Rule, vars variables.VariableSet) bool {
	include, rule := Evaluate(entry, rules, vars)
	if rule != nil && !include {
		logger := logging.GetLogger("rules")
		logger.Trace().
			Str("path", entry.Path).
			Str("pattern", rule.Pattern).
			Str("origin", string(rule.Origin)).
			Str("predicate", rule.Predicate.String()).
			Msg("Entry excluded")
	}
	return include
}
