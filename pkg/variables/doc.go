// Package variables resolves the set of values that templates are rendered
// against.
//
// Values come from ordered sources (built-in defaults, the global config
// file, an answers file, command-line flags). Later sources override
// earlier ones key by key, and required keys are checked only once every
// source has been merged. The resulting VariableSet is immutable.
//
// Format is the single canonical stringification of a value. Both the
// renderer and rule predicates go through it so that a value renders and
// compares the same way everywhere.
package variables
