// Package render substitutes variables into template text and paths.
//
// The token syntax is deliberately small: `{{ key }}` with optional spaces
// inside the braces, where key matches [A-Za-z_][A-Za-z0-9_.-]*. There are
// no filters, loops or conditionals. A backslash before the opening braces
// (`\{{`) produces a literal `{{`. Any other `{{` that does not form a
// valid token is an error, as is a token whose key is not defined, so
// rendered output never contains a half-substituted placeholder.
package render
