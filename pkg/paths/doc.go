// Package paths provides centralized path handling for scaffold.
// It implements XDG Base Directory specification compliance for the
// config, data and state directories, and lets each of them be
// overridden through a SCAFFOLD_* environment variable.
package paths
