// Package locator resolves a template name to a template directory.
//
// Templates live in search roots. A root is any fs.FS whose top-level
// directories are templates: a user directory on disk, or the catalog
// embedded in the binary. Both kinds are handled the same way, the
// BuiltIn flag only affects display and ordering.
//
// Roots are searched in order and the first root holding a directory whose
// name matches exactly wins. SearchRoots builds that order from the
// configured precedence. With the default, user-first, a user template
// shadows a built-in one of the same name.
package locator
