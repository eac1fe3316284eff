// Package rules decides which template entries are materialized.
//
// A rule pairs a path pattern with a predicate over the resolved variables.
// Rules are evaluated in order and the first rule whose pattern matches an
// entry decides whether it is included. An entry no rule matches is
// included, so optional modules are opted out of rather than opted into.
//
// # Pattern Conventions
//
//   - `docker/` - trailing slash, matches directories only
//   - `src/ai/` - contains a slash, matched against the full relative path
//   - `*.swp` - no slash, matched against the base name
//   - `*`, `?`, `[a-z]` - glob syntax from path.Match
//
// # Rule Order
//
// Build orders rules as ignore rules, then manifest rules, then convention
// rules. Ignore rules always exclude. Convention rules map a fixed
// directory name to the variable that enables it:
//
//	ai/      -> include_ai
//	trainer/ -> include_trainer
//	docker/  -> include_docker
//
// # Predicates
//
// Manifest rules carry a `when` expression parsed by ParsePredicate:
//
//	include_ai            truthy
//	!include_ai           falsy
//	license == "MIT"      equal after canonical formatting
//	project_type != lib   not equal
//
// A variable that is not defined is falsy and equal to nothing.
package rules
