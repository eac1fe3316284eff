// Package materialize renders a located template into a new project
// directory.
//
// Materialization runs in two phases. Plan walks the template in lexical
// order, applies the inclusion rules, renders every path and file body and
// detects collisions. Nothing is written while planning, so every
// template or variable problem surfaces before the destination is touched.
//
// Materialize then stages the plan in a hidden sibling of the destination
// (.<name>.scaffold-<id>) and promotes it with a single rename. On any
// failure the staging directory, and any parent directories created for
// this run, are removed, so the destination either does not exist or holds
// the complete tree.
//
// The destination emptiness check is repeated right before the rename.
// Another process creating the destination between that check and the
// rename is reported as DESTINATION_NOT_EMPTY or IO_FAILURE; the window is
// narrow but not closed.
package materialize
