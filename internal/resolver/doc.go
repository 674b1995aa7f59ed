// Package resolver merges plugin document fragments into one canonical
// record per entity.
//
// A plugin document may mention the same plugin or bundle several times,
// each record contributing some of its fields. Resolution groups the
// records by id and folds each group with a per-field merge strategy:
//
//   - scalar: the value is taken from whichever record sets it; two
//     different non-empty values are a conflict.
//   - list: a list may be supplied by at most one record.
//   - flag: booleans are OR-ed and never conflict.
//
// Alongside the entities the resolver builds reverse indices from module,
// event, filetype and command triggers to the ids that own them, and the
// list of ids marked lazy. Ids share a single namespace across start
// plugins, lazy plugins and bundles.
//
// Every failure is reported as a *ConflictError, which matches ErrConflict
// through errors.Is. Resolution is all or nothing.
package resolver
