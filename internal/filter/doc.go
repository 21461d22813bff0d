// Package filter decides which transcript records fall inside a selection.
//
// A selection combines an inclusive acquisition-period Window with per-field
// whitelist (Include) and blacklist (Exclude) Constraints. All three stages
// are conjunctive: a record must be inside the window, satisfy every
// whitelisted field, and hit no blacklisted value.
package filter
