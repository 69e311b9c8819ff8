// Package options normalizes heterogeneous widget option input into a
// canonical ordered sequence.
//
// Callers hand widgets options in whatever shape is convenient: a list, a
// set, an integer range, a single scalar. Each accepted shape is an
// explicit Source variant; Transform compiles the variant into one ordered
// Set, validates that its elements are mutually comparable, and maps the
// caller's default values to index positions. Everything downstream (the
// serde boundary, identity hashing, the wire protocol) works over the Set
// and its indices, never over the raw caller input.
package options
