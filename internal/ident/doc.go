// Package ident computes stable, content-addressed widget and page
// identities.
//
// A rerun app script carries no persistent widget handles: the script is
// re-executed top to bottom on every interaction, and each widget
// construction call must deterministically recompute the identity under
// which its state was stored on the previous run. That identity is a
// SHA-256 hash over a domain prefix and the RFC 8785 canonical JSON of the
// widget's field set.
//
// Canonical JSON rules (UTF-16 key order, NFC strings, no HTML escaping,
// no floats, no nulls) guarantee bit-for-bit reproducibility across
// processes and platforms.
package ident
