package ident

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainWidget = "rerun/widget/v1"
	DomainPage   = "rerun/page/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// WidgetID computes the content-addressed identity of a widget instance.
//
// The identity is the widget's only cross-rerun handle: the app script is
// re-executed from the top on every interaction, so the runtime recomputes
// this hash and uses it to find the widget's stored value. Identical fields
// on two runs yield the same identity; changing any field (user key, a
// formatted option label, default indices, the disabled flag, the active
// page) makes the runtime treat the call as a brand-new widget.
//
// fields must not contain the "widget_kind" key; kind is added here so every
// widget family contributes it consistently. Formatted option labels are
// hashed positionally, so reordering options changes the identity.
//
// Purely a function of its arguments: no clock, no randomness, no I/O.
func WidgetID(kind string, fields map[string]any) (string, error) {
	obj := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		if v == nil {
			// Canonical JSON forbids null; an absent optional field and a
			// nil field must hash identically.
			continue
		}
		obj[k] = v
	}
	if _, ok := obj["widget_kind"]; ok {
		return "", fmt.Errorf("WidgetID: reserved field %q supplied by caller", "widget_kind")
	}
	obj["widget_kind"] = kind

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("WidgetID: failed to marshal fields: %w", err)
	}
	return hashWithDomain(DomainWidget, canonical), nil
}

// PageHash computes the content-addressed identity of a page entry.
// The same logical widget call on two different pages hashes to two
// different widget identities because the page hash feeds WidgetID.
func PageHash(ref string) string {
	return hashWithDomain(DomainPage, []byte(ref))
}

// MustWidgetID is like WidgetID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustWidgetID(kind string, fields map[string]any) string {
	id, err := WidgetID(kind, fields)
	if err != nil {
		panic(err)
	}
	return id
}
