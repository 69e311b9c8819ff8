// Package harness executes scripted runs for conformance testing.
//
// A Scenario bundles a script with the external inputs of one run: the
// client interaction payloads and the parked session writes. Run executes
// the script against a fresh context and returns the ordered outgoing
// messages; RunWithGolden additionally snapshots the message trace as
// canonical JSON and compares it against a golden file, so identity
// hashes and message contents are pinned across refactors.
package harness
