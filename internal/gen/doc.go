// Package gen emits the typed configuration-access module from a resolved
// schema.
//
// Generation approach uses text/template + go/format for readable output.
// Emission is deterministic: the schema model arrives fully sorted, and
// every traversal here preserves that order, so identical models produce
// byte-identical files.
//
// Emitted artifacts, one per model element:
//   - an accessor struct per subject with typed fields and defaults
//   - a load function per subject with per-type coercion and
//     conditional-requirement checks
//   - a guarded lazy singleton accessor per subject, plus reset
//   - an aggregate validation entry point keyed by application name
//   - a container struct per application bundling exactly its subjects
//   - a manifest of all known application names
package gen
