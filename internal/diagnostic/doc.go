// Package diagnostic provides structured, accumulated error and warning
// records for schema parsing.
//
// Key capabilities:
//   - Coded findings anchored to a (subject, variable) position
//   - Whole-document accumulation instead of fail-fast on first error
//   - Combined error reporting that keeps individual records addressable
package diagnostic
