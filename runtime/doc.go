// Package runtime is the support library for confgen-generated code.
//
// Generated configuration modules stay thin by leaning on this package for
// everything that is not schema-specific: the opaque value source, explicit
// per-type coercion of environment strings, conditional-requirement
// evaluation, the guarded lazy singleton, and the runtime error kinds.
//
// Nothing here is used by the compiler itself; it exists so that generated
// code has exactly one import.
package runtime
