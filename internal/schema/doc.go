// Package schema provides the declarative variable schema: document
// loading, structural validation, and the normalized in-memory model the
// code emitter walks.
//
// A schema document is a two-level table. Top-level sections are subjects
// (logical domains such as database or redis); their keys declare variables:
//
//	[database]
//	[database.DATABASE_URL]
//	type = "str"
//	description = "Main database connection URL"
//	applications = ["user-service", "order-service"]
//
//	[telemetry.OTL_ENDPOINT]
//	type = "Optional[str]"
//	required_when = "USE_OTL=true"
//
// Declaration fields: type (required), default, description, applications,
// required_when. Types are the four primitives str, int, float and bool,
// optionally wrapped as "Optional[T]" or suffixed with "| None" - both
// notations normalize to the same optional flag.
//
// Subjects and applications are derived, never declared: subjects are the
// distinct section names, applications the union of all "applications"
// lists. Parsing checks the entire document and reports every finding in
// one *SchemaError rather than failing on the first.
package schema
