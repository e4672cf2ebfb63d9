// Package extractr provides template-driven extraction of structured
// records from rendered web pages. A template declares a container
// selector, a set of typed field definitions with transform pipelines,
// and optional pagination rules; the extraction engine turns each
// container element into a record, and the orchestrator adds retries,
// cancellation, timeout budgeting, and partial-result recovery around
// a page automation provider.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, yaml/).
package extractr
