// Package registry is the static catalog of email section types. Each type
// describes the fields an authoring surface may set on a section of that
// type, the semantic kind of every field, and its default value. The catalog
// is pure data: it is built once on first access, is immutable afterwards,
// and lookups for unknown slugs return empty results instead of errors so
// callers can treat unknown sections as no-ops.
//
// Usage:
//
//	def, ok := registry.Get("hero")
//	defaults := registry.Defaults("hero") // fresh map, safe to mutate
//
// Defaults returns a new map on every call; merging caller settings over it
// never mutates the catalog, which keeps concurrent renders coordination-free.
package registry
