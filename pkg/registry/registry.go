package registry

import "sync"

// FieldKind is the semantic kind of a settings field. Kinds drive how the
// authoring UI edits a field and how the renderer coerces its value; they
// carry no behavior of their own.
type FieldKind string

const (
	KindText     FieldKind = "text"     // plain text, escaped on output
	KindRichText FieldKind = "richtext" // limited markup, sanitized on output
	KindColor    FieldKind = "color"    // opaque color string, attribute-escaped
	KindNumber   FieldKind = "number"   // coerced to int before interpolation
	KindToggle   FieldKind = "toggle"   // boolean
	KindSelect   FieldKind = "select"   // one of Options
	KindLinkList FieldKind = "linklist" // JSON array of {label, url}
	KindImage    FieldKind = "image"    // image URL
)

// FieldDefinition describes one settings field of a section type.
type FieldDefinition struct {
	Key     string
	Kind    FieldKind
	Default any
	Options []string // valid values for KindSelect fields
}

// TypeDefinition describes one section type. Label and Icon are presentation
// metadata passed through to authoring surfaces; HasAI flags types whose text
// fields an external AI collaborator may fill in.
type TypeDefinition struct {
	Slug   string
	Label  string
	Icon   string
	HasAI  bool
	Fields []FieldDefinition
}

var catalog = sync.OnceValue(buildCatalog)

// All returns a copy of the full catalog keyed by slug.
func All() map[string]TypeDefinition {
	src := catalog()
	out := make(map[string]TypeDefinition, len(src))
	for slug, def := range src {
		out[slug] = def
	}
	return out
}

// Get returns the definition for slug. The second return is false for
// unknown slugs; callers must treat that as "skip", not as an error.
func Get(slug string) (TypeDefinition, bool) {
	def, ok := catalog()[slug]
	return def, ok
}

// Defaults returns a fresh key->default map for slug, empty for unknown
// slugs. The map is never shared, so callers may overwrite entries freely.
func Defaults(slug string) map[string]any {
	def, ok := catalog()[slug]
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(def.Fields))
	for _, f := range def.Fields {
		out[f.Key] = f.Default
	}
	return out
}

// Slugs returns all registered slugs in no particular order.
func Slugs() []string {
	src := catalog()
	out := make([]string, 0, len(src))
	for slug := range src {
		out = append(out, slug)
	}
	return out
}
