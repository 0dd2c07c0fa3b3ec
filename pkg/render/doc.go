// Package render turns ordered section descriptions into email-client-safe
// HTML. Every visual property is inlined per element: no external
// stylesheets, no class-dependent styling. The only <style> block in the
// document shell is a progressive responsive layer that degrades cleanly
// when a client strips it.
//
// The renderer is a total function over its inputs: malformed settings are
// coerced with documented defaults, unknown section types render as empty
// strings, and nothing in this package returns an error or panics. Inputs
// are never mutated, so concurrent renders need no coordination.
//
//	r := render.Renderer{Catalog: catalog}
//	html := r.Document(ctx, sections, render.GlobalSettings{StoreURL: "https://shop.example.com"})
//
// Fragment renders a single section without the document shell, which is
// what a live editor uses for partial re-render. Component bridges the
// output into a templ.Component for templ-based previews.
package render
