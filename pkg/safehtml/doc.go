// Package safehtml makes escaping explicit and total for the rendering
// pipeline. Every string bound for HTML output is wrapped in the HTML marker
// type, which can only be produced by one of the escaping functions or by an
// explicit Raw call at a call site that documents why its input is already
// safe. This replaces per-field escaping conventions with a compile-time
// guarantee: a plain string cannot leak into markup unescaped.
//
// The package is a pure string transformation layer with no configuration
// and no state; all functions are safe for concurrent use.
package safehtml
