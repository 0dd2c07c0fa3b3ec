// Package flattmpl is the legacy flat-template engine: it operates on a
// single monolithic HTML string that uses {{token}} placeholders,
// {{#if x}}...{{else}}...{{/if}} conditional blocks, and
// <!-- ==== NAME ==== --> comment markers to delimit sections.
//
// The engine deliberately preserves the legacy grammar quirk for quirk —
// templates authored years ago must keep producing byte-identical output:
//
//   - Token substitution is a single left-to-right pass over a fixed,
//     case-sensitive vocabulary; introduced text is never re-scanned and
//     unknown tokens stay in place as literal text.
//   - Conditional blocks do not nest. Nesting is undefined behavior, not an
//     error.
//   - Marker-to-kind mapping is first-match over an ordered keyword table;
//     see the table comment before "improving" the order.
//
// Everything here is a pure, total string transformation: no input makes
// any function return an error or panic.
package flattmpl
