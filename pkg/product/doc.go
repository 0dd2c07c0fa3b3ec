// Package product normalizes heterogeneous product records into the single
// canonical shape the renderers consume. A raw record may simultaneously
// carry catalog-sourced fields, AI-generated copy, and author overrides;
// Normalize resolves them with a fixed precedence (custom beats AI beats
// catalog) so layout code never re-implements the rules.
//
// The Catalog interface is the only contact point with the outside world:
// rendering code asks it for a record by id and silently omits products it
// cannot resolve, which keeps emails deliverable even with stale references.
package product
