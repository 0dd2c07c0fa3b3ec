// Package campaignkit generates email-client-safe HTML for store marketing
// campaigns.
//
// The module is a set of focused packages under pkg/; this root package only
// documents how they fit together.
//
// Rendering pipeline:
//
//   - pkg/registry — the static catalog of section types and their field
//     schemas and defaults.
//   - pkg/render — the pure section renderer: sections plus global settings
//     in, inline-styled table markup out, with a document shell around it.
//   - pkg/product — product record normalization (custom > AI > catalog
//     precedence) and price formatting.
//   - pkg/safehtml — the escaping primitives every renderer builds on.
//
// Legacy flat templates:
//
//   - pkg/flattmpl — {{token}} substitution, {{#if}} conditionals and
//     structural-marker parsing for single-file templates that predate the
//     section model.
//
// Around the core:
//
//   - pkg/campaign — the stored campaign shape, section decoding and the
//     token data map that feeds flattmpl.
//   - pkg/sender — delivery of rendered HTML via Postmark, or to disk in
//     development.
//   - pkg/config — env-based configuration loading shared by the above.
//
// Typical use:
//
//	r := render.Renderer{Catalog: catalog}
//	sections := campaign.DecodeSections(c.Sections, logger)
//	html := r.DocumentWithOpts(ctx, sections, c.GlobalSettings(brand), render.DocumentOpts{
//		Title:       c.Subject,
//		PreviewText: c.PreviewText,
//	})
package campaignkit
