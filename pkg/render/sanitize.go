package render

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// richTextPolicy is the email-safe subset for richtext fields. Structural
// elements only: email clients strip most markup inside table cells anyway,
// so anything beyond inline formatting and links is noise at best.
var richTextPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "b", "em", "i", "u", "s", "ul", "ol", "li")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	return p
}()

// sanitizeRichText cleans author-supplied markup and marks the result safe.
func sanitizeRichText(raw string) safehtml.HTML {
	return safehtml.Raw(richTextPolicy.Sanitize(raw))
}
