package render

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// DocumentOpts carries document-level extras that are not sections: the
// <title> and the hidden preview text read by inbox list views.
type DocumentOpts struct {
	Title       string
	PreviewText string
}

// Document wraps the rendered sections in a complete HTML email document.
func (r Renderer) Document(ctx context.Context, sections []Section, global GlobalSettings) string {
	return r.DocumentWithOpts(ctx, sections, global, DocumentOpts{})
}

// DocumentWithOpts is Document with a title and preview text.
//
// The shell is fixed: doctype, viewport meta, an MSO font fallback, and a
// <style> block that is purely progressive (narrow-screen stacking). Every
// property the email needs to look right is inlined in the fragments, so a
// client that strips the style block loses nothing essential.
func (r Renderer) DocumentWithOpts(ctx context.Context, sections []Section, global GlobalSettings, opts DocumentOpts) string {
	global = global.normalized()
	body := r.Fragments(ctx, sections, global)

	var b strings.Builder
	b.Grow(len(body) + 2048)

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en" xmlns="http://www.w3.org/1999/xhtml" xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office">` + "\n")
	b.WriteString("<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	b.WriteString(`<meta http-equiv="X-UA-Compatible" content="IE=edge">` + "\n")
	b.WriteString("<title>")
	b.WriteString(string(safehtml.EscapeText(opts.Title)))
	b.WriteString("</title>\n")
	b.WriteString("<!--[if mso]>\n<style type=\"text/css\">\ntable, td, h1, h2, h3, p, a, span { font-family: Arial, Helvetica, sans-serif !important; }\n</style>\n<![endif]-->\n")
	b.WriteString("<style type=\"text/css\">\n")
	b.WriteString("body { margin: 0; padding: 0; -webkit-text-size-adjust: 100%; }\n")
	b.WriteString("@media only screen and (max-width: ")
	b.WriteString(itoa(global.MaxWidth))
	b.WriteString("px) {\n")
	b.WriteString(".ck-shell { width: 100% !important; max-width: 100% !important; }\n")
	b.WriteString(".ck-col { display: block !important; width: 100% !important; }\n")
	b.WriteString("}\n</style>\n")
	b.WriteString("</head>\n")
	b.WriteString(`<body style="margin:0;padding:0;background-color:#f4f4f5;">` + "\n")

	if opts.PreviewText != "" {
		b.WriteString(`<div style="display:none;font-size:1px;line-height:1px;max-height:0;max-width:0;opacity:0;overflow:hidden;mso-hide:all;">`)
		b.WriteString(string(safehtml.EscapeText(opts.PreviewText)))
		b.WriteString("</div>\n")
	}

	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr><td align="center" style="padding:0;">` + "\n")
	b.WriteString(`<table role="presentation" class="ck-shell" width="`)
	b.WriteString(itoa(global.MaxWidth))
	b.WriteString(`" cellpadding="0" cellspacing="0" border="0" style="width:`)
	b.WriteString(itoa(global.MaxWidth))
	b.WriteString(`px;max-width:`)
	b.WriteString(itoa(global.MaxWidth))
	b.WriteString(`px;"><tr><td style="padding:0;">` + "\n")
	b.WriteString(body)
	b.WriteString("\n</td></tr></table>\n</td></tr></table>\n</body>\n</html>\n")

	return b.String()
}

// Component exposes a full document render as a templ.Component so
// templ-based surfaces (editor previews, admin screens) can embed it.
func (r Renderer) Component(sections []Section, global GlobalSettings, opts DocumentOpts) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, r.DocumentWithOpts(ctx, sections, global, opts))
		return err
	})
}

func itoa(n int) string { return strconv.Itoa(n) }
