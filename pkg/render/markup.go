package render

import (
	"fmt"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// wrap encloses content in the standard one-cell section table. Every
// fragment ends up inside exactly one of these, which is the "single outer
// container" guarantee per rendered section.
func wrap(bgColor safehtml.HTML, tdStyle string, content safehtml.HTML) safehtml.HTML {
	return safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0" style="background-color:%s;"><tr><td style="%s">%s</td></tr></table>`,
		bgColor, safehtml.Raw(tdStyle), content,
	)
}

type buttonSpec struct {
	text      string
	url       string
	bgColor   safehtml.HTML
	textColor safehtml.HTML
	radius    int
	padX      int
	padY      int
	align     string // left | center | right
	font      safehtml.HTML
}

// button renders the nested-table CTA pattern that survives Outlook. An
// empty (or whitespace-only) label suppresses the whole element, anchor
// included; an empty URL keeps the button but points it at "#".
func button(spec buttonSpec) safehtml.HTML {
	label := strings.TrimSpace(spec.text)
	if label == "" {
		return ""
	}
	href := safehtml.EscapeURL(spec.url)
	if spec.url == "" {
		href = "#"
	}
	margin := "margin:0 auto;"
	switch spec.align {
	case "left":
		margin = "margin:0 auto 0 0;"
	case "right":
		margin = "margin:0 0 0 auto;"
	}
	return safehtml.Format(
		`<table role="presentation" cellpadding="0" cellspacing="0" border="0" style="%s"><tr><td bgcolor="%s" style="border-radius:%dpx;">`+
			`<a href="%s" target="_blank" style="display:inline-block;padding:%dpx %dpx;font-family:%s;font-size:16px;font-weight:bold;color:%s;text-decoration:none;border-radius:%dpx;">%s</a>`+
			`</td></tr></table>`,
		safehtml.Raw(margin), spec.bgColor, spec.radius,
		href, spec.padY, spec.padX, spec.font, spec.textColor, spec.radius, label,
	)
}

// linkRow joins links into a single inline run of anchors separated by
// non-breaking padding, inheriting the surrounding text color.
func linkRow(links []link, fontSize int, font safehtml.HTML) safehtml.HTML {
	if len(links) == 0 {
		return ""
	}
	parts := make([]safehtml.HTML, 0, len(links)*2)
	for i, l := range links {
		if i > 0 {
			parts = append(parts, safehtml.Raw("&nbsp;&nbsp;|&nbsp;&nbsp;"))
		}
		parts = append(parts, safehtml.Format(
			`<a href="%s" target="_blank" style="font-family:%s;font-size:%dpx;color:inherit;text-decoration:underline;">%s</a>`,
			safehtml.EscapeURL(l.URL), font, fontSize, l.Label,
		))
	}
	return safehtml.Join(parts...)
}

func paddingY(top, bottom int) string {
	return fmt.Sprintf("padding:%dpx 24px %dpx;", top, bottom)
}
