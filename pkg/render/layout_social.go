package render

import (
	"context"
	"strings"
	"unicode"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// socialIconPaths maps a lowercased platform name to an SVG path drawn on a
// 24x24 viewBox. Platforms outside this table render as a lettered circle.
var socialIconPaths = map[string]string{
	"facebook":  "M22 12a10 10 0 1 0-11.6 9.9v-7H7.9V12h2.5V9.8c0-2.5 1.5-3.9 3.7-3.9 1.1 0 2.2.2 2.2.2v2.5h-1.3c-1.2 0-1.6.8-1.6 1.6V12h2.8l-.4 2.9h-2.4v7A10 10 0 0 0 22 12z",
	"instagram": "M12 2.2c3.2 0 3.6 0 4.8.1 1.2.1 1.9.2 2.3.4.6.2 1 .5 1.4.9.4.4.7.8.9 1.4.2.4.4 1.1.4 2.3.1 1.2.1 1.6.1 4.8s0 3.6-.1 4.8c-.1 1.2-.2 1.9-.4 2.3-.2.6-.5 1-.9 1.4-.4.4-.8.7-1.4.9-.4.2-1.1.4-2.3.4-1.2.1-1.6.1-4.8.1s-3.6 0-4.8-.1c-1.2-.1-1.9-.2-2.3-.4a3.9 3.9 0 0 1-1.4-.9 3.9 3.9 0 0 1-.9-1.4c-.2-.4-.4-1.1-.4-2.3-.1-1.2-.1-1.6-.1-4.8s0-3.6.1-4.8c.1-1.2.2-1.9.4-2.3.2-.6.5-1 .9-1.4.4-.4.8-.7 1.4-.9.4-.2 1.1-.4 2.3-.4 1.2-.1 1.6-.1 4.8-.1zm0 3.3a6.5 6.5 0 1 0 0 13 6.5 6.5 0 0 0 0-13zm0 10.7a4.2 4.2 0 1 1 0-8.4 4.2 4.2 0 0 1 0 8.4zm6.7-11a1.5 1.5 0 1 1-3 0 1.5 1.5 0 0 1 3 0z",
	"twitter":   "M18.9 2H22l-6.8 7.8L23.2 22h-6.3l-4.9-6.4L6.4 22H3.3l7.3-8.3L2.5 2h6.4l4.4 5.9L18.9 2zm-1.1 18.1h1.7L7.9 3.8H6.1l11.7 16.3z",
	"x":         "M18.9 2H22l-6.8 7.8L23.2 22h-6.3l-4.9-6.4L6.4 22H3.3l7.3-8.3L2.5 2h6.4l4.4 5.9L18.9 2zm-1.1 18.1h1.7L7.9 3.8H6.1l11.7 16.3z",
	"youtube":   "M23.5 6.2a3 3 0 0 0-2.1-2.1C19.5 3.5 12 3.5 12 3.5s-7.5 0-9.4.6A3 3 0 0 0 .5 6.2 31.2 31.2 0 0 0 0 12c0 2 .2 3.9.5 5.8a3 3 0 0 0 2.1 2.1c1.9.6 9.4.6 9.4.6s7.5 0 9.4-.6a3 3 0 0 0 2.1-2.1c.3-1.9.5-3.8.5-5.8s-.2-3.9-.5-5.8zM9.5 15.6V8.4L15.8 12l-6.3 3.6z",
	"linkedin":  "M20.4 20.5h-3.6v-5.6c0-1.3 0-3-1.9-3s-2.1 1.4-2.1 2.9v5.7H9.2V9h3.4v1.6h.1c.5-.9 1.6-1.9 3.4-1.9 3.6 0 4.3 2.4 4.3 5.5v6.3zM5.3 7.4a2.1 2.1 0 1 1 0-4.2 2.1 2.1 0 0 1 0 4.2zM7.1 20.5H3.6V9h3.5v11.5z",
	"tiktok":    "M19.6 6.7a4.8 4.8 0 0 1-2.9-1 4.9 4.9 0 0 1-1.9-3.7h-3.2v13.2a2.9 2.9 0 1 1-2.1-2.8V9.1a6.1 6.1 0 1 0 8.5 5.6V9.7a8 8 0 0 0 4.6 1.5V8a4.8 4.8 0 0 1-3-1.3z",
	"pinterest": "M12 2a10 10 0 0 0-3.6 19.3c-.1-.8-.2-2 0-2.9l1.2-5s-.3-.6-.3-1.5c0-1.4.8-2.5 1.9-2.5.9 0 1.3.7 1.3 1.5 0 .9-.6 2.2-.9 3.5-.2 1 .5 1.9 1.6 1.9 1.9 0 3.4-2 3.4-5 0-2.6-1.9-4.4-4.5-4.4a4.7 4.7 0 0 0-4.9 4.7c0 .9.4 1.9.8 2.5l.1.4-.3 1.3c0 .2-.2.3-.4.2-1.4-.7-2.3-2.7-2.3-4.4 0-3.6 2.6-6.9 7.5-6.9 3.9 0 7 2.8 7 6.6 0 3.9-2.5 7.1-5.9 7.1-1.2 0-2.3-.6-2.6-1.3l-.7 2.7c-.3 1-1 2.3-1.4 3.1A10 10 0 1 0 12 2z",
}

func (r Renderer) layoutSocial(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	links := parseLinks(s.raw("links"))
	if len(links) == 0 {
		return ""
	}

	iconColor := s.color("iconColor", "#ffffff")
	circleColor := s.color("circleColor", "#111827")
	size := s.integer("iconSize", 36)
	if size < 16 {
		size = 16
	}
	font := g.font()

	cells := make([]safehtml.HTML, 0, len(links))
	for _, l := range links {
		platform := strings.ToLower(strings.TrimSpace(l.Label))
		href := safehtml.EscapeURL(l.URL)
		circle := letteredCircle(l.Label, href, iconColor, circleColor, size, font)

		path, known := socialIconPaths[platform]
		if !known {
			cells = append(cells, safehtml.Format(`<td style="padding:0 6px;">%s</td>`, circle))
			continue
		}

		// MSO cannot render inline vectors, so it always gets the lettered
		// circle while everything else gets the icon.
		icon := safehtml.Format(
			`<!--[if !mso]><!-->`+
				`<a href="%s" target="_blank" style="display:inline-block;width:%dpx;height:%dpx;background-color:%s;border-radius:50%%;text-align:center;">`+
				`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="%d" height="%d" fill="%s" style="margin:%dpx;" role="img" aria-label="%s"><path d="%s"/></svg>`+
				`</a>`+
				`<!--<![endif]-->`+
				`<!--[if mso]>%s<![endif]-->`,
			href, size, size, circleColor,
			size*2/3, size*2/3, iconColor, size/6, safehtml.EscapeAttr(l.Label), safehtml.Raw(path),
			circle,
		)
		cells = append(cells, safehtml.Format(`<td style="padding:0 6px;">%s</td>`, icon))
	}

	row := safehtml.Format(
		`<table role="presentation" cellpadding="0" cellspacing="0" border="0" style="margin:0 auto;"><tr>%s</tr></table>`,
		safehtml.Join(cells...),
	)
	padY := s.integer("paddingY", 24)
	return wrap(s.color("bgColor", "#ffffff"), paddingY(padY, padY), row)
}

// letteredCircle is the text fallback: a colored disc with a 1-2 letter
// abbreviation of the platform name.
func letteredCircle(label string, href safehtml.HTML, iconColor, circleColor safehtml.HTML, size int, font safehtml.HTML) safehtml.HTML {
	return safehtml.Format(
		`<a href="%s" target="_blank" style="display:inline-block;width:%dpx;height:%dpx;line-height:%dpx;background-color:%s;border-radius:50%%;font-family:%s;font-size:%dpx;font-weight:bold;color:%s;text-align:center;text-decoration:none;">%s</a>`,
		href, size, size, size, circleColor, font, size*4/9, iconColor, platformAbbrev(label),
	)
}

// platformAbbrev returns a 1-2 letter abbreviation: initials of the first
// two words, or the first letter of a single-word name.
func platformAbbrev(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		r := []rune(fields[0])
		return string(unicode.ToUpper(r[0]))
	default:
		a := []rune(fields[0])
		b := []rune(fields[1])
		return string(unicode.ToUpper(a[0])) + string(unicode.ToUpper(b[0]))
	}
}
