package render

import (
	"context"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

func (r Renderer) layoutHeader(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	font := g.font()
	textColor := s.color("textColor", "#111827")

	var parts []safehtml.HTML
	if logo := s.str("logoUrl"); logo != "" {
		img := safehtml.Format(
			`<img src="%s" alt="%s" height="40" style="display:inline-block;height:40px;width:auto;border:0;">`,
			safehtml.EscapeURL(logo), safehtml.EscapeAttr(s.str("storeName")),
		)
		if g.StoreURL != "" {
			img = safehtml.Format(`<a href="%s" target="_blank">%s</a>`, safehtml.EscapeURL(g.StoreURL), img)
		}
		parts = append(parts, img)
	} else if name := s.str("storeName"); name != "" {
		title := safehtml.Format(
			`<span style="font-family:%s;font-size:22px;font-weight:bold;color:%s;text-decoration:none;">%s</span>`,
			font, textColor, name,
		)
		if g.StoreURL != "" {
			title = safehtml.Format(`<a href="%s" target="_blank" style="text-decoration:none;">%s</a>`, safehtml.EscapeURL(g.StoreURL), title)
		}
		parts = append(parts, title)
	}
	if tagline := s.str("tagline"); tagline != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:6px 0 0;font-family:%s;font-size:13px;color:%s;">%s</p>`,
			font, textColor, tagline,
		))
	}
	if nav := linkRow(parseLinks(s.raw("links")), 13, font); nav != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:14px 0 0;color:%s;">%s</p>`, textColor, nav,
		))
	}
	if len(parts) == 0 {
		return ""
	}

	padY := s.integer("paddingY", 24)
	return wrap(s.color("bgColor", "#ffffff"), paddingY(padY, padY)+"text-align:center;", safehtml.Join(parts...))
}

func (r Renderer) layoutFooter(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	font := g.font()
	textColor := s.color("textColor", "#6b7280")
	fontSize := s.integer("fontSize", 12)

	var parts []safehtml.HTML
	if name := s.str("storeName"); name != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:0;font-family:%s;font-size:%dpx;font-weight:bold;color:%s;">%s</p>`,
			font, fontSize+1, textColor, name,
		))
	}
	if addr := s.str("address"); addr != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:6px 0 0;font-family:%s;font-size:%dpx;color:%s;">%s</p>`,
			font, fontSize, textColor, addr,
		))
	}
	if links := linkRow(parseLinks(s.raw("links")), fontSize, font); links != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:12px 0 0;color:%s;">%s</p>`, textColor, links,
		))
	}
	if unsub := s.str("unsubscribeUrl"); unsub != "" {
		label := s.str("unsubscribeText")
		if label == "" {
			label = "Unsubscribe"
		}
		parts = append(parts, safehtml.Format(
			`<p style="margin:12px 0 0;"><a href="%s" target="_blank" style="font-family:%s;font-size:%dpx;color:%s;text-decoration:underline;">%s</a></p>`,
			safehtml.EscapeURL(unsub), font, fontSize, textColor, label,
		))
	}
	if len(parts) == 0 {
		return ""
	}

	padY := s.integer("paddingY", 24)
	return wrap(s.color("bgColor", "#f3f4f6"), paddingY(padY, padY)+"text-align:center;", safehtml.Join(parts...))
}
