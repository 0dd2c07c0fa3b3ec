package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

func textAlign(s settings, fallback string) string {
	switch strings.ToLower(s.str("align")) {
	case "left":
		return "left"
	case "center":
		return "center"
	case "right":
		return "right"
	default:
		return fallback
	}
}

func (r Renderer) layoutHeading(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	padY := s.integer("paddingY", 24)
	heading := safehtml.Format(
		`<h2 style="margin:0;font-family:%s;font-size:%dpx;line-height:1.3;color:%s;text-align:%s;">%s</h2>`,
		g.font(), s.integer("fontSize", 28), s.color("textColor", "#111827"),
		safehtml.Raw(textAlign(s, "center")), s.str("text"),
	)
	return wrap(s.color("bgColor", "#ffffff"), paddingY(padY, padY), heading)
}

func (r Renderer) layoutText(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	body := sanitizeRichText(s.str("body"))
	if strings.TrimSpace(string(body)) == "" {
		return ""
	}
	padY := s.integer("paddingY", 24)
	content := safehtml.Format(
		`<div style="font-family:%s;font-size:%dpx;line-height:1.6;color:%s;text-align:%s;">%s</div>`,
		g.font(), s.integer("fontSize", 16), s.color("textColor", "#374151"),
		safehtml.Raw(textAlign(s, "left")), body,
	)
	return wrap(s.color("bgColor", "#ffffff"), paddingY(padY, padY), content)
}

func (r Renderer) layoutImage(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	src := s.str("imageUrl")
	if src == "" {
		return ""
	}
	width := g.MaxWidth
	sizing := "width:100%;height:auto;"
	if !s.boolean("fullWidth", true) {
		width = g.MaxWidth - 48
		sizing = fmt.Sprintf("max-width:%dpx;height:auto;", width)
	}
	img := safehtml.Format(
		`<img src="%s" width="%d" alt="%s" style="display:block;border:0;margin:0 auto;%s">`,
		safehtml.EscapeURL(src), width, safehtml.EscapeAttr(s.str("altText")), safehtml.Raw(sizing),
	)
	if href := s.str("linkUrl"); href != "" {
		img = safehtml.Format(`<a href="%s" target="_blank">%s</a>`, safehtml.EscapeURL(href), img)
	}
	padY := s.integer("paddingY", 0)
	return wrap(s.color("bgColor", "#ffffff"), fmt.Sprintf("padding:%dpx 0;", padY), img)
}

func (r Renderer) layoutButton(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	btn := button(buttonSpec{
		text:      s.str("text"),
		url:       s.str("url"),
		bgColor:   s.color("buttonColor", "#2563eb"),
		textColor: s.color("buttonTextColor", "#ffffff"),
		radius:    s.integer("buttonRadius", 6),
		padX:      s.integer("buttonPaddingX", 32),
		padY:      s.integer("buttonPaddingY", 14),
		align:     textAlign(s, "center"),
		font:      g.font(),
	})
	if btn == "" {
		return ""
	}
	padY := s.integer("paddingY", 24)
	return wrap(s.color("bgColor", "#ffffff"), paddingY(padY, padY), btn)
}

func (r Renderer) layoutBanner(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	text := safehtml.EscapeText(s.str("text"))
	if href := s.str("linkUrl"); href != "" {
		text = safehtml.Format(
			`<a href="%s" target="_blank" style="color:inherit;text-decoration:underline;">%s</a>`,
			safehtml.EscapeURL(href), text,
		)
	}
	content := safehtml.Format(
		`<p style="margin:0;font-family:%s;font-size:%dpx;line-height:1.4;color:%s;text-align:center;">%s</p>`,
		g.font(), s.integer("fontSize", 14), s.color("textColor", "#ffffff"), text,
	)
	padY := s.integer("paddingY", 12)
	return wrap(s.color("bgColor", "#111827"), paddingY(padY, padY), content)
}

func (r Renderer) layoutSpacer(_ context.Context, s settings, _ GlobalSettings) safehtml.HTML {
	height := s.integer("height", 32)
	if height < 0 {
		height = 0
	}
	style := fmt.Sprintf("height:%dpx;font-size:0;line-height:0;", height)
	return wrap(s.color("bgColor", "#ffffff"), style, safehtml.Raw("&nbsp;"))
}
