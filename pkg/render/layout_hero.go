package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

func (r Renderer) layoutHero(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	bg := s.color("bgColor", "#ffffff")
	textColor := s.color("textColor", "#111827")
	font := g.font()

	var parts []safehtml.HTML
	if img := s.str("imageUrl"); img != "" {
		parts = append(parts, safehtml.Format(
			`<img src="%s" width="%d" alt="" style="display:block;width:100%%;max-width:%dpx;height:auto;border:0;margin:0 auto 24px;">`,
			safehtml.EscapeURL(img), g.MaxWidth, g.MaxWidth,
		))
	}
	parts = append(parts, safehtml.Format(
		`<h1 style="margin:0;font-family:%s;font-size:32px;line-height:1.25;color:%s;">%s</h1>`,
		font, textColor, s.str("headline"),
	))
	if sub := s.str("subtext"); sub != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:12px 0 0;font-family:%s;font-size:17px;line-height:1.5;color:%s;">%s</p>`,
			font, textColor, sub,
		))
	}
	if cta := heroButton(s, g, "center"); cta != "" {
		parts = append(parts, safehtml.Raw(`<div style="margin-top:28px;">`), cta, safehtml.Raw(`</div>`))
	}

	style := fmt.Sprintf("padding:%dpx 32px %dpx;text-align:center;",
		s.integer("paddingTop", 48), s.integer("paddingBottom", 48))
	return wrap(bg, style, safehtml.Join(parts...))
}

func (r Renderer) layoutHeroSplit(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	bg := s.color("bgColor", "#ffffff")
	textColor := s.color("textColor", "#111827")
	font := g.font()
	padY := s.integer("paddingY", 32)

	// Two fixed-width halves; the remainder goes to the right column so the
	// pair always sums to the full document width.
	leftW := g.MaxWidth / 2
	rightW := g.MaxWidth - leftW

	var copyParts []safehtml.HTML
	copyParts = append(copyParts, safehtml.Format(
		`<h1 style="margin:0;font-family:%s;font-size:26px;line-height:1.25;color:%s;">%s</h1>`,
		font, textColor, s.str("headline"),
	))
	if sub := s.str("subtext"); sub != "" {
		copyParts = append(copyParts, safehtml.Format(
			`<p style="margin:10px 0 0;font-family:%s;font-size:15px;line-height:1.5;color:%s;">%s</p>`,
			font, textColor, sub,
		))
	}
	if cta := heroButton(s, g, "left"); cta != "" {
		copyParts = append(copyParts, safehtml.Raw(`<div style="margin-top:20px;">`), cta, safehtml.Raw(`</div>`))
	}

	imageOnLeft := strings.EqualFold(s.str("imagePosition"), "left")
	copyW, imageW := leftW, rightW
	if imageOnLeft {
		copyW, imageW = rightW, leftW
	}

	copyCell := safehtml.Format(
		`<td class="ck-col" valign="middle" width="%d" style="width:%dpx;padding:%dpx 24px;">%s</td>`,
		copyW, copyW, padY, safehtml.Join(copyParts...),
	)

	imageCell := safehtml.Format(
		`<td class="ck-col" valign="middle" width="%d" style="width:%dpx;padding:0;">%s</td>`,
		imageW, imageW, heroSplitImage(s, imageW),
	)

	cells := safehtml.Join(copyCell, imageCell)
	if imageOnLeft {
		cells = safehtml.Join(imageCell, copyCell)
	}

	return wrap(bg, "padding:0;", safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr>%s</tr></table>`,
		cells,
	))
}

func heroSplitImage(s settings, width int) safehtml.HTML {
	img := s.str("imageUrl")
	if img == "" {
		return safehtml.Raw("&nbsp;")
	}
	return safehtml.Format(
		`<img src="%s" width="%d" alt="" style="display:block;width:100%%;max-width:%dpx;height:auto;border:0;">`,
		safehtml.EscapeURL(img), width, width,
	)
}

func heroButton(s settings, g GlobalSettings, align string) safehtml.HTML {
	return button(buttonSpec{
		text:      s.str("ctaText"),
		url:       s.str("ctaUrl"),
		bgColor:   s.color("buttonColor", "#2563eb"),
		textColor: s.color("buttonTextColor", "#ffffff"),
		radius:    s.integer("buttonRadius", 6),
		padX:      32,
		padY:      14,
		align:     align,
		font:      g.font(),
	})
}
