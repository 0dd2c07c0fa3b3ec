package render

import (
	"context"
	"strings"
	"time"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// couponData is the shared settings shape of all six coupon variants.
type couponData struct {
	headline   string
	couponText string
	subtext    string
	code       string
	expiry     string // already formatted for humans, "" when unset
	bg         safehtml.HTML
	accent     safehtml.HTML
	text       safehtml.HTML
	font       safehtml.HTML
}

func (r Renderer) layoutCoupon(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	data := couponData{
		headline:   s.str("headline"),
		couponText: s.str("couponText"),
		subtext:    s.str("subtext"),
		code:       s.str("couponCode"),
		expiry:     formatExpiry(s.str("expiryDate")),
		bg:         s.color("bgColor", "#fff7ed"),
		accent:     s.color("accentColor", "#ea580c"),
		text:       s.color("textColor", "#111827"),
		font:       g.font(),
	}

	switch strings.ToLower(s.str("layout")) {
	case "banner":
		return couponBanner(data, g.MaxWidth)
	case "card":
		return couponCard(data)
	case "split":
		return couponSplit(data, g.MaxWidth)
	case "minimal":
		return couponMinimal(data)
	case "ribbon":
		return couponRibbon(data)
	default:
		return couponClassic(data)
	}
}

// expiryFormats are tried in order; the first to parse wins. An unparseable
// value renders as-is rather than failing the section.
var expiryFormats = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

func formatExpiry(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range expiryFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2 Jan 2006")
		}
	}
	return raw
}

func couponCodeBox(d couponData) safehtml.HTML {
	if d.code == "" {
		return ""
	}
	return safehtml.Format(
		`<div style="display:inline-block;padding:12px 28px;border:2px dashed %s;border-radius:6px;font-family:%s;font-size:20px;font-weight:bold;letter-spacing:2px;color:%s;">%s</div>`,
		d.accent, d.font, d.accent, d.code,
	)
}

func couponExpiryLine(d couponData, color safehtml.HTML) safehtml.HTML {
	if d.expiry == "" {
		return ""
	}
	return safehtml.Format(
		`<p style="margin:10px 0 0;font-family:%s;font-size:12px;color:%s;">Expires %s</p>`,
		d.font, color, d.expiry,
	)
}

func couponClassic(d couponData) safehtml.HTML {
	var parts []safehtml.HTML
	parts = append(parts, safehtml.Format(
		`<h2 style="margin:0;font-family:%s;font-size:24px;color:%s;">%s</h2>`,
		d.font, d.accent, d.headline,
	))
	if d.couponText != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:8px 0 0;font-family:%s;font-size:16px;color:%s;">%s</p>`,
			d.font, d.text, d.couponText,
		))
	}
	if box := couponCodeBox(d); box != "" {
		parts = append(parts, safehtml.Raw(`<div style="margin-top:16px;">`), box, safehtml.Raw(`</div>`))
	}
	if d.subtext != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:12px 0 0;font-family:%s;font-size:13px;color:%s;">%s</p>`,
			d.font, d.text, d.subtext,
		))
	}
	parts = append(parts, couponExpiryLine(d, d.text))
	return wrap(d.bg, "padding:32px 24px;text-align:center;", safehtml.Join(parts...))
}

// couponBanner splits 55/45: copy on the accent side, code on the light side.
func couponBanner(d couponData, maxWidth int) safehtml.HTML {
	leftW := maxWidth * 55 / 100
	rightW := maxWidth - leftW

	left := safehtml.Format(
		`<td class="ck-col" valign="middle" width="%d" bgcolor="%s" style="width:%dpx;padding:24px;">`+
			`<h2 style="margin:0;font-family:%s;font-size:22px;color:#ffffff;">%s</h2>`+
			`<p style="margin:8px 0 0;font-family:%s;font-size:14px;color:#ffffff;">%s</p>`+
			`</td>`,
		leftW, d.accent, leftW, d.font, d.headline, d.font, d.couponText,
	)
	right := safehtml.Format(
		`<td class="ck-col" valign="middle" width="%d" bgcolor="%s" style="width:%dpx;padding:24px;text-align:center;">%s%s</td>`,
		rightW, d.bg, rightW, couponCodeBox(d), couponExpiryLine(d, d.text),
	)
	return wrap(d.bg, "padding:0;", safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr>%s%s</tr></table>`,
		left, right,
	))
}

func couponCard(d couponData) safehtml.HTML {
	var parts []safehtml.HTML
	parts = append(parts, safehtml.Format(
		`<h2 style="margin:0;font-family:%s;font-size:22px;color:%s;">%s</h2>`,
		d.font, d.text, d.headline,
	))
	if d.couponText != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:8px 0 0;font-family:%s;font-size:15px;color:%s;">%s</p>`,
			d.font, d.text, d.couponText,
		))
	}
	if d.code != "" {
		parts = append(parts, safehtml.Format(
			`<div style="margin-top:16px;"><span style="display:inline-block;padding:12px 32px;background-color:%s;border-radius:6px;font-family:%s;font-size:20px;font-weight:bold;letter-spacing:2px;color:#ffffff;">%s</span></div>`,
			d.accent, d.font, d.code,
		))
	}
	if d.subtext != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:12px 0 0;font-family:%s;font-size:13px;color:%s;">%s</p>`,
			d.font, d.text, d.subtext,
		))
	}
	parts = append(parts, couponExpiryLine(d, d.text))

	card := safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr>`+
			`<td bgcolor="%s" style="padding:28px 24px;border:1px solid %s;border-radius:10px;text-align:center;">%s</td>`+
			`</tr></table>`,
		d.bg, d.accent, safehtml.Join(parts...),
	)
	return wrap(safehtml.EscapeAttr("#ffffff"), "padding:24px;", card)
}

// couponSplit renders two fixed-width halves whose widths always sum to the
// full document width (left gets the floor, right the remainder).
func couponSplit(d couponData, maxWidth int) safehtml.HTML {
	leftW := maxWidth / 2
	rightW := maxWidth - leftW

	left := safehtml.Format(
		`<td class="ck-col" valign="middle" width="%d" bgcolor="%s" style="width:%dpx;padding:28px 24px;border-radius:10px 0 0 10px;">`+
			`<h2 style="margin:0;font-family:%s;font-size:22px;color:#ffffff;">%s</h2>`+
			`<p style="margin:8px 0 0;font-family:%s;font-size:14px;color:#ffffff;">%s</p>`+
			`</td>`,
		leftW, d.accent, leftW, d.font, d.headline, d.font, d.couponText,
	)
	right := safehtml.Format(
		`<td class="ck-col" valign="middle" width="%d" bgcolor="%s" style="width:%dpx;padding:28px 24px;border-radius:0 10px 10px 0;text-align:center;">%s%s%s</td>`,
		rightW, d.bg, rightW,
		couponCodeBox(d),
		couponSubtextLine(d),
		couponExpiryLine(d, d.text),
	)
	return wrap(safehtml.EscapeAttr("#ffffff"), "padding:24px 0;", safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr>%s%s</tr></table>`,
		left, right,
	))
}

func couponSubtextLine(d couponData) safehtml.HTML {
	if d.subtext == "" {
		return ""
	}
	return safehtml.Format(
		`<p style="margin:10px 0 0;font-family:%s;font-size:12px;color:%s;">%s</p>`,
		d.font, d.text, d.subtext,
	)
}

func couponMinimal(d couponData) safehtml.HTML {
	line := d.couponText
	content := safehtml.EscapeText(line)
	if d.code != "" {
		content = safehtml.Format(
			`%s &mdash; use code <strong style="color:%s;letter-spacing:1px;">%s</strong>`,
			content, d.accent, d.code,
		)
	}
	body := safehtml.Format(
		`<p style="margin:0;font-family:%s;font-size:15px;color:%s;text-align:center;">%s</p>%s`,
		d.font, d.text, content, couponExpiryLine(d, d.text),
	)
	return wrap(d.bg, "padding:18px 24px;border-top:1px solid "+string(d.accent)+";border-bottom:1px solid "+string(d.accent)+";text-align:center;", body)
}

// couponRibbon puts the headline on a full-width accent strip with the code
// beneath it on the section background.
func couponRibbon(d couponData) safehtml.HTML {
	strip := safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr>`+
			`<td width="10" bgcolor="%s" style="width:10px;font-size:0;line-height:0;">&nbsp;</td>`+
			`<td bgcolor="%s" style="padding:14px 20px;text-align:center;">`+
			`<h2 style="margin:0;font-family:%s;font-size:20px;letter-spacing:1px;text-transform:uppercase;color:#ffffff;">%s</h2>`+
			`</td>`+
			`<td width="10" bgcolor="%s" style="width:10px;font-size:0;line-height:0;">&nbsp;</td>`+
			`</tr></table>`,
		darkened(d.accent), d.accent, d.font, d.headline, darkened(d.accent),
	)

	var below []safehtml.HTML
	if d.couponText != "" {
		below = append(below, safehtml.Format(
			`<p style="margin:16px 0 0;font-family:%s;font-size:15px;color:%s;">%s</p>`,
			d.font, d.text, d.couponText,
		))
	}
	if box := couponCodeBox(d); box != "" {
		below = append(below, safehtml.Raw(`<div style="margin-top:14px;">`), box, safehtml.Raw(`</div>`))
	}
	below = append(below, couponSubtextLine(d), couponExpiryLine(d, d.text))

	return wrap(d.bg, "padding:0 0 28px;text-align:center;", safehtml.Join(strip, safehtml.Join(below...)))
}

// darkened fakes a shaded ribbon edge. Color settings are opaque strings so
// a real shade computation is off the table; a fixed dark neutral reads as
// a fold on every accent color.
func darkened(_ safehtml.HTML) safehtml.HTML {
	return safehtml.Raw("#1f2937")
}
