package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

func (r Renderer) layoutDivider(_ context.Context, s settings, _ GlobalSettings) safehtml.HTML {
	lineColor := s.color("lineColor", "#e5e7eb")
	thickness := s.integer("thickness", 1)
	if thickness < 1 {
		thickness = 1
	}
	widthPct := clamp(s.integer("widthPercent", 100), 1, 100)

	lineStyle := strings.ToLower(s.str("lineStyle"))
	switch lineStyle {
	case "dashed", "dotted", "double":
	default:
		lineStyle = "solid"
	}

	var line safehtml.HTML
	if lineStyle == "solid" {
		// A background-colored cell renders everywhere; borders do not.
		line = safehtml.Format(
			`<table role="presentation" width="%d%%" cellpadding="0" cellspacing="0" border="0" style="margin:0 auto;"><tr>`+
				`<td style="background-color:%s;height:%dpx;font-size:0;line-height:0;">&nbsp;</td>`+
				`</tr></table>`,
			widthPct, lineColor, thickness,
		)
	} else {
		// Outlook ignores border styling on divs, so MSO gets the solid
		// cell fallback while everything else gets the styled border.
		line = safehtml.Format(
			`<!--[if mso]>`+
				`<table role="presentation" width="%d%%" cellpadding="0" cellspacing="0" border="0" style="margin:0 auto;"><tr>`+
				`<td style="background-color:%s;height:%dpx;font-size:0;line-height:0;">&nbsp;</td>`+
				`</tr></table>`+
				`<![endif]-->`+
				`<!--[if !mso]><!-->`+
				`<div style="width:%d%%;margin:0 auto;border-top:%dpx %s %s;font-size:0;line-height:0;">&nbsp;</div>`+
				`<!--<![endif]-->`,
			widthPct, lineColor, thickness,
			widthPct, thickness, safehtml.Raw(lineStyle), lineColor,
		)
	}

	padY := s.integer("paddingY", 16)
	return wrap(s.color("bgColor", "#ffffff"), fmt.Sprintf("padding:%dpx 24px;", padY), line)
}
