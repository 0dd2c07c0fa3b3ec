package render

import (
	"context"
	"strconv"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/product"
	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// padCell keeps the grid rectangular when the last row is short. Zero width
// and zero font so it never affects layout.
const padCell = `<td width="0" style="width:0;padding:0;font-size:0;line-height:0;">&nbsp;</td>`

func (r Renderer) layoutProducts(ctx context.Context, s settings, g GlobalSettings) safehtml.HTML {
	ids := parseProductIDs(s.raw("productIds"))
	if len(ids) == 0 || r.Catalog == nil {
		return ""
	}

	columns := clamp(s.integer("columns", 2), 1, 3)
	cellWidth := g.MaxWidth / columns

	var cells []safehtml.HTML
	for _, id := range ids {
		rec, ok := r.Catalog.Product(ctx, id)
		if !ok {
			// Stale reference: omit entirely, never render a placeholder.
			continue
		}
		cells = append(cells, r.productCell(rec, s, g, cellWidth))
	}
	if len(cells) == 0 {
		return ""
	}

	var rows []safehtml.HTML
	for start := 0; start < len(cells); start += columns {
		end := min(start+columns, len(cells))
		row := append([]safehtml.HTML{}, cells[start:end]...)
		for len(row) < columns {
			row = append(row, safehtml.Raw(padCell))
		}
		rows = append(rows, safehtml.Join(safehtml.Raw("<tr>"), safehtml.Join(row...), safehtml.Raw("</tr>")))
	}

	grid := safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0">%s</table>`,
		safehtml.Join(rows...),
	)
	padY := s.integer("paddingY", 24)
	return wrap(s.color("bgColor", "#ffffff"), paddingY(padY, padY), grid)
}

func (r Renderer) productCell(rec product.Record, s settings, g GlobalSettings, width int) safehtml.HTML {
	p := product.Normalize(rec)
	font := g.font()
	textColor := s.color("textColor", "#111827")

	var parts []safehtml.HTML
	if p.ImageURL != "" {
		img := safehtml.Format(
			`<img src="%s" width="%d" alt="%s" style="display:block;width:100%%;max-width:%dpx;height:auto;border:0;margin:0 auto 12px;">`,
			safehtml.EscapeURL(p.ImageURL), width-16, safehtml.EscapeAttr(p.Name), width-16,
		)
		if p.BuyURL != "" {
			img = safehtml.Format(`<a href="%s" target="_blank">%s</a>`, safehtml.EscapeURL(p.BuyURL), img)
		}
		parts = append(parts, img)
	}

	parts = append(parts, safehtml.Format(
		`<p style="margin:0;font-family:%s;font-size:16px;font-weight:bold;line-height:1.4;color:%s;">%s</p>`,
		font, textColor, p.Name,
	))
	if p.Headline != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:4px 0 0;font-family:%s;font-size:13px;line-height:1.4;color:%s;">%s</p>`,
			font, textColor, p.Headline,
		))
	}
	if p.ShortDescription != "" {
		parts = append(parts, safehtml.Format(
			`<p style="margin:6px 0 0;font-family:%s;font-size:13px;line-height:1.5;color:%s;">%s</p>`,
			font, textColor, p.ShortDescription,
		))
	}

	if s.boolean("showPrice", true) {
		if text, preEscaped := product.PriceText(rec); text != "" {
			price := safehtml.EscapeText(text)
			if preEscaped {
				// Catalog-formatted price markup; escaped at its source.
				price = safehtml.Raw(text)
			}
			parts = append(parts, safehtml.Format(
				`<p style="margin:8px 0 0;font-family:%s;font-size:15px;font-weight:bold;color:%s;">%s</p>`,
				font, textColor, price,
			))
		}
	}

	if s.boolean("showButton", true) && p.ShowBuyButton && strings.TrimSpace(s.str("buttonText")) != "" {
		btn := button(buttonSpec{
			text:      s.str("buttonText"),
			url:       p.BuyURL,
			bgColor:   s.color("buttonColor", "#2563eb"),
			textColor: s.color("buttonTextColor", "#ffffff"),
			radius:    s.integer("buttonRadius", 4),
			padX:      s.integer("buttonPaddingX", 18),
			padY:      s.integer("buttonPaddingY", 10),
			align:     "center",
			font:      font,
		})
		parts = append(parts, safehtml.Raw(`<div style="margin-top:12px;">`), btn, safehtml.Raw(`</div>`))
	}

	return safehtml.Format(
		`<td valign="top" width="%d" style="width:%dpx;padding:8px;text-align:center;">%s</td>`,
		width, width, safehtml.Join(parts...),
	)
}

// parseProductIDs accepts the two persisted shapes: a comma-separated id
// string and a JSON-decoded list (of strings or numbers).
func parseProductIDs(v any) []string {
	switch value := v.(type) {
	case nil:
		return nil
	case string:
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(value))
		for _, id := range value {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			switch id := item.(type) {
			case string:
				if trimmed := strings.TrimSpace(id); trimmed != "" {
					out = append(out, trimmed)
				}
			case float64:
				// JSON numbers decode as float64; ids are integral.
				out = append(out, strconv.FormatFloat(id, 'f', -1, 64))
			}
		}
		return out
	default:
		return nil
	}
}
