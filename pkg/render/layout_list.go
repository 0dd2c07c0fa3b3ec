package render

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// listGlyphs maps the listStyle enum to a fixed glyph. "numbers" is handled
// separately (the glyph depends on the item index) and "none" renders no
// marker column at all.
var listGlyphs = map[string]string{
	"bullets": "&#8226;",
	"checks":  "&#10003;",
	"arrows":  "&#8594;",
	"stars":   "&#9733;",
	"dashes":  "&#8211;",
	"heart":   "&#9829;",
	"diamond": "&#9670;",
}

func (r Renderer) layoutList(_ context.Context, s settings, g GlobalSettings) safehtml.HTML {
	items := parseListItems(s.raw("items"))
	if len(items) == 0 {
		return ""
	}

	font := g.font()
	fontSize := s.integer("fontSize", 16)
	textColor := s.color("textColor", "#374151")
	accent := s.color("accentColor", "#2563eb")
	style := strings.ToLower(s.str("listStyle"))

	var rows []safehtml.HTML
	for i, item := range items {
		marker := ""
		switch {
		case style == "numbers":
			marker = strconv.Itoa(i+1) + "."
		case style == "none":
			// no marker column
		default:
			glyph, ok := listGlyphs[style]
			if !ok {
				glyph = listGlyphs["bullets"]
			}
			marker = glyph
		}

		textCell := safehtml.Format(
			`<td valign="top" style="font-family:%s;font-size:%dpx;line-height:1.6;color:%s;padding-bottom:8px;">%s</td>`,
			font, fontSize, textColor, item,
		)
		if style == "none" {
			rows = append(rows, safehtml.Join(safehtml.Raw("<tr>"), textCell, safehtml.Raw("</tr>")))
			continue
		}
		markerCell := safehtml.Format(
			`<td valign="top" width="28" style="width:28px;font-family:%s;font-size:%dpx;line-height:1.6;color:%s;padding-bottom:8px;">%s</td>`,
			font, fontSize, accent, safehtml.Raw(marker),
		)
		rows = append(rows, safehtml.Join(safehtml.Raw("<tr>"), markerCell, textCell, safehtml.Raw("</tr>")))
	}

	var parts []safehtml.HTML
	if title := s.str("title"); title != "" {
		parts = append(parts, safehtml.Format(
			`<h3 style="margin:0 0 16px;font-family:%s;font-size:%dpx;color:%s;">%s</h3>`,
			font, fontSize+4, textColor, title,
		))
	}
	parts = append(parts, safehtml.Format(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0">%s</table>`,
		safehtml.Join(rows...),
	))

	padY := s.integer("paddingY", 24)
	return wrap(s.color("bgColor", "#ffffff"), paddingY(padY, padY), safehtml.Join(parts...))
}

// parseListItems supports both item shapes that exist in the wild: a legacy
// JSON array (of strings or {text} objects, detected by a leading "[") and a
// newline-delimited plain-text block. Malformed JSON falls back to the
// newline reading instead of erroring.
func parseListItems(v any) []string {
	switch value := v.(type) {
	case nil:
		return nil
	case []any:
		return itemsFromSlice(value)
	case []string:
		return compactItems(value)
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var decoded []any
			if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
				return itemsFromSlice(decoded)
			}
		}
		return compactItems(strings.Split(value, "\n"))
	default:
		return nil
	}
}

func itemsFromSlice(in []any) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		switch it := item.(type) {
		case string:
			out = append(out, it)
		case map[string]any:
			if text, ok := it["text"].(string); ok {
				out = append(out, text)
			}
		}
	}
	return compactItems(out)
}

func compactItems(in []string) []string {
	out := in[:0:0]
	for _, item := range in {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
