package flattmpl

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// Link is one entry of the navigation_links / footer_links composites.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// escapeClass decides how a token's value enters the document.
type escapeClass int

const (
	escText     escapeClass = iota // HTML text escaping
	escURL                         // URL attribute escaping
	escVerbatim                    // inserted as-is; value escaped at its source
	escLinks                       // []Link expanded to joined anchors
)

// tokenClasses is the fixed token vocabulary. Case-sensitive; tokens not in
// this table (and outside the setting_* family) are left as literal text.
var tokenClasses = map[string]escapeClass{
	"campaign_headline":    escText,
	"campaign_description": escText,
	"campaign_image":       escURL,
	"coupon_code":          escText,
	"coupon_text":          escText,
	"products_block":       escVerbatim,
	"store_name":           escText,
	"store_url":            escURL,
	"logo_url":             escURL,
	"unsubscribe_url":      escURL,
	"current_year":         escText,
	"subject":              escText,
	"preview_text":         escText,
	"navigation_links":     escLinks,
	"footer_links":         escLinks,
}

var tokenRe = regexp.MustCompile(`\{\{([a-zA-Z][a-zA-Z0-9_]*)\}\}`)

// SubstituteTokens replaces every known {{token}} with its value from data.
// A single left-to-right pass: replacement text is never re-scanned, so a
// value that happens to contain token syntax stays inert. Unknown tokens
// remain literal. Missing values render empty, except current_year which
// defaults to the real current year.
func SubstituteTokens(html string, data map[string]any) string {
	return tokenRe.ReplaceAllStringFunc(html, func(match string) string {
		name := match[2 : len(match)-2]

		if suffix, ok := strings.CutPrefix(name, "setting_"); ok {
			return string(safehtml.EscapeText(settingValue(data, name, suffix)))
		}

		class, known := tokenClasses[name]
		if !known {
			return match
		}

		value, present := data[name]
		if !present {
			if name == "current_year" {
				return strconv.Itoa(time.Now().Year())
			}
			return ""
		}

		switch class {
		case escURL:
			return string(safehtml.EscapeURL(stringValue(value)))
		case escVerbatim:
			return stringValue(value)
		case escLinks:
			return string(linkAnchors(linksValue(value)))
		default:
			return string(safehtml.EscapeText(stringValue(value)))
		}
	})
}

// settingValue resolves a setting_* token: first the flat key itself, then
// the suffix inside a nested data["settings"] map. Both shapes exist in
// persisted campaigns.
func settingValue(data map[string]any, flatKey, suffix string) string {
	if v, ok := data[flatKey]; ok {
		return stringValue(v)
	}
	if nested, ok := data["settings"].(map[string]any); ok {
		if v, ok := nested[suffix]; ok {
			return stringValue(v)
		}
	}
	return ""
}

func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}

func linksValue(v any) []Link {
	switch value := v.(type) {
	case []Link:
		return value
	case []any:
		out := make([]Link, 0, len(value))
		for _, item := range value {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			l := Link{}
			if s, ok := m["label"].(string); ok {
				l.Label = s
			}
			if s, ok := m["url"].(string); ok {
				l.URL = s
			}
			out = append(out, l)
		}
		return out
	default:
		return nil
	}
}

func linkAnchors(links []Link) safehtml.HTML {
	parts := make([]safehtml.HTML, 0, len(links)*2)
	for _, l := range links {
		if strings.TrimSpace(l.Label) == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, safehtml.Raw("&nbsp;&nbsp;|&nbsp;&nbsp;"))
		}
		parts = append(parts, safehtml.Format(
			`<a href="%s" style="color:inherit;text-decoration:underline;">%s</a>`,
			safehtml.EscapeURL(l.URL), l.Label,
		))
	}
	return safehtml.Join(parts...)
}
