package render

import (
	"encoding/json"
	"strings"
)

// link is one entry of a linklist field (navigation, footer, social).
type link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// parseLinks reads a linklist settings value. Accepted shapes, for backward
// compatibility with both persisted JSON and live editor payloads:
// a JSON string, a []any of {label,url} maps, or a []link. Entries without
// a label are dropped; anything unreadable yields an empty list.
func parseLinks(v any) []link {
	switch value := v.(type) {
	case nil:
		return nil
	case []link:
		return compactLinks(value)
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		var out []link
		if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
			return nil
		}
		return compactLinks(out)
	case []any:
		out := make([]link, 0, len(value))
		for _, item := range value {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			l := link{}
			if s, ok := m["label"].(string); ok {
				l.Label = s
			}
			if s, ok := m["url"].(string); ok {
				l.URL = s
			}
			out = append(out, l)
		}
		return compactLinks(out)
	default:
		return nil
	}
}

func compactLinks(in []link) []link {
	out := in[:0:0]
	for _, l := range in {
		if strings.TrimSpace(l.Label) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
