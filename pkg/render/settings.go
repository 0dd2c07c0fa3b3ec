package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// settings is a merged defaults+overrides map with best-effort coercion.
// Field access never fails: wrong kinds coerce where a sensible reading
// exists and fall back to the caller's default otherwise.
type settings map[string]any

func (s settings) raw(key string) any { return s[key] }

// str returns the value as a string. Non-string scalars are formatted,
// absent keys and nil values come back empty.
func (s settings) str(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(n)
	default:
		return fmt.Sprint(v)
	}
}

// integer coerces the value to an int: every pixel, size and radius setting
// goes through here before interpolation. Strings are read as a leading
// signed number so values like "12px" or "12.5" still resolve; anything
// unreadable falls back.
func (s settings) integer(key string, fallback int) int {
	v, ok := s[key]
	if !ok {
		return fallback
	}
	if n, ok := coerceInt(v); ok {
		return n
	}
	return fallback
}

// boolean coerces the value to a bool. Strings "", "0" and "false" (any
// case) are false, other numeric strings are true when positive, remaining
// text is true. Plain numbers are true when positive. Stricter than the
// flat template engine's truthiness, which keeps PHP parity and accepts
// negative numbers; toggle fields have no legitimate negative values.
func (s settings) boolean(key string, fallback bool) bool {
	v, ok := s[key]
	if !ok || v == nil {
		return fallback
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if b == "" || b == "0" || strings.EqualFold(b, "false") {
			return false
		}
		if n, err := strconv.ParseFloat(b, 64); err == nil {
			return n > 0
		}
		return true
	case int:
		return b > 0
	case int64:
		return b > 0
	case float64:
		return b > 0
	default:
		return fallback
	}
}

// color returns the value attribute-escaped, or the fallback when empty.
// Colors are opaque strings; no validation beyond escaping.
func (s settings) color(key, fallback string) safehtml.HTML {
	v := strings.TrimSpace(s.str(key))
	if v == "" {
		v = fallback
	}
	return safehtml.EscapeAttr(v)
}

func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		return parseLeadingInt(n)
	default:
		return 0, false
	}
}

// parseLeadingInt reads a signed integer prefix, so "12px" is 12 and
// "12.9" truncates to 12. Mirrors loose numeric casting from the legacy
// settings bags this replaces.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	start := 0
	if start < len(s) && (s[start] == '-' || s[start] == '+') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
