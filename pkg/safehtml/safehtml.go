package safehtml

import (
	"fmt"
	"html"
	"strings"
)

// HTML is a string that is safe to write into an HTML document without
// further escaping. Values are produced by the Escape* functions, by Format,
// or by Raw at call sites whose input is escaped elsewhere.
type HTML string

// String returns the markup as a plain string for output boundaries.
func (h HTML) String() string { return string(h) }

// Raw marks s as already safe. Use only for markup produced by this package,
// by a layout composer, or documented as pre-escaped at its source.
func Raw(s string) HTML { return HTML(s) }

// EscapeText escapes s for use as HTML text content.
func EscapeText(s string) HTML { return HTML(html.EscapeString(s)) }

// EscapeAttr escapes s for use inside a double-quoted HTML attribute value.
func EscapeAttr(s string) HTML { return HTML(html.EscapeString(s)) }

// EscapeURL escapes s for use in an href or src attribute. Schemes other
// than http, https, mailto and tel are rejected and collapse to "#" so a
// hostile settings value can never smuggle a javascript: URL into a link.
// Scheme-less (relative, fragment, query) URLs pass through escaped.
func EscapeURL(s string) HTML {
	if !safeScheme(s) {
		return HTML("#")
	}
	return HTML(html.EscapeString(s))
}

var allowedSchemes = []string{"http:", "https:", "mailto:", "tel:"}

func safeScheme(s string) bool {
	trimmed := strings.TrimSpace(s)
	colon := strings.IndexByte(trimmed, ':')
	if colon < 0 {
		return true
	}
	// A colon after the first path/query/fragment delimiter is not a scheme.
	if i := strings.IndexAny(trimmed, "/?#"); i >= 0 && i < colon {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, scheme := range allowedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// Join concatenates already-safe fragments.
func Join(parts ...HTML) HTML {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(string(p))
	}
	return HTML(b.String())
}

// Format builds markup from a printf-style format. HTML arguments pass
// through untouched, integers are formatted as-is, and every other argument
// is text-escaped before interpolation, so the result is safe by
// construction as long as the format string itself is trusted markup.
func Format(format string, args ...any) HTML {
	safe := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case HTML:
			safe[i] = string(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			safe[i] = v
		case string:
			safe[i] = html.EscapeString(v)
		default:
			safe[i] = html.EscapeString(fmt.Sprint(v))
		}
	}
	return HTML(fmt.Sprintf(format, safe...))
}
