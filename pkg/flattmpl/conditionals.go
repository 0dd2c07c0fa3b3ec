package flattmpl

import (
	"regexp"
	"strconv"
	"strings"
)

// condRe matches a single non-nesting conditional block. (?s) lets branches
// span lines; the lazy bodies stop at the first {{else}}/{{/if}}, which is
// exactly the legacy non-nesting behavior.
var condRe = regexp.MustCompile(`(?s)\{\{#if\s+([a-zA-Z0-9_]+)\}\}(.*?)(?:\{\{else\}\}(.*?))?\{\{/if\}\}`)

// EvaluateConditionals resolves every {{#if name}}A{{else}}B{{/if}} block:
// A when data[name] is truthy, otherwise B (empty without an {{else}}).
// Nested conditionals are undefined behavior and are not supported.
func EvaluateConditionals(html string, data map[string]any) string {
	return condRe.ReplaceAllStringFunc(html, func(match string) string {
		m := condRe.FindStringSubmatch(match)
		if m == nil {
			return match
		}
		if truthy(data[m[1]]) {
			return m[2]
		}
		return m[3]
	})
}

// truthy implements the legacy loose rules: booleans pass through; a string
// is falsy when empty, "0", or "false" in any case; a numeric string is
// truthy iff its value is positive; numbers follow PHP emptiness (non-zero
// is truthy); collections are truthy when non-empty; nil is falsy.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		if value == "" || value == "0" || strings.EqualFold(value, "false") {
			return false
		}
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return n > 0
		}
		return true
	case int:
		return value != 0
	case int64:
		return value != 0
	case float64:
		return value != 0
	case []any:
		return len(value) > 0
	case []Link:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		return true
	}
}
