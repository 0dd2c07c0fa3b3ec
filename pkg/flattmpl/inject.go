package flattmpl

import (
	"regexp"
	"strconv"
	"strings"
)

// injectTargetRe matches, anchored at the start of a marker's content span,
// an optional run of whitespace, at most one MSO conditional-open comment,
// and then a <tr or <table tag up to and including its name.
var injectTargetRe = regexp.MustCompile(`^\s*(?:<!--\[if[^\]]*\]>\s*)?<(?:tr|table)\b`)

// InjectSectionIDs stamps data-section-id="{kind}-{ordinal}" onto the first
// <tr>/<table> element after each qualifying marker, for live-preview
// targeting. It never introduces wrapper elements: email-client sanitizers
// strip stray non-table elements inside <table> contexts, so the attribute
// must land on an element that is already there. Ordinals are counted over
// ALL markers — injection-eligible or not — so the ids agree with
// ParseSections. Each marker's target is searched only in the span up to
// the next marker, never across it; a marker with no qualifying element is
// left untouched.
func InjectSectionIDs(html string) string {
	markers := markerRe.FindAllStringSubmatchIndex(html, -1)
	if len(markers) == 0 {
		return html
	}

	var b strings.Builder
	b.Grow(len(html) + len(markers)*32)
	counts := make(map[string]int, len(markerKinds))
	prev := 0

	for i, m := range markers {
		kind := kindOf(html[m[2]:m[3]])
		id := kind + "-" + strconv.Itoa(counts[kind])
		counts[kind]++

		end := len(html)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		target := injectTargetRe.FindStringIndex(html[m[1]:end])
		if target == nil {
			continue
		}

		insertAt := m[1] + target[1]
		b.WriteString(html[prev:insertAt])
		b.WriteString(` data-section-id="`)
		b.WriteString(id)
		b.WriteString(`"`)
		prev = insertAt
	}
	b.WriteString(html[prev:])
	return b.String()
}
