package flattmpl

import (
	"regexp"
	"strconv"
	"strings"
)

// markerRe matches structural markers: an HTML comment whose free text is
// framed by runs of four or more '=' characters. Group 1 is the free text.
var markerRe = regexp.MustCompile(`<!--[ \t]*={4,}[ \t]*(.*?)[ \t]*={4,}[ \t]*-->`)

// markerKinds maps marker text to a canonical section kind by FIRST match,
// walked in order. The order is load-bearing, not alphabetical sloppiness:
// some comment texts legitimately contain several keywords ("HERO HEADLINE")
// and downstream reordering depends on the ids this table produces, so more
// specific keywords sit above broader ones. Do not re-sort and do not switch
// to longest-match.
var markerKinds = []struct {
	keyword string
	kind    string
}{
	{"header", "header"},
	{"headline", "headline"},
	{"hero", "hero"},
	{"coupon", "coupon"},
	{"product", "products"},
	{"cta", "cta"},
	{"divider", "divider"},
	{"footer", "footer"},
}

// KindUnknown is assigned when no keyword matches the marker text.
const KindUnknown = "unknown"

func kindOf(markerText string) string {
	lower := strings.ToLower(markerText)
	for _, entry := range markerKinds {
		if strings.Contains(lower, entry.keyword) {
			return entry.kind
		}
	}
	return KindUnknown
}

// Section is one marker-delimited span of a flat template, from its marker
// up to (not including) the next marker or to end of document.
type Section struct {
	ID   string // "{kind}-{ordinal}", ordinal 0-based per kind
	Kind string
	HTML string
}

// Document is the lossless decomposition of a flat template:
// Preamble + every Section.HTML in order + Postamble reconstructs the input
// byte for byte.
type Document struct {
	Preamble  string
	Sections  []Section
	Postamble string
}

// Reassemble concatenates the document back into a single string.
func (d Document) Reassemble() string {
	var b strings.Builder
	b.WriteString(d.Preamble)
	for _, s := range d.Sections {
		b.WriteString(s.HTML)
	}
	b.WriteString(d.Postamble)
	return b.String()
}

// ParseSections splits html at its markers. A document without markers is
// all preamble. Content after the last marker belongs to the last section,
// so Postamble is empty whenever at least one marker exists.
func ParseSections(html string) Document {
	matches := markerRe.FindAllStringSubmatchIndex(html, -1)
	if len(matches) == 0 {
		return Document{Preamble: html}
	}

	doc := Document{
		Preamble: html[:matches[0][0]],
		Sections: make([]Section, 0, len(matches)),
	}
	counts := make(map[string]int, len(markerKinds))

	for i, m := range matches {
		kind := kindOf(html[m[2]:m[3]])
		id := kind + "-" + strconv.Itoa(counts[kind])
		counts[kind]++

		end := len(html)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		doc.Sections = append(doc.Sections, Section{ID: id, Kind: kind, HTML: html[m[0]:end]})
	}
	return doc
}

// dupSuffixRe strips the "-dupN" suffix cloned sections carry; ids that miss
// on first lookup are retried without it.
var dupSuffixRe = regexp.MustCompile(`-dup\d+$`)

// Reorder rebuilds the document with sections arranged per orderedIDs.
// An id that matches no section is retried with its -dupN suffix stripped
// (the clone compatibility shim); ids that still match nothing are skipped,
// dropping that section's content rather than corrupting the rest. The
// identity permutation returns the input unchanged.
func Reorder(html string, orderedIDs []string) string {
	doc := ParseSections(html)
	if len(doc.Sections) == 0 {
		return html
	}

	byID := make(map[string]Section, len(doc.Sections))
	for _, s := range doc.Sections {
		byID[s.ID] = s
	}

	var b strings.Builder
	b.WriteString(doc.Preamble)
	for _, id := range orderedIDs {
		sec, ok := byID[id]
		if !ok {
			sec, ok = byID[dupSuffixRe.ReplaceAllString(id, "")]
		}
		if !ok {
			continue
		}
		b.WriteString(sec.HTML)
	}
	b.WriteString(doc.Postamble)
	return b.String()
}
