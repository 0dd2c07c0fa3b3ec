package flattmpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignkit/campaignkit/pkg/flattmpl"
)

const flatTemplate = `<html><body><table>
<!-- ==== HEADER ==== -->
<tr><td>header content</td></tr>
<!-- ==== HERO SECTION ==== -->
<tr><td>hero content</td></tr>
<!-- ==== COUPON BLOCK ==== -->
<tr><td>coupon content</td></tr>
<!-- ==== PRODUCTS GRID ==== -->
<tr><td>products content</td></tr>
<!-- ==== FOOTER ==== -->
<tr><td>footer content</td></tr>
</table></body></html>`

func TestParseSections(t *testing.T) {
	t.Parallel()

	doc := flattmpl.ParseSections(flatTemplate)

	require.Len(t, doc.Sections, 5)
	assert.Equal(t, "<html><body><table>\n", doc.Preamble)
	assert.Empty(t, doc.Postamble)

	ids := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"header-0", "hero-0", "coupon-0", "products-0", "footer-0"}, ids)

	// Trailing markup after the last marker belongs to the last section.
	assert.Contains(t, doc.Sections[4].HTML, "</table></body></html>")
}

func TestParseSections_Lossless(t *testing.T) {
	t.Parallel()

	assert.Equal(t, flatTemplate, flattmpl.ParseSections(flatTemplate).Reassemble())
}

func TestParseSections_NoMarkers(t *testing.T) {
	t.Parallel()

	plain := "<html><body>no markers here</body></html>"
	doc := flattmpl.ParseSections(plain)

	assert.Equal(t, plain, doc.Preamble)
	assert.Empty(t, doc.Sections)
	assert.Equal(t, plain, doc.Reassemble())
}

func TestParseSections_KindKeywordPrecedence(t *testing.T) {
	t.Parallel()

	// "HERO HEADLINE" contains both keywords; the table order decides.
	doc := flattmpl.ParseSections(`<!-- ==== HERO HEADLINE ==== --><p>x</p>`)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "headline-0", doc.Sections[0].ID)

	// "header" outranks everything, including "hero".
	doc = flattmpl.ParseSections(`<!-- ==== HERO HEADER ==== --><p>x</p>`)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "header-0", doc.Sections[0].ID)
}

func TestParseSections_OrdinalsPerKind(t *testing.T) {
	t.Parallel()

	doc := flattmpl.ParseSections(
		`<!-- ==== HERO ==== -->a<!-- ==== DIVIDER ==== -->b<!-- ==== HERO ==== -->c`,
	)
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "hero-0", doc.Sections[0].ID)
	assert.Equal(t, "divider-0", doc.Sections[1].ID)
	assert.Equal(t, "hero-1", doc.Sections[2].ID)
}

func TestParseSections_UnknownKind(t *testing.T) {
	t.Parallel()

	doc := flattmpl.ParseSections(`<!-- ==== SIDEBAR ==== --><p>x</p>`)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, flattmpl.KindUnknown, doc.Sections[0].Kind)
	assert.Equal(t, "unknown-0", doc.Sections[0].ID)
}

func TestReorder(t *testing.T) {
	t.Parallel()

	t.Run("identity", func(t *testing.T) {
		t.Parallel()
		out := flattmpl.Reorder(flatTemplate, []string{"header-0", "hero-0", "coupon-0", "products-0", "footer-0"})
		assert.Equal(t, flatTemplate, out)
	})

	t.Run("swap", func(t *testing.T) {
		t.Parallel()
		out := flattmpl.Reorder(
			`pre<!-- ==== HERO ==== -->hero-html<!-- ==== FOOTER ==== -->footer-html`,
			[]string{"footer-0", "hero-0"},
		)
		assert.Equal(t, `pre<!-- ==== FOOTER ==== -->footer-html<!-- ==== HERO ==== -->hero-html`, out)
	})

	t.Run("dup suffix stripped", func(t *testing.T) {
		t.Parallel()
		out := flattmpl.Reorder(
			`<!-- ==== HERO ==== -->hero-html`,
			[]string{"hero-0-dup1"},
		)
		assert.Equal(t, `<!-- ==== HERO ==== -->hero-html`, out)
	})

	t.Run("unresolvable id skipped", func(t *testing.T) {
		t.Parallel()
		out := flattmpl.Reorder(
			`<!-- ==== HERO ==== -->hero-html<!-- ==== FOOTER ==== -->footer-html`,
			[]string{"footer-0", "ghost-3"},
		)
		assert.Equal(t, `<!-- ==== FOOTER ==== -->footer-html`, out)
	})

	t.Run("no markers returns input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "plain", flattmpl.Reorder("plain", []string{"hero-0"}))
	})
}
