package render_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignkit/campaignkit/pkg/render"
)

func couponSection(settings map[string]any) render.Section {
	return render.Section{Type: "coupon", Settings: settings}
}

func TestLayoutCoupon_VariantsDistinct(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	ctx := context.Background()

	variants := []string{"classic", "banner", "card", "split", "minimal", "ribbon"}
	seen := make(map[string]string, len(variants))
	for _, layout := range variants {
		html := r.Fragment(ctx, couponSection(map[string]any{"layout": layout}), render.GlobalSettings{})
		require.NotEmpty(t, html, layout)
		for prev, prevHTML := range seen {
			assert.NotEqual(t, prevHTML, html, "%s and %s render identically", prev, layout)
		}
		seen[layout] = html
	}

	// Unrecognized layouts fall back to classic.
	classic := seen["classic"]
	got := r.Fragment(ctx, couponSection(map[string]any{"layout": "holographic"}), render.GlobalSettings{})
	assert.Equal(t, classic, got)
}

func TestLayoutCoupon_SplitWidthsSumToDocument(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	for _, width := range []int{600, 601, 480} {
		t.Run(strconv.Itoa(width), func(t *testing.T) {
			t.Parallel()

			html := r.Fragment(context.Background(), couponSection(map[string]any{
				"layout": "split",
			}), render.GlobalSettings{MaxWidth: width})

			doc := parseFragment(t, html)
			cols := doc.Find("td.ck-col")
			require.Equal(t, 2, cols.Length())

			total := 0
			cols.Each(func(_ int, sel *goquery.Selection) {
				w, ok := sel.Attr("width")
				require.True(t, ok)
				n, err := strconv.Atoi(w)
				require.NoError(t, err)
				total += n
			})
			assert.Equal(t, width, total)
		})
	}
}

func TestLayoutCoupon_BannerSplits55To45(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	html := r.Fragment(context.Background(), couponSection(map[string]any{
		"layout": "banner",
	}), render.GlobalSettings{MaxWidth: 600})

	doc := parseFragment(t, html)
	cols := doc.Find("td.ck-col")
	require.Equal(t, 2, cols.Length())

	left, _ := cols.First().Attr("width")
	right, _ := cols.Last().Attr("width")
	assert.Equal(t, "330", left)
	assert.Equal(t, "270", right)
}

func TestLayoutCoupon_ExpiryFormats(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	ctx := context.Background()

	tests := []struct {
		name   string
		expiry string
		want   string
	}{
		{name: "iso date", expiry: "2026-12-31", want: "Expires 31 Dec 2026"},
		{name: "rfc3339", expiry: "2026-12-31T23:59:59Z", want: "Expires 31 Dec 2026"},
		{name: "day first", expiry: "31/12/2026", want: "Expires 31 Dec 2026"},
		{name: "unparseable passes through", expiry: "end of season", want: "Expires end of season"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			html := r.Fragment(ctx, couponSection(map[string]any{"expiryDate": tt.expiry}), render.GlobalSettings{})
			assert.Contains(t, html, tt.want)
		})
	}

	t.Run("no expiry no line", func(t *testing.T) {
		t.Parallel()
		html := r.Fragment(ctx, couponSection(nil), render.GlobalSettings{})
		assert.NotContains(t, html, "Expires")
	})
}

func TestLayoutCoupon_CodeSuppression(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	html := r.Fragment(context.Background(), couponSection(map[string]any{
		"couponCode": "",
	}), render.GlobalSettings{})

	require.NotEmpty(t, html)
	assert.NotContains(t, html, "SAVE20")
	assert.NotContains(t, html, "dashed")
}

func TestLayoutCoupon_MinimalInlinesCode(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	html := r.Fragment(context.Background(), couponSection(map[string]any{
		"layout":     "minimal",
		"couponText": "Take 20% off",
		"couponCode": "TWENTY",
	}), render.GlobalSettings{})

	assert.Contains(t, html, "use code <strong")
	assert.Contains(t, html, "TWENTY")
}
