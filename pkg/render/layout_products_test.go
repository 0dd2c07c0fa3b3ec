package render_test

import (
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignkit/campaignkit/pkg/product"
	"github.com/campaignkit/campaignkit/pkg/render"
)

func testCatalog() fakeCatalog {
	c := fakeCatalog{}
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		c[id] = product.Record{
			ID:              id,
			Name:            "Product " + id,
			Permalink:       "https://shop.example.com/" + id,
			Price:           19.99,
			UseCatalogImage: true,
		}
	}
	return c
}

// gridRows returns the rows of the product grid table. Buttons are turned
// off in these tests so the grid is the only nested table.
func gridRows(t *testing.T, html string) [][]string {
	t.Helper()
	doc := parseFragment(t, html)

	var rows [][]string
	doc.Find("table table tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			w, _ := td.Attr("width")
			cells = append(cells, w)
		})
		rows = append(rows, cells)
	})
	return rows
}

func productsSection(settings map[string]any) render.Section {
	base := map[string]any{"showButton": false}
	for k, v := range settings {
		base[k] = v
	}
	return render.Section{Type: "products", Settings: base}
}

func TestLayoutProducts_GridShape(t *testing.T) {
	t.Parallel()

	r := render.Renderer{Catalog: testCatalog()}
	ctx := context.Background()

	tests := []struct {
		name     string
		ids      string
		columns  int
		wantRows int
		wantPads int
	}{
		{name: "five across two", ids: "p1,p2,p3,p4,p5", columns: 2, wantRows: 3, wantPads: 1},
		{name: "three across three", ids: "p1,p2,p3", columns: 3, wantRows: 1, wantPads: 0},
		{name: "four across three", ids: "p1,p2,p3,p4", columns: 3, wantRows: 2, wantPads: 2},
		{name: "single column", ids: "p1,p2", columns: 1, wantRows: 2, wantPads: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := r.Fragment(ctx, productsSection(map[string]any{
				"productIds": tt.ids,
				"columns":    tt.columns,
			}), render.GlobalSettings{})

			rows := gridRows(t, html)
			require.Len(t, rows, tt.wantRows)

			pads := 0
			for _, row := range rows {
				// Every row has exactly `columns` cells, padded or not.
				assert.Len(t, row, tt.columns)
				for _, w := range row {
					if w == "0" {
						pads++
					}
				}
			}
			assert.Equal(t, tt.wantPads, pads)
		})
	}
}

func TestLayoutProducts_ColumnsClamped(t *testing.T) {
	t.Parallel()

	r := render.Renderer{Catalog: testCatalog()}
	ctx := context.Background()

	html := r.Fragment(ctx, productsSection(map[string]any{
		"productIds": "p1,p2,p3",
		"columns":    9,
	}), render.GlobalSettings{})
	rows := gridRows(t, html)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 3)

	html = r.Fragment(ctx, productsSection(map[string]any{
		"productIds": "p1,p2",
		"columns":    0,
	}), render.GlobalSettings{})
	rows = gridRows(t, html)
	assert.Len(t, rows, 2)
}

func TestLayoutProducts_CellWidthDividesDocument(t *testing.T) {
	t.Parallel()

	r := render.Renderer{Catalog: testCatalog()}
	html := r.Fragment(context.Background(), productsSection(map[string]any{
		"productIds": "p1,p2,p3",
		"columns":    3,
	}), render.GlobalSettings{MaxWidth: 600})

	rows := gridRows(t, html)
	require.Len(t, rows, 1)
	for _, w := range rows[0] {
		assert.Equal(t, "200", w)
	}
}

func TestLayoutProducts_NotFoundOmitted(t *testing.T) {
	t.Parallel()

	r := render.Renderer{Catalog: testCatalog()}
	ctx := context.Background()

	html := r.Fragment(ctx, productsSection(map[string]any{
		"productIds": "p1,deleted,p2",
		"columns":    3,
	}), render.GlobalSettings{})

	rows := gridRows(t, html)
	require.Len(t, rows, 1)
	// Two real cells plus one pad; no placeholder for the stale id.
	assert.Len(t, rows[0], 3)
	assert.NotContains(t, html, "deleted")

	// All stale means no section at all.
	html = r.Fragment(ctx, productsSection(map[string]any{
		"productIds": "gone,also-gone",
	}), render.GlobalSettings{})
	assert.Empty(t, html)
}

func TestLayoutProducts_NilCatalog(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	html := r.Fragment(context.Background(), productsSection(map[string]any{
		"productIds": "p1,p2",
	}), render.GlobalSettings{})
	assert.Empty(t, html)
}

func TestLayoutProducts_IDShapes(t *testing.T) {
	t.Parallel()

	c := testCatalog()
	c["42"] = product.Record{ID: "42", Name: "Numeric Product", UseCatalogImage: true}
	r := render.Renderer{Catalog: c}
	ctx := context.Background()

	t.Run("json list of strings", func(t *testing.T) {
		t.Parallel()
		html := r.Fragment(ctx, productsSection(map[string]any{
			"productIds": []any{"p1", "p2"},
		}), render.GlobalSettings{})
		assert.Contains(t, html, "Product p1")
		assert.Contains(t, html, "Product p2")
	})

	t.Run("json list of numbers", func(t *testing.T) {
		t.Parallel()
		html := r.Fragment(ctx, productsSection(map[string]any{
			"productIds": []any{float64(42)},
		}), render.GlobalSettings{})
		assert.Contains(t, html, "Numeric Product")
	})

	t.Run("comma string with blanks", func(t *testing.T) {
		t.Parallel()
		html := r.Fragment(ctx, productsSection(map[string]any{
			"productIds": " p1 , , p2 ",
		}), render.GlobalSettings{})
		rows := gridRows(t, html)
		require.Len(t, rows, 1)
		assert.Len(t, rows[0], 2)
	})
}

func TestLayoutProducts_VariablePrice(t *testing.T) {
	t.Parallel()

	c := fakeCatalog{
		"var": product.Record{
			ID:               "var",
			Name:             "Gift Card",
			IsVariablePriced: true,
			MinVariablePrice: 10,
			UseCatalogImage:  true,
		},
	}
	r := render.Renderer{Catalog: c}

	html := r.Fragment(context.Background(), productsSection(map[string]any{
		"productIds": "var",
		"columns":    1,
	}), render.GlobalSettings{})

	assert.Contains(t, html, "from ")
	assert.Contains(t, html, "10.00")
}

func TestLayoutProducts_OutOfStockHidesButton(t *testing.T) {
	t.Parallel()

	c := fakeCatalog{
		"oos": product.Record{
			ID:              "oos",
			Name:            "Sold Out Thing",
			Permalink:       "https://shop.example.com/oos",
			StockStatus:     "outofstock",
			UseCatalogImage: true,
		},
	}
	r := render.Renderer{Catalog: c}

	html := r.Fragment(context.Background(), render.Section{
		Type:     "products",
		Settings: map[string]any{"productIds": "oos", "columns": 1},
	}, render.GlobalSettings{})

	require.NotEmpty(t, html)
	assert.NotContains(t, html, "Buy now")
}

func TestLayoutProducts_ShowPriceToggle(t *testing.T) {
	t.Parallel()

	r := render.Renderer{Catalog: testCatalog()}
	html := r.Fragment(context.Background(), productsSection(map[string]any{
		"productIds": "p1",
		"columns":    1,
		"showPrice":  false,
	}), render.GlobalSettings{})

	require.NotEmpty(t, html)
	assert.NotContains(t, html, "19.99")
}
