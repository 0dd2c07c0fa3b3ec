package render_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignkit/campaignkit/pkg/render"
)

func TestLayoutDivider_Solid(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	html := r.Fragment(context.Background(), render.Section{
		Type:     "divider",
		Settings: map[string]any{"thickness": 3, "lineColor": "#ff0000"},
	}, render.GlobalSettings{})

	// Solid lines are background-colored cells, no conditional needed.
	assert.Contains(t, html, "background-color:#ff0000")
	assert.Contains(t, html, "height:3px")
	assert.NotContains(t, html, "[if mso]")
	assert.NotContains(t, html, "border-top")
}

func TestLayoutDivider_StyledLinesCarryMSOFallback(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	ctx := context.Background()

	for _, style := range []string{"dashed", "dotted", "double"} {
		t.Run(style, func(t *testing.T) {
			t.Parallel()
			html := r.Fragment(ctx, render.Section{
				Type:     "divider",
				Settings: map[string]any{"lineStyle": style, "thickness": 2},
			}, render.GlobalSettings{})

			assert.Contains(t, html, "<!--[if mso]>")
			assert.Contains(t, html, "<!--[if !mso]><!-->")
			assert.Contains(t, html, "border-top:2px "+style)
		})
	}
}

func TestLayoutDivider_Bounds(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	ctx := context.Background()

	html := r.Fragment(ctx, render.Section{
		Type:     "divider",
		Settings: map[string]any{"thickness": 0},
	}, render.GlobalSettings{})
	assert.Contains(t, html, "height:1px")

	html = r.Fragment(ctx, render.Section{
		Type:     "divider",
		Settings: map[string]any{"widthPercent": 150},
	}, render.GlobalSettings{})
	assert.Contains(t, html, `width="100%"`)

	html = r.Fragment(ctx, render.Section{
		Type:     "divider",
		Settings: map[string]any{"widthPercent": 50},
	}, render.GlobalSettings{})
	assert.Contains(t, html, `width="50%"`)

	html = r.Fragment(ctx, render.Section{
		Type:     "divider",
		Settings: map[string]any{"lineStyle": "zigzag"},
	}, render.GlobalSettings{})
	require.NotEmpty(t, html)
	assert.NotContains(t, html, "zigzag")
}
