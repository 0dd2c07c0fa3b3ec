package render

import (
	"context"
	"strings"

	"github.com/campaignkit/campaignkit/pkg/product"
	"github.com/campaignkit/campaignkit/pkg/registry"
	"github.com/campaignkit/campaignkit/pkg/safehtml"
)

// DefaultMaxWidth is the outer table width used when GlobalSettings does not
// specify one. 600px is the long-standing safe width across email clients.
const DefaultMaxWidth = 600

const defaultFontFamily = "Arial, Helvetica, sans-serif"

// GlobalSettings applies uniformly to every section of one render call.
type GlobalSettings struct {
	MaxWidth   int    // outer document width in px, default 600
	FontFamily string // inline font stack, default Arial/Helvetica
	StoreURL   string // used by header/logo links
}

func (g GlobalSettings) normalized() GlobalSettings {
	if g.MaxWidth <= 0 {
		g.MaxWidth = DefaultMaxWidth
	}
	if strings.TrimSpace(g.FontFamily) == "" {
		g.FontFamily = defaultFontFamily
	}
	return g
}

func (g GlobalSettings) font() safehtml.HTML {
	return safehtml.EscapeAttr(g.FontFamily)
}

// Section is one addressable content block. Settings is a sparse override
// map; keys absent from it are filled from the type's registry defaults at
// render time. The renderer never mutates a Section.
type Section struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Settings map[string]any `json:"settings"`
}

// Renderer renders sections. The zero value is usable: a nil Catalog makes
// every product lookup miss, so products sections render empty.
type Renderer struct {
	Catalog product.Catalog
}

type layoutFunc func(Renderer, context.Context, settings, GlobalSettings) safehtml.HTML

// layouts is the closed dispatch table from type slug to layout function.
// Incoming strings outside this set are the designated unknown case and
// render as empty fragments.
var layouts = map[string]layoutFunc{
	"hero":       Renderer.layoutHero,
	"hero-split": Renderer.layoutHeroSplit,
	"heading":    Renderer.layoutHeading,
	"text":       Renderer.layoutText,
	"image":      Renderer.layoutImage,
	"button":     Renderer.layoutButton,
	"banner":     Renderer.layoutBanner,
	"list":       Renderer.layoutList,
	"products":   Renderer.layoutProducts,
	"coupon":     Renderer.layoutCoupon,
	"divider":    Renderer.layoutDivider,
	"spacer":     Renderer.layoutSpacer,
	"social":     Renderer.layoutSocial,
	"header":     Renderer.layoutHeader,
	"footer":     Renderer.layoutFooter,
}

// Fragment renders a single section as a self-contained inline-styled block.
// Unknown or empty types yield "" so a stale section can never break the
// rest of the email.
func (r Renderer) Fragment(ctx context.Context, sec Section, global GlobalSettings) string {
	return string(r.fragment(ctx, sec, global.normalized()))
}

// Fragments renders all sections in input order and concatenates them.
func (r Renderer) Fragments(ctx context.Context, sections []Section, global GlobalSettings) string {
	global = global.normalized()
	var b strings.Builder
	for _, sec := range sections {
		b.WriteString(string(r.fragment(ctx, sec, global)))
	}
	return b.String()
}

func (r Renderer) fragment(ctx context.Context, sec Section, global GlobalSettings) safehtml.HTML {
	if sec.Type == "" {
		return ""
	}
	fn, ok := layouts[sec.Type]
	if !ok {
		return ""
	}
	return fn(r, ctx, mergedSettings(sec), global)
}

// mergedSettings fills registry defaults under the section's explicit
// settings. Presence wins over defaults even for empty values: an author
// clearing a field (ctaText: "") must suppress the default, not restore it.
func mergedSettings(sec Section) settings {
	s := registry.Defaults(sec.Type)
	for k, v := range sec.Settings {
		s[k] = v
	}
	return s
}
