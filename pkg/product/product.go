package product

import "context"

// Record is the raw product shape as it arrives from storage or a live
// catalog lookup. Custom* fields are author overrides, AI*/Generated* fields
// come from the copy generator, the rest is catalog data. Any subset may be
// present; Normalize resolves the overlap.
type Record struct {
	ID string

	Name       string
	CustomName string
	AIName     string

	CustomHeadline string
	AIHeadline     string

	ShortDescription  string
	CustomDescription string
	AIDescription     string

	ImageURL          string // catalog image
	CustomImageURL    string
	GeneratedImageURL string
	UseCatalogImage   bool

	Permalink    string
	CustomBuyURL string

	// HideBuyButton is inverted so the zero value keeps the button visible.
	HideBuyButton bool

	PriceHTML        string // catalog-formatted price markup, already escaped
	Price            float64
	Currency         string // ISO 4217, defaults to USD when empty
	StockStatus      string // "instock", "outofstock", ""
	IsVariablePriced bool
	MinVariablePrice float64
}

// Normalized is the canonical product shape used by renderers.
type Normalized struct {
	Name             string
	Headline         string
	ShortDescription string
	ImageURL         string
	BuyURL           string
	ShowBuyButton    bool
}

// Catalog resolves product ids to records. The false return means "not
// found"; renderers omit such products rather than rendering placeholders.
type Catalog interface {
	Product(ctx context.Context, id string) (Record, bool)
}

// Normalize resolves override precedence: custom > AI-generated > catalog.
// The image additionally honors UseCatalogImage: when the author turned the
// catalog image off and a generated image exists, the generated image wins
// even over a custom one.
func Normalize(r Record) Normalized {
	image := firstNonEmpty(r.CustomImageURL, r.GeneratedImageURL, r.ImageURL)
	if !r.UseCatalogImage && r.GeneratedImageURL != "" {
		image = r.GeneratedImageURL
	}

	buyURL := firstNonEmpty(r.CustomBuyURL, r.Permalink)

	return Normalized{
		Name:             firstNonEmpty(r.CustomName, r.AIName, r.Name),
		Headline:         firstNonEmpty(r.CustomHeadline, r.AIHeadline),
		ShortDescription: firstNonEmpty(r.CustomDescription, r.AIDescription, r.ShortDescription),
		ImageURL:         image,
		BuyURL:           buyURL,
		ShowBuyButton:    !r.HideBuyButton && buyURL != "" && r.StockStatus != "outofstock",
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
