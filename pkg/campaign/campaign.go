package campaign

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit/pkg/flattmpl"
	"github.com/campaignkit/campaignkit/pkg/registry"
	"github.com/campaignkit/campaignkit/pkg/render"
)

// Campaign is the stored shape of one marketing email, as supplied by the
// external storage collaborator.
type Campaign struct {
	ID              string          `json:"id"`
	Headline        string          `json:"headline"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	CouponCode      string          `json:"coupon_code"`
	CouponDiscount  string          `json:"coupon_discount"`
	CouponType      string          `json:"coupon_type"` // "percent" or "fixed"
	Subject         string          `json:"subject"`
	PreviewText     string          `json:"preview_text"`
	Sections        json.RawMessage `json:"sections"`
	Settings        map[string]any  `json:"settings"`
	NavigationLinks []flattmpl.Link `json:"navigation_links"`
	FooterLinks     []flattmpl.Link `json:"footer_links"`
}

// Store supplies campaigns. Implementations live outside this module.
type Store interface {
	Campaign(ctx context.Context, id string) (Campaign, error)
}

// BrandConfig is the store-level identity injected into every email.
type BrandConfig struct {
	StoreName      string `env:"BRAND_STORE_NAME"`
	StoreURL       string `env:"BRAND_STORE_URL"`
	LogoURL        string `env:"BRAND_LOGO_URL"`
	UnsubscribeURL string `env:"BRAND_UNSUBSCRIBE_URL"`
	PrimaryColor   string `env:"BRAND_PRIMARY_COLOR" envDefault:"#2563eb"`
	FontFamily     string `env:"BRAND_FONT_FAMILY" envDefault:"Arial, Helvetica, sans-serif"`
}

// GlobalSettings derives the render-wide settings for a campaign.
func (c Campaign) GlobalSettings(brand BrandConfig) render.GlobalSettings {
	g := render.GlobalSettings{
		FontFamily: brand.FontFamily,
		StoreURL:   brand.StoreURL,
	}
	if w, ok := c.Settings["max_width"]; ok {
		if n, ok := w.(float64); ok && n > 0 {
			g.MaxWidth = int(n)
		}
	}
	return g
}

// DecodeSections decodes the persisted section array. Sections without an
// id get a fresh uuid so editor round-trips can address them; unknown types
// are kept (the renderer skips them) but logged here, at the boundary, so
// the condition is visible without making the renderer impure. Malformed
// JSON yields an empty slice, never an error: a broken campaign still
// renders its shell.
func DecodeSections(raw json.RawMessage, log *slog.Logger) []render.Section {
	if log == nil {
		log = slog.Default()
	}
	if len(raw) == 0 {
		return nil
	}

	var sections []render.Section
	if err := json.Unmarshal(raw, &sections); err != nil {
		log.Warn("campaign sections undecodable, rendering none", "error", err)
		return nil
	}

	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = uuid.NewString()
		}
		if sections[i].Type == "" {
			continue
		}
		if _, known := registry.Get(sections[i].Type); !known {
			log.Warn("unknown section type, will render empty",
				"type", sections[i].Type, "section_id", sections[i].ID)
		}
	}
	return sections
}

// TokenData builds the flat template engine's data map for a campaign.
// products_block is intentionally absent: the caller renders it (it needs a
// catalog) and adds it under the "products_block" key.
func TokenData(c Campaign, brand BrandConfig) map[string]any {
	data := map[string]any{
		"campaign_headline":    c.Headline,
		"campaign_description": c.Description,
		"campaign_image":       c.ImageURL,
		"coupon_code":          c.CouponCode,
		"coupon_text":          CouponText(c.CouponDiscount, c.CouponType),
		"store_name":           brand.StoreName,
		"store_url":            brand.StoreURL,
		"logo_url":             brand.LogoURL,
		"unsubscribe_url":      brand.UnsubscribeURL,
		"subject":              c.Subject,
		"preview_text":         c.PreviewText,
		"navigation_links":     c.NavigationLinks,
		"footer_links":         c.FooterLinks,
	}
	if len(c.Settings) > 0 {
		data["settings"] = c.Settings
	}
	return data
}

// CouponText phrases a discount for display: "20% off" for percent coupons,
// "$20 off" for fixed ones. Empty discount yields "".
func CouponText(discount, couponType string) string {
	discount = strings.TrimSpace(discount)
	if discount == "" {
		return ""
	}
	switch strings.ToLower(strings.TrimSpace(couponType)) {
	case "percent", "percentage":
		return discount + "% off"
	case "fixed", "amount":
		return "$" + discount + " off"
	default:
		return discount + " off"
	}
}
