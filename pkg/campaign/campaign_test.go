package campaign_test

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignkit/campaignkit/pkg/campaign"
	"github.com/campaignkit/campaignkit/pkg/flattmpl"
	"github.com/campaignkit/campaignkit/pkg/render"
)

func TestDecodeSections(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	t.Run("well formed", func(t *testing.T) {
		t.Parallel()
		raw := json.RawMessage(`[
			{"id":"s1","type":"hero","settings":{"headline":"Hi"}},
			{"id":"s2","type":"footer"}
		]`)
		sections := campaign.DecodeSections(raw, log)
		require.Len(t, sections, 2)
		assert.Equal(t, "s1", sections[0].ID)
		assert.Equal(t, "hero", sections[0].Type)
		assert.Equal(t, "Hi", sections[0].Settings["headline"])
	})

	t.Run("missing ids get uuids", func(t *testing.T) {
		t.Parallel()
		raw := json.RawMessage(`[{"type":"hero"},{"type":"footer"}]`)
		sections := campaign.DecodeSections(raw, log)
		require.Len(t, sections, 2)
		for _, sec := range sections {
			_, err := uuid.Parse(sec.ID)
			assert.NoError(t, err, "generated id %q should be a uuid", sec.ID)
		}
		assert.NotEqual(t, sections[0].ID, sections[1].ID)
	})

	t.Run("malformed json renders none", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, campaign.DecodeSections(json.RawMessage(`{not json`), log))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, campaign.DecodeSections(nil, log))
		assert.Nil(t, campaign.DecodeSections(json.RawMessage(``), log))
	})

	t.Run("unknown types kept for renderer to skip", func(t *testing.T) {
		t.Parallel()
		raw := json.RawMessage(`[{"id":"s1","type":"carousel"}]`)
		sections := campaign.DecodeSections(raw, log)
		require.Len(t, sections, 1)
		assert.Equal(t, "carousel", sections[0].Type)
	})

	t.Run("nil logger defaults", func(t *testing.T) {
		t.Parallel()
		sections := campaign.DecodeSections(json.RawMessage(`[{"id":"s1","type":"hero"}]`), nil)
		assert.Len(t, sections, 1)
	})
}

func TestGlobalSettings(t *testing.T) {
	t.Parallel()

	brand := campaign.BrandConfig{
		StoreURL:   "https://momo.example.com",
		FontFamily: "Georgia, serif",
	}

	t.Run("from brand", func(t *testing.T) {
		t.Parallel()
		g := campaign.Campaign{}.GlobalSettings(brand)
		assert.Equal(t, render.GlobalSettings{
			FontFamily: "Georgia, serif",
			StoreURL:   "https://momo.example.com",
		}, g)
	})

	t.Run("max width from settings", func(t *testing.T) {
		t.Parallel()
		c := campaign.Campaign{Settings: map[string]any{"max_width": float64(640)}}
		assert.Equal(t, 640, c.GlobalSettings(brand).MaxWidth)
	})

	t.Run("non positive width ignored", func(t *testing.T) {
		t.Parallel()
		c := campaign.Campaign{Settings: map[string]any{"max_width": float64(-1)}}
		assert.Zero(t, c.GlobalSettings(brand).MaxWidth)
	})
}

func TestTokenData(t *testing.T) {
	t.Parallel()

	c := campaign.Campaign{
		ID:             "c1",
		Headline:       "Spring Sale",
		Description:    "Everything must go",
		ImageURL:       "https://cdn.example.com/hero.jpg",
		CouponCode:     "SPRING",
		CouponDiscount: "20",
		CouponType:     "percent",
		Subject:        "Don't miss out",
		PreviewText:    "Up to 20% off",
		Settings:       map[string]any{"accent": "#ff0000"},
		FooterLinks:    []flattmpl.Link{{Label: "Blog", URL: "https://example.com/blog"}},
	}
	brand := campaign.BrandConfig{
		StoreName:      "Momo Coffee",
		StoreURL:       "https://momo.example.com",
		UnsubscribeURL: "https://momo.example.com/unsub",
	}

	data := campaign.TokenData(c, brand)

	assert.Equal(t, "Spring Sale", data["campaign_headline"])
	assert.Equal(t, "20% off", data["coupon_text"])
	assert.Equal(t, "Momo Coffee", data["store_name"])
	assert.Equal(t, c.FooterLinks, data["footer_links"])
	assert.Equal(t, c.Settings, data["settings"])

	// The caller supplies the rendered products grid itself.
	_, present := data["products_block"]
	assert.False(t, present)

	// The map feeds the flat engine directly.
	out := flattmpl.SubstituteTokens(`{{store_name}}: {{coupon_text}}`, data)
	assert.Equal(t, "Momo Coffee: 20% off", out)
}

func TestCouponText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		discount   string
		couponType string
		expected   string
	}{
		{name: "percent", discount: "20", couponType: "percent", expected: "20% off"},
		{name: "percentage alias", discount: "15", couponType: "percentage", expected: "15% off"},
		{name: "fixed", discount: "20", couponType: "fixed", expected: "$20 off"},
		{name: "amount alias", discount: "5", couponType: "amount", expected: "$5 off"},
		{name: "unknown type", discount: "20", couponType: "bogo", expected: "20 off"},
		{name: "empty discount", discount: "", couponType: "percent", expected: ""},
		{name: "whitespace discount", discount: "  ", couponType: "fixed", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, campaign.CouponText(tt.discount, tt.couponType))
		})
	}
}
