package registry

// buildCatalog assembles the static type table. Field defaults here are the
// single source of truth for what a section looks like before the author
// touches anything; the renderer never hardcodes a second copy.
func buildCatalog() map[string]TypeDefinition {
	defs := []TypeDefinition{
		{
			Slug: "hero", Label: "Hero", Icon: "sparkles", HasAI: true,
			Fields: []FieldDefinition{
				{Key: "headline", Kind: KindText, Default: "Big news"},
				{Key: "subtext", Kind: KindText, Default: ""},
				{Key: "ctaText", Kind: KindText, Default: "Shop now"},
				{Key: "ctaUrl", Kind: KindText, Default: ""},
				{Key: "imageUrl", Kind: KindImage, Default: ""},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "textColor", Kind: KindColor, Default: "#111827"},
				{Key: "buttonColor", Kind: KindColor, Default: "#2563eb"},
				{Key: "buttonTextColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "buttonRadius", Kind: KindNumber, Default: 6},
				{Key: "paddingTop", Kind: KindNumber, Default: 48},
				{Key: "paddingBottom", Kind: KindNumber, Default: 48},
			},
		},
		{
			Slug: "hero-split", Label: "Hero (split)", Icon: "columns", HasAI: true,
			Fields: []FieldDefinition{
				{Key: "headline", Kind: KindText, Default: "Big news"},
				{Key: "subtext", Kind: KindText, Default: ""},
				{Key: "ctaText", Kind: KindText, Default: "Shop now"},
				{Key: "ctaUrl", Kind: KindText, Default: ""},
				{Key: "imageUrl", Kind: KindImage, Default: ""},
				{Key: "imagePosition", Kind: KindSelect, Default: "right", Options: []string{"left", "right"}},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "textColor", Kind: KindColor, Default: "#111827"},
				{Key: "buttonColor", Kind: KindColor, Default: "#2563eb"},
				{Key: "buttonTextColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "buttonRadius", Kind: KindNumber, Default: 6},
				{Key: "paddingY", Kind: KindNumber, Default: 32},
			},
		},
		{
			Slug: "heading", Label: "Heading", Icon: "type", HasAI: true,
			Fields: []FieldDefinition{
				{Key: "text", Kind: KindText, Default: "Section title"},
				{Key: "fontSize", Kind: KindNumber, Default: 28},
				{Key: "align", Kind: KindSelect, Default: "center", Options: []string{"left", "center", "right"}},
				{Key: "textColor", Kind: KindColor, Default: "#111827"},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
		{
			Slug: "text", Label: "Text", Icon: "align-left", HasAI: true,
			Fields: []FieldDefinition{
				{Key: "body", Kind: KindRichText, Default: ""},
				{Key: "fontSize", Kind: KindNumber, Default: 16},
				{Key: "align", Kind: KindSelect, Default: "left", Options: []string{"left", "center", "right"}},
				{Key: "textColor", Kind: KindColor, Default: "#374151"},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
		{
			Slug: "image", Label: "Image", Icon: "image", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "imageUrl", Kind: KindImage, Default: ""},
				{Key: "altText", Kind: KindText, Default: ""},
				{Key: "linkUrl", Kind: KindText, Default: ""},
				{Key: "fullWidth", Kind: KindToggle, Default: true},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 0},
			},
		},
		{
			Slug: "button", Label: "Button", Icon: "cursor-click", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "text", Kind: KindText, Default: "Shop now"},
				{Key: "url", Kind: KindText, Default: ""},
				{Key: "align", Kind: KindSelect, Default: "center", Options: []string{"left", "center", "right"}},
				{Key: "buttonColor", Kind: KindColor, Default: "#2563eb"},
				{Key: "buttonTextColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "buttonRadius", Kind: KindNumber, Default: 6},
				{Key: "buttonPaddingX", Kind: KindNumber, Default: 32},
				{Key: "buttonPaddingY", Kind: KindNumber, Default: 14},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
		{
			Slug: "banner", Label: "Banner", Icon: "megaphone", HasAI: true,
			Fields: []FieldDefinition{
				{Key: "text", Kind: KindText, Default: "Free shipping on orders over $50"},
				{Key: "linkUrl", Kind: KindText, Default: ""},
				{Key: "fontSize", Kind: KindNumber, Default: 14},
				{Key: "bgColor", Kind: KindColor, Default: "#111827"},
				{Key: "textColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 12},
			},
		},
		{
			Slug: "list", Label: "List", Icon: "list", HasAI: true,
			Fields: []FieldDefinition{
				{Key: "title", Kind: KindText, Default: ""},
				{Key: "items", Kind: KindText, Default: ""},
				{Key: "listStyle", Kind: KindSelect, Default: "bullets", Options: []string{
					"bullets", "numbers", "checks", "arrows", "stars", "dashes", "heart", "diamond", "none",
				}},
				{Key: "fontSize", Kind: KindNumber, Default: 16},
				{Key: "textColor", Kind: KindColor, Default: "#374151"},
				{Key: "accentColor", Kind: KindColor, Default: "#2563eb"},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
		{
			Slug: "products", Label: "Products", Icon: "shopping-bag", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "productIds", Kind: KindText, Default: ""},
				{Key: "columns", Kind: KindNumber, Default: 2},
				{Key: "showPrice", Kind: KindToggle, Default: true},
				{Key: "showButton", Kind: KindToggle, Default: true},
				{Key: "buttonText", Kind: KindText, Default: "Buy now"},
				{Key: "buttonColor", Kind: KindColor, Default: "#2563eb"},
				{Key: "buttonTextColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "buttonRadius", Kind: KindNumber, Default: 4},
				{Key: "buttonPaddingX", Kind: KindNumber, Default: 18},
				{Key: "buttonPaddingY", Kind: KindNumber, Default: 10},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "textColor", Kind: KindColor, Default: "#111827"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
		{
			Slug: "coupon", Label: "Coupon", Icon: "ticket", HasAI: true,
			Fields: []FieldDefinition{
				{Key: "layout", Kind: KindSelect, Default: "classic", Options: []string{
					"classic", "banner", "card", "split", "minimal", "ribbon",
				}},
				{Key: "headline", Kind: KindText, Default: "Special offer"},
				{Key: "couponText", Kind: KindText, Default: "Save on your next order"},
				{Key: "subtext", Kind: KindText, Default: ""},
				{Key: "couponCode", Kind: KindText, Default: "SAVE20"},
				{Key: "expiryDate", Kind: KindText, Default: ""},
				{Key: "bgColor", Kind: KindColor, Default: "#fff7ed"},
				{Key: "accentColor", Kind: KindColor, Default: "#ea580c"},
				{Key: "textColor", Kind: KindColor, Default: "#111827"},
			},
		},
		{
			Slug: "divider", Label: "Divider", Icon: "minus", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "lineStyle", Kind: KindSelect, Default: "solid", Options: []string{"solid", "dashed", "dotted", "double"}},
				{Key: "lineColor", Kind: KindColor, Default: "#e5e7eb"},
				{Key: "thickness", Kind: KindNumber, Default: 1},
				{Key: "widthPercent", Kind: KindNumber, Default: 100},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 16},
			},
		},
		{
			Slug: "spacer", Label: "Spacer", Icon: "arrows-vertical", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "height", Kind: KindNumber, Default: 32},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
			},
		},
		{
			Slug: "social", Label: "Social", Icon: "share", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "links", Kind: KindLinkList, Default: `[{"label":"facebook","url":"#"},{"label":"instagram","url":"#"},{"label":"twitter","url":"#"}]`},
				{Key: "iconColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "circleColor", Kind: KindColor, Default: "#111827"},
				{Key: "iconSize", Kind: KindNumber, Default: 36},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
		{
			Slug: "header", Label: "Header", Icon: "layout-top", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "logoUrl", Kind: KindImage, Default: ""},
				{Key: "storeName", Kind: KindText, Default: ""},
				{Key: "tagline", Kind: KindText, Default: ""},
				{Key: "links", Kind: KindLinkList, Default: ""},
				{Key: "bgColor", Kind: KindColor, Default: "#ffffff"},
				{Key: "textColor", Kind: KindColor, Default: "#111827"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
		{
			Slug: "footer", Label: "Footer", Icon: "layout-bottom", HasAI: false,
			Fields: []FieldDefinition{
				{Key: "storeName", Kind: KindText, Default: ""},
				{Key: "address", Kind: KindText, Default: ""},
				{Key: "unsubscribeUrl", Kind: KindText, Default: ""},
				{Key: "unsubscribeText", Kind: KindText, Default: "Unsubscribe"},
				{Key: "links", Kind: KindLinkList, Default: ""},
				{Key: "fontSize", Kind: KindNumber, Default: 12},
				{Key: "bgColor", Kind: KindColor, Default: "#f3f4f6"},
				{Key: "textColor", Kind: KindColor, Default: "#6b7280"},
				{Key: "paddingY", Kind: KindNumber, Default: 24},
			},
		},
	}

	out := make(map[string]TypeDefinition, len(defs))
	for _, def := range defs {
		out[def.Slug] = def
	}
	return out
}
