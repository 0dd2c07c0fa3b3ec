package product

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an amount with its currency symbol ("$24.99").
// Unknown or empty ISO codes fall back to USD rather than failing; the
// rendering path must stay total.
func FormatPrice(amount float64, isoCode string) string {
	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		unit = currency.USD
	}
	return pricePrinter.Sprint(currency.NarrowSymbol(unit.Amount(amount)))
}

// PriceText resolves the display text for a record's price. Variable-priced
// products render as "from {minPrice}"; fixed-priced products use the
// catalog's pre-formatted markup when present, falling back to formatting
// the raw amount. Returns "" when there is nothing sensible to show.
//
// The returned pair is (text, pre-escaped): when pre-escaped is true the
// text is catalog-built markup that must be inserted verbatim.
func PriceText(r Record) (string, bool) {
	if r.IsVariablePriced && r.MinVariablePrice > 0 {
		return "from " + FormatPrice(r.MinVariablePrice, r.Currency), false
	}
	if r.PriceHTML != "" {
		return r.PriceHTML, true
	}
	if r.Price > 0 {
		return FormatPrice(r.Price, r.Currency), false
	}
	return "", false
}
