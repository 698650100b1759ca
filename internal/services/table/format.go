package table

import "strconv"

// DefaultCurrencySymbol prefixes every formatted amount unless configured otherwise
const DefaultCurrencySymbol = "$"

// BuyInSeparator joins the formatted buy-in list of a row
const BuyInSeparator = " + "

// FormatCurrency renders v with two decimals behind symbol.
// A nil amount renders as zero.
func FormatCurrency(symbol string, v *float64) string {
	var n float64
	if v != nil {
		n = *v
	}
	return symbol + strconv.FormatFloat(n, 'f', 2, 64)
}
