package pkg

import "fmt"

// DefaultCurrencySymbol is used when no symbol is configured. The symbol is a
// display label only; there is no conversion logic anywhere.
const DefaultCurrencySymbol = "$"

// FormatAmount renders a monetary value for display: two decimals, symbol
// prefix.
func FormatAmount(symbol string, amount float64) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
