package report

import (
	"strconv"
)

const DefaultCurrencySymbol = "$"

// Options control how names and money are rendered.
type Options struct {
	Safe           bool
	CurrencySymbol string
}

func (o Options) symbol() string {
	if o.CurrencySymbol == "" {
		return DefaultCurrencySymbol
	}
	return o.CurrencySymbol
}

// FormatCurrency renders amount with two decimals behind symbol.
func FormatCurrency(amount float64, symbol string) string {
	return symbol + FormatFixed(amount, 2)
}

// FormatFixed renders value with a fixed number of decimals.
func FormatFixed(value float64, decimals int) string {
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// FormatExact renders the shortest decimal that round-trips value.
func FormatExact(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Pluralize picks singular for exactly one, plural otherwise.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
