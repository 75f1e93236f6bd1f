package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amounts are in VND, which has no minor unit in everyday use.
const displayPrecision = 0

var amountPrinter = message.NewPrinter(language.Vietnamese)

// FormatAmount renders an amount with Vietnamese digit grouping, e.g. 1234567.4 -> "1.234.567".
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, displayPrecision)
}

// FormatWithPrecision renders an amount rounded to precision decimal places with Vietnamese grouping.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	rounded := amount.Round(int32(precision))
	return amountPrinter.Sprint(number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(precision), number.MaxFractionDigits(precision)))
}
