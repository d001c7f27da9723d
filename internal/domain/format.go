package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// FormatNumber renders n with thousands separators, e.g. 1234567 -> "1,234,567".
func FormatNumber(n float64) string {
	return gbPrinter.Sprint(number.Decimal(n, number.MaxFractionDigits(3)))
}

// FormatGBP renders a price in pounds, e.g. 450000 -> "£450,000".
func FormatGBP(price float64) string {
	return "£" + FormatNumber(price)
}
