// Package format renders amounts and percentages for the forecast line.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// WholeCurrency returns a dollar amount rounded to whole dollars with
// thousands separators (e.g., "$12,345"). Negative amounts keep the sign
// after the dollar sign ("$-1,200").
func WholeCurrency(amount float64) string {
	return "$" + printer.Sprintf("%.0f", amount)
}

// SignedPercent returns a percentage with an explicit sign and two decimals (e.g., "+3.25%").
func SignedPercent(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}
