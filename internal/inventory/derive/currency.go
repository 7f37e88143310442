package derive

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a monetary value as Philippine pesos with exactly
// two fractional digits and thousands separators, e.g. ₱1,234.50. Display
// only; never applied before arithmetic.
func FormatCurrency(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	s := fmt.Sprintf("%.2f", value)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + "₱" + b.String() + "." + frac
}
