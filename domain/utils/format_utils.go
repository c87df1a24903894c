package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as R1,234,567.89 (rand symbol, comma
// grouping, always two decimal places).
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('R')
	b.WriteString(grouped)
	b.WriteByte('.')
	b.WriteString(parts[1])
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
