package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount the way the storefront does:
// thousands separated by dots with a trailing đ sign, e.g. 1.250.000đ.
// Fractional đồng amounts keep their decimal part after a comma.
func FormatMoney(amount decimal.Decimal) string {
	s := amount.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	b.WriteString("đ")
	return b.String()
}
