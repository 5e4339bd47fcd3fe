package format

import (
	"fmt"
	"strconv"
	"strings"
)

// BRL formats an amount in centavos the way Brazilian price tags read.
// Example: BRL(300000) => "R$ 3.000,00"
func BRL(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	out := "R$ " + thousandSep(minor/100, '.') + "," + fmt.Sprintf("%02d", minor%100)
	if neg {
		return "-" + out
	}
	return out
}

// Installments renders an installment plan such as "10 x R$ 340,00".
func Installments(count int, minor int64) string {
	if count <= 1 {
		return BRL(minor)
	}
	return strconv.Itoa(count) + " x " + BRL(minor)
}

// Percent renders a whole percentage, e.g. Percent(30) => "30%".
func Percent(p int) string {
	return strconv.Itoa(p) + "%"
}

func thousandSep(n int64, sep rune) string {
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(sep)
		}
		b.WriteRune(c)
	}
	return b.String()
}
