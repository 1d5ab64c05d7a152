package format

import (
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// leading float literal of a token; trailing garbage is ignored ("50k" -> 50)
var reLeadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Display renders an amount with thousands separators and two decimals, quoted
// as inline code.
func Display(amount decimal.Decimal) string {
	return "`" + Plain(amount) + "`"
}

// Plain is Display without the inline-code quotes.
func Plain(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()

	fixed := abs.StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.')+1:]

	s := humanize.BigComma(abs.BigInt()) + "." + frac
	if rounded.IsNegative() {
		s = "-" + s
	}
	return s
}

// ExtractNumber returns the first whitespace-separated token that starts with a
// number. The boolean is false when no token does; zero is a valid result.
func ExtractNumber(text string) (decimal.Decimal, bool) {
	for _, tok := range strings.Fields(text) {
		lit := reLeadingNumber.FindString(tok)
		if lit == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimPrefix(lit, "+"))
		if err != nil {
			continue
		}
		return d, true
	}
	return decimal.Zero, false
}

// Date formats t like "Thursday, October 15th 2026".
func Date(t time.Time) string {
	return t.Format("Monday, January ") + humanize.Ordinal(t.Day()) + t.Format(" 2006")
}
