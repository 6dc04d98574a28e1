package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern is plain base 10 with at most two fractional digits. Commas
// are optional but, if present, must group the whole part in threes.
var amountPattern = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})+|\d+)(\.\d{1,2})?$`)

// maxAmountLen bounds the display form, enough for 999 trillion with grouping.
const maxAmountLen = 24

// ParseAmount reads a display amount like "5,240.00" into a decimal.
// Thousands separators are dropped, the rest must be a base 10 number.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	if len(trimmed) > maxAmountLen || !amountPattern.MatchString(trimmed) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(trimmed, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatAmount renders d with two fractional digits and comma grouping.
func FormatAmount(d decimal.Decimal) string {
	raw := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	whole, frac := raw, ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		whole, frac = raw[:i], raw[i:]
	}

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	return sign + b.String() + frac
}

// NormalizeAmount parses and re-renders s, so "1240.5" becomes "1,240.50".
func NormalizeAmount(s string) (string, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return "", err
	}
	return FormatAmount(d), nil
}
