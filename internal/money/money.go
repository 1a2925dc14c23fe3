// Package money parses user-typed monetary values and renders them with
// locale grouping.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jask/riparto/internal/apportion"
)

// Parse reads a decimal number as typed in a form field. Either '.' or ','
// may be the decimal separator; when both appear the last one is the decimal
// separator and the other is grouping. A separator repeated more than once is
// grouping. Blank input is zero.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\'':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, nil
	}

	dot, comma := strings.LastIndex(clean, "."), strings.LastIndex(clean, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case comma >= 0:
		if strings.Count(clean, ",") > 1 {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.Replace(clean, ",", ".", 1)
		}
	case dot >= 0 && strings.Count(clean, ".") > 1:
		clean = strings.ReplaceAll(clean, ".", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse number %q: %w", s, err)
	}
	return d, nil
}

// ParseUnits reads a quantity and rounds it to the nearest whole unit.
// Quantities outside the int64 range fail with apportion.ErrOutOfRange.
func ParseUnits(s string) (int64, error) {
	d, err := Parse(s)
	if err != nil {
		return 0, err
	}
	n := d.Round(0).BigInt()
	if !n.IsInt64() {
		return 0, &apportion.Error{Kind: apportion.OutOfRange, Index: -1, Detail: "units " + d.String()}
	}
	return n.Int64(), nil
}

// Format renders d with two fraction digits and the grouping of tag,
// e.g. "1.234,50" for Italian. The whole part and the cents are printed
// separately so values past float64 precision stay exact.
func Format(tag language.Tag, d decimal.Decimal) string {
	p := message.NewPrinter(tag)
	r := d.Round(2)
	abs := r.Abs()
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Shift(2).IntPart()

	var b strings.Builder
	if r.IsNegative() {
		b.WriteByte('-')
	}
	if n := whole.BigInt(); n.IsInt64() {
		b.WriteString(p.Sprintf("%v", number.Decimal(n.Int64())))
	} else {
		b.WriteString(n.String())
	}
	b.WriteString(decimalSeparator(p))
	fmt.Fprintf(&b, "%02d", cents)
	return b.String()
}

// decimalSeparator is the fraction separator p prints.
func decimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%v", number.Decimal(1.5, number.Scale(1)))
	return strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
}

// FormatMinor renders an amount held in minor units.
func FormatMinor(tag language.Tag, minor int64) string {
	return Format(tag, apportion.MajorUnits(minor))
}
