package render

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numeric values for display in a fixed locale/currency.
// All three forms mirror what the report front end has always shown:
// grouped integers, fixed two-decimal strings, and currency amounts.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for the given BCP 47 locale and ISO 4217
// currency code.
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	p := message.NewPrinter(tag)
	return &Formatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// Number rounds to the nearest integer and formats with digit grouping.
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprint(number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// Decimal formats with exactly two fraction digits and digit grouping.
func (f *Formatter) Decimal(v float64) string {
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Currency formats an amount prefixed with the narrow currency symbol.
func (f *Formatter) Currency(v float64) string {
	return f.symbol + f.Decimal(v)
}
