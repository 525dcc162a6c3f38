package pricing

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

const (
	DefaultLocale   = "pt-BR"
	DefaultCurrency = "BRL"
	DefaultSymbol   = "R$"
)

// Formatter renders monetary values for a single display locale and currency.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	symbol  string
	group   string
	decimal string
}

// NewFormatter builds a formatter. An empty symbol falls back to the ISO code.
func NewFormatter(locale, currencyCode, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("pricing: display locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("pricing: display currency %q: %w", currencyCode, err)
	}
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = unit.String()
	}
	group, dec := separators(message.NewPrinter(tag))
	return &Formatter{
		tag:     tag,
		unit:    unit,
		symbol:  symbol,
		group:   group,
		decimal: dec,
	}, nil
}

// separators reads the locale's grouping and decimal marks off a sample
// number, e.g. "." and "," for pt-BR.
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(2)))
	var marks []string
	var cur strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				marks = append(marks, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(marks) {
	case 0:
		return "", "."
	case 1:
		return "", marks[0]
	}
	return marks[0], marks[len(marks)-1]
}

// DefaultFormatter formats Brazilian reais.
func DefaultFormatter() *Formatter {
	f, err := NewFormatter(DefaultLocale, DefaultCurrency, DefaultSymbol)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Symbol() string { return f.symbol }

func (f *Formatter) CurrencyCode() string { return f.unit.String() }

func (f *Formatter) Locale() string { return f.tag.String() }

// Amount formats d with two fraction digits and locale grouping, e.g. "1.919,04".
// Rounding is half away from zero and works on the exact decimal.
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	b.WriteString(f.decimal)
	b.WriteString(frac)
	return b.String()
}

// Currency prefixes Amount with the currency symbol, e.g. "R$ 1.919,04".
func (f *Formatter) Currency(d decimal.Decimal) string {
	return f.symbol + " " + f.Amount(d)
}

// Formatted is the string form of a DerivedPricing. Fields are empty for
// custom quote plans.
type Formatted struct {
	OriginalPrice   string `json:"original_price,omitempty"`
	DiscountAmount  string `json:"discount_amount,omitempty"`
	DiscountedPrice string `json:"discounted_price,omitempty"`
	MonthlyPrice    string `json:"monthly_price,omitempty"`
	MonthlyAmount   string `json:"monthly_amount,omitempty"`
	Savings         string `json:"savings,omitempty"`
}

// Format converts every present numeric field of p.
func (f *Formatter) Format(p domain.DerivedPricing) Formatted {
	var out Formatted
	if p.BasePrice != nil {
		out.OriginalPrice = f.Currency(*p.BasePrice)
	}
	if p.DiscountAmount != nil {
		out.DiscountAmount = f.Currency(*p.DiscountAmount)
	}
	if p.DiscountedPrice != nil {
		out.DiscountedPrice = f.Currency(*p.DiscountedPrice)
	}
	if p.MonthlyPrice != nil {
		out.MonthlyPrice = f.Currency(*p.MonthlyPrice)
		out.MonthlyAmount = f.Amount(*p.MonthlyPrice)
	}
	if p.Savings != nil {
		out.Savings = f.Currency(*p.Savings)
	}
	return out
}
