package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Places is the number of decimal places amounts are rounded to.
	Places = 2
	// Symbol prefixes formatted amounts.
	Symbol = "R$"

	// maxLen bounds the length of a typed amount.
	maxLen = 32
)

var ErrInvalidAmount = errors.New("invalid amount")

// Parse reads an amount typed by a user. Both "10.50" and "10,50" are
// accepted, an optional currency symbol is ignored, and the result is
// rounded to Places. Exponent notation ("1e5") is rejected. Sign is kept:
// rejecting non-positive amounts is the account's job.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, Symbol)
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if len(s) > maxLen || strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return amount.Round(Places), nil
}

// Format renders amount as "R$ 1234.50".
func Format(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", Symbol, amount.StringFixed(Places))
}
