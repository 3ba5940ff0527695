package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errors.New("invalid currency")
var ErrInvalidRate = errors.New("exchange rate must be positive")

type Code string

const (
	EUR Code = "EUR"
	SEK Code = "SEK"
)

func (c Code) Valid() bool {
	return c == EUR || c == SEK
}

// ToEur converts amount to euros. sekToEurRate is the number of SEK per EUR.
func ToEur(amount decimal.Decimal, currency Code, sekToEurRate decimal.Decimal) (decimal.Decimal, error) {
	switch currency {
	case EUR:
		return amount, nil
	case SEK:
		if !sekToEurRate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidRate, sekToEurRate)
		}
		return amount.Div(sekToEurRate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
}
