package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEur(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency Code
		rate     string
		want     string
	}{
		{"euros pass through", "250.40", EUR, "11.36", "250.4"},
		{"euros ignore a zero rate", "12", EUR, "0", "12"},
		{"kronor are divided by the rate", "1136", SEK, "11.36", "100"},
		{"small kronor amount", "56.80", SEK, "11.36", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToEur(decimal.RequireFromString(tt.amount), tt.currency, decimal.RequireFromString(tt.rate))

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestToEur_UnknownCurrency(t *testing.T) {
	_, err := ToEur(decimal.NewFromInt(10), Code("USD"), decimal.NewFromInt(10))

	assert.ErrorIs(t, err, ErrInvalidCurrency)
	assert.Contains(t, err.Error(), "USD")
}

func TestToEur_NonPositiveRate(t *testing.T) {
	for _, rate := range []string{"0", "-11.36"} {
		_, err := ToEur(decimal.NewFromInt(10), SEK, decimal.RequireFromString(rate))

		assert.ErrorIs(t, err, ErrInvalidRate)
	}
}

func TestCode_Valid(t *testing.T) {
	assert.True(t, EUR.Valid())
	assert.True(t, SEK.Valid())
	assert.False(t, Code("eur").Valid())
	assert.False(t, Code("").Valid())
}
