package money_test

import (
	"testing"

	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    money.Code
		wantErr bool
	}{
		{"upper case", "GBP", money.GBP, false},
		{"lower case", "usd", money.USD, false},
		{"padded", "  eur ", money.EUR, false},
		{"unsupported", "JPY", "", true},
		{"empty", "", "", true},
		{"garbage", "INVALID", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseCode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	t.Parallel()
	for _, c := range money.Codes() {
		assert.True(t, c.IsValid(), "%s should be valid", c)
	}
	assert.False(t, money.Code("usd").IsValid())
	assert.False(t, money.Code("KWD").IsValid())
}

func TestCodesReturnsCopy(t *testing.T) {
	t.Parallel()
	codes := money.Codes()
	require.Len(t, codes, 3)
	codes[0] = "XXX"
	assert.Equal(t, money.USD, money.Codes()[0])
}

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		amount   money.Amount
		currency money.Code
		expected string
	}{
		{0, money.GBP, "0.00 GBP"},
		{5, money.USD, "0.05 USD"},
		{1234, money.EUR, "12.34 EUR"},
		{-250, money.GBP, "-2.50 GBP"},
		{100000, money.USD, "1000.00 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.Format(tt.amount, tt.currency))
		})
	}
}
