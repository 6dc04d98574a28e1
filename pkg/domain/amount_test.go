package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5,240.00", "5240"},
		{"12,800.00", "12800"},
		{"100", "100"},
		{" 1,000,000.55 ", "1000000.55"},
		{"0.5", "0.5"},
	}

	for _, c := range cases {
		got, err := ParseAmount(c.in)
		require.NoError(t, err, c.in)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)), "%s: got %s", c.in, got)
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{
		"", "  ", "abc", "12.3.4", "$100",
		"1e3", "5e-1", "1e200000", "1E2",
		"1,,2,,3", "12,34", "1,2345.00", ",100", "100,", "1.", ".5",
		"0.001", "0.004", "10.123",
		"1234567890123456789012345",
	} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":          "0.00",
		"5":          "5.00",
		"999.999":    "1,000.00",
		"5240":       "5,240.00",
		"12800.5":    "12,800.50",
		"1234567.89": "1,234,567.89",
		"-8740":      "-8,740.00",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestNormalizeAmount(t *testing.T) {
	got, err := NormalizeAmount("1240.5")
	assert.Nil(t, err)
	assert.Equal(t, "1,240.50", got)

	_, err = NormalizeAmount("nope")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAnalyticsString(t *testing.T) {
	a := Analytics{
		TotalSent:         decimal.RequireFromString("8740"),
		TotalReceived:     decimal.RequireFromString("21720"),
		NetBalance:        decimal.RequireFromString("12980"),
		TotalTransactions: 4,
	}
	assert.Equal(t, "sent=8,740.00 received=21,720.00 net=12,980.00 transactions=4", a.String())
}
