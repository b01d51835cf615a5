package utils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "150", want: "150.00"},
		{in: "150.5", want: "150.50"},
		{in: " 1,250.75 ", want: "1250.75"},
		{in: "-20", want: "-20.00"},
		{in: "0.001", wantErr: true},
		{in: "12.345", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "100000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, FormatMoney(got))
	}
}

func TestCentsRoundTrip(t *testing.T) {
	t.Parallel()

	amount := decimal.RequireFromString("-150.07")
	cents, err := ToCents(amount)
	require.NoError(t, err)
	require.Equal(t, int64(-15007), cents)
	require.True(t, FromCents(cents).Equal(amount))
	require.Equal(t, "-150.07", FromCents(cents).String())
}

func TestFormatMoneyWithCurrency(t *testing.T) {
	t.Parallel()

	require.Equal(t, "25.00 USD", FormatMoneyWithCurrency(decimal.NewFromInt(25), "USD"))
	require.Equal(t, "25.00", FormatMoneyWithCurrency(decimal.NewFromInt(25), ""))
	require.True(t, HasMoneyScale(decimal.RequireFromString("1.500")))
	require.False(t, HasMoneyScale(decimal.RequireFromString("1.505")))
}

func TestToCentsRejectsUnstorableAmounts(t *testing.T) {
	t.Parallel()

	_, err := ToCents(decimal.RequireFromString("200000000000000000.00"))
	require.Error(t, err)

	_, err = ToCents(decimal.RequireFromString("-92233720368547758.09"))
	require.Error(t, err)

	_, err = ToCents(decimal.RequireFromString("1.005"))
	require.Error(t, err)

	cents, err := ToCents(decimal.RequireFromString("92233720368547758.07"))
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), cents)
}

func TestInSafeRange(t *testing.T) {
	t.Parallel()

	require.True(t, InSafeRange(decimal.RequireFromString("92233720368547.75")))
	require.True(t, InSafeRange(decimal.RequireFromString("-92233720368547.75")))
	require.False(t, InSafeRange(decimal.RequireFromString("92233720368547.76")))
}
