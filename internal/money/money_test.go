package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jask/riparto/internal/apportion"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":             "0",
		"   ":          "0",
		"500":          "500",
		"1000.50":      "1000.5",
		"1000,50":      "1000.5",
		"1.234,56":     "1234.56",
		"1,234.56":     "1234.56",
		"1.234.567":    "1234567",
		"1,234,567":    "1234567",
		" 12 345,6 ":   "12345.6",
		"-0,01":        "-0.01",
		"0.005":        "0.005",
		"1\u00a0000,5": "1000.5",
	}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		require.True(t, got.Equal(decimal.RequireFromString(want)), "Parse(%q) = %s, want %s", in, got, want)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"abc", "12a", "1,2,3.4.5", "--1"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestParseUnits(t *testing.T) {
	t.Parallel()

	n, err := ParseUnits("99,5")
	require.NoError(t, err)
	require.Equal(t, int64(100), n)

	n, err = ParseUnits("12.4")
	require.NoError(t, err)
	require.Equal(t, int64(12), n)

	_, err = ParseUnits("x")
	require.Error(t, err)

	n, err = ParseUnits("9223372036854775807")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), n)

	_, err = ParseUnits("9223372036854775807,5")
	require.ErrorIs(t, err, apportion.ErrOutOfRange)
	_, err = ParseUnits("18446744073709551617")
	require.ErrorIs(t, err, apportion.ErrOutOfRange)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.234.567,89", Format(language.Italian, decimal.RequireFromString("1234567.89")))
	require.Equal(t, "0,50", Format(language.Italian, decimal.RequireFromString("0.5")))
	require.Equal(t, "1.234.567,89", Format(language.Spanish, decimal.RequireFromString("1234567.89")))
	require.Equal(t, "1,234,567.89", Format(language.English, decimal.RequireFromString("1234567.89")))
	require.Equal(t, "150,00", FormatMinor(language.Italian, 15000))
	require.Equal(t, "-0,50", Format(language.Italian, decimal.RequireFromString("-0.5")))
	require.Equal(t, "1,01", Format(language.Italian, decimal.RequireFromString("1.005")))
}

func TestFormatLargeValuesExactly(t *testing.T) {
	t.Parallel()

	require.Equal(t, "92.233.720.368.547.758,07", FormatMinor(language.Italian, math.MaxInt64))
	require.Equal(t, "90.071.992.547.409,93", FormatMinor(language.Italian, 1<<53+1))
	require.Equal(t, "12345678901234567890,12", Format(language.Italian, decimal.RequireFromString("12345678901234567890.12")))
}
