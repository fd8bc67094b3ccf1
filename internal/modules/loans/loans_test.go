package loans

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_ThirtyDayLoan(t *testing.T) {
	quotes, err := Compare(decimal.NewFromInt(10_000), 30, nil)
	require.NoError(t, err)
	require.Len(t, quotes, len(DefaultProviders))

	fuliza := quotes[0]
	assert.Equal(t, "Fuliza", fuliza.Provider)
	assert.True(t, decimal.RequireFromString("324.9").Equal(fuliza.Interest), "got %s", fuliza.Interest)
	assert.True(t, decimal.RequireFromString("10324.9").Equal(fuliza.TotalRepayment), "got %s", fuliza.TotalRepayment)

	names := make([]string, len(quotes))
	for i, q := range quotes {
		names[i] = q.Provider
		if i > 0 {
			assert.True(t, quotes[i-1].TotalRepayment.LessThanOrEqual(q.TotalRepayment))
		}
	}
	assert.Equal(t, []string{"Fuliza", "M-Shwari", "KCB M-Pesa", "Tala", "Branch"}, names)
	assert.True(t, decimal.NewFromInt(750).Equal(quotes[1].Interest))
}

func TestProvider_MonthlyRateIsProrated(t *testing.T) {
	p := Provider{Name: "KCB M-Pesa", Rate: decimal.RequireFromString("8.64"), Basis: Monthly}

	interest, err := p.Interest(decimal.NewFromInt(10_000), 45)
	require.NoError(t, err)
	assert.Equal(t, "1296", interest.String())

	interest, err = p.Interest(decimal.NewFromInt(3_333), 7)
	require.NoError(t, err)
	assert.Equal(t, "67.19", interest.String())
}

func TestProvider_UnknownBasis(t *testing.T) {
	_, err := Provider{Name: "Mystery", Rate: decimal.NewFromInt(5), Basis: "weekly"}.Interest(decimal.NewFromInt(100), 7)
	assert.Error(t, err)
}

func TestCompare_InvalidInput(t *testing.T) {
	_, err := Compare(decimal.Zero, 30, nil)
	assert.Error(t, err)

	_, err = Compare(decimal.NewFromInt(1000), 0, nil)
	assert.Error(t, err)
}
