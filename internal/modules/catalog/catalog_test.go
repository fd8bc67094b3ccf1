package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

func newTestCatalog() *Catalog {
	return New(NewMarketConditions(zerolog.Nop()), zerolog.Nop())
}

func TestGetInvestmentRisk(t *testing.T) {
	c := newTestCatalog()

	e, err := c.GetInvestmentRisk(TreasuryBills)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.RiskScore)
	assert.Equal(t, domain.LiquidityHigh, e.Liquidity)
}

func TestGetInvestmentRisk_Unknown(t *testing.T) {
	c := newTestCatalog()

	_, err := c.GetInvestmentRisk("unknown_asset")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownInvestmentType))

	var typed *domain.UnknownInvestmentTypeError
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, "unknown_asset", typed.InvestmentType)
	assert.Contains(t, typed.Known, Crypto)
}

func TestUpdateMarketConditions_ScalesReads(t *testing.T) {
	c := newTestCatalog()

	base, err := c.GetInvestmentRisk(Crypto)
	require.NoError(t, err)

	require.NoError(t, c.UpdateMarketConditions("bearish"))

	adjusted, err := c.GetInvestmentRisk(Crypto)
	require.NoError(t, err)
	assert.InDelta(t, base.RiskScore*1.1, adjusted.RiskScore, 1e-9)
	assert.InDelta(t, base.Volatility*1.1, adjusted.Volatility, 1e-9)
	assert.Equal(t, base.ExpectedReturn, adjusted.ExpectedReturn, "expected return is not market adjusted")

	require.NoError(t, c.UpdateMarketConditions("normal"))
	again, err := c.GetInvestmentRisk(Crypto)
	require.NoError(t, err)
	assert.Equal(t, base, again, "stored rows must not be mutated")
}

func TestUpdateMarketConditions_Factors(t *testing.T) {
	tests := []struct {
		condition string
		factor    float64
	}{
		{"normal", 1.0},
		{"volatile", 1.2},
		{"bullish", 0.9},
		{"bearish", 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			c := newTestCatalog()
			require.NoError(t, c.UpdateMarketConditions(tt.condition))

			e, err := c.GetInvestmentRisk(NSEBlueChips)
			require.NoError(t, err)
			assert.InDelta(t, 3.0*tt.factor, e.RiskScore, 1e-9)
			assert.InDelta(t, 0.20*tt.factor, e.Volatility, 1e-9)
		})
	}
}

func TestUpdateMarketConditions_Unknown(t *testing.T) {
	c := newTestCatalog()
	require.NoError(t, c.UpdateMarketConditions("volatile"))

	err := c.UpdateMarketConditions("sideways")
	assert.ErrorIs(t, err, domain.ErrUnknownMarketCondition)
	assert.Equal(t, domain.MarketVolatile, c.Conditions().Current(), "failed update must keep the previous condition")
}

func TestMarketConditions_ConcurrentAccess(t *testing.T) {
	c := newTestCatalog()
	conditions := []string{"normal", "volatile", "bullish", "bearish"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = c.UpdateMarketConditions(conditions[i%len(conditions)])
		}(i)
		go func() {
			defer wg.Done()
			_, _ = c.GetInvestmentRisk(EquityFunds)
		}()
	}
	wg.Wait()

	assert.True(t, c.Conditions().Factor() > 0)
}

func TestCompareInvestments(t *testing.T) {
	c := newTestCatalog()

	cmp, err := c.CompareInvestments([]string{NSEBlueChips, TreasuryBills, MoneyMarketFunds, RealEstate})
	require.NoError(t, err)

	require.Len(t, cmp.Rows, 4)
	assert.Equal(t, NSEBlueChips, cmp.Rows[0].InvestmentType, "rows keep input order")
	assert.Equal(t, TreasuryBills, cmp.Summary.LowestRisk)
	assert.Equal(t, RealEstate, cmp.Summary.HighestRisk)
	assert.Equal(t, MoneyMarketFunds, cmp.Summary.LowestMinInvestment)
	assert.Equal(t, []string{NSEBlueChips, TreasuryBills, MoneyMarketFunds}, cmp.Summary.HighLiquidity)
}

func TestCompareInvestments_UnknownFailsFast(t *testing.T) {
	c := newTestCatalog()

	_, err := c.CompareInvestments([]string{TreasuryBills, "gold_bars"})
	assert.ErrorIs(t, err, domain.ErrUnknownInvestmentType)
}

func TestCompareInvestments_Empty(t *testing.T) {
	cmp, err := newTestCatalog().CompareInvestments(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Rows)
	assert.Empty(t, cmp.Summary.LowestRisk)
}

func TestDefaultEntries_Invariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range DefaultEntries {
		assert.False(t, seen[e.InvestmentType], "duplicate %s", e.InvestmentType)
		seen[e.InvestmentType] = true
		assert.GreaterOrEqual(t, e.RiskScore, 1.0, e.InvestmentType)
		assert.LessOrEqual(t, e.RiskScore, 5.0, e.InvestmentType)
		assert.Contains(t, []domain.Liquidity{domain.LiquidityHigh, domain.LiquidityMedium, domain.LiquidityLow}, e.Liquidity)
	}
}
