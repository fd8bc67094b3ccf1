package domain

import "time"

// MarketCondition is the process-wide market regime applied to catalog reads
type MarketCondition string

const (
	MarketNormal   MarketCondition = "normal"
	MarketVolatile MarketCondition = "volatile"
	MarketBullish  MarketCondition = "bullish"
	MarketBearish  MarketCondition = "bearish"
)

var marketConditionFactors = map[MarketCondition]float64{
	MarketNormal:   1.0,
	MarketVolatile: 1.2,
	MarketBullish:  0.9,
	MarketBearish:  1.1,
}

// ParseMarketCondition validates a market condition name
func ParseMarketCondition(s string) (MarketCondition, error) {
	c := MarketCondition(s)
	if _, ok := marketConditionFactors[c]; !ok {
		return "", &UnknownMarketConditionError{Condition: s}
	}
	return c, nil
}

// Factor returns the multiplier applied to risk score and volatility.
// Unknown conditions are rejected by ParseMarketCondition and never reach here.
func (c MarketCondition) Factor() float64 {
	if f, ok := marketConditionFactors[c]; ok {
		return f
	}
	return 1.0
}

// Sentiment is the aggregate news/market sentiment
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// MarketSnapshot is the normalized market data handed in by the data provider.
// Rates and changes are expressed in percent (12.5 means 12.5%).
type MarketSnapshot struct {
	VolatilityByMarket map[string]float64 `json:"volatility_by_market"` // 0-100 risk score per market
	InterestRate       float64            `json:"interest_rate"`        // CBK central bank rate
	TreasuryBillRate   float64            `json:"treasury_bill_rate"`   // 91-day T-bill yield
	InflationRate      float64            `json:"inflation_rate"`
	GDPGrowth          float64            `json:"gdp_growth"`
	SectorPerformance  map[string]float64 `json:"sector_performance"`
	BenchmarkChange    float64            `json:"benchmark_change"` // NSE 20 change over the lookback window
	Sentiment          Sentiment          `json:"sentiment"`
	AsOf               time.Time          `json:"as_of"`
}

// MarketRiskScore aggregates the per-market scores into a single 0-100 value
func (s MarketSnapshot) MarketRiskScore() float64 {
	if len(s.VolatilityByMarket) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.VolatilityByMarket {
		sum += v
	}
	return sum / float64(len(s.VolatilityByMarket))
}

// ShortTermRate returns the T-bill rate, falling back to the policy rate
func (s MarketSnapshot) ShortTermRate() float64 {
	if s.TreasuryBillRate > 0 {
		return s.TreasuryBillRate
	}
	return s.InterestRate
}

// RiskFreeRate returns the short-term rate as an annual fraction
func (s MarketSnapshot) RiskFreeRate() float64 {
	return s.ShortTermRate() / 100
}
