package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TradingDaysPerYear is the annualization base for daily horizons
const TradingDaysPerYear = 252

// ZScore returns the standard normal quantile for a one-tailed confidence level.
// Confidence outside (0, 1) yields 0.
func ZScore(confidence float64) float64 {
	if confidence <= 0 || confidence >= 1 {
		return 0
	}
	return distuv.UnitNormal.Quantile(confidence)
}

// ParametricVaR estimates Value at Risk assuming normally distributed returns:
//
//	VaR = value × volatility × z(confidence) × sqrt(horizonDays / 252)
//
// The result is an absolute amount and is never negative.
func ParametricVaR(value, annualVolatility, confidence float64, horizonDays int) float64 {
	if horizonDays <= 0 || value == 0 || annualVolatility == 0 {
		return 0
	}
	v := value * annualVolatility * ZScore(confidence) * math.Sqrt(float64(horizonDays)/TradingDaysPerYear)
	return math.Abs(v)
}

// SharpeRatio returns (expectedReturn - riskFreeRate) / volatility, all annual
// fractions. Zero volatility yields 0.
func SharpeRatio(expectedReturn, riskFreeRate, volatility float64) float64 {
	if volatility == 0 {
		return 0
	}
	return (expectedReturn - riskFreeRate) / volatility
}

// MonthlyParameters converts annual return and volatility into monthly ones
func MonthlyParameters(annualReturn, annualVolatility float64) (mean, vol float64) {
	return annualReturn / 12, annualVolatility / math.Sqrt(12)
}

// InflationTarget returns the value needed to keep pace with inflation over months
func InflationTarget(value, annualInflation float64, months int) float64 {
	return value * math.Pow(1+annualInflation, float64(months)/12)
}
