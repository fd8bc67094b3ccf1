package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched with errors.Is
var (
	ErrUnknownInvestmentType  = errors.New("unknown investment type")
	ErrUnknownMarketCondition = errors.New("unknown market condition")
	ErrUnknownRiskProfile     = errors.New("unknown risk profile")
	ErrInvalidPortfolio       = errors.New("invalid portfolio")
	ErrNotFound               = errors.New("not found")
)

// UnknownInvestmentTypeError is returned for investment types missing from the catalog
type UnknownInvestmentTypeError struct {
	InvestmentType string
	Known          []string
}

func (e *UnknownInvestmentTypeError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown investment type %q", e.InvestmentType)
	}
	return fmt.Sprintf("unknown investment type %q (expected one of: %s)", e.InvestmentType, strings.Join(e.Known, ", "))
}

func (e *UnknownInvestmentTypeError) Unwrap() error { return ErrUnknownInvestmentType }

// UnknownMarketConditionError is returned for unrecognized market conditions
type UnknownMarketConditionError struct {
	Condition string
}

func (e *UnknownMarketConditionError) Error() string {
	return fmt.Sprintf("unknown market condition %q (expected one of: normal, volatile, bullish, bearish)", e.Condition)
}

func (e *UnknownMarketConditionError) Unwrap() error { return ErrUnknownMarketCondition }

// UnknownRiskProfileError is returned for unrecognized risk category names
type UnknownRiskProfileError struct {
	Profile string
}

func (e *UnknownRiskProfileError) Error() string {
	return fmt.Sprintf("unknown risk profile %q (expected one of: conservative, moderate, aggressive, very_aggressive)", e.Profile)
}

func (e *UnknownRiskProfileError) Unwrap() error { return ErrUnknownRiskProfile }

// InvalidPortfolioError describes why a portfolio was rejected
type InvalidPortfolioError struct {
	Reason string
	Key    string  // offending investment type, if any
	Sum    float64 // allocation total at rejection time
}

func (e *InvalidPortfolioError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid portfolio: %s (%s)", e.Reason, e.Key)
	}
	return fmt.Sprintf("invalid portfolio: %s (allocations sum to %.4f, expected 100 ± %.2f)", e.Reason, e.Sum, AllocationTolerance)
}

func (e *InvalidPortfolioError) Unwrap() error { return ErrInvalidPortfolio }
