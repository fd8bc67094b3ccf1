package domain

// RiskCategory is the four-step risk classification shared by users and portfolios
type RiskCategory string

const (
	RiskConservative   RiskCategory = "conservative"
	RiskModerate       RiskCategory = "moderate"
	RiskAggressive     RiskCategory = "aggressive"
	RiskVeryAggressive RiskCategory = "very_aggressive"
	// RiskUndefined marks a profile with no questionnaire answers yet.
	// It is not one of the four ordered categories.
	RiskUndefined RiskCategory = "undefined"
)

// RiskCategories lists the ordered categories, least to most risky
var RiskCategories = []RiskCategory{RiskConservative, RiskModerate, RiskAggressive, RiskVeryAggressive}

// User risk tolerance score thresholds (0-100 scale)
const (
	UserConservativeCeiling = 25.0
	UserModerateCeiling     = 50.0
	UserAggressiveCeiling   = 75.0
)

// Portfolio weighted risk score thresholds (catalog 1-5 scale).
// These are not normalized against the user thresholds above.
const (
	PortfolioConservativeCeiling = 1.5
	PortfolioModerateCeiling     = 2.5
	PortfolioAggressiveCeiling   = 3.5
)

// Index returns the ordinal position of the category (0 = conservative)
func (c RiskCategory) Index() (int, bool) {
	for i, rc := range RiskCategories {
		if rc == c {
			return i, true
		}
	}
	return -1, false
}

// IsDefined reports whether the category is one of the four ordered categories
func (c RiskCategory) IsDefined() bool {
	_, ok := c.Index()
	return ok
}

// ParseRiskCategory validates a category name
func ParseRiskCategory(s string) (RiskCategory, error) {
	c := RiskCategory(s)
	if c == RiskUndefined || c.IsDefined() {
		return c, nil
	}
	return "", &UnknownRiskProfileError{Profile: s}
}

// CategoryForScore maps a 0-100 risk tolerance score to a category
func CategoryForScore(score float64) RiskCategory {
	switch {
	case score < UserConservativeCeiling:
		return RiskConservative
	case score < UserModerateCeiling:
		return RiskModerate
	case score < UserAggressiveCeiling:
		return RiskAggressive
	default:
		return RiskVeryAggressive
	}
}

// CategoryForWeightedRisk maps a portfolio weighted risk score (1-5) to a category
func CategoryForWeightedRisk(weighted float64) RiskCategory {
	switch {
	case weighted < PortfolioConservativeCeiling:
		return RiskConservative
	case weighted < PortfolioModerateCeiling:
		return RiskModerate
	case weighted < PortfolioAggressiveCeiling:
		return RiskAggressive
	default:
		return RiskVeryAggressive
	}
}

// CategoryDistance returns the number of steps between two categories.
// Either side being undefined yields ok=false.
func CategoryDistance(a, b RiskCategory) (int, bool) {
	ia, okA := a.Index()
	ib, okB := b.Index()
	if !okA || !okB {
		return 0, false
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return d, true
}

// Descriptor returns a short phrase describing the category
func (c RiskCategory) Descriptor() string {
	switch c {
	case RiskConservative:
		return "capital preservation with steady income"
	case RiskModerate:
		return "balanced growth with controlled risk"
	case RiskAggressive:
		return "long-term growth with higher short-term swings"
	case RiskVeryAggressive:
		return "maximum growth with high volatility"
	default:
		return "an undetermined risk appetite"
	}
}
