package recommendation

import (
	"math"
	"sort"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

// Product is a concrete investment product available to Kenyan investors
type Product struct {
	Name           string   `json:"name"`
	Provider       string   `json:"provider"`
	Category       string   `json:"category"`
	RiskLevel      int      `json:"risk_level"` // 1-5
	ExpectedReturn float64  `json:"expected_return"`
	MinInvestment  float64  `json:"min_investment"` // KES
	HorizonYears   float64  `json:"horizon_years"`
	Goals          []string `json:"goals"`
}

// DefaultProducts is the built-in product shelf
var DefaultProducts = []Product{
	{"CIC Money Market Fund", "CIC Asset Management", MoneyMarket, 1, 0.135, 5_000, 0.5, []string{domain.GoalEmergency, domain.GoalEducation}},
	{"Sanlam Money Market Fund", "Sanlam Investments", MoneyMarket, 1, 0.130, 2_500, 0.5, []string{domain.GoalEmergency, domain.GoalBusiness}},
	{"NCBA Money Market Fund", "NCBA Investment Bank", MoneyMarket, 1, 0.125, 1_000, 0.5, []string{domain.GoalEmergency}},
	{"CBK 91-day Treasury Bill", "Central Bank of Kenya", Bonds, 1, 0.158, 100_000, 0.25, []string{domain.GoalEmergency, domain.GoalBusiness}},
	{"CBK 10-year Treasury Bond", "Central Bank of Kenya", Bonds, 2, 0.140, 50_000, 10, []string{domain.GoalRetirement, domain.GoalEducation}},
	{"Infrastructure Bond IFB1", "Central Bank of Kenya", Bonds, 2, 0.185, 50_000, 12, []string{domain.GoalRetirement, domain.GoalWealth}},
	{"Stima SACCO Deposits", "Stima SACCO", Sacco, 2, 0.110, 1_000, 3, []string{domain.GoalHome, domain.GoalEducation}},
	{"Mwalimu National SACCO", "Mwalimu National", Sacco, 2, 0.100, 1_000, 3, []string{domain.GoalHome, domain.GoalRetirement}},
	{"Kenya Police SACCO", "Kenya Police SACCO", Sacco, 2, 0.105, 1_000, 3, []string{domain.GoalHome}},
	{"Safaricom PLC (SCOM)", "NSE", Equities, 3, 0.120, 5_000, 5, []string{domain.GoalWealth}},
	{"Equity Group Holdings (EQTY)", "NSE", Equities, 3, 0.140, 5_000, 5, []string{domain.GoalWealth, domain.GoalBusiness}},
	{"KCB Group (KCB)", "NSE", Equities, 3, 0.130, 5_000, 5, []string{domain.GoalWealth}},
	{"East African Breweries (EABL)", "NSE", Equities, 3, 0.110, 5_000, 5, []string{domain.GoalWealth, domain.GoalRetirement}},
	{"Britam Equity Fund", "Britam Asset Managers", MutualFunds, 3, 0.120, 1_000, 5, []string{domain.GoalWealth, domain.GoalEducation}},
	{"Old Mutual Balanced Fund", "Old Mutual Investment Group", MutualFunds, 2, 0.110, 1_000, 3, []string{domain.GoalEducation, domain.GoalRetirement}},
	{"ICEA Lion Growth Fund", "ICEA Lion Asset Management", MutualFunds, 3, 0.130, 5_000, 5, []string{domain.GoalWealth}},
	{"ILAM Fahari I-REIT", "ICEA Lion Asset Management", RealEstate, 3, 0.080, 5_000, 5, []string{domain.GoalHome, domain.GoalWealth}},
	{"Acorn D-REIT", "Acorn Investment Management", RealEstate, 3, 0.100, 100_000, 7, []string{domain.GoalHome, domain.GoalWealth}},
	{"Satellite Town Land Banking", "Private developers", RealEstate, 4, 0.120, 500_000, 10, []string{domain.GoalHome, domain.GoalWealth}},
	{"Bitcoin (BTC)", "Licensed exchanges", Crypto, 5, 0.250, 1_000, 5, []string{domain.GoalWealth}},
	{"Ethereum (ETH)", "Licensed exchanges", Crypto, 5, 0.250, 1_000, 5, []string{domain.GoalWealth}},
}

// Strength scoring weights
const (
	baseStrength       = 5.0
	sameRiskBonus      = 2.5
	adjacentRiskBonus  = 1.5
	distantRiskPenalty = -2.0
	goalBonus          = 1.0
	maxGoalBonus       = 2.0
	closeHorizonBonus  = 1.5 // within a year
	nearHorizonBonus   = 0.5 // within three years
	farHorizonPenalty  = -1.0
)

// ProductRecommendation is a scored product for one allocation category
type ProductRecommendation struct {
	Product
	Strength     float64 `json:"recommendation_strength"`
	MeetsMinimum bool    `json:"meets_minimum"`
}

// ProductStrength scores how well a product suits the user on a 0-10 scale
func ProductStrength(p Product, userRiskLevel int, goals []string, horizonYears float64) float64 {
	score := baseStrength

	switch d := abs(p.RiskLevel - userRiskLevel); {
	case d == 0:
		score += sameRiskBonus
	case d == 1:
		score += adjacentRiskBonus
	default:
		score += distantRiskPenalty
	}

	matched := 0.0
	for _, g := range p.Goals {
		for _, ug := range goals {
			if g == ug {
				matched += goalBonus
				break
			}
		}
	}
	score += min(matched, maxGoalBonus)

	switch d := math.Abs(p.HorizonYears - horizonYears); {
	case d <= 1:
		score += closeHorizonBonus
	case d <= 3:
		score += nearHorizonBonus
	default:
		score += farHorizonPenalty
	}

	return formulas.Clamp(score, 0, 10)
}

// SelectProducts ranks the products of one category and returns the top n.
// Ties keep shelf order.
func SelectProducts(shelf []Product, category string, n int, userRiskLevel int, goals []string, horizonYears, amount float64) []ProductRecommendation {
	var picks []ProductRecommendation
	for _, p := range shelf {
		if p.Category != category {
			continue
		}
		picks = append(picks, ProductRecommendation{
			Product:      p,
			Strength:     formulas.Round(ProductStrength(p, userRiskLevel, goals, horizonYears), 2),
			MeetsMinimum: amount >= p.MinInvestment,
		})
	}

	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Strength > picks[j].Strength })
	if n > 0 && len(picks) > n {
		picks = picks[:n]
	}
	return picks
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
