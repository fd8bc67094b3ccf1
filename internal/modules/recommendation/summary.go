package recommendation

import (
	"fmt"
	"strings"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

// categoryProfile holds long-run annual return and volatility per category
type categoryProfile struct {
	Label      string
	Return     float64
	Volatility float64
	RiskLevel  string
}

var categoryProfiles = map[string]categoryProfile{
	MoneyMarket: {"Money Market Funds", 0.13, 0.02, "low"},
	Bonds:       {"Government & Corporate Bonds", 0.14, 0.05, "low"},
	Sacco:       {"SACCO Savings", 0.11, 0.04, "low"},
	Equities:    {"NSE Equities", 0.12, 0.20, "high"},
	MutualFunds: {"Unit Trusts & Mutual Funds", 0.11, 0.12, "medium"},
	RealEstate:  {"Real Estate & REITs", 0.10, 0.12, "medium"},
	Crypto:      {"Cryptocurrency", 0.25, 0.80, "very_high"},
}

// ReturnSummary is the weighted expected-return picture of an allocation
type ReturnSummary struct {
	ExpectedReturn  float64 `json:"expected_return"`
	Volatility      float64 `json:"volatility"`
	Investment      float64 `json:"investment"`
	ProjectedValue  float64 `json:"projected_value_1y"`
	BestCaseReturn  float64 `json:"best_case_return"`
	WorstCaseReturn float64 `json:"worst_case_return"`
	BestCaseValue   float64 `json:"best_case_value_1y"`
	WorstCaseValue  float64 `json:"worst_case_value_1y"`
}

// SummarizeReturns weights the category constants by the allocation
func SummarizeReturns(alloc Allocation, investment float64) ReturnSummary {
	r, v := 0.0, 0.0
	for c, w := range alloc {
		cp := categoryProfiles[c]
		r += w * cp.Return
		v += w * cp.Volatility
	}

	return ReturnSummary{
		ExpectedReturn:  formulas.Round(r, 4),
		Volatility:      formulas.Round(v, 4),
		Investment:      investment,
		ProjectedValue:  formulas.Round(investment*(1+r), 2),
		BestCaseReturn:  formulas.Round(r+v, 4),
		WorstCaseReturn: formulas.Round(r-v, 4),
		BestCaseValue:   formulas.Round(investment*(1+r+v), 2),
		WorstCaseValue:  formulas.Round(investment*(1+r-v), 2),
	}
}

// Rationale explains a recommendation. Text is rendered from the other fields.
type Rationale struct {
	RiskDescriptor    string   `json:"risk_descriptor"`
	TopCategories     []string `json:"top_categories"`
	ExpectedReturnPct float64  `json:"expected_return_pct"`
	AgeFraming        string   `json:"age_framing"`
	LocationFraming   string   `json:"location_framing,omitempty"`
	Text              string   `json:"text"`
}

// BuildRationale assembles the rationale from the recommendation inputs
func BuildRationale(profile domain.UserFinancialProfile, alloc Allocation, summary ReturnSummary) Rationale {
	category := domain.CategoryForScore(profile.RiskPreferences.RiskScore)

	ranked := alloc.Ranked()
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	labels := make([]string, len(ranked))
	for i, c := range ranked {
		labels[i] = categoryLabel(c)
	}

	r := Rationale{
		RiskDescriptor:    fmt.Sprintf("%s: %s", category, category.Descriptor()),
		TopCategories:     labels,
		ExpectedReturnPct: formulas.Round(summary.ExpectedReturn*100, 2),
		AgeFraming:        ageFraming(profile.Age),
		LocationFraming:   locationFraming(profile.Location),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your %s risk profile (%s), ", strings.ReplaceAll(string(category), "_", " "), category.Descriptor())
	fmt.Fprintf(&b, "this plan focuses on %s ", strings.Join(labels, ", "))
	fmt.Fprintf(&b, "with an expected annual return of about %.1f%%. ", r.ExpectedReturnPct)
	b.WriteString(r.AgeFraming)
	if r.LocationFraming != "" {
		b.WriteString(" ")
		b.WriteString(r.LocationFraming)
	}
	r.Text = b.String()

	return r
}

func categoryLabel(c string) string {
	if cp, ok := categoryProfiles[c]; ok {
		return cp.Label
	}
	return c
}

func ageFraming(age int) string {
	switch {
	case age <= 0:
		return "Review the plan as your circumstances change."
	case age < 30:
		return "At your age you have time to ride out market swings and let growth assets compound."
	case age <= 50:
		return "This stage of life calls for balancing growth with stability for upcoming commitments."
	default:
		return "As you approach retirement the plan leans towards protecting capital and steady income."
	}
}

func locationFraming(location string) string {
	switch strings.ToLower(strings.TrimSpace(location)) {
	case "":
		return ""
	case "nairobi":
		return "In Nairobi you can reach NSE brokers and fund managers in person as well as through mobile apps."
	default:
		return fmt.Sprintf("From %s most of these products can be bought and topped up through M-Pesa.", location)
	}
}
