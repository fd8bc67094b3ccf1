package portfolio

import (
	"context"
	"fmt"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

const (
	suitabilityThreshold       = 70.0
	categoryStepPenalty        = 20.0
	diversificationTarget      = 60.0
	conservativeLowLiquidityPc = 20.0
)

// Suitability describes how well a portfolio fits a user's risk profile
type Suitability struct {
	MatchScore      float64             `json:"match_score"`
	IsSuitable      bool                `json:"is_suitable"`
	PortfolioRisk   domain.RiskCategory `json:"portfolio_risk"`
	UserRisk        domain.RiskCategory `json:"user_risk"`
	Recommendations []string            `json:"recommendations"`
	Metrics         Metrics             `json:"metrics"`
}

// EvaluatePortfolioSuitability scores a portfolio against a user risk profile.
//
// The portfolio category comes from the weighted catalog score (1.5/2.5/3.5
// thresholds) and the user category from the tolerance score (25/50/75). The
// two categories are compared by name without normalizing the scales. A user
// category outside the known set fails with UnknownRiskProfileError.
func (a *Analyzer) EvaluatePortfolioSuitability(ctx context.Context, p domain.Portfolio, user domain.UserRiskProfile) (Suitability, error) {
	if _, err := domain.ParseRiskCategory(string(user.RiskProfile)); err != nil {
		return Suitability{}, err
	}

	m, err := a.CalculatePortfolioMetrics(ctx, p, MetricsOptions{})
	if err != nil {
		return Suitability{}, err
	}

	s := Suitability{
		MatchScore:      100,
		PortfolioRisk:   m.RiskProfile,
		UserRisk:        user.RiskProfile,
		Recommendations: []string{},
		Metrics:         m,
	}

	if steps, ok := domain.CategoryDistance(m.RiskProfile, user.RiskProfile); ok {
		if steps > 0 {
			s.MatchScore -= categoryStepPenalty * float64(steps)
			s.Recommendations = append(s.Recommendations, riskDirectionAdvice(m.RiskProfile, user.RiskProfile))
		}
	} else {
		s.Recommendations = append(s.Recommendations,
			"Complete the risk assessment questionnaire so the portfolio can be matched to your risk tolerance.")
	}

	if m.DiversificationScore < diversificationTarget {
		s.MatchScore -= (diversificationTarget - m.DiversificationScore) / 2
		s.Recommendations = append(s.Recommendations,
			"Spread your investments across more asset classes to improve diversification.")
	}

	if user.RiskProfile == domain.RiskConservative {
		lowPct := m.LiquidityProfile[domain.LiquidityLow] * 100
		if lowPct > conservativeLowLiquidityPc {
			s.MatchScore -= lowPct - conservativeLowLiquidityPc
			s.Recommendations = append(s.Recommendations, fmt.Sprintf(
				"%.0f%% of the portfolio is in low-liquidity assets; keep it under %.0f%% and favour money market funds or Treasury Bills.",
				lowPct, conservativeLowLiquidityPc))
		}
	}

	s.MatchScore = formulas.Round(formulas.Clamp(s.MatchScore, 0, 100), 2)
	s.IsSuitable = s.MatchScore >= suitabilityThreshold

	a.log.Debug().
		Str("user_id", user.UserID).
		Float64("match_score", s.MatchScore).
		Bool("suitable", s.IsSuitable).
		Msg("Evaluated portfolio suitability")

	return s, nil
}

func riskDirectionAdvice(portfolio, user domain.RiskCategory) string {
	pi, _ := portfolio.Index()
	ui, _ := user.Index()
	if pi > ui {
		return fmt.Sprintf("The portfolio is %s while your profile is %s; shift towards lower-risk assets such as Treasury Bills or money market funds.",
			portfolio, user)
	}
	return fmt.Sprintf("The portfolio is %s while your profile is %s; consider adding growth assets such as NSE equities or equity funds.",
		portfolio, user)
}
