package recommendation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

// FeatureNames is the input layout expected by allocation models
var FeatureNames = append([]string{"age_bracket", "income_bracket", "financial_literacy", "risk_bracket"}, goalFeatureNames()...)

func goalFeatureNames() []string {
	names := make([]string, len(domain.KnownGoals))
	for i, g := range domain.KnownGoals {
		names[i] = "goal_" + g
	}
	return names
}

// Features builds the model input vector for a profile
func Features(p domain.UserFinancialProfile) []float64 {
	x := make([]float64, 0, len(FeatureNames))
	x = append(x,
		float64(ageBracket(p.Age)),
		float64(domain.IncomeBracket(p.Income)),
		formulas.Clamp(float64(p.FinancialLiteracy), 1, 10),
		float64(BracketForScore(p.RiskPreferences.RiskScore).Level()),
	)
	for _, g := range domain.KnownGoals {
		if p.HasGoal(g) {
			x = append(x, 1)
		} else {
			x = append(x, 0)
		}
	}
	return x
}

func ageBracket(age int) int {
	switch domain.AgeGroupForAge(age) {
	case domain.AgeGroup18To25:
		return 1
	case domain.AgeGroup26To35:
		return 2
	case domain.AgeGroup36To45:
		return 3
	case domain.AgeGroup46To55:
		return 4
	case domain.AgeGroup56To65:
		return 5
	default:
		return 6
	}
}

// LinearModel predicts one raw score per category as W·x + b
type LinearModel struct {
	Categories []string    `json:"categories"`
	Weights    [][]float64 `json:"weights"` // one row per category, one column per feature
	Bias       []float64   `json:"bias"`

	w *mat.Dense
	b *mat.VecDense
}

// LoadLinearModel reads a JSON model file
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", path, err)
	}
	if err := m.init(); err != nil {
		return nil, fmt.Errorf("invalid model %s: %w", path, err)
	}
	return &m, nil
}

// NewLinearModel builds a model from weights and bias
func NewLinearModel(categories []string, weights [][]float64, bias []float64) (*LinearModel, error) {
	m := &LinearModel{Categories: categories, Weights: weights, Bias: bias}
	if err := m.init(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *LinearModel) init() error {
	rows, cols := len(m.Categories), len(FeatureNames)
	if rows == 0 {
		return fmt.Errorf("model has no categories")
	}
	if len(m.Weights) != rows {
		return fmt.Errorf("model has %d weight rows for %d categories", len(m.Weights), rows)
	}
	if m.Bias == nil {
		m.Bias = make([]float64, rows)
	}
	if len(m.Bias) != rows {
		return fmt.Errorf("model has %d bias terms for %d categories", len(m.Bias), rows)
	}
	for i, c := range m.Categories {
		if !isCategory(c) {
			return fmt.Errorf("unknown category %q", c)
		}
		if len(m.Weights[i]) != cols {
			return fmt.Errorf("category %s has %d weights, expected %d", c, len(m.Weights[i]), cols)
		}
	}

	flat := make([]float64, 0, rows*cols)
	for _, row := range m.Weights {
		flat = append(flat, row...)
	}
	m.w = mat.NewDense(rows, cols, flat)
	m.b = mat.NewVecDense(rows, append([]float64(nil), m.Bias...))
	return nil
}

// Predict returns the raw per-category outputs for a feature vector
func (m *LinearModel) Predict(features []float64) (Allocation, error) {
	if len(features) != len(FeatureNames) {
		return nil, fmt.Errorf("expected %d features, got %d", len(FeatureNames), len(features))
	}
	var y mat.VecDense
	y.MulVec(m.w, mat.NewVecDense(len(features), append([]float64(nil), features...)))
	y.AddVec(&y, m.b)

	out := make(Allocation, len(m.Categories))
	for i, c := range m.Categories {
		out[c] = y.AtVec(i)
	}
	return out, nil
}

// ModelBasedStrategy allocates with a trained linear model
type ModelBasedStrategy struct {
	model *LinearModel
	log   zerolog.Logger
}

// NewModelBasedStrategy wraps a loaded model
func NewModelBasedStrategy(model *LinearModel, log zerolog.Logger) *ModelBasedStrategy {
	return &ModelBasedStrategy{model: model, log: log.With().Str("component", "model_based_strategy").Logger()}
}

func (s *ModelBasedStrategy) Name() string { return "model_based" }

// Allocate predicts raw scores, floors negatives at zero and normalizes to 1
func (s *ModelBasedStrategy) Allocate(profile domain.UserFinancialProfile) (Allocation, error) {
	raw, err := s.model.Predict(Features(profile))
	if err != nil {
		return nil, err
	}
	alloc := raw.Normalize()
	if alloc.Sum() == 0 {
		return nil, fmt.Errorf("model produced no positive allocation for %s", profile.UserID)
	}
	return alloc, nil
}

// SelectStrategy returns the model-based strategy when a model loads from
// modelPath, otherwise the rule-based one.
func SelectStrategy(modelPath string, log zerolog.Logger) AllocationStrategy {
	if modelPath == "" {
		return NewRuleBasedStrategy(log)
	}
	model, err := LoadLinearModel(modelPath)
	if err != nil {
		log.Warn().Err(err).Msg("Allocation model unavailable, using rule-based strategy")
		return NewRuleBasedStrategy(log)
	}
	log.Info().Str("path", modelPath).Int("categories", len(model.Categories)).Msg("Loaded allocation model")
	return NewModelBasedStrategy(model, log)
}
