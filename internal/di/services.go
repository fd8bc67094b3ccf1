package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/config"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/alerts"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/catalog"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/market"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/portfolio"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/recommendation"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/riskprofile"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

// InitializeServices creates the market provider and every engine service.
// A nil provider loads one from cfg.MarketDataPath.
func InitializeServices(container *Container, cfg *config.Config, provider domain.MarketDataProvider, log zerolog.Logger) error {
	container.MarketConditions = catalog.NewMarketConditions(log)
	if err := container.MarketConditions.Update(string(cfg.MarketCondition)); err != nil {
		return fmt.Errorf("failed to set market condition: %w", err)
	}

	container.MarketDeriver = market.NewDeriver(market.DefaultWindow, log)
	if provider == nil {
		static, err := market.LoadProvider(cfg.MarketDataPath, container.MarketDeriver)
		if err != nil {
			return fmt.Errorf("failed to load market data: %w", err)
		}
		provider = static
	}
	container.Market = provider

	container.Catalog = catalog.New(container.MarketConditions, log)

	container.Calculator = riskprofile.NewCalculator(log)
	container.RiskProfiles = riskprofile.NewService(container.Calculator, container.Profiles, log)

	var samplers formulas.SamplerFactory
	if cfg.MonteCarlo.Seed > 0 {
		samplers = formulas.NewSeededSamplerFactory(uint64(cfg.MonteCarlo.Seed))
	}
	container.Analyzer = portfolio.NewAnalyzer(container.Catalog, portfolio.Config{
		VaRConfidence:  cfg.VaR.Confidence,
		VaRHorizonDays: cfg.VaR.HorizonDays,
		Simulations:    cfg.MonteCarlo.Simulations,
		Months:         cfg.MonteCarlo.Months,
		Workers:        cfg.MonteCarlo.Workers,
	}, samplers, log)

	strategy := recommendation.SelectStrategy(cfg.ModelPath, log)
	container.Recommendations = recommendation.NewEngine(strategy, log)

	container.Alerts = alerts.NewService(container.Profiles, container.RiskProfiles, container.Analyzer, container.Market, log)

	log.Info().
		Str("market_condition", string(container.MarketConditions.Current())).
		Str("strategy", container.Recommendations.Strategy()).
		Msg("Services initialized")

	return nil
}
