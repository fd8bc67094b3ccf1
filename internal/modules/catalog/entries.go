package catalog

import "github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"

// Entry is one investment risk catalog row. RiskScore is on a 1-5 scale,
// Volatility, ExpectedReturn and Beta are annualized fractions.
type Entry struct {
	InvestmentType string           `json:"investment_type"`
	RiskScore      float64          `json:"risk_score"`
	Volatility     float64          `json:"volatility"`
	Description    string           `json:"description"`
	MinInvestment  float64          `json:"min_investment"` // KES
	Liquidity      domain.Liquidity `json:"liquidity"`
	ExpectedReturn float64          `json:"expected_return"`
	Beta           float64          `json:"beta"`
}

// Investment types known to the default catalog
const (
	TreasuryBills    = "treasury_bills"
	TreasuryBonds    = "treasury_bonds"
	MoneyMarketFunds = "money_market_funds"
	FixedDeposits    = "fixed_deposits"
	SaccoDeposits    = "sacco_deposits"
	CorporateBonds   = "corporate_bonds"
	BalancedFunds    = "balanced_funds"
	NSEBlueChips     = "nse_blue_chips"
	EquityFunds      = "equity_funds"
	REITs            = "reits"
	NSEGrowthStocks  = "nse_growth_stocks"
	RealEstate       = "real_estate"
	OffshoreFunds    = "offshore_funds"
	Crypto           = "crypto"
)

// DefaultEntries is the static Kenyan investment catalog
var DefaultEntries = []Entry{
	{TreasuryBills, 1.0, 0.02, "CBK 91/182/364-day Treasury Bills", 100_000, domain.LiquidityHigh, 0.158, 0.00},
	{TreasuryBonds, 1.5, 0.05, "Government of Kenya 2-30 year Treasury Bonds", 50_000, domain.LiquidityMedium, 0.140, 0.10},
	{MoneyMarketFunds, 1.2, 0.02, "Unit trust money market funds (CIC, Sanlam, NCBA)", 1_000, domain.LiquidityHigh, 0.130, 0.05},
	{FixedDeposits, 1.1, 0.01, "Bank fixed deposit accounts", 10_000, domain.LiquidityLow, 0.090, 0.00},
	{SaccoDeposits, 1.8, 0.04, "SACCO member deposits and dividend-earning shares", 1_000, domain.LiquidityMedium, 0.100, 0.10},
	{CorporateBonds, 2.2, 0.08, "NSE-listed corporate bonds", 100_000, domain.LiquidityMedium, 0.130, 0.30},
	{BalancedFunds, 2.5, 0.10, "Balanced unit trust funds mixing equity and fixed income", 5_000, domain.LiquidityHigh, 0.110, 0.50},
	{NSEBlueChips, 3.0, 0.20, "Large-cap NSE shares (Safaricom, EABL, KCB, Equity)", 5_000, domain.LiquidityHigh, 0.120, 0.90},
	{EquityFunds, 3.2, 0.18, "Equity unit trust funds", 5_000, domain.LiquidityHigh, 0.130, 0.95},
	{REITs, 3.0, 0.15, "Listed real estate investment trusts", 5_000, domain.LiquidityMedium, 0.080, 0.60},
	{NSEGrowthStocks, 3.8, 0.30, "Small and mid-cap NSE growth shares", 5_000, domain.LiquidityMedium, 0.160, 1.30},
	{RealEstate, 3.5, 0.12, "Direct land and property ownership", 1_000_000, domain.LiquidityLow, 0.100, 0.40},
	{OffshoreFunds, 3.6, 0.22, "Offshore equity feeder funds in USD", 50_000, domain.LiquidityMedium, 0.110, 1.00},
	{Crypto, 5.0, 0.80, "Cryptocurrencies (Bitcoin, Ethereum)", 1_000, domain.LiquidityHigh, 0.250, 2.00},
}
