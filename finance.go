package superstaq

// MinVolOutput is the result of a minimal volatility portfolio optimization.
type MinVolOutput struct {
	BestPortfolio []string
	BestRet       float64
	BestStdDev    float64
}

// MaxSharpeOutput is the result of a pseudo Sharpe ratio maximization.
type MaxSharpeOutput struct {
	BestPortfolio   []string
	BestRet         float64
	BestStdDev      float64
	BestSharpeRatio float64
}
