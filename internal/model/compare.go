package model

// ComparisonResult is the service's pairwise comparison of two symbols over
// one look-back window. Maps are keyed by the full (suffixed) symbol.
type ComparisonResult struct {
	Stocks        []string           `json:"stocks"`
	PeriodDays    int                `json:"period_days"`
	Correlation   float64            `json:"correlation"`
	Performance   map[string]float64 `json:"performance"`
	Volatility    map[string]float64 `json:"volatility"`
	CurrentPrices map[string]float64 `json:"current_prices"`
}
