package model

import "time"

// StockPoint is one day of a symbol's series as served by the data service.
// The service computes every derived field; any of them may be absent (nil)
// for early rows where the rolling window is not yet full.
type StockPoint struct {
	Date            time.Time
	Open            float64
	High            float64
	Low             float64
	Close           float64
	Volume          int64
	DailyReturn     *float64
	MovingAvg7      *float64
	Week52High      *float64
	Week52Low       *float64
	VolatilityScore *float64
}

// StockSummary holds the per-symbol headline metrics. Recomputed by the
// service on every fetch; never cached across period changes.
type StockSummary struct {
	Symbol       string   `json:"symbol"`
	CurrentPrice *float64 `json:"current_price"`
	DailyReturn  *float64 `json:"daily_return"`
	Week52High   *float64 `json:"week52_high"`
	Week52Low    *float64 `json:"week52_low"`
	AverageClose *float64 `json:"average_close"`
	Volatility   *float64 `json:"volatility"`
}
