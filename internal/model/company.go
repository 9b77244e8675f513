package model

// Company identifies one listed instrument. Immutable once fetched;
// Symbol is the identity key and carries the exchange suffix (e.g. "TCS.NS").
type Company struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// Mover is one row of the top-gainers / top-losers panels.
type Mover struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
}
