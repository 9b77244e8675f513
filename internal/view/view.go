package view

import (
	"sync"
	"time"

	"StockPulse/internal/model"
)

// Detail is the stock detail panel: series and summary load independently,
// so each side carries its own inline error and a missing half renders as
// placeholders instead of blocking the panel.
type Detail struct {
	Symbol     string
	PointCount int
	SeriesErr  string
	Summary    *model.StockSummary
	SummaryErr string
}

// ComparisonPanel is the result of an explicit compare action.
type ComparisonPanel struct {
	Result       model.ComparisonResult
	Differential float64
}

// Snapshot is a read-only copy of the whole dashboard.
type Snapshot struct {
	Online       bool
	LastUpdated  time.Time
	Companies    []model.Company
	CompaniesErr string
	Visible      []model.Company
	Gainers      []model.Mover
	GainersErr   string
	Losers       []model.Mover
	LosersErr    string
	Detail       Detail
	Comparison   *ComparisonPanel
}

// Dashboard is the render target. Pipelines write panels into it; the
// console (and tests) read snapshots out of it. Last write wins per panel.
type Dashboard struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewDashboard() *Dashboard {
	return &Dashboard{snap: Snapshot{Online: false}}
}

// Snapshot returns a copy of the current dashboard.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snap
}

// SetOnline updates the persistent liveness indicator.
func (d *Dashboard) SetOnline(online bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Online = online
}

// Touch records a completed refresh.
func (d *Dashboard) Touch(at time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.LastUpdated = at
}

// SetCompanies replaces the company list panel. On failure the inline error
// message takes the place of the list.
func (d *Dashboard) SetCompanies(companies []model.Company, errMsg, filter string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if errMsg != "" {
		d.snap.Companies = nil
		d.snap.Visible = nil
		d.snap.CompaniesErr = errMsg
		return
	}
	d.snap.Companies = companies
	d.snap.CompaniesErr = ""
	d.snap.Visible = FilterCompanies(companies, filter)
}

// ApplyFilter recomputes the visible subset locally. No fetch.
func (d *Dashboard) ApplyFilter(filter string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Visible = FilterCompanies(d.snap.Companies, filter)
}

// SetMovers replaces the top gainers and losers panels; each side fails
// independently.
func (d *Dashboard) SetMovers(gainers []model.Mover, gainersErr string, losers []model.Mover, losersErr string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Gainers, d.snap.GainersErr = gainers, gainersErr
	d.snap.Losers, d.snap.LosersErr = losers, losersErr
}

// SetDetail replaces the stock detail panel.
func (d *Dashboard) SetDetail(detail Detail) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Detail = detail
}

// ShowComparison opens the comparison panel.
func (d *Dashboard) ShowComparison(panel ComparisonPanel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Comparison = &panel
}

// HideComparison closes the comparison panel.
func (d *Dashboard) HideComparison() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.Comparison = nil
}
