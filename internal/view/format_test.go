package view

import (
	"strings"
	"testing"

	"StockPulse/internal/model"
)

var universe = []model.Company{
	{Symbol: "TCS.NS", Name: "TCS", Sector: "IT"},
	{Symbol: "INFY.NS", Name: "Infosys", Sector: "IT"},
}

func TestFilterCompanies_EmptyShowsAll(t *testing.T) {
	got := FilterCompanies(universe, "")
	if len(got) != len(universe) {
		t.Fatalf("empty filter must show the full set, got %d of %d", len(got), len(universe))
	}
}

func TestFilterCompanies_Scenario(t *testing.T) {
	got := FilterCompanies(universe, "infy")
	if len(got) != 1 || got[0].Symbol != "INFY.NS" {
		t.Fatalf("filter %q: expected exactly INFY.NS, got %v", "infy", got)
	}
}

func TestFilterCompanies_Fields(t *testing.T) {
	tests := []struct {
		filter string
		want   int
	}{
		{"it", 2},       // sector, case-insensitive
		{"tcs", 1},      // stripped symbol and name
		{"infosys", 1},  // name
		{"banking", 0},  // no match
		{"INFY", 1},     // case-insensitive over symbol
	}
	for _, tt := range tests {
		if got := FilterCompanies(universe, tt.filter); len(got) != tt.want {
			t.Errorf("filter %q: expected %d matches, got %d", tt.filter, tt.want, len(got))
		}
	}
}

func TestStripSuffix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"TCS.NS", "TCS"},
		{"RELIANCE.NS", "RELIANCE"},
		{"AAPL", "AAPL"},
		{".HIDDEN", ".HIDDEN"},
	}
	for _, tt := range tests {
		if got := StripSuffix(tt.in); got != tt.want {
			t.Errorf("StripSuffix(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatDetail_AbsentMetricsRenderPlaceholders(t *testing.T) {
	price := 123.45
	out := FormatDetail(Detail{
		Symbol:     "TCS.NS",
		PointCount: 30,
		Summary:    &model.StockSummary{Symbol: "TCS.NS", CurrentPrice: &price},
	})
	if !strings.Contains(out, "123.45") {
		t.Errorf("expected current price in output:\n%s", out)
	}
	if !strings.Contains(out, placeholder) {
		t.Errorf("absent metrics must render as %q:\n%s", placeholder, out)
	}
}

func TestFormatDetail_SummaryFailureIsInline(t *testing.T) {
	out := FormatDetail(Detail{
		Symbol:     "TCS.NS",
		PointCount: 30,
		SummaryErr: "failed to load summary: server error: status 500",
	})
	if !strings.Contains(out, "series: 30 points") {
		t.Errorf("series info must still render on summary failure:\n%s", out)
	}
	if !strings.Contains(out, "failed to load summary") {
		t.Errorf("expected inline summary error:\n%s", out)
	}
	if !strings.Contains(out, placeholder) {
		t.Errorf("summary fields must degrade to placeholders:\n%s", out)
	}
}

func TestDashboard_ApplyFilterIsLocal(t *testing.T) {
	d := NewDashboard()
	d.SetCompanies(universe, "", "")
	d.ApplyFilter("infy")
	snap := d.Snapshot()
	if len(snap.Visible) != 1 || snap.Visible[0].Symbol != "INFY.NS" {
		t.Fatalf("expected only INFY.NS visible, got %v", snap.Visible)
	}
	d.ApplyFilter("")
	if snap = d.Snapshot(); len(snap.Visible) != 2 {
		t.Fatalf("clearing the filter must restore the full set, got %v", snap.Visible)
	}
}

func TestDashboard_CompanyErrorReplacesList(t *testing.T) {
	d := NewDashboard()
	d.SetCompanies(universe, "", "")
	d.SetCompanies(nil, "failed to load companies: network error", "")
	snap := d.Snapshot()
	if snap.CompaniesErr == "" || len(snap.Visible) != 0 {
		t.Fatalf("error must replace the list: %+v", snap)
	}
	out := FormatDashboard(snap)
	if !strings.Contains(out, "failed to load companies") {
		t.Errorf("expected inline company error:\n%s", out)
	}
}
