package view

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"StockPulse/internal/model"
)

// placeholder stands in for any metric the service reported as absent.
const placeholder = "--"

// StripSuffix drops the exchange suffix from a symbol for human-facing
// labels ("TCS.NS" -> "TCS"). Outgoing requests always keep the full symbol.
func StripSuffix(symbol string) string {
	if i := strings.IndexByte(symbol, '.'); i > 0 {
		return symbol[:i]
	}
	return symbol
}

// FilterCompanies returns the companies whose name, stripped symbol, or
// sector contains the filter text, case-insensitively. An empty filter keeps
// the full set.
func FilterCompanies(companies []model.Company, filter string) []model.Company {
	if filter == "" {
		return companies
	}
	needle := strings.ToLower(filter)
	var visible []model.Company
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(StripSuffix(c.Symbol)), needle) ||
			strings.Contains(strings.ToLower(c.Sector), needle) {
			visible = append(visible, c)
		}
	}
	return visible
}

func fmtMetric(v *float64) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtPercent(v *float64) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%+.2f%%", *v)
}

// FormatDashboard renders the whole dashboard as text.
func FormatDashboard(s Snapshot) string {
	var b strings.Builder

	status := "OFFLINE"
	if s.Online {
		status = "online"
	}
	b.WriteString(fmt.Sprintf("StockPulse | service %s", status))
	if !s.LastUpdated.IsZero() {
		b.WriteString(fmt.Sprintf(" | updated %s", s.LastUpdated.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	b.WriteString("Companies:\n")
	if s.CompaniesErr != "" {
		b.WriteString(fmt.Sprintf("  ! %s\n", s.CompaniesErr))
	} else {
		for _, c := range s.Visible {
			b.WriteString(fmt.Sprintf("  %-12s %-28s %s\n", StripSuffix(c.Symbol), c.Name, c.Sector))
		}
		if len(s.Visible) == 0 {
			b.WriteString("  (no matches)\n")
		}
	}

	b.WriteString("\nTop Gainers:\n")
	writeMovers(&b, s.Gainers, s.GainersErr)
	b.WriteString("\nTop Losers:\n")
	writeMovers(&b, s.Losers, s.LosersErr)

	if s.Detail.Symbol != "" {
		b.WriteString("\n" + FormatDetail(s.Detail))
	}
	if s.Comparison != nil {
		b.WriteString("\n" + FormatComparison(*s.Comparison))
	}
	return b.String()
}

func writeMovers(b *strings.Builder, movers []model.Mover, errMsg string) {
	if errMsg != "" {
		b.WriteString(fmt.Sprintf("  ! %s\n", errMsg))
		return
	}
	for _, m := range movers {
		b.WriteString(fmt.Sprintf("  %-12s %9.2f  %+6.2f%%  vol %s\n",
			StripSuffix(m.Symbol), m.CurrentPrice, m.ChangePercent, humanize.Comma(m.Volume)))
	}
	if len(movers) == 0 {
		b.WriteString("  (none)\n")
	}
}

// FormatDetail renders the stock detail panel. Series and summary fail
// independently; a missing summary renders placeholders, not an error page.
func FormatDetail(d Detail) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s detail:\n", StripSuffix(d.Symbol)))
	if d.SeriesErr != "" {
		b.WriteString(fmt.Sprintf("  ! series: %s\n", d.SeriesErr))
	} else {
		b.WriteString(fmt.Sprintf("  series: %d points\n", d.PointCount))
	}
	if d.SummaryErr != "" {
		b.WriteString(fmt.Sprintf("  ! summary: %s\n", d.SummaryErr))
	}
	sum := d.Summary
	if sum == nil {
		sum = &model.StockSummary{}
	}
	b.WriteString(fmt.Sprintf("  price: %s  daily: %s\n", fmtMetric(sum.CurrentPrice), fmtPercent(sum.DailyReturn)))
	b.WriteString(fmt.Sprintf("  52w high: %s  52w low: %s\n", fmtMetric(sum.Week52High), fmtMetric(sum.Week52Low)))
	b.WriteString(fmt.Sprintf("  avg close: %s  volatility: %s\n", fmtMetric(sum.AverageClose), fmtMetric(sum.Volatility)))
	return b.String()
}

// FormatComparison renders the comparison panel.
func FormatComparison(p ComparisonPanel) string {
	r := p.Result
	if len(r.Stocks) != 2 {
		return ""
	}
	a, bSym := r.Stocks[0], r.Stocks[1]
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Compare %s vs %s (%dd):\n", StripSuffix(a), StripSuffix(bSym), r.PeriodDays))
	b.WriteString(fmt.Sprintf("  correlation: %.3f\n", r.Correlation))
	b.WriteString(fmt.Sprintf("  performance: %s %+.2f%% | %s %+.2f%% (diff %+.2f)\n",
		StripSuffix(a), r.Performance[a], StripSuffix(bSym), r.Performance[bSym], p.Differential))
	if len(r.Volatility) == 2 {
		b.WriteString(fmt.Sprintf("  volatility:  %s %.2f | %s %.2f\n",
			StripSuffix(a), r.Volatility[a], StripSuffix(bSym), r.Volatility[bSym]))
	}
	if len(r.CurrentPrices) == 2 {
		b.WriteString(fmt.Sprintf("  price:       %s %.2f | %s %.2f\n",
			StripSuffix(a), r.CurrentPrices[a], StripSuffix(bSym), r.CurrentPrices[bSym]))
	}
	return b.String()
}
