package app

import (
	"fmt"
	"strconv"
	"strings"

	"StockPulse/internal/view"
)

const helpText = `commands:
  show                render the dashboard
  symbol <SYM>        select a symbol
  period <DAYS>       set the look-back window
  filter <TEXT>       filter the company list (empty clears)
  compare <A> [B]     compare two symbols (A defaults to the active one)
  hide                close the comparison panel
  refresh             run a full refresh now`

// HandleCommand processes one console command and returns the reply text.
func (a *App) HandleCommand(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return helpText
	}
	switch fields[0] {
	case "show":
		return view.FormatDashboard(a.board.Snapshot())

	case "symbol":
		if len(fields) < 2 {
			return "usage: symbol <SYM>"
		}
		a.state.SelectSymbol(a.resolveSymbol(fields[1]))
		return view.FormatDetail(a.board.Snapshot().Detail)

	case "period":
		if len(fields) < 2 {
			return "usage: period <DAYS>"
		}
		days, err := strconv.Atoi(fields[1])
		if err != nil || days <= 0 {
			return "period must be a positive number of days"
		}
		a.state.SetPeriod(days)
		return fmt.Sprintf("period set to %d days", days)

	case "filter":
		text := strings.TrimSpace(strings.TrimPrefix(line, "filter"))
		a.state.SetFilter(text)
		snap := a.board.Snapshot()
		return fmt.Sprintf("%d of %d companies match", len(snap.Visible), len(snap.Companies))

	case "compare":
		var symA, symB string
		switch len(fields) {
		case 2:
			symA = a.state.Snapshot().ActiveSymbol
			symB = a.resolveSymbol(fields[1])
		case 3:
			symA = a.resolveSymbol(fields[1])
			symB = a.resolveSymbol(fields[2])
		default:
			return "usage: compare <A> [B]"
		}
		if symA == "" {
			return "select a symbol first, or name both sides"
		}
		a.state.SetComparisonSymbol(symB)
		if err := a.Compare(symA, symB); err != nil {
			return fmt.Sprintf("⚠ %v", err)
		}
		snap := a.board.Snapshot()
		if snap.Comparison != nil {
			return view.FormatComparison(*snap.Comparison)
		}
		return ""

	case "hide":
		a.HideComparison()
		return "comparison hidden"

	case "refresh":
		a.Refresh()
		return view.FormatDashboard(a.board.Snapshot())

	default:
		return helpText
	}
}

// resolveSymbol maps user input to a full exchange-qualified symbol using
// the loaded company list: "tcs" resolves to "TCS.NS". Unknown input passes
// through verbatim so new symbols still work.
func (a *App) resolveSymbol(input string) string {
	needle := strings.ToLower(input)
	for _, c := range a.board.Snapshot().Companies {
		if strings.ToLower(c.Symbol) == needle || strings.ToLower(view.StripSuffix(c.Symbol)) == needle {
			return c.Symbol
		}
	}
	return input
}
