package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"StockPulse/internal/chart"
	"StockPulse/internal/client"
	"StockPulse/internal/model"
	"StockPulse/internal/series"
	"StockPulse/internal/state"
	"StockPulse/internal/view"
)

// App wires the fetch client, selection state, chart registry, and dashboard
// into the refresh/render pipelines. Every pipeline catches its own failures;
// nothing propagates past the pipeline boundary.
type App struct {
	ctx    context.Context
	client *client.Client
	state  *state.Manager
	charts *chart.Registry
	board  *view.Dashboard
}

// New creates the app and hooks it to the state manager's transitions.
func New(ctx context.Context, c *client.Client, sm *state.Manager, reg *chart.Registry, board *view.Dashboard) *App {
	a := &App{ctx: ctx, client: c, state: sm, charts: reg, board: board}
	sm.OnChange(a.onTransition)
	return a
}

func (a *App) onTransition(kind state.Kind, snap model.SelectionState) {
	switch kind {
	case state.KindSymbol:
		a.loadSymbol(snap.ActiveSymbol, snap.PeriodDays, true)
	case state.KindPeriod:
		if snap.ActiveSymbol != "" {
			a.loadSymbol(snap.ActiveSymbol, snap.PeriodDays, false)
		}
	case state.KindFilter:
		a.board.ApplyFilter(snap.FilterText)
	case state.KindComparison:
		// Fetch happens on the explicit compare action.
	}
}

// Refresh runs the full pipeline: liveness, company list, movers, and the
// active symbol's detail. Every resource loads independently; a failure in
// one shows inline in its panel and the rest still render.
func (a *App) Refresh() {
	log.Println("[INFO] running full refresh")

	if err := a.client.Ping(a.ctx); err != nil {
		log.Printf("[WARN] liveness check failed: %v", err)
		a.board.SetOnline(false)
	} else {
		a.board.SetOnline(true)
	}

	var wg sync.WaitGroup
	var (
		companies             []model.Company
		companiesErr          error
		gainers, losers       []model.Mover
		gainersErr, losersErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		companies, companiesErr = a.client.Companies(a.ctx)
	}()
	go func() {
		defer wg.Done()
		gainers, gainersErr = a.client.TopGainers(a.ctx)
	}()
	go func() {
		defer wg.Done()
		losers, losersErr = a.client.TopLosers(a.ctx)
	}()
	wg.Wait()

	snap := a.state.Snapshot()
	a.board.SetCompanies(companies, errText(companiesErr, "failed to load companies"), snap.FilterText)
	a.board.SetMovers(gainers, errText(gainersErr, "failed to load gainers"),
		losers, errText(losersErr, "failed to load losers"))

	if snap.ActiveSymbol != "" {
		a.loadSymbol(snap.ActiveSymbol, snap.PeriodDays, true)
	}
	a.board.Touch(time.Now())
}

// loadSymbol fetches a symbol's series (and summary, unless this is a
// period-only reload) concurrently and waits for both to settle. Partial
// success is a supported state: whichever half failed shows inline and the
// other half renders. The commit is guarded against staleness: if the
// selection moved on while the fetches were in flight, the results are
// discarded instead of overwriting the newer symbol's view.
func (a *App) loadSymbol(symbol string, days int, withSummary bool) {
	var wg sync.WaitGroup
	var (
		points     []model.StockPoint
		seriesErr  error
		summary    *model.StockSummary
		summaryErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		points, seriesErr = a.client.Data(a.ctx, symbol, days)
	}()
	if withSummary {
		wg.Add(1)
		go func() {
			defer wg.Done()
			summary, summaryErr = a.client.Summary(a.ctx, symbol)
		}()
	}
	wg.Wait()

	cur := a.state.Snapshot()
	if cur.ActiveSymbol != symbol || cur.PeriodDays != days {
		log.Printf("[INFO] discarding stale result for %s/%dd (now %s/%dd)",
			symbol, days, cur.ActiveSymbol, cur.PeriodDays)
		return
	}

	detail := view.Detail{
		Symbol:     symbol,
		PointCount: len(points),
		SeriesErr:  errText(seriesErr, "failed to load stock data"),
	}
	if withSummary {
		detail.Summary = summary
		detail.SummaryErr = errText(summaryErr, "failed to load summary")
	} else {
		// Period reloads keep the previous summary on display.
		prev := a.board.Snapshot().Detail
		if prev.Symbol == symbol {
			detail.Summary = prev.Summary
			detail.SummaryErr = prev.SummaryErr
		}
	}

	if seriesErr == nil {
		label := view.StripSuffix(symbol)
		ds := series.ToDisplaySeries(points)
		if err := a.charts.RenderPrice(label, ds); err != nil {
			log.Printf("[WARN] render price chart: %v", err)
		}
		if err := a.charts.RenderReturns(label+" daily returns", series.ToReturnSeries(points)); err != nil {
			log.Printf("[WARN] render returns chart: %v", err)
		}
	}
	a.board.SetDetail(detail)
}

// Compare runs the explicit comparison pipeline: both legs over the same
// window plus the service comparison. Unlike the detail pipeline this is
// all-or-nothing: any failure returns an error for a blocking notice and
// leaves the prior view untouched.
func (a *App) Compare(symbolA, symbolB string) error {
	days := a.state.Snapshot().PeriodDays

	var wg sync.WaitGroup
	var (
		pointsA, pointsB []model.StockPoint
		errA, errB       error
		result           *model.ComparisonResult
		errCmp           error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		pointsA, errA = a.client.Data(a.ctx, symbolA, days)
	}()
	go func() {
		defer wg.Done()
		pointsB, errB = a.client.Data(a.ctx, symbolB, days)
	}()
	go func() {
		defer wg.Done()
		result, errCmp = a.client.Compare(a.ctx, symbolA, symbolB, days)
	}()
	wg.Wait()

	for _, err := range []error{errA, errB, errCmp} {
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
	}

	normA, normB, err := series.NormalizeForComparison(
		series.ExtractCloses(pointsA), series.ExtractCloses(pointsB))
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	diff, err := series.PerformanceDifferential(result)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	labelA, labelB := view.StripSuffix(symbolA), view.StripSuffix(symbolB)
	if err := a.charts.RenderComparison(labelA, labelB, normA, normB); err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	a.board.ShowComparison(view.ComparisonPanel{Result: *result, Differential: diff})
	return nil
}

// HideComparison tears down the comparison chart and closes the panel.
func (a *App) HideComparison() {
	a.charts.HideComparison()
	a.board.HideComparison()
}

// Dashboard exposes the render target for the console and the scheduler.
func (a *App) Dashboard() *view.Dashboard { return a.board }

func errText(err error, context string) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", context, err)
}
