package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"StockPulse/internal/series"
)

// Slot names a chart-rendering surface. Each slot holds at most one live
// chart at a time.
type Slot string

const (
	SlotPrice      Slot = "price"
	SlotReturns    Slot = "returns"
	SlotComparison Slot = "comparison"
)

// handle is one live rendered surface.
type handle struct {
	path       string
	renderedAt time.Time
}

// Registry owns every live chart surface. Render calls have replace
// semantics: the previous surface for a slot is destroyed before the new one
// is committed, so repeated renders never leak or duplicate surfaces.
type Registry struct {
	mu     sync.Mutex
	dir    string
	charts map[Slot]*handle
}

// NewRegistry creates a registry rendering PNG surfaces into dir.
func NewRegistry(dir string) (*Registry, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}
	return &Registry{dir: dir, charts: make(map[Slot]*handle)}, nil
}

// RenderPrice draws the close-price line with the moving-average overlay.
// NaN entries in the moving average become gaps, not zeros.
func (r *Registry) RenderPrice(title string, ds series.DisplaySeries) error {
	if len(ds.Close) == 0 {
		return errors.New("no data points to render")
	}
	closeXs, closeYs := indexed(ds.Close)
	charted := []chart.Series{
		chart.ContinuousSeries{Name: "Close", XValues: closeXs, YValues: closeYs},
	}
	if maXs, maYs := dropGaps(ds.MovingAvg); len(maXs) > 0 {
		maXs, maYs = pad(maXs, maYs)
		charted = append(charted, chart.ContinuousSeries{Name: "7d MA", XValues: maXs, YValues: maYs})
	}
	return r.renderLines(SlotPrice, title, charted)
}

// RenderReturns draws the daily percentage returns.
func (r *Registry) RenderReturns(title string, returns []float64) error {
	if len(returns) == 0 {
		return errors.New("no data points to render")
	}
	xs, ys := indexed(returns)
	return r.renderLines(SlotReturns, title, []chart.Series{
		chart.ContinuousSeries{Name: "Daily Return %", XValues: xs, YValues: ys},
	})
}

// RenderComparison draws two normalized series on one axis.
func (r *Registry) RenderComparison(labelA, labelB string, normA, normB []float64) error {
	if len(normA) == 0 || len(normB) == 0 {
		return errors.New("no data points to render")
	}
	xsA, ysA := indexed(normA)
	xsB, ysB := indexed(normB)
	return r.renderLines(SlotComparison, labelA+" vs "+labelB, []chart.Series{
		chart.ContinuousSeries{Name: labelA, XValues: xsA, YValues: ysA},
		chart.ContinuousSeries{Name: labelB, XValues: xsB, YValues: ysB},
	})
}

// HideComparison tears down the comparison surface if one is live.
func (r *Registry) HideComparison() {
	r.destroy(SlotComparison)
}

// Live reports the surface path for a slot, if one is live.
func (r *Registry) Live(slot Slot) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.charts[slot]
	if !ok {
		return "", false
	}
	return h.path, true
}

// LiveCount returns how many surfaces are live for a slot: 0 or 1.
func (r *Registry) LiveCount(slot Slot) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.charts[slot]; ok {
		return 1
	}
	return 0
}

// Close destroys every live surface.
func (r *Registry) Close() {
	r.destroy(SlotPrice)
	r.destroy(SlotReturns)
	r.destroy(SlotComparison)
}

func (r *Registry) renderLines(slot Slot, title string, charted []chart.Series) error {
	yRange := rangeOf(charted)
	ch := chart.Chart{
		Title:      title,
		Width:      900,
		Height:     400,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      chart.YAxis{Range: yRange},
		Series:     charted,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render %s chart: %w", slot, err)
	}
	return r.commit(slot, buf.Bytes())
}

// commit replaces the slot's surface: destroy the previous one first, then
// write the new render. The lock makes the swap atomic to observers.
func (r *Registry) commit(slot Slot, png []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.charts[slot]; ok {
		delete(r.charts, slot)
		os.Remove(old.path)
	}
	path := filepath.Join(r.dir, string(slot)+".png")
	if err := os.WriteFile(path, png, 0644); err != nil {
		return fmt.Errorf("write %s chart: %w", slot, err)
	}
	r.charts[slot] = &handle{path: path, renderedAt: time.Now()}
	return nil
}

func (r *Registry) destroy(slot Slot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.charts[slot]; ok {
		delete(r.charts, slot)
		os.Remove(h.path)
	}
}

// indexed maps values onto 0..n-1 x positions, padding single points to two
// (go-chart needs at least two X values).
func indexed(values []float64) (xs, ys []float64) {
	xs = make([]float64, len(values))
	ys = make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(i)
		ys[i] = v
	}
	return pad(xs, ys)
}

func pad(xs, ys []float64) ([]float64, []float64) {
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return xs, ys
}

// dropGaps keeps only the non-NaN entries, preserving their x positions.
func dropGaps(values []float64) (xs, ys []float64) {
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}
	return xs, ys
}

// rangeOf widens a degenerate y-range so flat series still render.
func rangeOf(charted []chart.Series) chart.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range charted {
		cs, ok := s.(chart.ContinuousSeries)
		if !ok {
			continue
		}
		for _, y := range cs.YValues {
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
	}
	if math.IsInf(lo, 1) || lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}
