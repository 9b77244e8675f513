package series

import (
	"errors"
	"math"

	"StockPulse/internal/model"
)

// DisplaySeries holds the three aligned arrays a price chart consumes.
// MovingAvg carries NaN where the service reported no value, so gaps stay
// gaps instead of collapsing to zero.
type DisplaySeries struct {
	Labels    []string
	Close     []float64
	MovingAvg []float64
}

// ToDisplaySeries converts raw points into chart-ready arrays.
func ToDisplaySeries(points []model.StockPoint) DisplaySeries {
	ds := DisplaySeries{
		Labels:    make([]string, len(points)),
		Close:     make([]float64, len(points)),
		MovingAvg: make([]float64, len(points)),
	}
	for i, p := range points {
		ds.Labels[i] = p.Date.Format("2006-01-02")
		ds.Close[i] = p.Close
		if p.MovingAvg7 != nil {
			ds.MovingAvg[i] = *p.MovingAvg7
		} else {
			ds.MovingAvg[i] = math.NaN()
		}
	}
	return ds
}

// ToReturnSeries derives the percentage daily return per point. Index 0 has
// no previous close, so its value is taken verbatim from the supplied
// daily_return field; absent means 0 there. That zero is a bar-chart
// width-alignment convention, not a claim that the return was zero.
func ToReturnSeries(points []model.StockPoint) []float64 {
	returns := make([]float64, len(points))
	if len(points) == 0 {
		return returns
	}
	if points[0].DailyReturn != nil {
		returns[0] = *points[0].DailyReturn
	}
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Close
		if prev == 0 {
			returns[i] = 0
			continue
		}
		returns[i] = (points[i].Close - prev) / prev * 100
	}
	return returns
}

// NormalizeForComparison rebases both price series to percent change from
// their own first element, so two differently-priced instruments share one
// axis. Both series must be fetched over the same window: alignment is by
// index position, not by date.
func NormalizeForComparison(pricesA, pricesB []float64) (normA, normB []float64, err error) {
	normA, err = rebase(pricesA)
	if err != nil {
		return nil, nil, err
	}
	normB, err = rebase(pricesB)
	if err != nil {
		return nil, nil, err
	}
	return normA, normB, nil
}

func rebase(prices []float64) ([]float64, error) {
	if len(prices) == 0 {
		return nil, errors.New("empty price series")
	}
	base := prices[0]
	if base == 0 {
		return nil, errors.New("first element is zero, cannot rebase")
	}
	out := make([]float64, len(prices))
	for i, p := range prices {
		out[i] = (p - base) / base * 100
	}
	return out, nil
}

// PerformanceDifferential is the signed performance gap of a comparison,
// first listed stock minus second. Swapping the stocks negates it.
func PerformanceDifferential(cr *model.ComparisonResult) (float64, error) {
	if cr == nil || len(cr.Stocks) != 2 {
		return 0, errors.New("comparison must cover exactly two stocks")
	}
	a, okA := cr.Performance[cr.Stocks[0]]
	b, okB := cr.Performance[cr.Stocks[1]]
	if !okA || !okB {
		return 0, errors.New("performance map missing a compared stock")
	}
	return a - b, nil
}

// ExtractCloses pulls the close prices out of a point series.
func ExtractCloses(points []model.StockPoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
