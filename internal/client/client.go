package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockPulse/internal/model"
)

// Client talks to the stock data service. Every call issues exactly one
// request and re-fetches; there is no retry and no caching of results.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a client with optional proxy support.
func New(baseURL, proxyURL string, timeout time.Duration) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Ping checks service liveness: 200 on the root endpoint means online.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return &NetworkError{Err: err}
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &ServerError{Status: resp.StatusCode}
	}
	return nil
}

// Companies fetches the full company universe.
func (c *Client) Companies(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := c.getJSON(ctx, "/companies", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// stockRow is the wire shape of one /data row.
type stockRow struct {
	Date            string   `json:"date"`
	Open            float64  `json:"open"`
	High            float64  `json:"high"`
	Low             float64  `json:"low"`
	Close           float64  `json:"close"`
	Volume          int64    `json:"volume"`
	DailyReturn     *float64 `json:"daily_return"`
	MovingAvg7      *float64 `json:"moving_avg_7"`
	Week52High      *float64 `json:"week52_high"`
	Week52Low       *float64 `json:"week52_low"`
	VolatilityScore *float64 `json:"volatility_score"`
}

// Data fetches a symbol's series over the given look-back window.
// The symbol is sent verbatim, exchange suffix included.
func (c *Client) Data(ctx context.Context, symbol string, days int) ([]model.StockPoint, error) {
	var rows []stockRow
	q := url.Values{"days": {fmt.Sprint(days)}}
	if err := c.getJSON(ctx, "/data/"+url.PathEscape(symbol), q, &rows); err != nil {
		return nil, err
	}
	points := make([]model.StockPoint, 0, len(rows))
	for _, r := range rows {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("parse date %q: %w", r.Date, err)}
		}
		points = append(points, model.StockPoint{
			Date:            d,
			Open:            r.Open,
			High:            r.High,
			Low:             r.Low,
			Close:           r.Close,
			Volume:          r.Volume,
			DailyReturn:     r.DailyReturn,
			MovingAvg7:      r.MovingAvg7,
			Week52High:      r.Week52High,
			Week52Low:       r.Week52Low,
			VolatilityScore: r.VolatilityScore,
		})
	}
	// Ensure chronological order
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

// Summary fetches the per-symbol headline metrics.
func (c *Client) Summary(ctx context.Context, symbol string) (*model.StockSummary, error) {
	var s model.StockSummary
	if err := c.getJSON(ctx, "/summary/"+url.PathEscape(symbol), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// TopGainers fetches the best-performing symbols of the latest session.
func (c *Client) TopGainers(ctx context.Context) ([]model.Mover, error) {
	var movers []model.Mover
	if err := c.getJSON(ctx, "/top-gainers", nil, &movers); err != nil {
		return nil, err
	}
	return movers, nil
}

// TopLosers fetches the worst-performing symbols of the latest session.
func (c *Client) TopLosers(ctx context.Context) ([]model.Mover, error) {
	var movers []model.Mover
	if err := c.getJSON(ctx, "/top-losers", nil, &movers); err != nil {
		return nil, err
	}
	return movers, nil
}

// Compare fetches the service-side comparison of two symbols over the same
// window. Both legs of a comparison must use the same days value so the
// client-side normalization can assume index alignment.
func (c *Client) Compare(ctx context.Context, symbol1, symbol2 string, days int) (*model.ComparisonResult, error) {
	var result model.ComparisonResult
	q := url.Values{
		"symbol1": {symbol1},
		"symbol2": {symbol2},
		"days":    {fmt.Sprint(days)},
	}
	if err := c.getJSON(ctx, "/compare", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &NetworkError{Err: err}
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &ServerError{Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
