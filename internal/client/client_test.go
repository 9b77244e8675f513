package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newClient(url string) *Client {
	return New(url, "", 5*time.Second)
}

func TestCompanies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/companies" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`[{"symbol":"TCS.NS","name":"TCS","sector":"IT"}]`))
	}))
	defer srv.Close()

	companies, err := newClient(srv.URL).Companies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 1 || companies[0].Symbol != "TCS.NS" {
		t.Fatalf("unexpected companies: %v", companies)
	}
}

func TestData_AbsentFieldsAndOrdering(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Full symbol, suffix included, must arrive in the path.
		if r.URL.Path != "/data/TCS.NS" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("days") != "30" {
			t.Errorf("expected days=30, got %s", r.URL.Query().Get("days"))
		}
		// Out of order on purpose; moving_avg_7 null on the first row.
		w.Write([]byte(`[
			{"date":"2025-08-02","open":101,"high":103,"low":100,"close":102,"volume":2000,"daily_return":0.01,"moving_avg_7":101.5},
			{"date":"2025-08-01","open":100,"high":102,"low":99,"close":100,"volume":1000,"daily_return":null,"moving_avg_7":null}
		]`))
	}))
	defer srv.Close()

	points, err := newClient(srv.URL).Data(context.Background(), "TCS.NS", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if !points[0].Date.Before(points[1].Date) {
		t.Error("points must be sorted ascending by date")
	}
	if points[0].MovingAvg7 != nil || points[0].DailyReturn != nil {
		t.Error("null fields must decode to nil, not zero")
	}
	if points[1].MovingAvg7 == nil || *points[1].MovingAvg7 != 101.5 {
		t.Errorf("expected moving_avg_7 101.5, got %v", points[1].MovingAvg7)
	}
}

func TestSummary_AbsentMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"TCS.NS","current_price":3500.5,"week52_high":null,"week52_low":null,"average_close":null,"volatility":null,"daily_return":null}`))
	}))
	defer srv.Close()

	s, err := newClient(srv.URL).Summary(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CurrentPrice == nil || *s.CurrentPrice != 3500.5 {
		t.Errorf("expected current price 3500.5, got %v", s.CurrentPrice)
	}
	if s.Week52High != nil || s.Volatility != nil {
		t.Error("absent metrics must decode to nil")
	}
}

func TestCompare_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("symbol1") != "TCS.NS" || q.Get("symbol2") != "INFY.NS" || q.Get("days") != "30" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"stocks":["TCS.NS","INFY.NS"],"period_days":30,"correlation":0.8,
			"performance":{"TCS.NS":-10,"INFY.NS":20},
			"volatility":{"TCS.NS":1.1,"INFY.NS":2.2},
			"current_prices":{"TCS.NS":3500,"INFY.NS":1500}}`))
	}))
	defer srv.Close()

	cr, err := newClient(srv.URL).Compare(context.Background(), "TCS.NS", "INFY.NS", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cr.Correlation != 0.8 || cr.Performance["INFY.NS"] != 20 {
		t.Errorf("unexpected comparison: %+v", cr)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Companies(context.Background())
		var se *ServerError
		if !errors.As(err, &se) {
			t.Fatalf("expected ServerError, got %T: %v", err, err)
		}
		if se.Status != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", se.Status)
		}
	})

	t.Run("decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Companies(context.Background())
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("expected DecodeError, got %T: %v", err, err)
		}
	})

	t.Run("bad date is a decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"date":"08/01/2025","close":100}]`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Data(context.Background(), "TCS.NS", 30)
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("expected DecodeError, got %T: %v", err, err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		err := newClient(srv.URL).Ping(context.Background())
		var ne *NetworkError
		if !errors.As(err, &ne) {
			t.Fatalf("expected NetworkError, got %T: %v", err, err)
		}
	})
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	if err := newClient(srv.URL).Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
