package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodspend/internal/clock"
	"foodspend/internal/core"
	applog "foodspend/internal/log"
	"foodspend/internal/services"
	"foodspend/internal/store/memory"
)

func newTestServer() *Server {
	orders := services.NewOrderService(memory.New(), core.NewCategorySet(core.DefaultCategories), nil)
	clk := clock.NewFixed(time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)) // Wednesday
	return NewServer(":0", orders, clk, applog.New(applog.DefaultConfig()))
}

func do(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer()
	for _, path := range []string{"/healthz", "/readyz"} {
		rr := do(t, srv, http.MethodGet, path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rr.Code)
		}
	}
}

func TestSubmitOrder(t *testing.T) {
	srv := newTestServer()

	rr := do(t, srv, http.MethodPost, "/orders",
		`{"category":"Pizza","amount":10,"quantity":2,"date":"2024-03-05"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	body := decode(t, rr)
	if body["id"] == "" || body["id"] == nil {
		t.Fatal("response must carry an id")
	}
	if body["lineTotal"] != 20.0 {
		t.Fatalf("lineTotal = %v, want 20", body["lineTotal"])
	}

	// String-typed numbers are accepted too.
	rr = do(t, srv, http.MethodPost, "/orders",
		`{"category":"Sushi","amount":"50","quantity":"1","date":"2024-03-01"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("string fields status = %d, body %s", rr.Code, rr.Body.String())
	}
}

func TestSubmitOrderRejections(t *testing.T) {
	srv := newTestServer()
	cases := []struct {
		name   string
		body   string
		status int
		kind   string
	}{
		{"unrecognized category", `{"category":"Tacos","amount":5,"quantity":1,"date":"2024-01-01"}`, 422, "invalid_order"},
		{"zero amount", `{"category":"Pizza","amount":0,"quantity":1,"date":"2024-01-01"}`, 422, "invalid_order"},
		{"zero quantity", `{"category":"Pizza","amount":5,"quantity":0,"date":"2024-01-01"}`, 422, "invalid_order"},
		{"bad date", `{"category":"Pizza","amount":5,"quantity":1,"date":"soon"}`, 422, "invalid_order"},
		{"missing fields", `{}`, 422, "invalid_order"},
		{"not json", `not json`, 400, "bad_request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, srv, http.MethodPost, "/orders", tc.body)
			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", rr.Code, tc.status, rr.Body.String())
			}
			if body := decode(t, rr); body["error"] != tc.kind {
				t.Fatalf("kind = %v, want %s", body["error"], tc.kind)
			}
		})
	}

	// Rejections leave the store unchanged.
	rr := do(t, srv, http.MethodGet, "/orders", "")
	if body := decode(t, rr); body["count"] != 0.0 {
		t.Fatalf("count = %v, want 0", body["count"])
	}
}

func TestListOrdersFiltering(t *testing.T) {
	srv := newTestServer()
	for _, b := range []string{
		`{"category":"Pizza","amount":10,"quantity":1,"date":"2024-03-01"}`,
		`{"category":"Sushi","amount":50,"quantity":1,"date":"2024-03-15"}`,
		`{"category":"Pizza","amount":5,"quantity":1,"date":"2024-04-01"}`,
	} {
		if rr := do(t, srv, http.MethodPost, "/orders", b); rr.Code != http.StatusCreated {
			t.Fatalf("seed failed: %s", rr.Body.String())
		}
	}

	rr := do(t, srv, http.MethodGet, "/orders?category=Pizza", "")
	if body := decode(t, rr); body["count"] != 2.0 {
		t.Fatalf("category filter count = %v", body["count"])
	}

	rr = do(t, srv, http.MethodGet, "/orders?startDate=2024-03-01&endDate=2024-03-31", "")
	if body := decode(t, rr); body["count"] != 2.0 {
		t.Fatalf("range filter count = %v", body["count"])
	}

	// start after end is empty, not an error
	rr = do(t, srv, http.MethodGet, "/orders?startDate=2024-03-10&endDate=2024-03-01", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("start>end status = %d", rr.Code)
	}
	if body := decode(t, rr); body["count"] != 0.0 {
		t.Fatalf("start>end count = %v", body["count"])
	}

	// malformed range
	rr = do(t, srv, http.MethodGet, "/orders?startDate=bad&endDate=2024-03-31", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad range status = %d", rr.Code)
	}
	if body := decode(t, rr); body["error"] != "invalid_date_range" {
		t.Fatalf("kind = %v", body["error"])
	}
}

func TestAnalysisEndpoint(t *testing.T) {
	srv := newTestServer()
	for _, b := range []string{
		`{"category":"Pizza","amount":10,"quantity":2,"date":"2024-03-05"}`,
		`{"category":"Sushi","amount":50,"quantity":1,"date":"2024-03-01"}`,
	} {
		if rr := do(t, srv, http.MethodPost, "/orders", b); rr.Code != http.StatusCreated {
			t.Fatalf("seed failed: %s", rr.Body.String())
		}
	}

	rr := do(t, srv, http.MethodGet, "/orders/analysis", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode(t, rr)

	totals := body["categoryTotals"].(map[string]any)
	if totals["Pizza"] != 20.0 {
		t.Fatalf("Pizza total = %v, want 20", totals["Pizza"])
	}
	highest := body["highestSpendingCategory"].(map[string]any)
	if highest["category"] != "Sushi" || highest["amount"] != 50.0 {
		t.Fatalf("highest = %v", highest)
	}
	monthly := body["monthlyTotals"].(map[string]any)
	if monthly["3-2024"] != 70.0 {
		t.Fatalf("3-2024 = %v, want 70", monthly["3-2024"])
	}
}

func TestAnalysisEmptyAlwaysSucceeds(t *testing.T) {
	srv := newTestServer()
	rr := do(t, srv, http.MethodGet, "/orders/analysis", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode(t, rr)
	highest := body["highestSpendingCategory"].(map[string]any)
	if highest["category"] != "" || highest["amount"] != 0.0 {
		t.Fatalf("empty highest = %v", highest)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	srv := newTestServer()
	for _, b := range []string{
		`{"category":"Pizza","amount":10,"quantity":2,"date":"2024-03-09"}`,
		`{"category":"Sushi","amount":50,"quantity":1,"date":"2024-03-12"}`,
	} {
		if rr := do(t, srv, http.MethodPost, "/orders", b); rr.Code != http.StatusCreated {
			t.Fatalf("seed failed: %s", rr.Body.String())
		}
	}

	// Fixed clock is Wednesday 2024-03-13; week boundary is Sunday 03-10,
	// so only the Sushi order counts.
	rr := do(t, srv, http.MethodGet, "/orders/summary?period=week", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode(t, rr)
	if body["period"] != "week" || body["count"] != 1.0 || body["total"] != 50.0 {
		t.Fatalf("summary = %v", body)
	}

	rr = do(t, srv, http.MethodGet, "/orders/summary?period=month", "")
	if body := decode(t, rr); body["count"] != 2.0 || body["total"] != 70.0 {
		t.Fatalf("month summary = %v", body)
	}

	rr = do(t, srv, http.MethodGet, "/orders/summary?period=day", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad period status = %d", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer()
	rr := do(t, srv, http.MethodDelete, "/orders", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rr.Code)
	}
	rr = do(t, srv, http.MethodPost, "/orders/analysis", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("analysis status = %d", rr.Code)
	}
}
