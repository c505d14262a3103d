package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"foodspend/internal/core"
)

type orderResponse struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Quantity  int64   `json:"quantity"`
	Date      string  `json:"date"`
	LineTotal float64 `json:"lineTotal"`
}

func toOrderResponse(o core.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		Category:  string(o.Category),
		Amount:    o.Amount.Units(),
		Quantity:  o.Quantity,
		Date:      o.Date.Format("2006-01-02"),
		LineTotal: o.LineTotal().Units(),
	}
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleSubmitOrder(w, r)
	case http.MethodGet:
		s.handleListOrders(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, kindBadRequest, "method not allowed")
	}
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, kindBadRequest, "request body must be a JSON object")
		return
	}

	candidate := core.Candidate{
		Category: stringValue(body["category"]),
		Amount:   stringValue(body["amount"]),
		Quantity: stringValue(body["quantity"]),
		Date:     stringValue(body["date"]),
	}

	order, err := s.orders.Submit(r.Context(), candidate)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := core.ListFilter{
		Category:  query.Get("category"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	orders, err := s.orders.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": out,
		"count":  len(out),
	})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, kindBadRequest, "method not allowed")
		return
	}

	analysis, err := s.orders.Analysis(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	categoryTotals := make(map[string]float64, len(analysis.CategoryTotals))
	for c, m := range analysis.CategoryTotals {
		categoryTotals[string(c)] = m.Units()
	}
	monthlyTotals := make(map[string]float64, len(analysis.MonthlyTotals))
	for k, m := range analysis.MonthlyTotals {
		monthlyTotals[k] = m.Units()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categoryTotals": categoryTotals,
		"highestSpendingCategory": map[string]any{
			"category": string(analysis.Highest.Category),
			"amount":   analysis.Highest.Total.Units(),
		},
		"monthlyTotals": monthlyTotals,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, kindBadRequest, "method not allowed")
		return
	}

	period := core.Period(r.URL.Query().Get("period"))
	if !period.IsValid() {
		writeError(w, http.StatusBadRequest, kindBadRequest, "period must be 'week' or 'month'")
		return
	}

	summary, err := s.orders.Summary(r.Context(), period, s.clk.Now())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"period": string(summary.Period),
		"total":  summary.Total.Units(),
		"count":  summary.Count,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// stringValue converts a decoded JSON value to its string form so the
// validator owns every parse decision.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
