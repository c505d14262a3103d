// Package http exposes the order API as JSON over HTTP.
package http

import (
	"net/http"

	"foodspend/internal/clock"
	applog "foodspend/internal/log"
	"foodspend/internal/services"
)

type Server struct {
	http.Server
	orders *services.OrderService
	clk    clock.Clock
}

// NewServer wires the routes and middleware. The clock is injected so
// summary requests are reproducible in tests.
func NewServer(addr string, orders *services.OrderService, clk clock.Clock, logger *applog.Logger) *Server {
	s := &Server{
		orders: orders,
		clk:    clk,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/orders", s.handleOrders)
	mux.HandleFunc("/orders/analysis", s.handleAnalysis)
	mux.HandleFunc("/orders/summary", s.handleSummary)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleHealth)

	s.Addr = addr
	s.Handler = applog.Middleware(logger)(mux)

	return s
}
