package server

import (
	"net/http"
	"strings"
)

// routeStocks dispatches /api/stocks/{symbol}/history requests.
func (s *Server) routeStocks(w http.ResponseWriter, r *http.Request) {
	symbol := PathParam(r, "/api/stocks/", "/history")
	if symbol == "" || !strings.HasSuffix(r.URL.Path, "/history") {
		WriteFailure(w, http.StatusNotFound, "Not found")
		return
	}
	s.handleStockHistory(w, r, symbol)
}

// handleStockHistory handles POST /api/stocks/{symbol}/history.
func (s *Server) handleStockHistory(w http.ResponseWriter, r *http.Request, symbol string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		WindowSize int    `json:"window_size"`
		WindowUnit string `json:"window_unit"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	history, err := s.market.StockHistory(r.Context(), strings.ToUpper(symbol), req.WindowSize, req.WindowUnit)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Stock history failed")
		WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteSuccess(w, history)
}

// handleTopPerformers handles GET /api/stocks/top-performers.
func (s *Server) handleTopPerformers(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	records, summary, err := s.market.TopPerformers(r.Context())
	if err != nil {
		s.logger.Warn().Err(err).Msg("Top performers failed")
		WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"records": records,
		"summary": summary,
	})
}

// handleTopFunds handles GET /api/funds/top-funds.
func (s *Server) handleTopFunds(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	records, summary, err := s.market.TopFunds(r.Context())
	if err != nil {
		s.logger.Warn().Err(err).Msg("Top funds failed")
		WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"records": records,
		"summary": summary,
	})
}
