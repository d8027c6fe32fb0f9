// Package models defines data structures for finpulse
package models

import "time"

// HistoryBar represents a single price bar from the market data provider
type HistoryBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// MarketInfo holds descriptive metadata for a symbol. String fields default
// to "Unknown" and numeric fields to zero when the provider omits them;
// ForwardPE is nil when the provider has none.
type MarketInfo struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	CurrentPrice  float64  `json:"current_price"`
	MarketCap     float64  `json:"market_cap"`
	Sector        string   `json:"sector"`
	Industry      string   `json:"industry"`
	Exchange      string   `json:"exchange"`
	AvgVolume     int64    `json:"avg_volume"`
	ForwardPE     *float64 `json:"forward_pe,omitempty"`
	DividendYield float64  `json:"dividend_yield"`
	TotalAssets   float64  `json:"total_assets"`
	Yield         float64  `json:"yield"`
	ExpenseRatio  float64  `json:"expense_ratio"`
	CategoryName  string   `json:"category_name"`
	FundFamily    string   `json:"fund_family"`
}

// PerformanceRecord holds one stock's computed metrics for a batch request.
// Rank is assigned in place after sorting; all other fields are set once at
// construction.
type PerformanceRecord struct {
	Rank          int      `json:"rank"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	CurrentPrice  float64  `json:"current_price"`
	MonthlyReturn float64  `json:"monthly_return"`
	MarketCap     float64  `json:"market_cap"`
	MarketCapB    float64  `json:"market_cap_b"`
	Sector        string   `json:"sector"`
	Industry      string   `json:"industry"`
	Exchange      string   `json:"exchange"`
	AvgVolume     int64    `json:"avg_volume"`
	ForwardPE     *float64 `json:"forward_pe,omitempty"`
	DividendYield float64  `json:"dividend_yield"`
}

// FundReturns holds a fund's returns over three historical windows anchored
// to the same point in time.
type FundReturns struct {
	Monthly   float64 `json:"monthly"`
	Quarterly float64 `json:"quarterly"`
	Yearly    float64 `json:"yearly"`
}

// FundRecord holds one fund's computed metrics for a batch request.
type FundRecord struct {
	Rank         int         `json:"rank"`
	Symbol       string      `json:"symbol"`
	Name         string      `json:"name"`
	Category     string      `json:"category"` // "Bond Fund" or "Mutual Fund"
	CurrentPrice float64     `json:"current_price"`
	Returns      FundReturns `json:"returns"`
	TotalAssets  float64     `json:"total_assets"`
	TotalAssetsB float64     `json:"total_assets_b"`
	ExpenseRatio float64     `json:"expense_ratio"`
	Yield        float64     `json:"yield"`
	Volatility   float64     `json:"volatility"` // annualized, percent
	CategoryName string      `json:"category_name"`
	FundFamily   string      `json:"fund_family"`
}

// Stats summarizes a single-symbol history request.
type Stats struct {
	AveragePrice float64 `json:"average_price"`
	HighestPrice float64 `json:"highest_price"`
	LowestPrice  float64 `json:"lowest_price"`
	TotalVolume  int64   `json:"total_volume"`
	WindowSize   int     `json:"window_size"`
	WindowUnit   string  `json:"window_unit"`
	Interval     string  `json:"interval"`
}

// HistoryPoint is one bucket of a history response. Every point carries the
// batch-level Stats — a deliberate denormalization for client convenience.
type HistoryPoint struct {
	Date   string  `json:"date"` // ISO calendar day
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
	Stats  *Stats  `json:"stats"`
}

// StockHistory is the payload for a single-symbol history request.
type StockHistory struct {
	Symbol  string         `json:"symbol"`
	History []HistoryPoint `json:"history"`
	Stats   *Stats         `json:"stats"`
}

// MarketSummary holds batch-level aggregates for a top-performers request.
// TotalMarketCapB and AvgMonthlyReturn are computed over the ranked top-N
// only; SymbolsAnalyzed and Sectors cover the full filtered batch.
type MarketSummary struct {
	TotalMarketCapB  float64   `json:"total_market_cap_b"`
	AvgMonthlyReturn float64   `json:"avg_monthly_return"`
	SymbolsAnalyzed  int       `json:"symbols_analyzed"`
	Sectors          []string  `json:"sectors"`
	ComputedAt       time.Time `json:"computed_at"`
}

// FundSummary holds batch-level aggregates for a top-funds request.
// TotalAssetsB and AvgYearlyReturn cover the top-N; SymbolsAnalyzed and
// Categories cover the full filtered batch.
type FundSummary struct {
	TotalAssetsB    float64        `json:"total_assets_b"`
	AvgYearlyReturn float64        `json:"avg_yearly_return"`
	SymbolsAnalyzed int            `json:"symbols_analyzed"`
	Categories      map[string]int `json:"categories"`
	ComputedAt      time.Time      `json:"computed_at"`
}
