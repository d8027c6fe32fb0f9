package market

import (
	"context"
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/interfaces"
	"github.com/finpulse/finpulse/internal/models"
)

// Service implements the MarketService interface
type Service struct {
	marketData interfaces.MarketDataClient
	logger     *common.Logger
}

// NewService creates a new market service
func NewService(marketData interfaces.MarketDataClient, logger *common.Logger) *Service {
	return &Service{
		marketData: marketData,
		logger:     logger,
	}
}

// StockHistory retrieves price history for one symbol over a user window.
// Every history point carries the batch Stats pointer so clients can read
// the summary from any row.
func (s *Service) StockHistory(ctx context.Context, symbol string, windowSize int, windowUnit string) (*models.StockHistory, error) {
	w := ResolveWindow(windowSize, windowUnit)
	now := time.Now()

	bars, err := s.marketData.History(ctx, symbol, now.Add(-w.Lookback), now, w.Interval)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for symbol %s", ErrNoData, symbol)
	}

	stats := &models.Stats{
		HighestPrice: bars[0].High,
		LowestPrice:  bars[0].Low,
		WindowSize:   windowSize,
		WindowUnit:   windowUnit,
		Interval:     w.Interval,
	}

	totalClose := 0.0
	history := make([]models.HistoryPoint, 0, len(bars))
	for _, bar := range bars {
		totalClose += bar.Close
		if bar.High > stats.HighestPrice {
			stats.HighestPrice = bar.High
		}
		if bar.Low < stats.LowestPrice {
			stats.LowestPrice = bar.Low
		}
		stats.TotalVolume += bar.Volume

		history = append(history, models.HistoryPoint{
			Date:   bar.Date.Format("2006-01-02"),
			Open:   common.Round3(bar.Open),
			Close:  common.Round3(bar.Close),
			High:   common.Round3(bar.High),
			Low:    common.Round3(bar.Low),
			Volume: bar.Volume,
			Stats:  stats,
		})
	}

	stats.AveragePrice = common.Round3(totalClose / float64(len(bars)))
	stats.HighestPrice = common.Round3(stats.HighestPrice)
	stats.LowestPrice = common.Round3(stats.LowestPrice)

	s.logger.Debug().
		Str("symbol", symbol).
		Int("bars", len(bars)).
		Str("interval", w.Interval).
		Msg("Stock history computed")

	return &models.StockHistory{
		Symbol:  symbol,
		History: history,
		Stats:   stats,
	}, nil
}

// TopPerformers analyzes the stock universe and returns the five largest by
// market cap with batch aggregates.
func (s *Service) TopPerformers(ctx context.Context) ([]*models.PerformanceRecord, *models.MarketSummary, error) {
	records := s.collectStocks(ctx, stockUniverse)
	ranked, summary := RankStocks(records)

	s.logger.Info().
		Int("analyzed", summary.SymbolsAnalyzed).
		Int("ranked", len(ranked)).
		Msg("Top performers computed")

	return ranked, summary, nil
}

// TopFunds analyzes the fund universe and returns the five best by yearly
// return with batch aggregates.
func (s *Service) TopFunds(ctx context.Context) ([]*models.FundRecord, *models.FundSummary, error) {
	records := s.collectFunds(ctx, fundUniverse())
	ranked, summary := RankFunds(records)

	s.logger.Info().
		Int("analyzed", summary.SymbolsAnalyzed).
		Int("ranked", len(ranked)).
		Msg("Top funds computed")

	return ranked, summary, nil
}

// Ensure Service implements MarketService
var _ interfaces.MarketService = (*Service)(nil)
