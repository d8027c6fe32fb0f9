package market

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/finpulse/finpulse/internal/models"
)

// maxConcurrentFetches bounds provider fan-out per batch.
const maxConcurrentFetches = 10

// collectStocks fetches every symbol concurrently and returns the successful
// records in completion order. Symbols without data are dropped, never fatal.
func (s *Service) collectStocks(ctx context.Context, symbols []string) []*models.PerformanceRecord {
	results := make(chan *models.PerformanceRecord, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, symbol := range symbols {
		g.Go(func() error {
			record, err := s.fetchStock(ctx, symbol)
			if err != nil {
				if !errors.Is(err, ErrNoData) {
					s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Stock fetch failed")
				}
				return nil
			}
			results <- record
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	records := make([]*models.PerformanceRecord, 0, len(symbols))
	for record := range results {
		records = append(records, record)
	}
	return records
}

// collectFunds is the fund counterpart of collectStocks.
func (s *Service) collectFunds(ctx context.Context, symbols []string) []*models.FundRecord {
	results := make(chan *models.FundRecord, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, symbol := range symbols {
		g.Go(func() error {
			record, err := s.fetchFund(ctx, symbol)
			if err != nil {
				if !errors.Is(err, ErrNoData) {
					s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Fund fetch failed")
				}
				return nil
			}
			results <- record
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	records := make([]*models.FundRecord, 0, len(symbols))
	for record := range results {
		records = append(records, record)
	}
	return records
}
