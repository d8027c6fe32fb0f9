package market

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/models"
)

// ErrNoData marks a symbol the provider returned no usable history for.
// Batch callers drop these results; single-symbol callers surface them.
var ErrNoData = errors.New("no data available")

// tradingDaysPerYear annualizes daily volatility.
const tradingDaysPerYear = 252

// fetchStock builds a PerformanceRecord for one symbol: metadata plus the
// return over the trailing month. Any provider failure collapses to
// ErrNoData so one bad symbol never aborts a batch.
func (s *Service) fetchStock(ctx context.Context, symbol string) (*models.PerformanceRecord, error) {
	w := ResolveWindow(30, "days")
	now := time.Now()

	bars, err := s.marketData.History(ctx, symbol, now.Add(-w.Lookback), now, w.Interval)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("History fetch failed")
		return nil, ErrNoData
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	info, err := s.marketData.Info(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Info fetch failed")
		return nil, ErrNoData
	}

	price := info.CurrentPrice
	if price == 0 {
		price = bars[len(bars)-1].Close
	}

	return &models.PerformanceRecord{
		Symbol:        symbol,
		Name:          info.Name,
		CurrentPrice:  common.Round3(price),
		MonthlyReturn: windowReturn(bars),
		MarketCap:     info.MarketCap,
		MarketCapB:    common.Round3(info.MarketCap / 1e9),
		Sector:        info.Sector,
		Industry:      info.Industry,
		Exchange:      info.Exchange,
		AvgVolume:     info.AvgVolume,
		ForwardPE:     info.ForwardPE,
		DividendYield: common.Round3(info.DividendYield),
	}, nil
}

// fetchFund builds a FundRecord for one symbol: metadata, returns over three
// trailing windows anchored to the same now, and annualized volatility from
// the yearly daily series.
func (s *Service) fetchFund(ctx context.Context, symbol string) (*models.FundRecord, error) {
	now := time.Now()

	monthly, err := s.fundWindowReturn(ctx, symbol, now, 30)
	if err != nil {
		return nil, err
	}
	quarterly, err := s.fundWindowReturn(ctx, symbol, now, 90)
	if err != nil {
		return nil, err
	}

	w := ResolveWindow(365, "days")
	yearBars, err := s.marketData.History(ctx, symbol, now.Add(-w.Lookback), now, w.Interval)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("History fetch failed")
		return nil, ErrNoData
	}
	if len(yearBars) == 0 {
		return nil, ErrNoData
	}

	info, err := s.marketData.Info(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Info fetch failed")
		return nil, ErrNoData
	}

	price := info.CurrentPrice
	if price == 0 {
		price = yearBars[len(yearBars)-1].Close
	}

	return &models.FundRecord{
		Symbol:       symbol,
		Name:         info.Name,
		Category:     categorizeFund(info),
		CurrentPrice: common.Round3(price),
		Returns: models.FundReturns{
			Monthly:   monthly,
			Quarterly: quarterly,
			Yearly:    windowReturn(yearBars),
		},
		TotalAssets:  info.TotalAssets,
		TotalAssetsB: common.Round3(info.TotalAssets / 1e9),
		ExpenseRatio: common.Round3(info.ExpenseRatio),
		Yield:        common.Round3(info.Yield),
		Volatility:   annualizedVolatility(yearBars),
		CategoryName: info.CategoryName,
		FundFamily:   info.FundFamily,
	}, nil
}

// fundWindowReturn fetches a trailing daily window and computes its return.
func (s *Service) fundWindowReturn(ctx context.Context, symbol string, now time.Time, days int) (float64, error) {
	w := ResolveWindow(days, "days")
	bars, err := s.marketData.History(ctx, symbol, now.Add(-w.Lookback), now, w.Interval)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Int("days", days).Msg("History fetch failed")
		return 0, ErrNoData
	}
	if len(bars) == 0 {
		return 0, ErrNoData
	}
	return windowReturn(bars), nil
}

// windowReturn computes the percent change from the first to the last close.
func windowReturn(bars []models.HistoryBar) float64 {
	first := bars[0].Close
	last := bars[len(bars)-1].Close
	if first == 0 {
		return 0
	}
	return common.Round3((last - first) / first * 100)
}

// annualizedVolatility is the standard deviation of day-over-day percent
// close changes scaled by sqrt(252), as a percent.
func annualizedVolatility(bars []models.HistoryBar) float64 {
	if len(bars) < 2 {
		return 0
	}

	changes := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			continue
		}
		changes = append(changes, (bars[i].Close-prev)/prev*100)
	}
	if len(changes) < 2 {
		return 0
	}

	mean := 0.0
	for _, c := range changes {
		mean += c
	}
	mean /= float64(len(changes))

	variance := 0.0
	for _, c := range changes {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(changes))

	return common.Round3(math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear))
}

// categorizeFund buckets a fund as bond or general by its provider category.
func categorizeFund(info *models.MarketInfo) string {
	category := strings.ToLower(info.CategoryName)
	for _, kw := range []string{"bond", "treasury", "fixed income"} {
		if strings.Contains(category, kw) {
			return "Bond Fund"
		}
	}
	return "Mutual Fund"
}
