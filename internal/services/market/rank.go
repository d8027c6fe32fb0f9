package market

import (
	"sort"
	"time"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/models"
)

// topN is the number of ranked records returned per batch.
const topN = 5

// RankStocks sorts records by market cap descending, keeps the top five, and
// assigns ranks. The sort is stable so equal caps keep their collection
// order. Summary top-line figures cover the ranked records only; the symbol
// count and sector set cover the whole batch.
func RankStocks(records []*models.PerformanceRecord) ([]*models.PerformanceRecord, *models.MarketSummary) {
	summary := &models.MarketSummary{
		SymbolsAnalyzed: len(records),
		Sectors:         collectSectors(records),
		ComputedAt:      time.Now().UTC(),
	}
	if len(records) == 0 {
		return []*models.PerformanceRecord{}, summary
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MarketCap > records[j].MarketCap
	})
	if len(records) > topN {
		records = records[:topN]
	}

	totalCap := 0.0
	totalReturn := 0.0
	for i, record := range records {
		record.Rank = i + 1
		totalCap += record.MarketCap
		totalReturn += record.MonthlyReturn
	}

	summary.TotalMarketCapB = common.Round3(totalCap / 1e9)
	summary.AvgMonthlyReturn = common.Round3(totalReturn / float64(len(records)))
	return records, summary
}

// RankFunds is the fund counterpart of RankStocks, ordered by yearly return.
func RankFunds(records []*models.FundRecord) ([]*models.FundRecord, *models.FundSummary) {
	summary := &models.FundSummary{
		SymbolsAnalyzed: len(records),
		Categories:      collectCategories(records),
		ComputedAt:      time.Now().UTC(),
	}
	if len(records) == 0 {
		return []*models.FundRecord{}, summary
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Returns.Yearly > records[j].Returns.Yearly
	})
	if len(records) > topN {
		records = records[:topN]
	}

	totalAssets := 0.0
	totalReturn := 0.0
	for i, record := range records {
		record.Rank = i + 1
		totalAssets += record.TotalAssets
		totalReturn += record.Returns.Yearly
	}

	summary.TotalAssetsB = common.Round3(totalAssets / 1e9)
	summary.AvgYearlyReturn = common.Round3(totalReturn / float64(len(records)))
	return records, summary
}

// collectSectors returns the sorted distinct sectors across a batch.
func collectSectors(records []*models.PerformanceRecord) []string {
	seen := make(map[string]bool)
	for _, record := range records {
		if record.Sector != "" {
			seen[record.Sector] = true
		}
	}
	sectors := make([]string, 0, len(seen))
	for sector := range seen {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)
	return sectors
}

// collectCategories counts records per category bucket across a batch.
func collectCategories(records []*models.FundRecord) map[string]int {
	categories := make(map[string]int)
	for _, record := range records {
		categories[record.Category]++
	}
	return categories
}
