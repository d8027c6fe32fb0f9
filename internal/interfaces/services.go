package interfaces

import (
	"context"

	"github.com/finpulse/finpulse/internal/models"
)

// MarketService handles market data operations
type MarketService interface {
	// StockHistory retrieves price history for one symbol over a
	// user-specified window, with summary statistics.
	StockHistory(ctx context.Context, symbol string, windowSize int, windowUnit string) (*models.StockHistory, error)

	// TopPerformers ranks the stock universe by market capitalization.
	TopPerformers(ctx context.Context) ([]*models.PerformanceRecord, *models.MarketSummary, error)

	// TopFunds ranks the fund universe by yearly return.
	TopFunds(ctx context.Context) ([]*models.FundRecord, *models.FundSummary, error)
}

// ChatService answers user questions grounded in the tips corpus
type ChatService interface {
	// Ask generates a grounded chat reply for a user message.
	Ask(ctx context.Context, message string) (*models.ChatReply, error)

	// Tips returns the full tips corpus.
	Tips() []models.TipDocument
}
