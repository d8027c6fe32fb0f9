// Package interfaces defines service contracts for finpulse
package interfaces

import (
	"context"
	"time"

	"github.com/finpulse/finpulse/internal/models"
)

// MarketDataClient provides access to the market data provider
type MarketDataClient interface {
	// History retrieves price bars for a symbol between from and to at the
	// given interval. The returned slice may be empty; absence of data is
	// not an error.
	History(ctx context.Context, symbol string, from, to time.Time, interval string) ([]models.HistoryBar, error)

	// Info retrieves descriptive metadata for a symbol. Missing provider
	// fields are filled with typed defaults, never treated as fatal.
	Info(ctx context.Context, symbol string) (*models.MarketInfo, error)
}

// LLMClient provides access to the LLM provider
type LLMClient interface {
	// Chat generates a reply to a user message, optionally grounded in
	// retrieval-selected documents.
	Chat(ctx context.Context, message string, grounding []models.GroundingDocument) (string, error)

	// Rerank scores candidate texts against a query and returns the topK
	// most relevant, ordered by descending relevance.
	Rerank(ctx context.Context, query string, candidates []string, topK int) ([]models.RankedDocument, error)
}
