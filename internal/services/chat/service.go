// Package chat answers user questions grounded in the tips corpus.
package chat

import (
	"context"
	"fmt"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/interfaces"
	"github.com/finpulse/finpulse/internal/models"
)

// groundingTopK is how many corpus documents accompany each chat prompt.
const groundingTopK = 3

// Service implements the ChatService interface
type Service struct {
	llm    interfaces.LLMClient
	logger *common.Logger
}

// NewService creates a new chat service
func NewService(llm interfaces.LLMClient, logger *common.Logger) *Service {
	return &Service{
		llm:    llm,
		logger: logger,
	}
}

// Ask generates a grounded reply to a user message. Retrieval failure
// degrades to an ungrounded reply; generation failure is an error.
func (s *Service) Ask(ctx context.Context, message string) (*models.ChatReply, error) {
	grounding := s.selectDocuments(ctx, message)

	reply, err := s.llm.Chat(ctx, message, grounding)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	sources := make([]string, 0, len(grounding))
	for _, doc := range grounding {
		sources = append(sources, doc.Title)
	}

	return &models.ChatReply{
		Reply:   reply,
		Sources: sources,
	}, nil
}

// Tips returns the full tips corpus.
func (s *Service) Tips() []models.TipDocument {
	tips := make([]models.TipDocument, len(tipsCorpus))
	copy(tips, tipsCorpus)
	return tips
}

// selectDocuments reranks the corpus against the message and returns the top
// matches with scores attached. Any rerank failure yields empty grounding.
func (s *Service) selectDocuments(ctx context.Context, message string) []models.GroundingDocument {
	candidates := make([]string, len(tipsCorpus))
	for i, doc := range tipsCorpus {
		candidates[i] = doc.Title + "\n" + doc.Body
	}

	ranked, err := s.llm.Rerank(ctx, message, candidates, groundingTopK)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Rerank failed, answering without grounding")
		return nil
	}

	grounding := make([]models.GroundingDocument, 0, len(ranked))
	for _, r := range ranked {
		doc := tipsCorpus[r.Index]
		grounding = append(grounding, models.GroundingDocument{
			Title: doc.Title,
			Body:  doc.Body,
			Score: r.Score,
		})
	}
	return grounding
}

// Ensure Service implements ChatService
var _ interfaces.ChatService = (*Service)(nil)
