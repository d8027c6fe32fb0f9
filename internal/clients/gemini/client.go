// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/genai"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/interfaces"
	"github.com/finpulse/finpulse/internal/models"
)

const (
	DefaultModel = "gemini-2.0-flash"
)

// Client implements the LLMClient interface
type Client struct {
	client *genai.Client
	model  string
	logger *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: genaiClient,
		model:  DefaultModel,
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close closes the client
func (c *Client) Close() error {
	// The genai client doesn't have a Close method
	return nil
}

// Chat generates a reply to a user message. When grounding documents are
// provided they are prepended to the prompt as reference material.
func (c *Client) Chat(ctx context.Context, message string, grounding []models.GroundingDocument) (string, error) {
	c.logger.Debug().Str("model", c.model).Int("grounding", len(grounding)).Msg("Generating chat reply")

	prompt := buildChatPrompt(message, grounding)

	contents := genai.Text(prompt)
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(result)
}

// buildChatPrompt creates a prompt for a grounded chat reply
func buildChatPrompt(message string, grounding []models.GroundingDocument) string {
	var sb strings.Builder
	sb.WriteString("You are a personal finance assistant. Answer the user's question clearly and concisely.\n")

	if len(grounding) > 0 {
		sb.WriteString("\nUse the following reference material where relevant:\n")
		for _, doc := range grounding {
			sb.WriteString("\n## ")
			sb.WriteString(doc.Title)
			sb.WriteString("\n")
			sb.WriteString(doc.Body)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nQuestion: ")
	sb.WriteString(message)

	return sb.String()
}

// Rerank scores candidate texts against a query and returns the topK most
// relevant, ordered by descending score. The model is asked for a JSON array
// so the response parses without prose stripping.
func (c *Client) Rerank(ctx context.Context, query string, candidates []string, topK int) ([]models.RankedDocument, error) {
	if len(candidates) == 0 || topK <= 0 {
		return nil, nil
	}

	c.logger.Debug().Str("model", c.model).Int("candidates", len(candidates)).Msg("Reranking documents")

	prompt := buildRerankPrompt(query, candidates)

	contents := genai.Text(prompt)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to rerank: %w", err)
	}

	text, err := extractTextFromResponse(result)
	if err != nil {
		return nil, err
	}

	return parseRerankResponse(text, len(candidates), topK)
}

// buildRerankPrompt creates a prompt asking the model to score candidates
func buildRerankPrompt(query string, candidates []string) string {
	var sb strings.Builder
	sb.WriteString("Score each document below for relevance to the query on a 0.0-1.0 scale.\n")
	sb.WriteString("Respond with a JSON array of objects with fields \"index\" (integer) and \"score\" (number), one per document.\n\n")
	sb.WriteString("Query: ")
	sb.WriteString(query)
	sb.WriteString("\n")

	for i, candidate := range candidates {
		fmt.Fprintf(&sb, "\nDocument %d:\n%s\n", i, candidate)
	}

	return sb.String()
}

// parseRerankResponse decodes the model's JSON scores, drops out-of-range
// indices, and returns the topK entries sorted by descending score.
func parseRerankResponse(text string, numCandidates, topK int) ([]models.RankedDocument, error) {
	var ranked []models.RankedDocument
	if err := json.Unmarshal([]byte(text), &ranked); err != nil {
		return nil, fmt.Errorf("failed to parse rerank response: %w", err)
	}

	valid := make([]models.RankedDocument, 0, len(ranked))
	for _, doc := range ranked {
		if doc.Index < 0 || doc.Index >= numCandidates {
			continue
		}
		valid = append(valid, doc)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Score > valid[j].Score
	})

	if len(valid) > topK {
		valid = valid[:topK]
	}

	return valid, nil
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// Ensure Client implements LLMClient
var _ interfaces.LLMClient = (*Client)(nil)
