package models

// TipDocument is one entry of the fixed in-process tips corpus.
type TipDocument struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// RankedDocument is one reranker result: the index of a candidate in the
// submitted list and its relevance score.
type RankedDocument struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// GroundingDocument is a retrieval-selected corpus entry passed to the LLM
// as context for a chat reply.
type GroundingDocument struct {
	Title string  `json:"title"`
	Body  string  `json:"body"`
	Score float64 `json:"score"`
}

// ChatReply is the payload for a chat request. Sources lists the titles of
// the grounding documents used, in relevance order.
type ChatReply struct {
	Reply   string   `json:"reply"`
	Sources []string `json:"sources"`
}
