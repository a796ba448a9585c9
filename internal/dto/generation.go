package dto

import "quiz-forge/internal/domain"

// GenerateRequest represents a single generation request
// @Description Source text and the number of keywords to extract
type GenerateRequest struct {
	Text string `json:"text"`
	TopN int    `json:"top_n,omitempty"`
}

// GenerateResponse represents one generation result
// @Description Assignment questions and multiple-choice items built from the text
type GenerateResponse struct {
	ID          string           `json:"id,omitempty"`
	Warning     string           `json:"warning,omitempty"`
	Keywords    []string         `json:"keywords"`
	Assignments []string         `json:"assignments"`
	MCQs        []domain.MCQItem `json:"mcqs"`
}

// Skipped reports whether generation was skipped because the input was blank.
func (r *GenerateResponse) Skipped() bool {
	return r.Warning != ""
}

// KeywordsRequest represents a keyword extraction request
type KeywordsRequest struct {
	Text string `json:"text"`
	TopN int    `json:"top_n,omitempty"`
}

// KeywordsResponse lists the extracted keywords, most frequent first
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// BatchGenerateRequest holds several documents to generate questions for
type BatchGenerateRequest struct {
	Documents []GenerateRequest `json:"documents"`
}

// BatchGenerateResponse holds one result per document, in request order
type BatchGenerateResponse struct {
	Results []*GenerateResponse `json:"results"`
}

// HealthResponse reports service and cache status
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
