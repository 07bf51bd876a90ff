// Package domain holds the analysis request and result shapes and the ports between layers
package domain

// AnalyzeRequest is the POST /analyze body
// text is a pointer so a missing field is told apart from an empty string
type AnalyzeRequest struct {
	Text *string `json:"text" validate:"required" example:"I love this new programming framework, it's amazing!"`
}

// AnalysisResult is everything derived from one text
type AnalysisResult struct {
	SentimentScore     float64  `json:"sentiment_score"      example:"0.8516"`
	SentimentLabel     string   `json:"sentiment_label"      example:"positive"`
	SubjectivityScore  float64  `json:"subjectivity_score"   example:"0.1484"`
	TextCategory       string   `json:"text_category"        example:"technical"`
	CategoryConfidence float64  `json:"category_confidence"  example:"0.2"`
	KeyPhrases         []string `json:"key_phrases"`
	WordCount          int      `json:"word_count"           example:"8"`
	ReadingTimeMinutes float64  `json:"reading_time_minutes" example:"0.04"`
}
