package server

import "time"

// AnnotateRequest is the body of POST /annotate.
type AnnotateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// AnnotateResponse is returned by POST /annotate.
type AnnotateResponse struct {
	Language  string `json:"language"`
	Text      string `json:"text"`
	Annotated string `json:"annotated"`
}

// PronunciationResponse is returned by GET /pronunciation.
type PronunciationResponse struct {
	Word          string `json:"word"`
	Language      string `json:"language"`
	Pronunciation string `json:"pronunciation"`
	// Lexicon is the code of the lexicon that answered, which differs from
	// Language after a variant fallback.
	Lexicon string `json:"lexicon"`
}

// LanguageInfo describes one supported language code.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	HasLexicon bool   `json:"has_lexicon"`
}

// LanguagesResponse is returned by GET /languages.
type LanguagesResponse struct {
	Loaded    []string       `json:"loaded"`
	Supported []LanguageInfo `json:"supported"`
}

// ReloadResponse is returned by POST /reload.
type ReloadResponse struct {
	Loaded     map[string]int    `json:"loaded"`
	Skipped    []string          `json:"skipped,omitempty"`
	Failed     map[string]string `json:"failed,omitempty"`
	Warnings   int               `json:"warnings"`
	DurationMS int64             `json:"duration_ms"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status    string    `json:"status"`
	Languages int       `json:"languages"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}
