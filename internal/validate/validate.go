// Package validate checks user input before it reaches the lexicon tools.
// Error messages are stable and safe to show to end users.
package validate

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/eburon/echo-lexicon/internal/lexicon"
)

// DefaultMaxTextLength is the text limit used when none is configured.
const DefaultMaxTextLength = 5000

// InvalidLanguageMessage is reported for any unsupported language code.
const InvalidLanguageMessage = "Invalid language code. Supported codes include ISO 639-1 codes and regional variants. Examples: en, zh, es, fr, de, pt_br, nl_be, tl, etc."

const maxSuggestions = 3

var (
	ErrEmptyText       = errors.New("empty text")
	ErrTextTooLong     = errors.New("text too long")
	ErrInvalidLanguage = errors.New("invalid language code")
	ErrFileNotFound    = errors.New("file not found")
	ErrNotAFile        = errors.New("not a regular file")
)

// Error is a validation failure. Error() returns only the user-facing
// message; the sentinel it wraps identifies the kind of failure.
type Error struct {
	Field   string
	Message string
	// Suggestions holds close matches for an invalid value, best first.
	Suggestions []string

	kind error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.kind }

// Language is a supported language code and its display name.
type Language struct {
	Code string
	Name string
}

var languageIndex = func() map[string]string {
	m := make(map[string]string, len(supportedLanguages))
	for _, l := range supportedLanguages {
		m[l.Code] = l.Name
	}
	return m
}()

// Text checks that text is not blank and at most maxLen characters long.
// A non-positive maxLen means DefaultMaxTextLength.
func Text(text string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLength
	}
	if strings.TrimSpace(text) == "" {
		return &Error{Field: "text", Message: "Text cannot be empty", kind: ErrEmptyText}
	}
	if utf8.RuneCountInString(text) > maxLen {
		return &Error{
			Field:   "text",
			Message: fmt.Sprintf("Text too long (maximum %d characters)", maxLen),
			kind:    ErrTextTooLong,
		}
	}
	return nil
}

// LanguageCode checks that code is a supported language. Codes are matched
// without regard to case, and '-' is accepted in place of '_'.
func LanguageCode(code string) error {
	if _, ok := languageIndex[lexicon.NormalizeCode(code)]; ok {
		return nil
	}
	return &Error{
		Field:       "language",
		Message:     InvalidLanguageMessage,
		Suggestions: Suggest(code),
		kind:        ErrInvalidLanguage,
	}
}

// FilePath checks that path exists and is a regular file.
func FilePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &Error{Field: "path", Message: "File not found: " + path, kind: ErrFileNotFound}
	}
	if !info.Mode().IsRegular() {
		return &Error{Field: "path", Message: "Path is not a file: " + path, kind: ErrNotAFile}
	}
	return nil
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// LanguageName returns the display name of code.
func LanguageName(code string) (string, bool) {
	name, ok := languageIndex[lexicon.NormalizeCode(code)]
	return name, ok
}

type languageSource []Language

func (s languageSource) String(i int) string {
	return strings.ToLower(s[i].Code + " " + s[i].Name)
}

func (s languageSource) Len() int { return len(s) }

// Suggest returns up to three supported codes that fuzzily match input,
// against both codes and display names.
func Suggest(input string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}
	matches := fuzzy.FindFrom(input, languageSource(supportedLanguages))

	var out []string
	for _, m := range matches {
		out = append(out, supportedLanguages[m.Index].Code)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
