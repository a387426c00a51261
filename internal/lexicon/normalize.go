package lexicon

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeWord returns the lookup key for a word: NFC composed and lower-cased.
// Keys written by the augmenter and keys read by the manager go through the
// same function, so "Huis", "HUIS" and "huis" all collide.
func NormalizeWord(word string) string {
	if strings.TrimSpace(word) == "" {
		return ""
	}
	return NewNormalizer().Word(word)
}

// Normalizer produces the same keys as NormalizeWord while reusing one
// caser. A Normalizer must not be shared across goroutines.
type Normalizer struct {
	lower cases.Caser
}

// NewNormalizer returns a Normalizer for use by a single goroutine.
func NewNormalizer() *Normalizer {
	return &Normalizer{lower: cases.Lower(language.Und)}
}

// Word returns the lookup key for word.
func (n *Normalizer) Word(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return n.lower.String(norm.NFC.String(word))
}

// NormalizeCode returns the lookup key for a language code. Codes are
// case-insensitive and accept both "nl_be" and "nl-BE".
func NormalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	return strings.ReplaceAll(code, "-", VariantSeparator)
}
