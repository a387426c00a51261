package lexicon

import "strings"

// Punctuation is the set of characters stripped from both ends of a token
// before lookup and reattached afterwards.
const Punctuation = `.,!?;:"()[]{}`

// PronunciationLookup resolves a word for a language.
type PronunciationLookup interface {
	Pronunciation(word, language string) (string, bool)
}

// SplitPunctuation splits token into leading punctuation, the candidate
// word, and trailing punctuation.
func SplitPunctuation(token string) (lead, core, trail string) {
	rest := strings.TrimLeft(token, Punctuation)
	lead = token[:len(token)-len(rest)]
	core = strings.TrimRight(rest, Punctuation)
	trail = rest[len(core):]
	return lead, core, trail
}

// StripPunctuation returns token without leading or trailing punctuation.
func StripPunctuation(token string) string {
	return strings.Trim(token, Punctuation)
}

// Annotator rewrites text with inline pronunciation hints.
type Annotator struct {
	lookup PronunciationLookup
}

// NewAnnotator returns an annotator backed by lookup.
func NewAnnotator(lookup PronunciationLookup) *Annotator {
	return &Annotator{lookup: lookup}
}

// Annotate returns text with every known word rewritten as
// word[pronunciation], punctuation kept in place. Tokens are split on any
// whitespace and joined with single spaces, so runs of spaces, tabs and
// newlines collapse. Unknown words pass through unchanged.
func (a *Annotator) Annotate(text, language string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/2)

	for i, token := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.annotateToken(token, language))
	}
	return b.String()
}

func (a *Annotator) annotateToken(token, language string) string {
	lead, core, trail := SplitPunctuation(token)
	if core == "" {
		return token
	}

	pronunciation, ok := a.lookup.Pronunciation(core, language)
	if !ok {
		return token
	}

	return lead + core + "[" + pronunciation + "]" + trail
}
