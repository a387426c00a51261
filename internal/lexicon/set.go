package lexicon

import (
	"sort"
	"time"
)

// Set is an immutable snapshot of every loaded lexicon, keyed by normalised
// language code, together with the hierarchy used to resolve fallbacks.
type Set struct {
	lexicons  map[string]*Lexicon
	hierarchy *Hierarchy
	loadedAt  time.Time
}

func newSet(hierarchy *Hierarchy) *Set {
	if hierarchy == nil {
		hierarchy = DefaultHierarchy()
	}
	return &Set{
		lexicons:  make(map[string]*Lexicon),
		hierarchy: hierarchy,
	}
}

// Get returns the lexicon for exactly code, without fallback.
func (s *Set) Get(code string) (*Lexicon, bool) {
	lex, ok := s.lexicons[NormalizeCode(code)]
	return lex, ok
}

// Pronunciation resolves word for language, falling back from a variant to
// its ancestors when the direct lookup misses.
func (s *Set) Pronunciation(word, language string) (string, bool) {
	p, _, ok := s.Resolve(word, language)
	return p, ok
}

// Resolve is Pronunciation that also reports the code of the lexicon that
// answered.
func (s *Set) Resolve(word, language string) (pronunciation, code string, ok bool) {
	if NormalizeWord(word) == "" {
		return "", "", false
	}
	for _, c := range s.hierarchy.Chain(language) {
		lex, found := s.lexicons[c]
		if !found {
			continue
		}
		if p, hit := lex.Lookup(word); hit {
			return p, lex.Code, true
		}
	}
	return "", "", false
}

// Codes returns the loaded language codes as written on disk, sorted.
func (s *Set) Codes() []string {
	codes := make([]string, 0, len(s.lexicons))
	for _, lex := range s.lexicons {
		codes = append(codes, lex.Code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of loaded languages.
func (s *Set) Len() int { return len(s.lexicons) }

// Hierarchy returns the hierarchy this snapshot resolves fallbacks with.
func (s *Set) Hierarchy() *Hierarchy { return s.hierarchy }

// LoadedAt returns when the snapshot was published.
func (s *Set) LoadedAt() time.Time { return s.loadedAt }
