package dataset

import (
	"sort"
	"strings"

	"github.com/eburon/echo-lexicon/internal/lexicon"
)

// datasetLanguages maps lexicon language codes to Multilingual LibriSpeech
// language names.
var datasetLanguages = map[string]string{
	"nl": "dutch",
	"de": "german",
	"fr": "french",
	"es": "spanish",
	"it": "italian",
	"pt": "portuguese",
	"pl": "polish",
	"ru": "russian",
	"ar": "arabic",
	"zh": "mandarin_chinese",
	"ja": "japanese",
	"ko": "korean",
	"hi": "hindi",
	"tr": "turkish",
	"fi": "finnish",
	"sv": "swedish",
	"no": "norwegian",
	"da": "danish",
	"is": "icelandic",
	"el": "greek",
	"cs": "czech",
	"hu": "hungarian",
	"ro": "romanian",
}

// AvailableLanguages returns the dataset language names, sorted.
func AvailableLanguages() []string {
	names := make([]string, 0, len(datasetLanguages))
	for _, name := range datasetLanguages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveLanguage maps a lexicon code or a dataset language name to the
// dataset language name. Variant codes resolve through their ancestors, so
// nl_be yields "dutch".
func ResolveLanguage(codeOrName string) (string, bool) {
	return resolveLanguage(codeOrName, lexicon.DefaultHierarchy())
}

// ResolveLanguageWith is ResolveLanguage using h for variant fallback.
func ResolveLanguageWith(codeOrName string, h *lexicon.Hierarchy) (string, bool) {
	if h == nil {
		h = lexicon.DefaultHierarchy()
	}
	return resolveLanguage(codeOrName, h)
}

func resolveLanguage(codeOrName string, h *lexicon.Hierarchy) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(codeOrName))
	if name == "" {
		return "", false
	}
	for _, known := range datasetLanguages {
		if name == known {
			return known, true
		}
	}
	for _, code := range h.Chain(codeOrName) {
		if known, ok := datasetLanguages[code]; ok {
			return known, true
		}
	}
	return "", false
}
