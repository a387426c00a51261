package dataset

import (
	"sort"
	"testing"

	"github.com/eburon/echo-lexicon/internal/lexicon"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"nl", "dutch", true},
		{"NL", "dutch", true},
		{"nl_be", "dutch", true},
		{"nl-BE", "dutch", true},
		{"dutch", "dutch", true},
		{"Dutch", "dutch", true},
		{"pt_br", "portuguese", true},
		{"zh_hant", "mandarin_chinese", true},
		{"mandarin_chinese", "mandarin_chinese", true},
		{"tl", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveLanguage(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveLanguage(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveLanguageWith(t *testing.T) {
	h, err := lexicon.NewHierarchy(map[string]string{"gsw": "de"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := ResolveLanguageWith("gsw", h); !ok || got != "german" {
		t.Errorf("ResolveLanguageWith(gsw) = %q, %v", got, ok)
	}
	if _, ok := ResolveLanguageWith("nl_xx", h); ok {
		t.Error("inference disabled, nl_xx should not resolve")
	}
}

func TestAvailableLanguages(t *testing.T) {
	langs := AvailableLanguages()
	if len(langs) != len(datasetLanguages) {
		t.Errorf("AvailableLanguages() has %d entries, want %d", len(langs), len(datasetLanguages))
	}
	if !sort.StringsAreSorted(langs) {
		t.Error("AvailableLanguages() should be sorted")
	}
}
