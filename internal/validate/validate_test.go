package validate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxLen  int
		wantErr error
		wantMsg string
	}{
		{"valid", "Hallo wereld", 0, nil, ""},
		{"empty", "", 0, ErrEmptyText, "Text cannot be empty"},
		{"blank", " \t\n", 0, ErrEmptyText, "Text cannot be empty"},
		{"at limit", strings.Repeat("a", 10), 10, nil, ""},
		{"over limit", strings.Repeat("a", 11), 10, ErrTextTooLong, "Text too long (maximum 10 characters)"},
		{"default limit", strings.Repeat("a", DefaultMaxTextLength+1), 0, ErrTextTooLong, "Text too long (maximum 5000 characters)"},
		{"runes not bytes", strings.Repeat("é", 10), 10, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Text(tt.text, tt.maxLen)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Text() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Text() error = %v, want %v", err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLanguageCode(t *testing.T) {
	for _, code := range []string{"en", "nl", "nl_be", "NL_BE", "nl-BE", "pt_br", "tl", "art_lojban", "mis"} {
		if err := LanguageCode(code); err != nil {
			t.Errorf("LanguageCode(%q) error = %v", code, err)
		}
	}

	for _, code := range []string{"", "xx", "english", "nl_nl"} {
		err := LanguageCode(code)
		if !errors.Is(err, ErrInvalidLanguage) {
			t.Errorf("LanguageCode(%q) error = %v, want ErrInvalidLanguage", code, err)
			continue
		}
		if err.Error() != InvalidLanguageMessage {
			t.Errorf("LanguageCode(%q) message = %q", code, err.Error())
		}
	}
}

func TestLanguageCode_Suggestions(t *testing.T) {
	err := LanguageCode("dutch")
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("error %v is not *Error", err)
	}
	if len(verr.Suggestions) == 0 || len(verr.Suggestions) > maxSuggestions {
		t.Fatalf("Suggestions = %v, want 1 to %d entries", verr.Suggestions, maxSuggestions)
	}
	found := false
	for _, s := range verr.Suggestions {
		if s == "nl" || s == "nl_be" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggestions = %v, want a Dutch code", verr.Suggestions)
	}
}

func TestFilePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "nl.txt")
	if err := os.WriteFile(file, []byte("huis huːs\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := FilePath(file); err != nil {
		t.Errorf("FilePath(file) error = %v", err)
	}

	missing := filepath.Join(dir, "missing.txt")
	err := FilePath(missing)
	if !errors.Is(err, ErrFileNotFound) || err.Error() != "File not found: "+missing {
		t.Errorf("FilePath(missing) error = %v", err)
	}

	err = FilePath(dir)
	if !errors.Is(err, ErrNotAFile) || err.Error() != "Path is not a file: "+dir {
		t.Errorf("FilePath(dir) error = %v", err)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) < 200 {
		t.Errorf("Languages() has %d entries, want the full table", len(langs))
	}
	if langs[0].Code != "zh" || langs[0].Name != "Chinese" {
		t.Errorf("first language = %+v", langs[0])
	}

	seen := make(map[string]bool)
	for _, l := range langs {
		if seen[l.Code] {
			t.Errorf("duplicate code %q", l.Code)
		}
		seen[l.Code] = true
		if l.Name == "" {
			t.Errorf("code %q has no name", l.Code)
		}
	}

	// Callers get a copy
	langs[0].Name = "changed"
	if Languages()[0].Name != "Chinese" {
		t.Error("Languages() should return a copy")
	}

	if name, ok := LanguageName("NL_BE"); !ok || name != "Dutch (Flemish - Belgium)" {
		t.Errorf("LanguageName(NL_BE) = %q, %v", name, ok)
	}
}
