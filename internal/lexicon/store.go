package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// FileExt is the extension of lexicon files inside the lexicon directory.
const FileExt = ".txt"

// maxLineLength bounds a single lexicon or corpus line.
const maxLineLength = 1024 * 1024

// ErrNotLexiconFile is returned for paths without the lexicon extension.
var ErrNotLexiconFile = errors.New("not a lexicon file")

// LineWarning describes a malformed line that was skipped during parsing.
type LineWarning struct {
	Line    int
	Content string
}

// ParseStats holds parser statistics for logging.
type ParseStats struct {
	TotalLines   int
	CommentLines int
	BlankLines   int
	Entries      int
	Duplicates   int
	Warnings     []LineWarning
}

// Lexicon maps normalised words to pronunciation strings for one language.
// A Lexicon is never mutated after parsing.
type Lexicon struct {
	Code  string // language code as written on disk
	Path  string // source file, empty when parsed from a reader
	Stats ParseStats

	entries map[string]string
}

// Lookup returns the pronunciation of word, normalising it first.
func (l *Lexicon) Lookup(word string) (string, bool) {
	if l == nil {
		return "", false
	}
	p, ok := l.entries[NormalizeWord(word)]
	return p, ok
}

// Contains reports whether word has an entry.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.Lookup(word)
	return ok
}

// Len returns the number of distinct entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Words returns all normalised words, sorted.
func (l *Lexicon) Words() []string {
	if l == nil {
		return nil
	}
	words := make([]string, 0, len(l.entries))
	for w := range l.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// CodeFromPath derives the language code from a lexicon file name.
func CodeFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), FileExt)
}

// IsLexiconFile reports whether path names a lexicon file.
func IsLexiconFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, FileExt) && len(base) > len(FileExt) && !strings.HasPrefix(base, ".")
}

// ParseFile reads a lexicon file. The language code is the file name stem.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func ParseFile(path string) (*Lexicon, error) {
	if !IsLexiconFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotLexiconFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close() //nolint:errcheck

	lex, err := Parse(CodeFromPath(path), f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	lex.Path = path
	return lex, nil
}

// Parse reads lexicon entries from r. Each non-blank, non-comment line is
// split on the first whitespace run into a word and its pronunciation.
// Lines that do not split into two fields are recorded in Stats.Warnings
// and skipped. When a word appears twice the last occurrence wins.
func Parse(code string, r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{
		Code:    code,
		entries: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		lex.Stats.TotalLines++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			lex.Stats.BlankLines++
			continue
		case strings.HasPrefix(line, "#"):
			lex.Stats.CommentLines++
			continue
		}

		word, pronunciation, ok := splitEntry(line)
		if !ok {
			lex.Stats.Warnings = append(lex.Stats.Warnings, LineWarning{
				Line:    lex.Stats.TotalLines,
				Content: line,
			})
			continue
		}

		key := NormalizeWord(word)
		if _, dup := lex.entries[key]; dup {
			lex.Stats.Duplicates++
		}
		lex.entries[key] = pronunciation
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	lex.Stats.Entries = len(lex.entries)
	return lex, nil
}

// splitEntry splits "word<ws>pronunciation with spaces" into its two fields.
func splitEntry(line string) (string, string, bool) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	word := line[:i]
	pronunciation := strings.TrimLeftFunc(line[i:], unicode.IsSpace)
	if word == "" || pronunciation == "" {
		return "", "", false
	}
	return word, pronunciation, true
}
