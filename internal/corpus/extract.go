package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"

	"github.com/eburon/echo-lexicon/internal/lexicon"
)

// CompressedExt marks a transcript file stored zstd-compressed.
const CompressedExt = ".zst"

const maxLineLength = 1024 * 1024

// Stats describes one extraction pass.
type Stats struct {
	Lines        int
	SkippedLines int // lines with no transcript after the utterance id
	Tokens       int // tokens counted, after filtering
}

// Extract counts the words in the transcript file at path. Each line is an
// utterance id, whitespace, and the transcript. On failure the returned
// table is empty, never nil.
func Extract(path, language string) (*FrequencyTable, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewFrequencyTable(), Stats{}, fmt.Errorf("open transcripts: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	if strings.HasSuffix(path, CompressedExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return NewFrequencyTable(), Stats{}, fmt.Errorf("open zstd transcripts: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	table, stats, err := ExtractReader(r)
	if err != nil {
		return NewFrequencyTable(), Stats{}, fmt.Errorf("extract %s transcripts: %w", language, err)
	}
	return table, stats, nil
}

// ExtractReader counts the words in transcript lines read from r.
func ExtractReader(r io.Reader) (*FrequencyTable, Stats, error) {
	table := NewFrequencyTable()
	normalizer := lexicon.NewNormalizer()
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			stats.SkippedLines++
			continue
		}

		idx := strings.IndexFunc(line, unicode.IsSpace)
		if idx < 0 {
			stats.SkippedLines++
			continue
		}

		for _, token := range strings.Fields(line[idx:]) {
			word := normalizer.Word(lexicon.StripPunctuation(token))
			if utf8.RuneCountInString(word) <= 1 {
				continue
			}
			table.Add(word, 1)
			stats.Tokens++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}
	return table, stats, nil
}
