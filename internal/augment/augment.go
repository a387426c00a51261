// Package augment grows a lexicon with words that occur often in a speech
// corpus. New words get a placeholder pronunciation, the word itself in
// square brackets, for later manual correction.
package augment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/rs/xid"

	"github.com/eburon/echo-lexicon/internal/corpus"
	"github.com/eburon/echo-lexicon/internal/dataset"
	"github.com/eburon/echo-lexicon/internal/lexicon"
	"github.com/eburon/echo-lexicon/internal/progress"
)

const (
	DefaultThreshold    = 5
	DefaultFetchTimeout = 10 * time.Minute
)

// HeaderPrefix starts the comment line written above each appended block.
const HeaderPrefix = "# Auto-generated from Multilingual LibriSpeech"

// Candidate is a corpus word missing from the target lexicon.
type Candidate struct {
	Word      string
	Frequency int
}

// Result describes one augmentation run.
type Result struct {
	RunID      string
	Language   string
	Target     string // lexicon code
	Path       string // lexicon file
	CorpusPath string
	// CorpusWords is the number of distinct words found in the corpus.
	CorpusWords int
	// Existing is the number of entries the lexicon had before the run.
	Existing   int
	Candidates []Candidate
	// Added is the number of lines appended; zero for a dry run or when no
	// candidate qualified.
	Added    int
	Duration time.Duration
}

// Augmenter appends frequent corpus words to lexicon files in a directory.
// It never touches a live lexicon.Manager; callers reload after a run.
type Augmenter struct {
	dir          string
	fetcher      dataset.Fetcher
	threshold    int
	split        string
	fetchTimeout time.Duration
	logger       *log.Logger
	progress     progress.Func
	open         func(path string) (appendFile, error)
}

// Option configures an Augmenter.
type Option func(*Augmenter)

// WithThreshold sets the minimum corpus frequency for a new word.
func WithThreshold(n int) Option {
	return func(a *Augmenter) {
		if n > 0 {
			a.threshold = n
		}
	}
}

// WithSplit selects the dataset split.
func WithSplit(split string) Option {
	return func(a *Augmenter) { a.split = split }
}

// WithFetchTimeout bounds the corpus fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(a *Augmenter) {
		if d > 0 {
			a.fetchTimeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Augmenter) { a.logger = l }
}

// WithProgress sets the download progress sink.
func WithProgress(f progress.Func) Option {
	return func(a *Augmenter) { a.progress = f }
}

// New returns an Augmenter writing to lexicon files in dir.
func New(dir string, fetcher dataset.Fetcher, opts ...Option) *Augmenter {
	a := &Augmenter{
		dir:          dir,
		fetcher:      fetcher,
		threshold:    DefaultThreshold,
		split:        dataset.DefaultSplit,
		fetchTimeout: DefaultFetchTimeout,
		logger:       log.Default(),
		progress:     progress.Nop,
		open:         openForAppend,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Augment fetches the corpus for language, picks the words seen at least
// threshold times that the target lexicon lacks, and appends them under a
// header comment in a single write. A run that finds nothing to add
// succeeds without changing the file. If the write fails the file is
// truncated back to its previous size.
func (a *Augmenter) Augment(ctx context.Context, language, targetCode string) (*Result, error) {
	return a.run(ctx, language, targetCode, false)
}

// Plan is Augment without the write: it reports the candidates only.
func (a *Augmenter) Plan(ctx context.Context, language, targetCode string) (*Result, error) {
	return a.run(ctx, language, targetCode, true)
}

func (a *Augmenter) run(ctx context.Context, language, targetCode string, dryRun bool) (*Result, error) {
	start := time.Now()
	runID := xid.New().String()
	logger := a.logger.With("run", runID)

	code, err := TargetCode(targetCode)
	if err != nil {
		return nil, invalidTarget(runID, targetCode, err)
	}
	logger.Info("Augmenting lexicon", "language", language, "target", code, "threshold", a.threshold)

	c, err := a.loadCorpus(ctx, language, runID, logger)
	if err != nil {
		return nil, err
	}
	return a.apply(c, code, runID, logger, dryRun, start)
}

// loadedCorpus is a fetched and counted corpus, shared by every target of
// one language.
type loadedCorpus struct {
	language string
	path     string
	table    *corpus.FrequencyTable
}

func (a *Augmenter) loadCorpus(ctx context.Context, language, runID string, logger *log.Logger) (*loadedCorpus, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	corpusPath, err := a.fetcher.FetchCorpus(fetchCtx, language, a.split, a.progress)
	cancel()
	if err != nil {
		logger.Error("Corpus fetch failed", "language", language, "error", err)
		return nil, NewError(ErrorCodeFetchFailed, "could not fetch corpus for "+language, err).
			WithContext("run", runID)
	}

	table, stats, err := corpus.Extract(corpusPath, language)
	if err != nil {
		logger.Error("Corpus unreadable", "path", corpusPath, "error", err)
		return nil, NewError(ErrorCodeCorpusUnreadable, "could not read corpus", err).
			WithContext("run", runID).WithContext("path", corpusPath)
	}
	logger.Debug("Extracted corpus words", "words", table.Len(), "lines", stats.Lines, "skipped", stats.SkippedLines)
	return &loadedCorpus{language: language, path: corpusPath, table: table}, nil
}

// apply compares c with the lexicon for code and appends the missing words.
func (a *Augmenter) apply(c *loadedCorpus, code, runID string, logger *log.Logger, dryRun bool, start time.Time) (*Result, error) {
	res := &Result{
		RunID:       runID,
		Language:    c.language,
		Target:      code,
		Path:        filepath.Join(a.dir, code+lexicon.FileExt),
		CorpusPath:  c.path,
		CorpusWords: c.table.Len(),
	}

	existing, err := readTarget(res.Path)
	if err != nil {
		logger.Error("Lexicon unreadable", "path", res.Path, "error", err)
		return nil, NewError(ErrorCodeLexiconUnreadable, "could not read lexicon", err).
			WithContext("run", runID).WithContext("path", res.Path)
	}
	res.Existing = existing.Len()

	for _, wc := range c.table.AtLeast(a.threshold) {
		if existing.Contains(wc.Word) {
			continue
		}
		if !storable(wc.Word) {
			logger.Debug("Skipping word the lexicon cannot hold", "word", wc.Word)
			continue
		}
		res.Candidates = append(res.Candidates, Candidate{Word: wc.Word, Frequency: wc.Count})
	}

	if dryRun || len(res.Candidates) == 0 {
		res.Duration = time.Since(start)
		logger.Info("No lexicon change", "target", code, "candidates", len(res.Candidates), "dry_run", dryRun)
		return res, nil
	}

	if err := a.appendBlock(res.Path, c.language, res.Candidates); err != nil {
		logger.Error("Lexicon unwritable", "path", res.Path, "error", err)
		return nil, NewError(ErrorCodeLexiconUnwritable, "could not update lexicon", err).
			WithContext("run", runID).WithContext("path", res.Path)
	}
	res.Added = len(res.Candidates)
	res.Duration = time.Since(start)

	logger.Info("Added words to lexicon", "target", code, "added", res.Added, "duration", res.Duration)
	return res, nil
}

func invalidTarget(runID, target string, err error) *Error {
	return NewError(ErrorCodeInvalidTarget, "bad target lexicon", err).
		WithContext("run", runID).WithContext("target", target)
}

// TargetCode turns a target name such as "nl" or "nl.txt" into a lexicon
// code. Names containing path elements are rejected.
func TargetCode(target string) (string, error) {
	code := strings.TrimSuffix(strings.TrimSpace(target), lexicon.FileExt)
	switch {
	case code == "":
		return "", errors.New("empty target")
	case code == "." || code == "..", strings.ContainsAny(code, `/\`):
		return "", fmt.Errorf("target %q must be a lexicon name, not a path", target)
	case strings.HasPrefix(code, "."):
		return "", fmt.Errorf("target %q names a hidden file", target)
	}
	return code, nil
}

// readTarget parses the lexicon file at path. A missing file is an empty
// lexicon.
func readTarget(path string) (*lexicon.Lexicon, error) {
	lex, err := lexicon.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lexicon.Parse(lexicon.CodeFromPath(path), strings.NewReader(""))
	}
	return lex, err
}

// storable reports whether word reads back from a "word [word]" line as
// the same entry. A leading '#' would turn the line into a comment.
func storable(word string) bool {
	return word != "" &&
		!strings.HasPrefix(word, "#") &&
		!strings.ContainsFunc(word, unicode.IsSpace)
}

// FormatBlock renders the lines appended for candidates.
func FormatBlock(language string, candidates []Candidate) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "\n%s (%s)\n", HeaderPrefix, language)
	for _, c := range candidates {
		fmt.Fprintf(&b, "%s [%s]\n", c.Word, c.Word)
	}
	return b.Bytes()
}

type appendFile interface {
	io.Writer
	Stat() (fs.FileInfo, error)
	Sync() error
	Truncate(size int64) error
	Close() error
}

func openForAppend(path string) (appendFile, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

func (a *Augmenter) appendBlock(path, language string, candidates []Candidate) (err error) {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	f, err := a.open(path)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	size := info.Size()

	block := FormatBlock(language, candidates)
	if size > 0 {
		last, rerr := lastByte(path, size)
		if rerr == nil && last != '\n' {
			block = append([]byte{'\n'}, block...)
		}
	}

	defer func() {
		if err == nil {
			return
		}
		if !existed {
			os.Remove(path) //nolint:errcheck
			return
		}
		if terr := os.Truncate(path, size); terr != nil {
			err = errors.Join(err, fmt.Errorf("restore %s: %w", path, terr))
		}
	}()

	if _, err = f.Write(block); err != nil {
		f.Truncate(size) //nolint:errcheck
		f.Close()        //nolint:errcheck
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	return f.Close()
}

func lastByte(path string, size int64) (byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck

	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, size-1); err != nil {
		return 0, err
	}
	return buf[0], nil
}
