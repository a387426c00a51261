package augment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/eburon/echo-lexicon/internal/lexicon"
	"github.com/eburon/echo-lexicon/internal/progress"
)

type fakeFetcher struct {
	path  string
	err   error
	calls int
	split string
}

func (f *fakeFetcher) FetchCorpus(ctx context.Context, language, split string, report progress.Func) (string, error) {
	f.calls++
	f.split = split
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

// writeCorpus writes a transcript file where each word appears the given
// number of times, in the order given.
func writeCorpus(t *testing.T, counts [][2]interface{}) string {
	t.Helper()
	var b strings.Builder
	n := 0
	for _, c := range counts {
		word, times := c[0].(string), c[1].(int)
		for i := 0; i < times; i++ {
			n++
			fmt.Fprintf(&b, "utt%04d %s\n", n, word)
		}
	}
	path := filepath.Join(t.TempDir(), "transcripts.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestAugmenter(dir string, f *fakeFetcher, opts ...Option) *Augmenter {
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(dir, f, opts...)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestAugment(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "nl.txt")
	original := "# Dutch\nhuis huːs\n"
	if err := os.WriteFile(lexPath, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{
		{"foo", 4},
		{"bar", 5},
		{"huis", 9},
		{"fiets", 7},
		{"boom", 5},
	})}
	a := newTestAugmenter(dir, f)

	res, err := a.Augment(context.Background(), "dutch", "nl")
	if err != nil {
		t.Fatalf("Augment() error = %v", err)
	}

	want := original +
		"\n# Auto-generated from Multilingual LibriSpeech (dutch)\n" +
		"fiets [fiets]\n" +
		"bar [bar]\n" +
		"boom [boom]\n"
	if got := readFile(t, lexPath); got != want {
		t.Errorf("lexicon after augment:\n%q\nwant:\n%q", got, want)
	}

	if res.Added != 3 || len(res.Candidates) != 3 {
		t.Errorf("Added = %d, Candidates = %v", res.Added, res.Candidates)
	}
	if res.Candidates[0] != (Candidate{Word: "fiets", Frequency: 7}) {
		t.Errorf("first candidate = %+v", res.Candidates[0])
	}
	if res.RunID == "" || res.Target != "nl" || res.Path != lexPath || res.Existing != 1 {
		t.Errorf("result = %+v", res)
	}
	if f.split != "train" {
		t.Errorf("split = %q, want train", f.split)
	}

	// The appended file still parses, with the placeholders as entries.
	lex, err := lexicon.ParseFile(lexPath)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := lex.Lookup("fiets"); p != "[fiets]" {
		t.Errorf("Lookup(fiets) = %q, want [fiets]", p)
	}
	if len(lex.Stats.Warnings) != 0 {
		t.Errorf("appended block produced warnings: %v", lex.Stats.Warnings)
	}
}

func TestAugment_ExclusionIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "nl.txt")
	if err := os.WriteFile(lexPath, []byte("Huis huːs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"HUIS", 10}})}

	res, err := newTestAugmenter(dir, f).Augment(context.Background(), "dutch", "nl.txt")
	if err != nil {
		t.Fatal(err)
	}
	if res.Added != 0 {
		t.Errorf("Added = %d, want 0", res.Added)
	}
	if got := readFile(t, lexPath); got != "Huis huːs\n" {
		t.Errorf("file changed: %q", got)
	}
}

func TestAugment_NoCandidatesIsSuccess(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "nl.txt")
	if err := os.WriteFile(lexPath, []byte("huis huːs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	before, _ := os.Stat(lexPath)

	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"zeldzaam", 4}})}
	res, err := newTestAugmenter(dir, f).Augment(context.Background(), "dutch", "nl")
	if err != nil {
		t.Fatalf("Augment() error = %v, want success", err)
	}
	if res.Added != 0 || len(res.Candidates) != 0 {
		t.Errorf("result = %+v", res)
	}
	after, _ := os.Stat(lexPath)
	if after.Size() != before.Size() || !after.ModTime().Equal(before.ModTime()) {
		t.Error("no-op run modified the lexicon")
	}
}

func TestAugment_MissingLexiconCreated(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"haus", 5}})}

	res, err := newTestAugmenter(dir, f).Augment(context.Background(), "german", "de")
	if err != nil {
		t.Fatal(err)
	}
	if res.Existing != 0 || res.Added != 1 {
		t.Errorf("result = %+v", res)
	}
	want := "\n# Auto-generated from Multilingual LibriSpeech (german)\nhaus [haus]\n"
	if got := readFile(t, filepath.Join(dir, "de.txt")); got != want {
		t.Errorf("new lexicon = %q, want %q", got, want)
	}
}

func TestAugment_NoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "nl.txt")
	if err := os.WriteFile(lexPath, []byte("huis huːs"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"fiets", 5}})}

	if _, err := newTestAugmenter(dir, f).Augment(context.Background(), "dutch", "nl"); err != nil {
		t.Fatal(err)
	}
	lex, err := lexicon.ParseFile(lexPath)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := lex.Lookup("huis"); p != "huːs" {
		t.Errorf("existing last line was damaged: huis -> %q", p)
	}
}

func TestAugment_Threshold(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"foo", 2}, {"bar", 3}})}

	res, err := newTestAugmenter(dir, f, WithThreshold(3)).Plan(context.Background(), "dutch", "nl")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Word != "bar" {
		t.Errorf("Candidates = %v, want [bar]", res.Candidates)
	}
}

func TestPlan_DoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"fiets", 5}})}

	res, err := newTestAugmenter(dir, f).Plan(context.Background(), "dutch", "nl")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Candidates) != 1 || res.Added != 0 {
		t.Errorf("result = %+v", res)
	}
	if _, err := os.Stat(filepath.Join(dir, "nl.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Error("Plan() created the lexicon file")
	}
}

func TestAugment_FetchFailure(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "nl.txt")
	if err := os.WriteFile(lexPath, []byte("huis huːs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cause := errors.New("connection refused")
	f := &fakeFetcher{err: cause}

	_, err := newTestAugmenter(dir, f).Augment(context.Background(), "dutch", "nl")
	if !errors.Is(err, ErrFetchFailed) || !errors.Is(err, cause) {
		t.Fatalf("Augment() error = %v, want ErrFetchFailed wrapping cause", err)
	}
	var aerr *Error
	if !errors.As(err, &aerr) || aerr.Code != ErrorCodeFetchFailed || !aerr.IsRetryable() {
		t.Errorf("error = %#v", err)
	}
	if aerr.Context["run"] == "" {
		t.Error("error should carry the run ID")
	}
	if got := readFile(t, lexPath); got != "huis huːs\n" {
		t.Errorf("file changed after failed fetch: %q", got)
	}
}

func TestAugment_FetchTimeout(t *testing.T) {
	blocking := fetcherFunc(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	a := New(t.TempDir(), blocking, WithLogger(log.New(io.Discard)), WithFetchTimeout(10*time.Millisecond))

	_, err := a.Augment(context.Background(), "dutch", "nl")
	if !errors.Is(err, ErrFetchFailed) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Augment() error = %v, want fetch failure from deadline", err)
	}
}

type fetcherFunc func(ctx context.Context) (string, error)

func (f fetcherFunc) FetchCorpus(ctx context.Context, _, _ string, _ progress.Func) (string, error) {
	return f(ctx)
}

func TestAugment_CorpusUnreadable(t *testing.T) {
	f := &fakeFetcher{path: filepath.Join(t.TempDir(), "gone.txt")}
	_, err := newTestAugmenter(t.TempDir(), f).Augment(context.Background(), "dutch", "nl")
	if !errors.Is(err, ErrCorpusUnreadable) {
		t.Errorf("Augment() error = %v, want ErrCorpusUnreadable", err)
	}
}

func TestAugment_LexiconUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the lexicon file should be cannot be read as one.
	if err := os.Mkdir(filepath.Join(dir, "nl.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"fiets", 5}})}

	_, err := newTestAugmenter(dir, f).Augment(context.Background(), "dutch", "nl")
	if !errors.Is(err, ErrLexiconUnreadable) {
		t.Errorf("Augment() error = %v, want ErrLexiconUnreadable", err)
	}
}

type failingFile struct {
	*os.File
	after int
}

func (f *failingFile) Write(p []byte) (int, error) {
	n, _ := f.File.Write(p[:f.after])
	return n, errors.New("disk full")
}

func TestAugment_WriteFailureRestoresFile(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "nl.txt")
	original := "huis huːs\n"
	if err := os.WriteFile(lexPath, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"fiets", 5}, {"boom", 5}})}

	a := newTestAugmenter(dir, f)
	a.open = func(path string) (appendFile, error) {
		file, err := openForAppend(path)
		if err != nil {
			return nil, err
		}
		return &failingFile{File: file.(*os.File), after: 12}, nil
	}

	_, err := a.Augment(context.Background(), "dutch", "nl")
	if !errors.Is(err, ErrLexiconUnwritable) {
		t.Fatalf("Augment() error = %v, want ErrLexiconUnwritable", err)
	}
	if got := readFile(t, lexPath); got != original {
		t.Errorf("partial write left behind: %q", got)
	}
}

func TestAugment_InvalidTarget(t *testing.T) {
	f := &fakeFetcher{}
	for _, target := range []string{"", "../nl", "sub/nl", ".txt", ".hidden"} {
		_, err := newTestAugmenter(t.TempDir(), f).Augment(context.Background(), "dutch", target)
		if !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("Augment(target %q) error = %v, want ErrInvalidTarget", target, err)
		}
	}
	if f.calls != 0 {
		t.Errorf("fetcher called %d times for invalid targets", f.calls)
	}
}

func TestTargetCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"nl", "nl"},
		{"nl.txt", "nl"},
		{" nl_be.txt ", "nl_be"},
	}
	for _, tt := range tests {
		got, err := TargetCode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("TargetCode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestAugment_SkipsWordsReadAsComments(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "nl.txt")
	f := &fakeFetcher{path: writeCorpus(t, [][2]interface{}{{"#tag", 6}, {"huis", 6}})}
	a := newTestAugmenter(dir, f)

	res, err := a.Augment(context.Background(), "dutch", "nl")
	if err != nil {
		t.Fatal(err)
	}
	if res.Added != 1 || res.Candidates[0].Word != "huis" {
		t.Errorf("first run: Added = %d, Candidates = %v", res.Added, res.Candidates)
	}
	after := readFile(t, lexPath)
	if strings.Contains(after, "#tag [") {
		t.Errorf("comment-like word appended:\n%s", after)
	}

	res, err = a.Augment(context.Background(), "dutch", "nl")
	if err != nil {
		t.Fatal(err)
	}
	if res.Added != 0 || len(res.Candidates) != 0 {
		t.Errorf("second run: Added = %d, Candidates = %v, want nothing", res.Added, res.Candidates)
	}
	if got := readFile(t, lexPath); got != after {
		t.Errorf("second run changed the lexicon:\n%q\nwant\n%q", got, after)
	}
}

func TestStorable(t *testing.T) {
	for word, want := range map[string]bool{
		"huis":    true,
		"c#":      true,
		"#tag":    false,
		"":        false,
		"two wds": false,
	} {
		if got := storable(word); got != want {
			t.Errorf("storable(%q) = %v, want %v", word, got, want)
		}
	}
}
