package dataset

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"github.com/eburon/echo-lexicon/internal/cache"
	"github.com/eburon/echo-lexicon/internal/progress"
)

// DefaultBaseURL is the Multilingual LibriSpeech repository on the Hub.
const DefaultBaseURL = "https://huggingface.co/datasets/facebook/multilingual_librispeech/resolve/main"

// DefaultSplit is the dataset split used for augmentation.
const DefaultSplit = "train"

const transcriptsFile = "transcripts.txt"

var (
	ErrInvalidName    = errors.New("invalid dataset language or split")
	ErrCorpusNotFound = errors.New("corpus not found")
	ErrUnauthorized   = errors.New("not authorised to download corpus")
)

// Fetcher provides a local, readable transcript file for a dataset language
// and split.
type Fetcher interface {
	FetchCorpus(ctx context.Context, language, split string, report progress.Func) (string, error)
}

// HuggingFaceFetcher downloads transcript files over HTTPS and stores them
// in a cache.DiskCache. A cached corpus is returned without touching the
// network.
type HuggingFaceFetcher struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	cache     *cache.DiskCache
	logger    *log.Logger
}

// Option configures a HuggingFaceFetcher.
type Option func(*HuggingFaceFetcher)

// WithBaseURL replaces DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(f *HuggingFaceFetcher) { f.baseURL = strings.TrimRight(u, "/") }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(f *HuggingFaceFetcher) { f.token = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HuggingFaceFetcher) { f.client = c }
}

// WithRateLimit bounds how often downloads start.
func WithRateLimit(every time.Duration, burst int) Option {
	return func(f *HuggingFaceFetcher) { f.limiter = rate.NewLimiter(rate.Every(every), burst) }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(f *HuggingFaceFetcher) { f.logger = l }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HuggingFaceFetcher) { f.userAgent = ua }
}

// NewHuggingFaceFetcher returns a fetcher storing downloads in c.
func NewHuggingFaceFetcher(c *cache.DiskCache, opts ...Option) *HuggingFaceFetcher {
	f := &HuggingFaceFetcher{
		baseURL:   DefaultBaseURL,
		userAgent: "echo-lexicon",
		client:    &http.Client{},
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		cache:     c,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the download URL for language and split.
func (f *HuggingFaceFetcher) URL(language, split string) string {
	return fmt.Sprintf("%s/data/mls_%s/%s/%s",
		f.baseURL, url.PathEscape(language), url.PathEscape(split), transcriptsFile)
}

// FetchCorpus returns the path of the cached transcript file for language
// and split, downloading it first if needed. The returned file is
// zstd-compressed.
func (f *HuggingFaceFetcher) FetchCorpus(ctx context.Context, language, split string, report progress.Func) (string, error) {
	if split == "" {
		split = DefaultSplit
	}
	if !validName(language) || !validName(split) {
		return "", fmt.Errorf("%w: %q/%q", ErrInvalidName, language, split)
	}

	key := cacheKey(language, split)
	if path, ok := f.cache.Lookup(key); ok {
		f.logger.Debug("Corpus cache hit", "language", language, "split", split, "path", path)
		return path, nil
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for rate limiter: %w", err)
	}

	src := f.URL(language, split)
	f.logger.Info("Downloading corpus", "language", language, "split", split, "url", src)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", src, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrCorpusNotFound, src)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnauthorized, src, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("download %s: unexpected status %s", src, resp.Status)
	}

	start := time.Now()
	body := progress.NewReader(resp.Body, resp.ContentLength, transcriptsFile, report)
	path, err := f.cache.Store(key, body)
	if err != nil {
		return "", fmt.Errorf("store corpus: %w", err)
	}

	f.logger.Info("Corpus downloaded",
		"language", language,
		"split", split,
		"size", humanize.Bytes(uint64(body.N())),
		"duration", time.Since(start).Round(time.Millisecond))
	return path, nil
}

func cacheKey(language, split string) string {
	return "mls/" + language + "/" + split
}

func validName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\?#%`)
}
