package dataset

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/eburon/echo-lexicon/internal/cache"
	"github.com/eburon/echo-lexicon/internal/corpus"
)

const testTranscripts = "utt001\thet huis is groot\nutt002\thet huis\n"

type hubStub struct {
	requests atomic.Int32
	lastAuth atomic.Value
	lastPath atomic.Value
	status   int
}

func (h *hubStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.requests.Add(1)
	h.lastAuth.Store(r.Header.Get("Authorization"))
	h.lastPath.Store(r.URL.Path)
	if h.status != 0 && h.status != http.StatusOK {
		w.WriteHeader(h.status)
		return
	}
	_, _ = io.WriteString(w, testTranscripts)
}

func newTestFetcher(t *testing.T, stub *hubStub, opts ...Option) *HuggingFaceFetcher {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	logger := log.New(io.Discard)
	dc, err := cache.NewDiskCache(cache.Config{Path: t.TempDir(), Capacity: 1 << 20}, cache.WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { dc.Close() })

	opts = append([]Option{
		WithBaseURL(srv.URL + "/"),
		WithRateLimit(time.Millisecond, 10),
		WithLogger(logger),
	}, opts...)
	return NewHuggingFaceFetcher(dc, opts...)
}

func TestFetchCorpus(t *testing.T) {
	stub := &hubStub{}
	f := newTestFetcher(t, stub, WithToken("hf_test"))

	var lastReported int64
	path, err := f.FetchCorpus(context.Background(), "dutch", "", func(current, total int64, label string) {
		lastReported = current
	})
	if err != nil {
		t.Fatalf("FetchCorpus() error = %v", err)
	}

	if got := stub.lastPath.Load(); got != "/data/mls_dutch/train/transcripts.txt" {
		t.Errorf("request path = %v", got)
	}
	if got := stub.lastAuth.Load(); got != "Bearer hf_test" {
		t.Errorf("Authorization = %v", got)
	}
	if lastReported != int64(len(testTranscripts)) {
		t.Errorf("progress reported %d bytes, want %d", lastReported, len(testTranscripts))
	}

	table, _, err := corpus.Extract(path, "dutch")
	if err != nil {
		t.Fatalf("cached corpus unreadable: %v", err)
	}
	if table.Count("huis") != 2 {
		t.Errorf("Count(huis) = %d, want 2", table.Count("huis"))
	}
}

func TestFetchCorpus_CacheHit(t *testing.T) {
	stub := &hubStub{}
	f := newTestFetcher(t, stub)

	first, err := f.FetchCorpus(context.Background(), "dutch", "train", nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.FetchCorpus(context.Background(), "dutch", "train", nil)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}
	if n := stub.requests.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1", n)
	}
	if got := stub.lastAuth.Load(); got != "" {
		t.Errorf("Authorization = %q without a token", got)
	}
}

func TestFetchCorpus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		lang    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, "klingon", ErrCorpusNotFound},
		{"unauthorised", http.StatusUnauthorized, "dutch", ErrUnauthorized},
		{"forbidden", http.StatusForbidden, "dutch", ErrUnauthorized},
		{"path traversal", http.StatusOK, "../dutch", ErrInvalidName},
		{"empty language", http.StatusOK, "", ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFetcher(t, &hubStub{status: tt.status})
			_, err := f.FetchCorpus(context.Background(), tt.lang, "train", nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchCorpus() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchCorpus_ServerError(t *testing.T) {
	f := newTestFetcher(t, &hubStub{status: http.StatusInternalServerError})
	_, err := f.FetchCorpus(context.Background(), "dutch", "train", nil)
	if err == nil {
		t.Fatal("FetchCorpus() should fail on a 500")
	}
	if errors.Is(err, ErrCorpusNotFound) || errors.Is(err, ErrUnauthorized) {
		t.Errorf("unexpected error kind: %v", err)
	}
}

func TestFetchCorpus_Canceled(t *testing.T) {
	stub := &hubStub{}
	f := newTestFetcher(t, stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.FetchCorpus(ctx, "dutch", "train", nil); err == nil {
		t.Fatal("FetchCorpus() with a canceled context should fail")
	}
	if n := stub.requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestURL(t *testing.T) {
	f := NewHuggingFaceFetcher(nil)
	want := DefaultBaseURL + "/data/mls_dutch/dev/transcripts.txt"
	if got := f.URL("dutch", "dev"); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
