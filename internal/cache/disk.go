package cache

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"
)

// DiskCache stores files zstd-compressed under a directory and tracks them
// in a gob-encoded index. Writes go to a temp file that is renamed into
// place, so a looked-up path always holds a complete stream.
type DiskCache struct {
	basePath string
	capacity int64
	level    zstd.EncoderLevel
	ttl      time.Duration
	logger   *log.Logger

	mu    sync.RWMutex
	index map[string]*Entry
	size  int64
	stats Stats

	cleanupStop chan struct{}
	cleanupWg   sync.WaitGroup
	closeOnce   sync.Once
}

// Option configures a DiskCache.
type Option func(*DiskCache)

// WithLogger sets the logger used for cleanup and index diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(dc *DiskCache) { dc.logger = l }
}

// NewDiskCache opens the cache in cfg.Path, creating the directory if
// needed. A missing or unreadable index starts the cache empty. When
// cfg.CleanupInterval is positive a background goroutine prunes expired
// entries until Close.
func NewDiskCache(cfg Config, opts ...Option) (*DiskCache, error) {
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if cfg.CompressionLevel <= 0 {
		cfg.CompressionLevel = 3
	}

	dc := &DiskCache{
		basePath: cfg.Path,
		capacity: cfg.Capacity,
		level:    zstd.EncoderLevelFromZstd(cfg.CompressionLevel),
		ttl:      cfg.TTL,
		logger:   log.Default(),
		index:    make(map[string]*Entry),
		stats:    Stats{Capacity: cfg.Capacity},
	}
	for _, opt := range opts {
		opt(dc)
	}

	if err := dc.loadIndex(); err != nil {
		dc.logger.Warn("Discarding unreadable cache index", "path", dc.basePath, "error", err)
		dc.index = make(map[string]*Entry)
	}
	dc.dropMissing()
	dc.calculateSize()

	if cfg.CleanupInterval > 0 {
		dc.cleanupStop = make(chan struct{})
		dc.startCleanup(cfg.CleanupInterval)
	}
	return dc, nil
}

// Lookup returns the path of the compressed file stored under key.
func (dc *DiskCache) Lookup(key string) (string, bool) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	entry, ok := dc.index[key]
	if !ok {
		dc.stats.Misses++
		return "", false
	}

	if _, err := os.Stat(entry.Path); err != nil {
		// File removed behind our back
		dc.removeEntry(entry)
		dc.stats.Misses++
		return "", false
	}

	now := time.Now()
	entry.LastAccess = now
	entry.Hits++
	dc.stats.Hits++
	dc.stats.LastAccess = now
	return entry.Path, true
}

// Open returns a reader over the decompressed contents stored under key.
func (dc *DiskCache) Open(key string) (io.ReadCloser, error) {
	path, ok := dc.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("cache key %q: %w", key, fs.ErrNotExist)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close() //nolint:errcheck
		return nil, err
	}
	return &decodingReader{Decoder: dec, f: f}, nil
}

type decodingReader struct {
	*zstd.Decoder
	f *os.File
}

func (r *decodingReader) Close() error {
	r.Decoder.Close()
	return r.f.Close()
}

// Store compresses everything read from r into the cache under key and
// returns the path of the stored file. An existing entry for key is
// replaced. Least recently used entries are evicted to make room.
func (dc *DiskCache) Store(key string, r io.Reader) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	tmp, err := os.CreateTemp(dc.basePath, "store-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck

	enc, err := zstd.NewWriter(tmp, zstd.WithEncoderLevel(dc.level))
	if err != nil {
		tmp.Close() //nolint:errcheck
		return "", fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	originalSize, err := io.Copy(enc, r)
	if err != nil {
		enc.Close() //nolint:errcheck
		tmp.Close() //nolint:errcheck
		return "", fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := enc.Close(); err != nil {
		tmp.Close() //nolint:errcheck
		return "", fmt.Errorf("failed to finish zstd stream: %w", err)
	}
	info, err := tmp.Stat()
	if err != nil {
		tmp.Close() //nolint:errcheck
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	diskSize := info.Size()
	if dc.capacity > 0 && diskSize > dc.capacity {
		return "", ErrItemTooLarge
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()

	if existing, ok := dc.index[key]; ok {
		dc.removeEntry(existing)
	}
	for dc.capacity > 0 && dc.size+diskSize > dc.capacity && len(dc.index) > 0 {
		dc.evictOldest()
	}

	path := dc.generateFilePath(key)
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to move cache file into place: %w", err)
	}

	now := time.Now()
	dc.index[key] = &Entry{
		Key:          key,
		Path:         path,
		Size:         diskSize,
		OriginalSize: originalSize,
		Stored:       now,
		LastAccess:   now,
	}
	dc.size += diskSize

	if err := dc.saveIndex(); err != nil {
		dc.logger.Warn("Could not save cache index", "error", err)
	}
	return path, nil
}

// Delete removes key from the cache.
func (dc *DiskCache) Delete(key string) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	entry, ok := dc.index[key]
	if !ok {
		return nil
	}
	dc.removeEntry(entry)
	return dc.saveIndex()
}

// Clear removes every entry.
func (dc *DiskCache) Clear() error {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	for _, entry := range dc.index {
		os.Remove(entry.Path) //nolint:errcheck
	}
	dc.index = make(map[string]*Entry)
	dc.size = 0
	return dc.saveIndex()
}

// Size returns the current size on disk in bytes.
func (dc *DiskCache) Size() int64 {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	return dc.size
}

// Stats returns cache statistics.
func (dc *DiskCache) Stats() Stats {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	stats := dc.stats
	stats.Size = dc.size
	stats.ItemCount = int64(len(dc.index))
	for _, entry := range dc.index {
		stats.OriginalSize += entry.OriginalSize
	}
	if stats.Hits+stats.Misses > 0 {
		stats.HitRate = float64(stats.Hits) / float64(stats.Hits+stats.Misses)
	}
	return stats
}

// Entries returns the cached entries, least recently used first.
func (dc *DiskCache) Entries() []Entry {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	entries := make([]Entry, 0, len(dc.index))
	for _, entry := range dc.index {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LastAccess.Equal(entries[j].LastAccess) {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].LastAccess.Before(entries[j].LastAccess)
	})
	return entries
}

// RemoveOlderThan removes entries stored before cutoff and returns how many
// were removed.
func (dc *DiskCache) RemoveOlderThan(cutoff time.Time) int {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	removed := 0
	for _, entry := range dc.index {
		if entry.Stored.Before(cutoff) {
			dc.removeEntry(entry)
			removed++
		}
	}
	if removed > 0 {
		dc.stats.Expired += int64(removed)
		if err := dc.saveIndex(); err != nil {
			dc.logger.Warn("Could not save cache index", "error", err)
		}
	}
	return removed
}

// EvictLRU evicts least recently used entries until the cache is at 90% of
// its capacity.
func (dc *DiskCache) EvictLRU() int {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if dc.capacity <= 0 {
		return 0
	}
	target := dc.capacity * 90 / 100
	evicted := 0
	for dc.size > target && len(dc.index) > 0 {
		dc.evictOldest()
		evicted++
	}
	if evicted > 0 {
		if err := dc.saveIndex(); err != nil {
			dc.logger.Warn("Could not save cache index", "error", err)
		}
	}
	return evicted
}

// Close stops the cleanup goroutine and saves the index.
func (dc *DiskCache) Close() error {
	dc.closeOnce.Do(func() {
		if dc.cleanupStop != nil {
			close(dc.cleanupStop)
			dc.cleanupWg.Wait()
		}
	})

	dc.mu.Lock()
	defer dc.mu.Unlock()

	return dc.saveIndex()
}

func (dc *DiskCache) generateFilePath(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(dc.basePath, hex.EncodeToString(hash[:16])+FileExt)
}

func (dc *DiskCache) removeEntry(entry *Entry) {
	os.Remove(entry.Path) //nolint:errcheck
	dc.size -= entry.Size
	delete(dc.index, entry.Key)
}

func (dc *DiskCache) evictOldest() {
	var oldest *Entry
	for _, entry := range dc.index {
		if oldest == nil || entry.LastAccess.Before(oldest.LastAccess) {
			oldest = entry
		}
	}
	if oldest == nil {
		return
	}

	dc.logger.Debug("Evicting cached file", "key", oldest.Key, "size", oldest.Size)
	dc.removeEntry(oldest)
	dc.stats.Evictions++
	dc.stats.LastEvict = time.Now()
}

// dropMissing forgets index entries whose files no longer exist.
func (dc *DiskCache) dropMissing() {
	for key, entry := range dc.index {
		if _, err := os.Stat(entry.Path); err != nil {
			delete(dc.index, key)
		}
	}
}

func (dc *DiskCache) calculateSize() {
	dc.size = 0
	for _, entry := range dc.index {
		dc.size += entry.Size
	}
}

func (dc *DiskCache) loadIndex() error {
	file, err := os.Open(filepath.Join(dc.basePath, indexFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close() //nolint:errcheck

	return gob.NewDecoder(file).Decode(&dc.index)
}

func (dc *DiskCache) saveIndex() error {
	indexPath := filepath.Join(dc.basePath, indexFile)
	tempPath := indexPath + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return err
	}

	err = gob.NewEncoder(file).Encode(dc.index)
	closeErr := file.Close()

	if err != nil {
		os.Remove(tempPath) //nolint:errcheck
		return err
	}
	if closeErr != nil {
		os.Remove(tempPath) //nolint:errcheck
		return closeErr
	}
	return os.Rename(tempPath, indexPath)
}
