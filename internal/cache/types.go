package cache

import (
	"errors"
	"time"
)

var (
	// ErrItemTooLarge is returned when a stored file exceeds the cache capacity.
	ErrItemTooLarge = errors.New("item too large for cache")

	// ErrEmptyKey is returned for an empty cache key.
	ErrEmptyKey = errors.New("empty cache key")
)

// FileExt is the extension of compressed cache files. Readers that
// understand zstd can open a looked-up path directly.
const FileExt = ".zst"

const indexFile = "cache.index"

// Stats holds cache usage counters.
type Stats struct {
	Capacity int64 // maximum size on disk in bytes

	Size         int64 // current size on disk in bytes
	OriginalSize int64 // uncompressed size of all entries
	ItemCount    int64

	Hits      int64
	Misses    int64
	Evictions int64
	Expired   int64
	HitRate   float64 // hits / (hits + misses)

	LastAccess  time.Time
	LastEvict   time.Time
	LastCleanup time.Time
}

// Config holds settings for a DiskCache.
type Config struct {
	Path             string        // directory for cache files
	Capacity         int64         // bytes on disk
	CompressionLevel int           // zstd level, 1-22
	TTL              time.Duration // entries older than this are removed by cleanup
	CleanupInterval  time.Duration // 0 disables the background cleanup
}

// DefaultConfig returns a Config for path with default limits.
func DefaultConfig(path string) Config {
	return Config{
		Path:             path,
		Capacity:         4 * 1024 * 1024 * 1024, // 4GB
		CompressionLevel: 3,
		TTL:              30 * 24 * time.Hour,
		CleanupInterval:  time.Hour,
	}
}

// Entry describes a cached file.
type Entry struct {
	Key          string
	Path         string
	Size         int64 // compressed size on disk
	OriginalSize int64
	Stored       time.Time
	LastAccess   time.Time
	Hits         int64
}
