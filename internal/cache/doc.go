// Package cache keeps downloaded corpus files on disk, zstd-compressed, with
// an LRU size limit and TTL-based cleanup.
package cache
