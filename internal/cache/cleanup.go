package cache

import "time"

func (dc *DiskCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	dc.cleanupWg.Add(1)

	go func() {
		defer dc.cleanupWg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				dc.Cleanup()
			case <-dc.cleanupStop:
				return
			}
		}
	}()
}

// Cleanup removes entries older than the configured TTL and trims the cache
// back under its capacity. It returns the number of entries removed.
func (dc *DiskCache) Cleanup() int {
	removed := 0
	if dc.ttl > 0 {
		removed += dc.RemoveOlderThan(time.Now().Add(-dc.ttl))
	}
	removed += dc.EvictLRU()

	dc.mu.Lock()
	dc.stats.LastCleanup = time.Now()
	dc.mu.Unlock()

	if removed > 0 {
		dc.logger.Info("Cache cleanup", "removed", removed, "dir", dc.basePath)
	}
	return removed
}
