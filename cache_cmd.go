package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	cacheCmd = &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clean the corpus download cache",
		Args:  cobra.NoArgs,
	}

	cacheStatsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show cache size and usage",
		Args:  cobra.NoArgs,
		RunE:  runCacheStats,
	}

	cacheListCmd = &cobra.Command{
		Use:   "list",
		Short: "List cached corpora, least recently used first",
		Args:  cobra.NoArgs,
		RunE:  runCacheList,
	}

	cacheClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached corpus",
		Args:  cobra.NoArgs,
		RunE:  runCacheClear,
	}

	cachePruneCmd = &cobra.Command{
		Use:   "prune",
		Short: "Remove expired corpora and trim the cache to its size limit",
		Args:  cobra.NoArgs,
		RunE:  runCachePrune,
	}
)

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheListCmd, cacheClearCmd, cachePruneCmd)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	c, err := a.corpusCache(false)
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	s := c.Stats()
	dir, _ := a.paths.DatasetCacheDir()
	return writeTable(cmd.OutOrStdout(), []string{"", ""}, [][]string{
		{"directory", dir},
		{"entries", humanize.Comma(s.ItemCount)},
		{"size", humanize.Bytes(uint64(s.Size))},
		{"uncompressed", humanize.Bytes(uint64(s.OriginalSize))},
		{"capacity", humanize.Bytes(uint64(s.Capacity))},
	})
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	c, err := a.corpusCache(false)
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	var rows [][]string
	for _, e := range c.Entries() {
		rows = append(rows, []string{
			e.Key,
			humanize.Bytes(uint64(e.Size)),
			humanize.Bytes(uint64(e.OriginalSize)),
			humanize.Time(e.Stored),
			humanize.Time(e.LastAccess),
		})
	}
	return writeTable(cmd.OutOrStdout(), []string{"KEY", "SIZE", "UNCOMPRESSED", "STORED", "USED"}, rows)
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	c, err := a.corpusCache(false)
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	n := len(c.Entries())
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached corpora\n", n)
	return nil
}

func runCachePrune(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	c, err := a.corpusCache(false)
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	start := time.Now()
	n := c.Cleanup()
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached corpora in %s\n", n, time.Since(start).Round(time.Millisecond))
	return nil
}
