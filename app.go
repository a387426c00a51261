package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/eburon/echo-lexicon/internal/cache"
	"github.com/eburon/echo-lexicon/internal/config"
	"github.com/eburon/echo-lexicon/internal/dataset"
	"github.com/eburon/echo-lexicon/internal/lexicon"
	"github.com/eburon/echo-lexicon/internal/progress"
)

// app wires the packages together from environment and config.
type app struct {
	env    config.Env
	paths  *config.Paths
	logger *log.Logger
}

func newApp() (*app, error) {
	e, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	// Config file and flags override the environment.
	if v := viper.GetString("data_dir"); v != "" {
		e.DataDir = v
	}
	if v := viper.GetString("lexicon_dir"); v != "" {
		e.LexiconDir = v
	}
	if v := viper.GetString("dataset_dir"); v != "" {
		e.DatasetDir = v
	}

	paths, err := config.NewPaths(e)
	if err != nil {
		return nil, err
	}
	return &app{env: e, paths: paths, logger: log.Default()}, nil
}

// manager loads every lexicon in the lexicon directory.
func (a *app) manager() (*lexicon.Manager, error) {
	dir, err := a.paths.LexiconDir()
	if err != nil {
		return nil, err
	}
	m := lexicon.NewManager(dir, lexicon.WithLogger(a.logger.WithPrefix("lexicon")))
	m.LoadAll()
	return m, nil
}

// corpusCache opens the dataset cache. Background cleanup is left off for
// short-lived commands.
func (a *app) corpusCache(cleanup bool) (*cache.DiskCache, error) {
	dir, err := a.paths.DatasetCacheDir()
	if err != nil {
		return nil, err
	}
	cfg := cache.DefaultConfig(dir)
	if mb := viper.GetInt64("cache.max_size"); mb > 0 {
		cfg.Capacity = mb * 1024 * 1024
	}
	if days := viper.GetInt("cache.ttl_days"); days > 0 {
		cfg.TTL = time.Duration(days) * 24 * time.Hour
	}
	if !cleanup {
		cfg.CleanupInterval = 0
	}
	return cache.NewDiskCache(cfg, cache.WithLogger(a.logger.WithPrefix("cache")))
}

func (a *app) fetcher(c *cache.DiskCache) *dataset.HuggingFaceFetcher {
	opts := []dataset.Option{
		dataset.WithLogger(a.logger.WithPrefix("dataset")),
		dataset.WithUserAgent("echo-lexicon/" + Version),
	}
	if a.env.HFToken != "" {
		opts = append(opts, dataset.WithToken(a.env.HFToken))
	}
	if u := viper.GetString("dataset.base_url"); u != "" {
		opts = append(opts, dataset.WithBaseURL(u))
	}
	return dataset.NewHuggingFaceFetcher(c, opts...)
}

func (a *app) progressSink() progress.Func {
	return progress.LogSink(a.logger.WithPrefix("dataset"), progress.DefaultLogInterval)
}
