// Package config resolves the data directories and runtime settings shared
// by the lexicon tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
)

// AppName names the per-user data directory.
const AppName = "eburon-echo"

// Sub-directories of the data directory.
const (
	LexiconSubdir = "lexicons"
	DatasetSubdir = "datasets"
)

// Env holds settings read from the environment.
type Env struct {
	DataDir       string `env:"EBURON_ECHO_DATA_DIR"`
	LegacyDataDir string `env:"VOICEBOX_DATA_DIR"`
	LexiconDir    string `env:"EBURON_ECHO_LEXICON_DIR"`
	DatasetDir    string `env:"EBURON_ECHO_DATASET_DIR"`

	HFToken       string        `env:"HF_TOKEN"`
	FetchTimeout  time.Duration `env:"EBURON_ECHO_FETCH_TIMEOUT"   envDefault:"10m"`
	MaxTextLength int           `env:"EBURON_ECHO_MAX_TEXT_LENGTH" envDefault:"5000"`
}

// FromEnv parses Env from the process environment.
func FromEnv() (Env, error) {
	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("error parsing environment: %w", err)
	}
	return cfg, nil
}

// FromMap parses Env from vars instead of the process environment.
func FromMap(vars map[string]string) (Env, error) {
	cfg, err := env.ParseAsWithOptions[Env](env.Options{Environment: vars})
	if err != nil {
		return Env{}, fmt.Errorf("error parsing environment: %w", err)
	}
	return cfg, nil
}

// Paths resolves the directories the tools read and write. Directories are
// created the first time they are asked for.
type Paths struct {
	dataDir    string
	lexiconDir string
	datasetDir string
}

// NewPaths resolves the directories for e. The data directory comes from
// EBURON_ECHO_DATA_DIR, then VOICEBOX_DATA_DIR, then the per-user data
// directory. The lexicon and dataset directories default to sub-directories
// of it.
func NewPaths(e Env) (*Paths, error) {
	dataDir := e.DataDir
	if dataDir == "" {
		dataDir = e.LegacyDataDir
	}
	if dataDir == "" {
		def, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = def
	}

	var err error
	p := &Paths{}
	if p.dataDir, err = expand(dataDir); err != nil {
		return nil, err
	}
	if p.lexiconDir, err = expandOr(e.LexiconDir, filepath.Join(p.dataDir, LexiconSubdir)); err != nil {
		return nil, err
	}
	if p.datasetDir, err = expandOr(e.DatasetDir, filepath.Join(p.dataDir, DatasetSubdir)); err != nil {
		return nil, err
	}
	return p, nil
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() (string, error) {
	scope := gap.NewScope(gap.User, AppName)
	dirs, err := scope.DataDirs()
	if err != nil {
		return "", fmt.Errorf("could not find data directory: %w", err)
	}
	if len(dirs) == 0 {
		return "", errors.New("could not find data directory")
	}
	return dirs[0], nil
}

// DataDir returns the data directory without creating it.
func (p *Paths) DataDir() string { return p.dataDir }

// LexiconDir returns the lexicon directory, creating it if needed.
func (p *Paths) LexiconDir() (string, error) {
	return ensureDir(p.lexiconDir)
}

// DatasetCacheDir returns the corpus cache directory, creating it if needed.
func (p *Paths) DatasetCacheDir() (string, error) {
	return ensureDir(p.datasetDir)
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

func expandOr(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	return expand(path)
}

func expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Clean(expanded), nil
}
