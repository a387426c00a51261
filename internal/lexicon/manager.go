package lexicon

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Manager owns the live lexicon Set for a process. Lookups read the current
// snapshot without locking; LoadAll and Reload build a complete new Set and
// swap it in with a single atomic store.
type Manager struct {
	dir       string
	hierarchy *Hierarchy
	logger    *log.Logger
	workers   int

	current  atomic.Pointer[Set]
	reloadMu sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithHierarchy sets the base hierarchy. A hierarchy.yaml file in the
// lexicon directory is layered on top of it at every load.
func WithHierarchy(h *Hierarchy) Option {
	return func(m *Manager) { m.hierarchy = h }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithWorkers bounds how many lexicon files are parsed concurrently.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// LoadReport summarises one LoadAll run.
type LoadReport struct {
	Dir      string
	Loaded   map[string]int   // code -> entry count
	Skipped  []string         // files that parsed to zero entries
	Failed   map[string]error // path -> error
	Warnings int              // malformed lines across all files
	Duration time.Duration
}

// NewManager creates a manager for dir. The manager starts with an empty
// Set; call LoadAll to populate it.
func NewManager(dir string, opts ...Option) *Manager {
	m := &Manager{
		dir:     dir,
		logger:  log.Default(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.hierarchy == nil {
		m.hierarchy = DefaultHierarchy()
	}
	m.current.Store(newSet(m.hierarchy))
	return m
}

// Dir returns the lexicon directory.
func (m *Manager) Dir() string { return m.dir }

// LoadAll parses every lexicon file in the directory and publishes the
// result. A file that fails to parse is logged and left out; it never
// prevents the other files from loading. A missing directory publishes an
// empty Set.
func (m *Manager) LoadAll() LoadReport {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	start := time.Now()
	report := LoadReport{
		Dir:    m.dir,
		Loaded: make(map[string]int),
		Failed: make(map[string]error),
	}

	set := newSet(m.loadHierarchy(report.Failed))

	paths, err := m.lexiconPaths()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("Lexicon directory does not exist", "dir", m.dir)
		} else {
			m.logger.Error("Could not read lexicon directory", "dir", m.dir, "error", err)
			report.Failed[m.dir] = err
		}
		m.publish(set, &report, start)
		return report
	}

	// Parse in parallel; results land in path order so that collisions
	// between codes differing only in case resolve deterministically.
	results := make([]*Lexicon, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = ParseFile(path)
			return nil
		})
	}
	_ = g.Wait()

	for i, path := range paths {
		if errs[i] != nil {
			m.logger.Error("Error loading lexicon", "path", path, "error", errs[i])
			report.Failed[path] = errs[i]
			continue
		}

		lex := results[i]
		for _, w := range lex.Stats.Warnings {
			m.logger.Warn("Invalid lexicon line", "path", path, "line", w.Line, "content", w.Content)
		}
		report.Warnings += len(lex.Stats.Warnings)

		if lex.Len() == 0 {
			m.logger.Debug("Lexicon has no entries", "path", path)
			report.Skipped = append(report.Skipped, path)
			continue
		}

		key := NormalizeCode(lex.Code)
		if prev, ok := set.lexicons[key]; ok {
			m.logger.Warn("Duplicate lexicon code", "code", key, "kept", path, "dropped", prev.Path)
			delete(report.Loaded, prev.Code)
		}
		set.lexicons[key] = lex
		report.Loaded[lex.Code] = lex.Len()
		m.logger.Info("Loaded lexicon", "code", lex.Code, "entries", lex.Len())
	}

	m.publish(set, &report, start)
	return report
}

// Reload discards the current Set and loads the directory again. Readers
// keep using the previous snapshot until the new one is published.
func (m *Manager) Reload() LoadReport {
	m.logger.Debug("Reloading lexicons", "dir", m.dir)
	return m.LoadAll()
}

// Pronunciation returns the pronunciation of word in language. A miss,
// including an unknown language, is reported with ok == false.
func (m *Manager) Pronunciation(word, language string) (string, bool) {
	return m.current.Load().Pronunciation(word, language)
}

// SupportedLanguages returns the codes currently loaded.
func (m *Manager) SupportedLanguages() []string {
	return m.current.Load().Codes()
}

// Snapshot returns the current Set.
func (m *Manager) Snapshot() *Set {
	return m.current.Load()
}

func (m *Manager) publish(set *Set, report *LoadReport, start time.Time) {
	set.loadedAt = time.Now()
	m.current.Store(set)
	report.Duration = time.Since(start)
}

// loadHierarchy layers the optional hierarchy file over the base hierarchy.
// An invalid file is reported and the base hierarchy is used instead.
func (m *Manager) loadHierarchy(failed map[string]error) *Hierarchy {
	path := filepath.Join(m.dir, HierarchyFile)
	h, err := LoadHierarchyFile(path, m.hierarchy)
	switch {
	case err == nil:
		m.logger.Debug("Loaded language hierarchy", "path", path)
		return h
	case errors.Is(err, fs.ErrNotExist):
		return m.hierarchy
	default:
		m.logger.Error("Invalid language hierarchy, using defaults", "path", path, "error", err)
		failed[path] = err
		return m.hierarchy
	}
}

func (m *Manager) lexiconPaths() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsLexiconFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(m.dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
