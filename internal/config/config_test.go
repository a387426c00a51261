package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
)

func TestFromMap_Defaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if cfg.FetchTimeout != 10*time.Minute {
		t.Errorf("FetchTimeout = %v, want 10m", cfg.FetchTimeout)
	}
	if cfg.MaxTextLength != 5000 {
		t.Errorf("MaxTextLength = %d, want 5000", cfg.MaxTextLength)
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"EBURON_ECHO_DATA_DIR":        "/srv/echo",
		"HF_TOKEN":                    "hf_secret",
		"EBURON_ECHO_FETCH_TIMEOUT":   "90s",
		"EBURON_ECHO_MAX_TEXT_LENGTH": "200",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/srv/echo" || cfg.HFToken != "hf_secret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.FetchTimeout != 90*time.Second || cfg.MaxTextLength != 200 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestFromMap_Invalid(t *testing.T) {
	if _, err := FromMap(map[string]string{"EBURON_ECHO_FETCH_TIMEOUT": "soon"}); err == nil {
		t.Error("invalid duration should fail")
	}
}

func TestNewPaths(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name        string
		env         Env
		wantData    string
		wantLexicon string
		wantDataset string
	}{
		{
			name:        "data dir",
			env:         Env{DataDir: base},
			wantData:    base,
			wantLexicon: filepath.Join(base, LexiconSubdir),
			wantDataset: filepath.Join(base, DatasetSubdir),
		},
		{
			name:        "legacy data dir",
			env:         Env{LegacyDataDir: base},
			wantData:    base,
			wantLexicon: filepath.Join(base, LexiconSubdir),
			wantDataset: filepath.Join(base, DatasetSubdir),
		},
		{
			name:        "current wins over legacy",
			env:         Env{DataDir: base, LegacyDataDir: "/nonexistent/legacy"},
			wantData:    base,
			wantLexicon: filepath.Join(base, LexiconSubdir),
			wantDataset: filepath.Join(base, DatasetSubdir),
		},
		{
			name:        "explicit sub-directories",
			env:         Env{DataDir: base, LexiconDir: filepath.Join(base, "lex"), DatasetDir: filepath.Join(base, "ds")},
			wantData:    base,
			wantLexicon: filepath.Join(base, "lex"),
			wantDataset: filepath.Join(base, "ds"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPaths(tt.env)
			if err != nil {
				t.Fatal(err)
			}
			if p.DataDir() != tt.wantData {
				t.Errorf("DataDir() = %q, want %q", p.DataDir(), tt.wantData)
			}
			lex, err := p.LexiconDir()
			if err != nil || lex != tt.wantLexicon {
				t.Errorf("LexiconDir() = %q, %v; want %q", lex, err, tt.wantLexicon)
			}
			ds, err := p.DatasetCacheDir()
			if err != nil || ds != tt.wantDataset {
				t.Errorf("DatasetCacheDir() = %q, %v; want %q", ds, err, tt.wantDataset)
			}
		})
	}
}

func TestPaths_CreatesOnFirstAccess(t *testing.T) {
	base := filepath.Join(t.TempDir(), "data")
	p, err := NewPaths(Env{DataDir: base})
	if err != nil {
		t.Fatal(err)
	}

	lexDir := filepath.Join(base, LexiconSubdir)
	if _, err := os.Stat(lexDir); !os.IsNotExist(err) {
		t.Fatalf("lexicon dir should not exist before access, stat err = %v", err)
	}
	if _, err := p.LexiconDir(); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(lexDir); err != nil || !info.IsDir() {
		t.Errorf("lexicon dir not created: %v", err)
	}
}

func TestNewPaths_ExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skip("no home directory")
	}
	p, err := NewPaths(Env{DataDir: "~/echo-data"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(p.DataDir(), home) {
		t.Errorf("DataDir() = %q, want prefix %q", p.DataDir(), home)
	}
}

func TestDefaultDataDir(t *testing.T) {
	dir, err := DefaultDataDir()
	if err != nil {
		t.Skipf("no user data directory: %v", err)
	}
	if !strings.Contains(dir, AppName) {
		t.Errorf("DefaultDataDir() = %q, want it to contain %q", dir, AppName)
	}
}
