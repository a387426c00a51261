package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHierarchy_Parent(t *testing.T) {
	h := DefaultHierarchy()

	tests := []struct {
		code   string
		parent string
		ok     bool
	}{
		{"nl_be", "nl", true},
		{"NL-BE", "nl", true},
		{"pt_br", "pt", true},
		{"xx_yy", "xx", true}, // inferred
		{"nl", "", false},
		{"", "", false},
		{"_x", "", false},
	}
	for _, tt := range tests {
		p, ok := h.Parent(tt.code)
		if p != tt.parent || ok != tt.ok {
			t.Errorf("Parent(%q) = %q, %v; want %q, %v", tt.code, p, ok, tt.parent, tt.ok)
		}
	}
}

func TestHierarchy_NoInference(t *testing.T) {
	h, err := NewHierarchy(map[string]string{"nl_be": "nl"}, false)
	if err != nil {
		t.Fatalf("NewHierarchy: %v", err)
	}
	if _, ok := h.Parent("xx_yy"); ok {
		t.Error("undeclared variant should have no parent without inference")
	}
	if p, ok := h.Parent("nl_be"); !ok || p != "nl" {
		t.Errorf("Parent(nl_be) = %q, %v", p, ok)
	}
}

func TestHierarchy_DeclaredNonSeparatorCodes(t *testing.T) {
	// Fallback is data: a code without a separator can still declare a parent.
	h, err := NewHierarchy(map[string]string{"yue": "zh", "zh_hant": "yue"}, false)
	if err != nil {
		t.Fatalf("NewHierarchy: %v", err)
	}
	want := []string{"zh_hant", "yue", "zh"}
	if got := h.Chain("zh_hant"); !reflect.DeepEqual(got, want) {
		t.Errorf("Chain(zh_hant) = %v, want %v", got, want)
	}
}

func TestHierarchy_Cycles(t *testing.T) {
	tests := []struct {
		name    string
		parents map[string]string
		infer   bool
	}{
		{"self", map[string]string{"nl": "nl"}, false},
		{"two-step", map[string]string{"a": "b", "b": "a"}, false},
		{"through inference", map[string]string{"nl": "nl_be"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHierarchy(tt.parents, tt.infer)
			if !errors.Is(err, ErrHierarchyCycle) {
				t.Errorf("NewHierarchy error = %v, want ErrHierarchyCycle", err)
			}
		})
	}
}

func TestLoadHierarchyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, HierarchyFile)
	content := `
parents:
  gsw: de
  nl_be: nl
infer_from_separator: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write hierarchy: %v", err)
	}

	h, err := LoadHierarchyFile(path, DefaultHierarchy())
	if err != nil {
		t.Fatalf("LoadHierarchyFile: %v", err)
	}

	if p, ok := h.Parent("gsw"); !ok || p != "de" {
		t.Errorf("Parent(gsw) = %q, %v; want de", p, ok)
	}
	// Defaults are kept
	if p, ok := h.Parent("pt_br"); !ok || p != "pt" {
		t.Errorf("Parent(pt_br) = %q, %v; want pt", p, ok)
	}
	// Inference switched off by the file
	if _, ok := h.Parent("xx_yy"); ok {
		t.Error("inference should be disabled")
	}
}

func TestLoadHierarchyFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, HierarchyFile)
	if err := os.WriteFile(path, []byte("parents: [not, a, map]"), 0o644); err != nil {
		t.Fatalf("write hierarchy: %v", err)
	}
	if _, err := LoadHierarchyFile(path, DefaultHierarchy()); err == nil {
		t.Error("expected parse error")
	}
}
