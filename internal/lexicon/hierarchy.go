package lexicon

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// VariantSeparator separates a base language code from its region or script.
const VariantSeparator = "_"

// HierarchyFile is the optional declaration file inside the lexicon directory.
const HierarchyFile = "hierarchy.yaml"

// ErrHierarchyCycle is returned when parent declarations loop back on themselves.
var ErrHierarchyCycle = errors.New("language hierarchy contains a cycle")

// defaultParents lists the variants of the supported-language table whose
// base language is itself supported.
var defaultParents = map[string]string{
	"nl_be":   "nl",
	"pt_br":   "pt",
	"pt_pt":   "pt",
	"zh_hans": "zh",
	"zh_hant": "zh",
	"fr_ca":   "fr",
	"es_mx":   "es",
	"ms_jawi": "ms",
	"iu_latn": "iu",
}

// Hierarchy is the declared relation from a language variant to its parent.
// Lookups that miss in a variant fall back along this relation, never in
// the other direction.
type Hierarchy struct {
	parents map[string]string
	infer   bool
}

// HierarchyConfig is the on-disk form of a Hierarchy.
type HierarchyConfig struct {
	Parents            map[string]string `yaml:"parents"`
	InferFromSeparator *bool             `yaml:"infer_from_separator"`
}

// NewHierarchy builds a hierarchy from explicit declarations. With
// inferFromSeparator set, an undeclared code such as "xx_yy" falls back to
// "xx".
func NewHierarchy(parents map[string]string, inferFromSeparator bool) (*Hierarchy, error) {
	h := &Hierarchy{
		parents: make(map[string]string, len(parents)),
		infer:   inferFromSeparator,
	}
	for variant, parent := range parents {
		v, p := NormalizeCode(variant), NormalizeCode(parent)
		if v == "" || p == "" {
			return nil, fmt.Errorf("invalid hierarchy declaration %q -> %q", variant, parent)
		}
		if v == p {
			return nil, fmt.Errorf("%w: %s is its own parent", ErrHierarchyCycle, v)
		}
		h.parents[v] = p
	}
	if err := h.checkCycles(); err != nil {
		return nil, err
	}
	return h, nil
}

// DefaultHierarchy returns the built-in declarations with separator
// inference enabled.
func DefaultHierarchy() *Hierarchy {
	h, err := NewHierarchy(defaultParents, true)
	if err != nil {
		panic(err) // built-in table is acyclic
	}
	return h
}

// Parent returns the declared or inferred parent of code.
func (h *Hierarchy) Parent(code string) (string, bool) {
	if h == nil {
		return "", false
	}
	code = NormalizeCode(code)
	if p, ok := h.parents[code]; ok {
		return p, true
	}
	if h.infer {
		if i := strings.Index(code, VariantSeparator); i > 0 {
			return code[:i], true
		}
	}
	return "", false
}

// Chain returns code followed by its ancestors, nearest first.
func (h *Hierarchy) Chain(code string) []string {
	code = NormalizeCode(code)
	if code == "" {
		return nil
	}
	chain := []string{code}
	seen := map[string]bool{code: true}
	for {
		p, ok := h.Parent(chain[len(chain)-1])
		if !ok || seen[p] {
			return chain
		}
		seen[p] = true
		chain = append(chain, p)
	}
}

// Declarations returns a copy of the explicit variant -> parent pairs.
func (h *Hierarchy) Declarations() map[string]string {
	out := make(map[string]string, len(h.parents))
	for k, v := range h.parents {
		out[k] = v
	}
	return out
}

// Merge returns a new hierarchy with cfg layered on top of h.
func (h *Hierarchy) Merge(cfg HierarchyConfig) (*Hierarchy, error) {
	parents := h.Declarations()
	for k, v := range cfg.Parents {
		parents[k] = v
	}
	infer := h.infer
	if cfg.InferFromSeparator != nil {
		infer = *cfg.InferFromSeparator
	}
	return NewHierarchy(parents, infer)
}

// LoadHierarchyFile layers the YAML declarations at path over base.
func LoadHierarchyFile(path string, base *Hierarchy) (*Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg HierarchyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if base == nil {
		base = &Hierarchy{parents: map[string]string{}}
	}
	return base.Merge(cfg)
}

func (h *Hierarchy) checkCycles() error {
	variants := make([]string, 0, len(h.parents))
	for v := range h.parents {
		variants = append(variants, v)
	}
	sort.Strings(variants)

	for _, start := range variants {
		seen := map[string]bool{start: true}
		cur := start
		for {
			p, ok := h.Parent(cur)
			if !ok {
				break
			}
			if seen[p] {
				return fmt.Errorf("%w: %s -> %s", ErrHierarchyCycle, cur, p)
			}
			seen[p] = true
			cur = p
		}
	}
	return nil
}
