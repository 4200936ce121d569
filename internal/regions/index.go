package regions

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/i474232898/weather-dashboard/internal/common"
)

//go:embed states.yaml
var statesYAML []byte

const (
	// minFuzzyLen keeps very short inputs from prefix-matching half the table.
	minFuzzyLen = 3

	country = "nigeria"
)

var (
	// ErrInvalidLimit is returned by Search when the result ceiling is below 1.
	ErrInvalidLimit = errors.New("limit must be a positive number")

	defaultOnce  sync.Once
	defaultIndex *Index
)

// Index is a read-only lookup structure over the Region table, built once
// at process start.
type Index struct {
	regions []Region
	groups  []string

	byName  map[string]int
	byAlias map[string]int
	// keys[i] holds the normalized name followed by the normalized aliases
	// (capital included) of regions[i].
	keys [][]string
}

type tableFile struct {
	States []Region `yaml:"states"`
}

// Default returns the index over the embedded Nigerian states table.
func Default() *Index {
	defaultOnce.Do(func() {
		defaultIndex = MustLoad(statesYAML)
	})
	return defaultIndex
}

// MustLoad is like Load but panics on a malformed table.
func MustLoad(data []byte) *Index {
	idx, err := Load(data)
	if err != nil {
		panic(err)
	}
	return idx
}

// Load parses a YAML region table and builds an Index over it.
func Load(data []byte) (*Index, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse region table: %w", err)
	}
	return New(tf.States)
}

// New builds an Index over regions, keeping their order.
func New(regions []Region) (*Index, error) {
	idx := &Index{
		regions: make([]Region, 0, len(regions)),
		byName:  make(map[string]int, len(regions)),
		byAlias: make(map[string]int),
		keys:    make([][]string, 0, len(regions)),
	}

	for _, r := range regions {
		name := normalizeName(r.Name)
		if name == "" {
			return nil, errors.New("region with empty name")
		}
		if _, dup := idx.byName[name]; dup {
			return nil, fmt.Errorf("duplicate region %q", r.Name)
		}
		if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
			return nil, fmt.Errorf("region %q has out-of-range coordinates", r.Name)
		}

		i := len(idx.regions)
		r.Aliases = slices.Clone(r.Aliases)
		idx.regions = append(idx.regions, r)
		idx.byName[name] = i

		keys := []string{name}
		for _, alias := range append([]string{r.Capital}, r.Aliases...) {
			a := normalizeName(alias)
			if a == "" || slices.Contains(keys, a) {
				continue
			}
			if j, taken := idx.byAlias[a]; taken && j != i {
				return nil, fmt.Errorf("alias %q shared by %q and %q", alias, idx.regions[j].Name, r.Name)
			}
			idx.byAlias[a] = i
			keys = append(keys, a)
		}
		idx.keys = append(idx.keys, keys)

		if !slices.Contains(idx.groups, r.Group) {
			idx.groups = append(idx.groups, r.Group)
		}
	}

	return idx, nil
}

// Resolve turns free text into a LocationQuery. It never fails: unmatched
// input is passed through trimmed, with no Region attached.
func (idx *Index) Resolve(input string) LocationQuery {
	text := strings.TrimSpace(input)
	i, ok := idx.match(text)
	if !ok {
		return LocationQuery{Text: text}
	}
	r := idx.region(i)
	return LocationQuery{Text: r.Coordinates(), Region: &r}
}

// ByName returns the region whose name or alias equals name, ignoring case.
func (idx *Index) ByName(name string) (Region, bool) {
	key := normalizeName(name)
	if i, ok := idx.byName[key]; ok {
		return idx.region(i), true
	}
	if i, ok := idx.byAlias[key]; ok {
		return idx.region(i), true
	}
	return Region{}, false
}

// match applies, in order: exact name or alias on the whole input, the same
// on the part before the first comma, then a word-prefix match of that part
// against names and aliases in table order. Anything after the first comma
// must be blank or name the country, so foreign addresses pass through.
func (idx *Index) match(text string) (int, bool) {
	key := normalizeName(text)
	if key == "" {
		return 0, false
	}
	if i, ok := idx.exact(key); ok {
		return i, true
	}
	head, ok := localPart(text)
	if !ok || head == "" {
		return 0, false
	}
	if i, ok := idx.exact(head); ok {
		return i, true
	}
	if len(head) < minFuzzyLen {
		return 0, false
	}
	for i, keys := range idx.keys {
		for _, k := range keys {
			if common.HasWordPrefix(k, head) {
				return i, true
			}
		}
	}
	return 0, false
}

func (idx *Index) exact(key string) (int, bool) {
	if i, ok := idx.byName[key]; ok {
		return i, true
	}
	i, ok := idx.byAlias[key]
	return i, ok
}

// localPart returns the normalized text before the first comma, or false
// when a later part names somewhere other than the country.
func localPart(text string) (string, bool) {
	parts := strings.Split(text, ",")
	for _, p := range parts[1:] {
		if n := common.Normalize(p); n != "" && n != country {
			return "", false
		}
	}
	return normalizeName(parts[0]), true
}

// All returns every region in table order.
func (idx *Index) All() []Region {
	out := make([]Region, len(idx.regions))
	for i := range idx.regions {
		out[i] = idx.region(i)
	}
	return out
}

// Popular returns the regions flagged popular, in table order.
func (idx *Index) Popular() []Region {
	var out []Region
	for i, r := range idx.regions {
		if r.Popular {
			out = append(out, idx.region(i))
		}
	}
	return out
}

// Groups returns the distinct zone labels in first-seen order.
func (idx *Index) Groups() []string {
	return slices.Clone(idx.groups)
}

// ByGroup returns the regions of one zone, matched case-insensitively.
// An unknown zone yields an empty slice.
func (idx *Index) ByGroup(group string) []Region {
	want := common.Normalize(group)
	var out []Region
	for i, r := range idx.regions {
		if common.Normalize(r.Group) == want {
			out = append(out, idx.region(i))
		}
	}
	return out
}

// Search returns regions whose name contains q (case-insensitive, a trailing
// " State" ignored), in table order, capped at limit. total counts every
// match before the cap. An empty q matches every region.
func (idx *Index) Search(q string, limit int) (results []Region, total int, err error) {
	if limit < 1 {
		return nil, 0, ErrInvalidLimit
	}
	needle := normalizeName(q)
	results = []Region{}
	for i, keys := range idx.keys {
		if !strings.Contains(keys[0], needle) {
			continue
		}
		total++
		if len(results) < limit {
			results = append(results, idx.region(i))
		}
	}
	return results, total, nil
}

// Len returns the number of regions in the table.
func (idx *Index) Len() int {
	return len(idx.regions)
}

// region returns a copy of regions[i] that callers may modify freely.
func (idx *Index) region(i int) Region {
	r := idx.regions[i]
	r.Aliases = slices.Clone(r.Aliases)
	return r
}

func normalizeName(s string) string {
	n := common.Normalize(s)
	if trimmed := strings.TrimSuffix(n, " state"); trimmed != "" {
		n = trimmed
	}
	return n
}
