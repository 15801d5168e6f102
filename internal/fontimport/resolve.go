package fontimport

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/addfont-dev/addfont/internal/catalog"
	"github.com/addfont-dev/addfont/internal/registry"
)

const (
	// RegularWeight is the numeric weight of the "regular" variant and the
	// preferred default weight.
	RegularWeight = 400

	regularVariant = "regular"
	italicSuffix   = "italic"
)

// Status classifies what happened to one requested name.
type Status int

const (
	Added Status = iota
	Skipped
	NotFound
)

func (s Status) String() string {
	switch s {
	case Added:
		return "added"
	case Skipped:
		return "skipped"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of resolving one requested name.
type Outcome struct {
	Request string // the name as typed by the user
	Status  Status

	// Family is the catalog spelling of the name; empty when NotFound.
	Family string
	// Existing is the registry entry that caused a skip.
	Existing string
	// Font is the entry to add; set only when Added.
	Font registry.Font
}

// Resolve classifies a single requested name against the catalog and the
// registry. It does not modify either.
func Resolve(name string, cat *catalog.Catalog, reg *registry.Registry) Outcome {
	entry, ok := cat.Lookup(name)
	if !ok {
		return Outcome{Request: name, Status: NotFound}
	}

	if existing, ok := reg.Find(entry.Family); ok {
		return Outcome{
			Request:  name,
			Status:   Skipped,
			Family:   entry.Family,
			Existing: existing.Name,
		}
	}

	return Outcome{
		Request: name,
		Status:  Added,
		Family:  entry.Family,
		Font:    NewFont(entry),
	}
}

// NewFont derives the registry entry for a catalog entry.
func NewFont(e catalog.Entry) registry.Font {
	weights := Weights(e.Variants)
	return registry.Font{
		Name:             e.Family,
		Stack:            Stack(e.Family, e.CategoryOrDefault()),
		IsGoogleFont:     true,
		AvailableWeights: weights,
		DefaultWeight:    DefaultWeight(weights),
	}
}

// Weights returns the ascending, unique upright weights named by variants.
// Italic variants are ignored, "regular" counts as 400 and numeric variants
// count as their value. A font with no usable variant gets [400].
func Weights(variants []string) []int {
	var weights []int
	seen := make(map[int]bool)
	for _, v := range variants {
		if strings.HasSuffix(v, italicSuffix) {
			continue
		}
		w, ok := RegularWeight, true
		if v != regularVariant {
			w, ok = parseWeight(v)
		}
		if ok && !seen[w] {
			seen[w] = true
			weights = append(weights, w)
		}
	}
	sort.Ints(weights)
	if len(weights) == 0 {
		return []int{RegularWeight}
	}
	return weights
}

// DefaultWeight picks 400 when available and otherwise the lightest weight.
// weights must be sorted ascending and non-empty.
func DefaultWeight(weights []int) int {
	for _, w := range weights {
		if w == RegularWeight {
			return RegularWeight
		}
	}
	return weights[0]
}

// Stack formats the CSS font-family stack for a family and its generic
// fallback category, e.g. "Roboto", sans-serif.
func Stack(family, category string) string {
	return `"` + family + `", ` + category
}

// parseWeight reads the leading base-10 integer of a variant, skipping
// leading whitespace and accepting a sign, so "500" and "500wide" both give
// 500. It reports false when no digits lead the string.
func parseWeight(v string) (int, bool) {
	s := strings.TrimLeftFunc(v, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
