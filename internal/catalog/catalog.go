package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/addfont-dev/addfont/internal/fontname"
	"github.com/addfont-dev/addfont/internal/schema"
)

// DefaultCategory is the CSS generic family used when an entry has none.
const DefaultCategory = "sans-serif"

// ErrInvalid is wrapped by every error caused by catalog content, as opposed
// to failing to read the file at all.
var ErrInvalid = errors.New("invalid catalog")

//go:embed schema/catalog.schema.json
var schemaBytes []byte

var validator = schema.New("catalog.schema.json", schemaBytes)

// Entry is one font family in the catalog.
type Entry struct {
	Family   string   `json:"family"`
	Category string   `json:"category,omitempty"`
	Variants []string `json:"variants"`
}

// CategoryOrDefault returns the entry's category, or DefaultCategory when
// the catalog leaves it empty.
func (e Entry) CategoryOrDefault() string {
	if e.Category == "" {
		return DefaultCategory
	}
	return e.Category
}

// Catalog is the read-only set of known font families.
type Catalog struct {
	Items []Entry `json:"items"`

	index map[string]int
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the catalog schema and decodes it.
func Parse(data []byte) (*Catalog, error) {
	res, err := validator.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrInvalid, err)
	}
	return New(c.Items), nil
}

// New builds a Catalog over items.
func New(items []Entry) *Catalog {
	c := &Catalog{Items: items, index: make(map[string]int, len(items))}
	for i, e := range items {
		key := fontname.Key(e.Family)
		// First entry wins when a family is listed twice.
		if _, ok := c.index[key]; !ok {
			c.index[key] = i
		}
	}
	return c
}

// Lookup finds the entry whose family matches name, ignoring case.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[fontname.Key(name)]
	if !ok {
		return Entry{}, false
	}
	return c.Items[i], true
}

// Len returns the number of families in the catalog.
func (c *Catalog) Len() int { return len(c.Items) }
