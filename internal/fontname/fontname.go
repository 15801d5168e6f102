// Package fontname holds the two string rules font family names are
// compared by: case-insensitive equality for lookups and locale collation
// for ordering the registry.
package fontname

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Key returns the lookup key for a family name. Two names refer to the same
// font when their keys are equal.
func Key(name string) string {
	return cases.Lower(language.Und).String(name)
}

// Collator orders family names the way a reader expects in a list:
// alphabetic first, with case only breaking ties ("lato" before "Lato").
// A Collator is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// NewCollator returns a Collator for English collation rules.
func NewCollator() *Collator {
	return &Collator{c: collate.New(language.English)}
}

// Compare returns -1, 0 or 1 depending on whether a sorts before, equal to
// or after b.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// Less reports whether a sorts strictly before b.
func (c *Collator) Less(a, b string) bool {
	return c.Compare(a, b) < 0
}
