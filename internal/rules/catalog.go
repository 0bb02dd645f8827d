// Package rules holds the immutable rule tables the engine is configured with:
// which attributes roll dice, how difficulties are named, and versioned rule
// switches.
package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// DieSize is the number of faces on an attribute's die. Static means the
// attribute is a fixed number and never rolled.
type DieSize int

// Static marks an attribute that is not rolled
const Static DieSize = 0

// Valid reports whether d names a rollable die
func (d DieSize) Valid() bool {
	return d >= 2
}

// String renders the die as "d20", or "static"
func (d DieSize) String() string {
	if !d.Valid() {
		return "static"
	}
	return fmt.Sprintf("d%d", int(d))
}

// ParseDie accepts "static", "", "d20", "1d20" or "20"
func ParseDie(s string) (DieSize, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "static" {
		return Static, nil
	}
	v = strings.TrimPrefix(v, "1d")
	v = strings.TrimPrefix(v, "d")
	n, err := strconv.Atoi(v)
	if err != nil {
		return Static, errors.InvalidArgumentf("invalid die %q", s)
	}
	d := DieSize(n)
	if !d.Valid() {
		return Static, errors.InvalidArgumentf("die %q must have at least 2 faces", s)
	}
	return d, nil
}

// Range is an inclusive numeric span
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Shift moves both ends of the range by n
func (r Range) Shift(n int) Range {
	return Range{Min: r.Min + n, Max: r.Max + n}
}

// DieRange is the span of faces on d. Anything that is not a real die gives
// the zero range.
func DieRange(d DieSize) Range {
	if !d.Valid() {
		return Range{}
	}
	return Range{Min: 1, Max: int(d)}
}

// Catalog classifies attributes as dice-based or static. It is read-only
// after construction and safe to share.
type Catalog struct {
	dice map[string]DieSize
}

// NewCatalog builds a catalog from attribute name to die. Names are
// case-insensitive; a Static entry documents a known static attribute.
func NewCatalog(dice map[string]DieSize) (*Catalog, error) {
	c := &Catalog{dice: make(map[string]DieSize, len(dice))}
	for name, d := range dice {
		key := entities.CanonicalAttribute(name)
		if key == "" {
			return nil, errors.InvalidArgument("attribute name cannot be empty")
		}
		if d != Static && !d.Valid() {
			return nil, errors.InvalidArgumentf("attribute %s has invalid die size %d", key, int(d))
		}
		if prev, ok := c.dice[key]; ok && prev != d {
			return nil, errors.InvalidArgumentf("attribute %s declared twice with different dice", key)
		}
		c.dice[key] = d
	}
	return c, nil
}

// Classify returns the attribute's die, or Static. Unknown attributes are
// static.
func (c *Catalog) Classify(attribute string) DieSize {
	if c == nil {
		return Static
	}
	return c.dice[entities.CanonicalAttribute(attribute)]
}

// UsesDice reports whether the attribute is rolled
func (c *Catalog) UsesDice(attribute string) bool {
	return c.Classify(attribute).Valid()
}

// Known reports whether the attribute appears in the catalog at all
func (c *Catalog) Known(attribute string) bool {
	if c == nil {
		return false
	}
	_, ok := c.dice[entities.CanonicalAttribute(attribute)]
	return ok
}

// Attributes lists every catalogued attribute name in sorted order
func (c *Catalog) Attributes() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.dice))
	for name := range c.dice {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
