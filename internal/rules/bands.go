package rules

import (
	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// Band names every difficulty up to and including UpTo
type Band struct {
	UpTo  int    `json:"upTo" yaml:"upTo"`
	Label string `json:"label" yaml:"label"`
}

// BandTable maps a difficulty to a qualitative label
type BandTable struct {
	bands    []Band
	fallback string
}

// NewBandTable requires strictly ascending thresholds. Difficulties above the
// last threshold get the fallback label.
func NewBandTable(bands []Band, fallback string) (*BandTable, error) {
	if fallback == "" {
		return nil, errors.InvalidArgument("fallback band label is required")
	}
	for i, b := range bands {
		if b.Label == "" {
			return nil, errors.InvalidArgumentf("band %d has no label", i)
		}
		if i > 0 && b.UpTo <= bands[i-1].UpTo {
			return nil, errors.InvalidArgumentf("band %q threshold %d is not above %d", b.Label, b.UpTo, bands[i-1].UpTo)
		}
	}

	copied := make([]Band, len(bands))
	copy(copied, bands)
	return &BandTable{bands: copied, fallback: fallback}, nil
}

// Label returns the first band whose threshold covers difficulty
func (t *BandTable) Label(difficulty int) string {
	for _, b := range t.bands {
		if difficulty <= b.UpTo {
			return b.Label
		}
	}
	return t.fallback
}

// Bands returns a copy of the ordered table
func (t *BandTable) Bands() []Band {
	out := make([]Band, len(t.bands))
	copy(out, t.bands)
	return out
}
