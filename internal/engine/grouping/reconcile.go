package grouping

import (
	"math"

	"github.com/phnks/webfg-app-sub004/internal/engine/modifier"
)

// ValueSource says where a reported grouped value came from
type ValueSource string

// Value sources
const (
	ValueSourceComputed    ValueSource = "computed"
	ValueSourcePrecomputed ValueSource = "precomputed"
)

// Reconciled is a fold result checked against an externally supplied value
type Reconciled struct {
	Result
	Source ValueSource `json:"source"`
	// Corrected is set when a supplied value was rejected
	Corrected bool `json:"corrected"`
}

// Reconcile decides whether a precomputed grouped value can be shown. A zero
// or non-finite value while sources participate, or one that does not round to
// the local fold, is replaced by the local result so the reported value always
// matches the breakdown. A nil precomputed value is not a correction.
func Reconcile(local Result, precomputed *float64) Reconciled {
	out := Reconciled{Result: local, Source: ValueSourceComputed}
	if precomputed == nil {
		return out
	}

	if !Plausible(local, *precomputed) {
		out.Corrected = true
		return out
	}

	out.Source = ValueSourcePrecomputed
	return out
}

// Plausible reports whether v could be the grouped value for local
func Plausible(local Result, v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if local.HasParticipants() && v == 0 {
		return false
	}
	return modifier.Round(v) == local.Value
}
