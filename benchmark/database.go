package benchmark

import (
	"errors"
	"math"
	"time"
)

// BaselineStore persists benchmark results under a baseline name so later
// runs can be compared against them.
type BaselineStore interface {
	// Save stores every result under name, replacing earlier entries
	// with the same case ID
	Save(name string, results []Result) error

	// Load returns the entry stored for a case ID.
	// Returns ErrBaselineNotFound if the case was never saved under name
	Load(name, id string) (BaselineEntry, error)

	// Close releases the underlying database
	Close() error
}

// BaselineEntry is the stored summary of one case.
type BaselineEntry struct {
	ID      string    `json:"id"`
	NsPerOp int64     `json:"ns_per_op"`
	MeanNs  int64     `json:"mean_ns"`
	P50Ns   int64     `json:"p50_ns"`
	SavedAt time.Time `json:"saved_at"`
}

func entryFromResult(r Result, now time.Time) BaselineEntry {
	return BaselineEntry{
		ID:      r.ID,
		NsPerOp: r.NsPerOp,
		MeanNs:  r.Samples.MeanNs,
		P50Ns:   r.Samples.P50Ns,
		SavedAt: now,
	}
}

// Verdict classifies a change against a baseline.
type Verdict string

const (
	VerdictImproved  Verdict = "improved"
	VerdictRegressed Verdict = "regressed"
	VerdictNoChange  Verdict = "no change"
)

// DefaultNoise is the relative change treated as measurement noise.
const DefaultNoise = 0.01

// Comparison describes how a result moved relative to a baseline.
type Comparison struct {
	Baseline        string  `json:"baseline"`
	PreviousNsPerOp int64   `json:"previous_ns_per_op"`
	ChangePct       float64 `json:"change_pct"`
	Verdict         Verdict `json:"verdict"`
}

// Compare relates the current ns/op to the baseline's.
func Compare(name string, current Result, previous BaselineEntry, noise float64) Comparison {
	cmp := Comparison{
		Baseline:        name,
		PreviousNsPerOp: previous.NsPerOp,
		Verdict:         VerdictNoChange,
	}
	if previous.NsPerOp <= 0 {
		return cmp
	}

	change := float64(current.NsPerOp-previous.NsPerOp) / float64(previous.NsPerOp)
	cmp.ChangePct = change * 100
	switch {
	case math.Abs(change) <= noise:
	case change < 0:
		cmp.Verdict = VerdictImproved
	default:
		cmp.Verdict = VerdictRegressed
	}
	return cmp
}

// Common baseline errors
var (
	ErrBaselineNotFound = errors.New("baseline entry not found")
	ErrStoreClosed      = errors.New("baseline store is closed")
)

// Helper function to check if an error is "baseline not found"
func IsBaselineNotFound(err error) bool {
	return errors.Is(err, ErrBaselineNotFound)
}
