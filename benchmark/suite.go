package benchmark

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MidRangeBound is an upper bound well below math.MaxUint64.
const MidRangeBound uint64 = 10454235000005000

// DefaultUpperBounds are benchmarked when no bounds are configured.
var DefaultUpperBounds = []uint64{MidRangeBound, math.MaxUint64 - 1, math.MaxUint64}

// Group is a set of cases sharing one bound.
type Group struct {
	Name  string
	Bound Bound
	Cases []Case
}

// GroupName labels a group by how its upper bound relates to math.MaxUint64.
func GroupName(high uint64) string {
	switch high {
	case math.MaxUint64:
		return "ranges-max"
	case math.MaxUint64 - 1:
		return "ranges-max-1"
	default:
		return "ranges-non-max"
	}
}

// ParseBound accepts a decimal uint64, "max" or "max-1".
func ParseBound(s string) (uint64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return math.MaxUint64, nil
	case "max-1":
		return math.MaxUint64 - 1, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid upper bound %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid upper bound %q: must be at least 1", s)
	}
	return v, nil
}

// ParseBounds parses every entry with ParseBound.
func ParseBounds(values []string) ([]uint64, error) {
	bounds := make([]uint64, 0, len(values))
	for _, s := range values {
		v, err := ParseBound(s)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, v)
	}
	return bounds, nil
}

// FormatBound is the inverse of ParseBound.
func FormatBound(high uint64) string {
	switch high {
	case math.MaxUint64:
		return "max"
	case math.MaxUint64 - 1:
		return "max-1"
	default:
		return strconv.FormatUint(high, 10)
	}
}

// NewSuite builds one group per configured upper bound.
func NewSuite(cfg Config) ([]Group, error) {
	cases, err := LookupCases(cfg.Cases)
	if err != nil {
		return nil, err
	}

	bounds := cfg.UpperBounds
	if len(bounds) == 0 {
		bounds = DefaultUpperBounds
	}

	groups := make([]Group, 0, len(bounds))
	for _, high := range bounds {
		groups = append(groups, Group{
			Name:  GroupName(high),
			Bound: NewBound(high, cfg.Window),
			Cases: cases,
		})
	}
	return groups, nil
}

// caseID names a case the way it is reported and stored in baselines.
func caseID(g Group, c Case) string {
	return fmt.Sprintf("%s/%s/%s", g.Name, c.Name, FormatBound(g.Bound.High))
}
