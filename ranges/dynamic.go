package ranges

import (
	"iter"
	"math"
)

// Kind tags the representation a Dynamic range picked.
type Kind uint8

const (
	KindExclusive Kind = iota
	KindInclusive
)

func (k Kind) String() string {
	switch k {
	case KindInclusive:
		return "inclusive"
	case KindExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Dynamic is an inclusive range that chooses its representation when it is
// built: an Exclusive range over [low, high+1) unless high+1 would overflow,
// in which case it falls back to an Inclusive range. Every call to Next
// dispatches on that choice.
type Dynamic struct {
	kind Kind
	incl Inclusive
	excl Exclusive
}

// NewDynamic returns a range over [low, inclusiveHigh].
func NewDynamic(low, inclusiveHigh uint64) Dynamic {
	if inclusiveHigh == math.MaxUint64 {
		return Dynamic{kind: KindInclusive, incl: NewInclusive(low, inclusiveHigh)}
	}
	return Dynamic{kind: KindExclusive, excl: NewExclusive(low, inclusiveHigh+1)}
}

// Kind reports the representation in use.
func (d *Dynamic) Kind() Kind {
	return d.kind
}

func (d *Dynamic) Next() (uint64, bool) {
	switch d.kind {
	case KindInclusive:
		return d.incl.Next()
	default:
		return d.excl.Next()
	}
}

// DynamicSeq is the closure form of Dynamic: the branch is taken once and
// the returned sequence is one of the two static producers.
func DynamicSeq(low, inclusiveHigh uint64) iter.Seq[uint64] {
	if inclusiveHigh == math.MaxUint64 {
		return InclusiveSeq(low, inclusiveHigh)
	}
	return ExclusiveSeq(low, inclusiveHigh+1)
}
