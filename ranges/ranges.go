// Package ranges provides uint64 sequence producers: exclusive, inclusive
// and a dynamic range that picks one of the two at construction time.
package ranges

import "iter"

// Iterator produces the next element of a sequence, or false once the
// sequence is exhausted.
type Iterator interface {
	Next() (uint64, bool)
}

// Exclusive enumerates low, low+1, ..., end-1.
type Exclusive struct {
	next uint64
	end  uint64
}

// NewExclusive returns a range over [low, end). It is empty when low >= end.
func NewExclusive(low, end uint64) Exclusive {
	return Exclusive{next: low, end: end}
}

func (r *Exclusive) Next() (uint64, bool) {
	if r.next >= r.end {
		return 0, false
	}
	v := r.next
	r.next++
	return v, true
}

// Inclusive enumerates low, low+1, ..., high. The cursor is never
// incremented past high, so high may be math.MaxUint64.
type Inclusive struct {
	next      uint64
	end       uint64
	exhausted bool
}

// NewInclusive returns a range over [low, high]. It is empty when low > high.
func NewInclusive(low, high uint64) Inclusive {
	return Inclusive{next: low, end: high, exhausted: low > high}
}

func (r *Inclusive) Next() (uint64, bool) {
	if r.exhausted {
		return 0, false
	}
	v := r.next
	if v == r.end {
		r.exhausted = true
	} else {
		r.next++
	}
	return v, true
}

// Values adapts a pull iterator into a push sequence.
func Values(it Iterator) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ExclusiveSeq yields [low, end).
func ExclusiveSeq(low, end uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v := low; v < end; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// InclusiveSeq yields [low, high].
func InclusiveSeq(low, high uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if low > high {
			return
		}
		for v := low; ; v++ {
			if !yield(v) || v == high {
				return
			}
		}
	}
}
