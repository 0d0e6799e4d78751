package ranges

import "iter"

// Sum folds seq with wrapping addition, starting at zero.
func Sum(seq iter.Seq[uint64]) uint64 {
	var acc uint64
	for v := range seq {
		acc += v
	}
	return acc
}

// The helpers below fold the concrete range types without going through
// the Iterator interface, so a timed loop pays only for the range itself.

func SumExclusive(r Exclusive) uint64 {
	var acc uint64
	for v, ok := r.Next(); ok; v, ok = r.Next() {
		acc += v
	}
	return acc
}

func SumInclusive(r Inclusive) uint64 {
	var acc uint64
	for v, ok := r.Next(); ok; v, ok = r.Next() {
		acc += v
	}
	return acc
}

func SumDynamic(r Dynamic) uint64 {
	var acc uint64
	for v, ok := r.Next(); ok; v, ok = r.Next() {
		acc += v
	}
	return acc
}
