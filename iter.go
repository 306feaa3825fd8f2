package prng

import "iter"

// Values adapts a Source into an unbounded sequence of random T. The
// sequence never stops on its own; the consumer terminates iteration by
// breaking or with Limit.
func Values[T Primitive](src Source) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(Of[T](src)) {
		}
	}
}

// Limit yields at most n values from seq.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}
