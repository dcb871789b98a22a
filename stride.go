package seqkit

import (
	"fmt"
	"iter"
)

// EveryNth returns a lazy sequence that keeps every nth element of the source sequence.
//
// The shift selects which element the striding begins at, counted with a one-based convention:
// shift 1 keeps the first element, then every nth after it.
// Shift values outside of [1, n] wrap around,
// so shift 0 is the same as shift n, and negative shifts count backwards from there.
//
// EveryNth panics when n is less than one, since a non-positive stride has no meaning.
func EveryNth[T any](src iter.Seq[T], n, shift int) iter.Seq[T] {
	if n < 1 {
		panic(fmt.Sprintf("[EveryNth] positive non-zero n is required, got: %d", n))
	}
	if n == 1 {
		return src
	}
	offset := ((shift-1)%n + n) % n
	return func(yield func(T) bool) {
		var index int
		for v := range src {
			pos := index
			index++
			if pos < offset || (pos-offset)%n != 0 {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Even returns a lazy sequence of the elements at even one-based positions,
// that is the second, fourth, sixth element and so on.
func Even[T any](src iter.Seq[T]) iter.Seq[T] {
	return EveryNth(src, 2, 0)
}

// Odd returns a lazy sequence of the elements at odd one-based positions,
// that is the first, third, fifth element and so on.
func Odd[T any](src iter.Seq[T]) iter.Seq[T] {
	return EveryNth(src, 2, 1)
}
