package seqkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/port/contract"
)

// Seq validates the iteration behaviour of a lazily produced sequence.
// The factory is expected to make a finite, re-iterable sequence that has at least one element in it.
func Seq[T any](mk func(testing.TB) iter.Seq[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the sequence", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("iterating repeatedly walks the same elements in the same order", func(t *testcase.T) {
		collect := func(src iter.Seq[T]) []T {
			var vs []T
			for v := range src {
				vs = append(vs, v)
			}
			return vs
		}
		src := subject.Get(t)
		assert.Equal(t, collect(src), collect(src))
	})

	s.Then("the sequence can be abandoned after its first element", func(t *testcase.T) {
		var got int
		for range subject.Get(t) {
			got++
			break
		}
		assert.Equal(t, got, 1)
	})

	return s.AsSuite("sequence")
}
