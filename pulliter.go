package seqkit

import (
	"io"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

// PullIter is a pull style iterator object that encapsulates accessing and traversing an aggregate,
// without exposing how the aggregate is represented.
// Flatten drives every nested value it descends into through this protocol.
// Interface design inspired by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene,
	// for all other cases where the underlying io is handled on a higher level, it should simply return nil.
	// Close must be safe to call more than once.
	io.Closer
	// Err return the error cause.
	Err() error
}

// ToPullIter exposes an error-aware sequence through the pull protocol.
// An error element ends the iteration:
// Next reports false and the error becomes available through Err.
func ToPullIter[T any](itr iterkit.SeqE[T]) PullIter[T] {
	next, stop := iter.Pull2(itr)
	return &pullIter[T]{next: next, stop: stop}
}

// FromPullIter exposes a pull style iterator as an error-aware sequence.
// The iterator is closed when the sequence is abandoned or exhausted,
// and errors reported by the iterator come through as the final sequence element.
// The result is single use, like the iterator behind it.
func FromPullIter[T any](itr PullIter[T]) iterkit.SingleUseSeqE[T] {
	return iterkit.Once2(func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		var zero T
		if err := itr.Err(); err != nil {
			if !yield(zero, err) {
				return
			}
		}
		if err := itr.Close(); err != nil {
			if !yield(zero, err) {
				return
			}
		}
	})
}

// CollectPullIter drains a pull style iterator into a slice.
// The iterator is closed before returning,
// and iteration plus close errors are merged into the returned error.
func CollectPullIter[T any](itr PullIter[T]) ([]T, error) {
	if itr == nil {
		return nil, nil
	}
	defer itr.Close()
	var vs []T
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	var errs []error
	if err := itr.Err(); err != nil {
		errs = append(errs, err)
	}
	if err := itr.Close(); err != nil {
		errs = append(errs, err)
	}
	return vs, errorkit.Merge(errs...)
}

type pullIter[T any] struct {
	next func() (T, error, bool)
	stop func()
	val  T
	err  error
	done bool
}

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		return false
	}
	if err != nil {
		i.err = err
		i.done = true
		i.stop()
		return false
	}
	i.val = v
	return true
}

func (i *pullIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *pullIter[T]) Err() error {
	return i.err
}

func (i *pullIter[T]) Value() T {
	return i.val
}
