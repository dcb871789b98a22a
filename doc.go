// Package seqkit provides lazy sequence-processing recipes for iter.Seq based iterators.
//
// # Summary
//
// The package covers two traversal problems where laziness truly pays off:
// flattening arbitrarily nested, heterogeneous values into a single flat
// sequence, and splitting a string into fields without materialising the
// whole result upfront.
// Both entry points return demand-driven sequences:
// no element is produced until the consumer requests it,
// which makes them usable with unbounded sources
// and lets the consumer abandon iteration at any point without cleanup duties.
// A small set of strided helpers (EveryNth, Even, Odd)
// and a pull-style iterator protocol (PullIter) round out the toolkit.
//
// # Single-use sequences
//
// Sequences produced from replayable sources such as slices and arrays can be iterated any number of times.
// Sequences backed by channels or by other iterators are single-use:
// iterating them a second time continues from wherever the underlying source left off,
// most likely yielding no further values.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package seqkit
