// Package timeline provides the generic temporal algorithms used to turn a
// chronological snapshot history into durations and business-day counts.
package timeline

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidArgument reports a malformed range, interval or input sequence.
var ErrInvalidArgument = errors.New("invalid argument")

// Always keeps every pair.
func Always[T any](_, _ T) bool {
	return true
}

// Lag returns the consecutive (previous, next) pairs of seq for which keep
// holds. The window always advances: a dropped pair never pins previous to an
// older element. The returned sequence is single-pass when seq is.
func Lag[T any](seq iter.Seq[T], keep func(previous, next T) bool) (iter.Seq2[T, T], error) {
	if seq == nil {
		return nil, fmt.Errorf("lag: nil sequence: %w", ErrInvalidArgument)
	}
	if keep == nil {
		return nil, fmt.Errorf("lag: nil predicate: %w", ErrInvalidArgument)
	}

	return func(yield func(T, T) bool) {
		var previous T
		first := true
		for element := range seq {
			if first {
				previous = element
				first = false
				continue
			}
			if keep(previous, element) && !yield(previous, element) {
				return
			}
			previous = element
		}
	}, nil
}

// LagAll is Lag with a predicate that keeps every pair.
func LagAll[T any](seq iter.Seq[T]) (iter.Seq2[T, T], error) {
	return Lag(seq, Always[T])
}
