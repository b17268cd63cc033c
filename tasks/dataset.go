/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tasks

import (
	"fmt"
	"slices"
)

// Dataset is an ordered, immutable sequence of records.
type Dataset[T any] struct {
	records []T
}

// FromSlice wraps records. The slice is copied.
func FromSlice[T any](records []T) Dataset[T] {
	return Dataset[T]{records: slices.Clone(records)}
}

// Len returns the number of records.
func (d Dataset[T]) Len() int { return len(d.records) }

// At returns record i.
func (d Dataset[T]) At(i int) T { return d.records[i] }

// Records returns a copy of the records.
func (d Dataset[T]) Records() []T { return slices.Clone(d.records) }

// All iterates over the records in order.
func (d Dataset[T]) All() func(yield func(int, T) bool) {
	return slices.All(d.records)
}

// Limit returns the first n records. n <= 0 means no limit.
func (d Dataset[T]) Limit(n int) Dataset[T] {
	if n <= 0 || n >= len(d.records) {
		return d
	}
	return Dataset[T]{records: d.records[:n:n]}
}

// Map applies f to every record, in order.
func Map[T, U any](d Dataset[T], f func(T) U) Dataset[U] {
	out := make([]U, len(d.records))
	for i, r := range d.records {
		out[i] = f(r)
	}
	return Dataset[U]{records: out}
}

// MapErr is Map for transformations that can fail. The error names the
// offending record.
func MapErr[T, U any](d Dataset[T], f func(T) (U, error)) (Dataset[U], error) {
	out := make([]U, len(d.records))
	for i, r := range d.records {
		u, err := f(r)
		if err != nil {
			return Dataset[U]{}, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = u
	}
	return Dataset[U]{records: out}, nil
}

// FlatMap applies f to every record and concatenates the results in order.
func FlatMap[T, U any](d Dataset[T], f func(T) []U) Dataset[U] {
	var out []U
	for _, r := range d.records {
		out = append(out, f(r)...)
	}
	return Dataset[U]{records: out}
}
