/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package mt19937

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestUint32Golden(t *testing.T) {
	tests := []struct {
		seed uint64
		want []uint32
	}{
		{0, []uint32{3626764237, 1654615998, 3255389356}},
		{42, []uint32{2746317213, 478163327, 107420369}},
		// Seeds wider than 32 bits use two key words.
		{1<<40 + 5, []uint32{2166296868, 2220160828, 1153647273}},
	}
	for _, tt := range tests {
		s := New(tt.seed)
		got := []uint32{s.Uint32(), s.Uint32(), s.Uint32()}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("New(%d) draws mismatch (-want +got):\n%s", tt.seed, diff)
		}
	}
}

func TestTwistBoundary(t *testing.T) {
	// Crossing the 624-word state forces a regeneration; the stream must
	// keep going without repeating the first block.
	s := New(0)
	first := s.Uint32()
	for range n - 1 {
		s.Uint32()
	}
	require.NotEqual(t, first, s.Uint32())
}

func TestShuffleGolden(t *testing.T) {
	s := New(0)
	var answers []int
	for range 8 {
		options := []string{"C", "I"}
		s.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
		if options[0] == "C" {
			answers = append(answers, 0)
		} else {
			answers = append(answers, 1)
		}
	}
	require.Equal(t, []int{0, 0, 1, 0, 0, 0, 0, 0}, answers)
}

func TestBelow(t *testing.T) {
	s := New(7)
	for range 1000 {
		v := s.Below(3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
	}
	require.Equal(t, 0, s.Below(1))
	require.Panics(t, func() { s.Below(0) })
	require.Panics(t, func() { s.Bits(33) })
}
