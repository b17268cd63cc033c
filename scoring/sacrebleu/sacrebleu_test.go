/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sacrebleu

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTokenize13a(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "Hello, world.", want: []string{"Hello", ",", "world", "."}},
		{in: "pi is 3.14", want: []string{"pi", "is", "3.14"}},
		{in: "1-2 (x)", want: []string{"1", "-", "2", "(", "x", ")"}},
		{in: "a &amp; b", want: []string{"a", "&", "b"}},
		{in: "الصبر مفتاح الفرج؟", want: []string{"الصبر", "مفتاح", "الفرج؟"}},
		{in: "  ", want: []string{}},
	}
	for _, tc := range tests {
		got := Tokenize13a(tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Tokenize13a(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestCorpusBLEU(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		got, err := CorpusBLEU([]string{"the cat sat on the mat"}, []string{"the cat sat on the mat"})
		require.NoError(t, err)
		require.InDelta(t, 100, got.Score, 1e-9)
		require.Equal(t, 1.0, got.BP)
	})

	t.Run("empty hypothesis", func(t *testing.T) {
		got, err := CorpusBLEU([]string{""}, []string{"the cat sat on the mat"})
		require.NoError(t, err)
		require.Equal(t, 0.0, got.Score)
	})

	t.Run("brevity penalty", func(t *testing.T) {
		got, err := CorpusBLEU([]string{"the cat sat on"}, []string{"the cat sat on the mat"})
		require.NoError(t, err)
		require.InDelta(t, math.Exp(1-6.0/4.0), got.BP, 1e-12)
		require.InDelta(t, 100*got.BP, got.Score, 1e-9)
	})

	t.Run("exponential smoothing", func(t *testing.T) {
		// unigrams 2/3 match, bigrams 0/2, trigrams 0/1, no 4-grams.
		got, err := CorpusBLEU([]string{"a b c"}, []string{"a x b"})
		require.NoError(t, err)
		require.InDelta(t, 100*2.0/3.0, got.Precisions[0], 1e-9)
		require.InDelta(t, 100/(2*2.0), got.Precisions[1], 1e-9)
		require.InDelta(t, 100/(4*1.0), got.Precisions[2], 1e-9)
		require.Equal(t, 0.0, got.Precisions[3])
		require.InDelta(t, 0, got.Score, 1e-9)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := CorpusBLEU([]string{"a"}, nil)
		require.Error(t, err)
	})
}

func TestCorpusChrF(t *testing.T) {
	got, err := CorpusChrF([]string{"اللي فات مات"}, []string{"اللي فات مات"})
	require.NoError(t, err)
	require.InDelta(t, 100, got.Score, 1e-9)

	got, err = CorpusChrF([]string{"abc"}, []string{"xyz"})
	require.NoError(t, err)
	require.Equal(t, 0.0, got.Score)

	// Whitespace is ignored.
	got, err = CorpusChrF([]string{"a b c"}, []string{"abc"})
	require.NoError(t, err)
	require.InDelta(t, 100, got.Score, 1e-9)

	got, err = CorpusChrF([]string{"abcd"}, []string{"abce"})
	require.NoError(t, err)
	require.Greater(t, got.Score, 0.0)
	require.Less(t, got.Score, 100.0)

	_, err = CorpusChrF(nil, []string{"a"})
	require.Error(t, err)
}
