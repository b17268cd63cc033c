/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package mt19937 is the 32-bit Mersenne Twister with array seeding
// (init_by_array) and rejection-sampled bounded draws.
//
// Integer seeds are split into little-endian 32-bit words and fed through
// init_by_array, and Below draws the minimum number of high bits and
// retries values out of range. Together these reproduce the option orders
// that published Jawaher results were computed with, so a seed names the
// same placement in every implementation.
package mt19937

import (
	"fmt"
	"math/bits"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Source is a Mersenne Twister generator. It is not safe for concurrent use.
type Source struct {
	mt  [n]uint32
	mti int
}

// New returns a generator seeded with seed.
func New(seed uint64) *Source {
	key := []uint32{uint32(seed)}
	if hi := uint32(seed >> 32); hi != 0 {
		key = append(key, hi)
	}
	s := &Source{}
	s.seedArray(key)
	return s
}

func (s *Source) seedScalar(x uint32) {
	s.mt[0] = x
	for i := 1; i < n; i++ {
		prev := s.mt[i-1]
		s.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	s.mti = n
}

func (s *Source) seedArray(key []uint32) {
	s.seedScalar(19650218)
	i, j := 1, 0
	for k := max(n, len(key)); k > 0; k-- {
		prev := s.mt[i-1]
		s.mt[i] = (s.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			s.mt[0] = s.mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := n - 1; k > 0; k-- {
		prev := s.mt[i-1]
		s.mt[i] = (s.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			s.mt[0] = s.mt[n-1]
			i = 1
		}
	}
	s.mt[0] = upperMask
}

func (s *Source) twist() {
	for k := range n {
		y := (s.mt[k] & upperMask) | (s.mt[(k+1)%n] & lowerMask)
		v := s.mt[(k+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		s.mt[k] = v
	}
	s.mti = 0
}

// Uint32 returns the next 32 random bits.
func (s *Source) Uint32() uint32 {
	if s.mti >= n {
		s.twist()
	}
	y := s.mt[s.mti]
	s.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 joins two draws, high word first. It makes Source usable as a
// math/rand/v2 Source.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.Uint32())
	return hi<<32 | uint64(s.Uint32())
}

// Bits returns the top k bits of one draw, 1 <= k <= 32.
func (s *Source) Bits(k int) uint32 {
	if k < 1 || k > 32 {
		panic(fmt.Sprintf("mt19937: bit count %d out of range [1, 32]", k))
	}
	return s.Uint32() >> (32 - k)
}

// Below returns a uniform value in [0, bound), retrying draws that land
// outside the range. bound must be in [1, 2^32).
func (s *Source) Below(bound int) int {
	if bound <= 0 || uint64(bound) > 0xffffffff {
		panic(fmt.Sprintf("mt19937: bound %d out of range", bound))
	}
	k := bits.Len32(uint32(bound))
	r := s.Bits(k)
	for r >= uint32(bound) {
		r = s.Bits(k)
	}
	return int(r)
}

// Shuffle permutes count elements, walking from the last index down and
// swapping each with a uniform earlier-or-same index.
func (s *Source) Shuffle(count int, swap func(i, j int)) {
	for i := count - 1; i > 0; i-- {
		swap(i, s.Below(i+1))
	}
}
