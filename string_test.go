// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

import (
	"testing"

	"github.com/akmami/lcp/alphabet"
	"github.com/stretchr/testify/assert"
)

func init() {
	alphabet.InitDefault(false)
}

func TestNewShortInput(t *testing.T) {
	s := New([]byte("AC"))
	assert.Equal(t, uint32(1), s.Level())
	assert.Empty(t, s.Cores())
}

func TestNewProducesLevelOneCores(t *testing.T) {
	s := New([]byte("GGGACCTGGTGACCCC"))
	assert.Equal(t, uint32(1), s.Level())
	assert.NotEmpty(t, s.Cores())
	for _, c := range s.Cores() {
		assert.Less(t, c.Start, c.End)
	}
}

func TestDeepenIncrementsLevel(t *testing.T) {
	s := New([]byte("GGGACCTGGTGACCCCAGCCCACGACAG"))
	before := s.Level()
	s.Deepen()
	assert.Equal(t, before+1, s.Level())
}

func TestDeepenTooFewCoresIsNoOp(t *testing.T) {
	s := &String{level: 3, cores: nil}
	s.Deepen()
	assert.Equal(t, uint32(3), s.Level())
}

func TestDeepenMultiple(t *testing.T) {
	s := New([]byte("GGGACCTGGTGACCCCAGCCCACGACAGCCAAGCGCCAGCTGAGCTCAGGTGTGAGGAGATCACAGTCCTCTGTAATAGGCTGTCCG"))
	s.DeepenMultiple(2)
	assert.Equal(t, uint32(3), s.Level())
}

// TestScenario6Golden is the end-to-end golden test from spec.md §8
// scenario 6: a fixed 87-symbol DNA sequence, its level-1 small_cores, and
// the small_cores after one deepen.
func TestScenario6Golden(t *testing.T) {
	input := "GGGACCTGGTGACCCCAGCCCACGACAGCCAAGCGCCAGCTGAGCTCAGGTGTGAGGAGATCACAGTCCTCTGTAATAGGCTGTCCG"

	want := []uint64{
		0b100001, 0b10111, 0b11110, 0b11101011, 0b101110, 0b100001,
		0b000101010100, 0b10010, 0b1001010100, 0b10001, 0b100001, 0b10010,
		0b10010100, 0b1000010, 0b100110, 0b10010100, 0b10010, 0b100111,
		0b100010, 0b100111, 0b10010, 0b101011, 0b111011, 0b100010,
		0b101000, 0b100010, 0b100011, 0b10001, 0b10010, 0b101101,
		0b11010111, 0b110111, 0b111011, 0b11000011, 0b110010, 0b101001,
		0b100111, 0b111011, 0b11010110,
	}

	s := New([]byte(input))
	assert.Equal(t, want, s.SmallCores())

	wantDeepened := []uint64{
		0b0100010001, 0b0100010001, 0b01000100100, 0b00100110110,
		0b1101100001, 0b0001100001, 0b1000010001, 0b00011000011,
		0b10000110110, 0b1101100010, 0b1000100111, 0b01111000011,
		0b0011100111,
	}

	s.Deepen()
	assert.Equal(t, uint32(2), s.Level())
	assert.Equal(t, wantDeepened, s.SmallCores())
}
