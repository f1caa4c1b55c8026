// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package core

import (
	"testing"

	"github.com/akmami/lcp/alphabet"
	"github.com/stretchr/testify/assert"
)

func init() {
	alphabet.InitDefault(false)
}

// TestFromSequenceScenario1 is spec.md scenario 1.
func TestFromSequenceScenario1(t *testing.T) {
	c := FromSequence(1, []byte("ATGTC"))
	assert.Equal(t, 2, c.BlockNumber)
	assert.Equal(t, 6, c.StartIndex)
	assert.Equal(t, []byte{0b00000000, 0b11101101}, c.Bits)
	assert.Equal(t, 1, c.Start)
	assert.Equal(t, 6, c.End)
}

// TestFromSymbolScenario2 is spec.md scenario 2.
func TestFromSymbolScenario2(t *testing.T) {
	c := FromSymbol(1, 'C')
	assert.Equal(t, 1, c.BlockNumber)
	assert.Equal(t, 6, c.StartIndex)
	assert.Equal(t, []byte{0b00000001}, c.Bits)
}

// TestCompressScenario3 is spec.md scenario 3.
func TestCompressScenario3(t *testing.T) {
	a := FromSequence(1, []byte("ATGTC"))
	b := FromSequence(2, []byte("TTGTC"))
	b.Compress(&a)
	assert.Equal(t, 1, b.BlockNumber)
	assert.Equal(t, 3, b.StartIndex)
	assert.Equal(t, []byte{0b00010001}, b.Bits)
}

// TestCompressScenario4 is spec.md scenario 4.
func TestCompressScenario4(t *testing.T) {
	a := FromSequence(1, []byte("A"))
	b := FromSequence(2, []byte("TAAAA"))
	b.Compress(&a)
	assert.Equal(t, 1, b.BlockNumber)
	assert.Equal(t, 5, b.StartIndex)
	assert.Equal(t, []byte{0b00000100}, b.Bits)
}

// TestCompressScenario5 is spec.md scenario 5.
func TestCompressScenario5(t *testing.T) {
	a := FromSequence(1, []byte("C"))
	b := FromSequence(2, []byte("T"))
	b.Compress(&a)
	assert.Equal(t, 1, b.BlockNumber)
	assert.Equal(t, 6, b.StartIndex)
	assert.Equal(t, []byte{0b00000011}, b.Bits)
}

func TestCompressIdentical(t *testing.T) {
	a := FromSequence(1, []byte("ACGT"))
	b := FromSequence(5, []byte("ACGT"))
	b.Compress(&a)
	// identical cores: no differing bit is found within either payload, so
	// the result is deterministic but its exact width depends only on
	// BlockNumber/StartIndex, never on the (absent) divergence.
	c := FromSequence(9, []byte("ACGT"))
	d := FromSequence(13, []byte("ACGT"))
	d.Compress(&c)
	assert.Equal(t, b.Bits, d.Bits)
	assert.Equal(t, b.StartIndex, d.StartIndex)
}

func TestFromSequenceBitCount(t *testing.T) {
	c := FromSequence(0, []byte("ACGTACGT"))
	assert.Equal(t, 16, c.BitCount())
}

func TestFromCoresBitCountAndSpan(t *testing.T) {
	a := FromSequence(0, []byte("AC"))
	b := FromSequence(2, []byte("GT"))
	c := FromSequence(4, []byte("A"))
	merged := FromCores([]Core{a, b, c})
	assert.Equal(t, a.BitCount()+b.BitCount()+c.BitCount(), merged.BitCount())
	assert.Equal(t, a.Start, merged.Start)
	assert.Equal(t, c.End, merged.End)
}

func TestFromCoresEmptyPanics(t *testing.T) {
	assert.Panics(t, func() {
		FromCores(nil)
	})
}

func TestOrderingTotalOrder(t *testing.T) {
	a := FromSymbol(0, 'A')
	c := FromSymbol(0, 'C')
	g := FromSymbol(0, 'G')

	assert.True(t, a.Equal(a))
	assert.True(t, a.Less(c) || c.Less(a))
	if a.Less(c) {
		assert.False(t, c.Less(a))
	}
	assert.Equal(t, 0, g.Compare(g))
}

func TestOrderingStartIndexDescending(t *testing.T) {
	// Same block number, different start_index: the core with the larger
	// start_index (shorter payload) sorts first.
	short := Core{Bits: []byte{0x01}, StartIndex: 7, BlockNumber: 1}
	long := Core{Bits: []byte{0x01}, StartIndex: 0, BlockNumber: 1}
	assert.True(t, short.Less(long))
}

func TestEncodeDropsLeadingBlocks(t *testing.T) {
	c := Core{Bits: []byte{0xFF, 0x01, 0x02, 0x03, 0x04}, BlockNumber: 5}
	assert.Equal(t, uint64(0x01020304), c.Encode())
}

func TestEncodeSmallCore(t *testing.T) {
	c := FromSequence(0, []byte("ACG"))
	assert.Equal(t, uint64(c.Bits[0]), c.Encode())
}
