// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package core implements Core, the bit-packed label at the heart of the
// LCP hierarchy, and the deterministic-coin-tossing compression that
// advances it from one level to the next.
package core

import (
	"fmt"
	"math/bits"

	"github.com/akmami/lcp/alphabet"
	"github.com/dsnet/golib/errs"
)

// CompressionIterationCount is the number of DCT rounds performed per level.
const CompressionIterationCount = 2

// CoreLength is the window width used when scanning for cores at levels
// above 1: the 3-core candidate window, widened on the left by the
// CompressionIterationCount cores of context that DCT folds in.
const CoreLength = 3 + CompressionIterationCount

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "core: " + string(e) }

// ErrEmptyConcatenation is raised by FromCores when given no cores to
// concatenate. It is a programmer error, not a recoverable condition.
var ErrEmptyConcatenation error = Error("from_cores called with no cores")

// Core is a variable-width bit-packed label over the input alphabet, plus
// the half-open source span [Start, End) it was derived from.
//
// Bits holds block_number = len(Bits) bytes. The payload is right-aligned:
// the top StartIndex bits of Bits[0] are zero padding, and the remaining
// BitCount() bits, numbered MSB-first from StartIndex, carry the label.
// Bits is owned exclusively by its Core; callers must not mutate a slice
// returned by Blocks.
type Core struct {
	Bits        []byte
	StartIndex  int
	BlockNumber int
	Start       int
	End         int
}

// BitCount returns the number of payload bits the Core carries.
func (c Core) BitCount() int {
	return c.BlockNumber*SizePerBlock - c.StartIndex
}

// Blocks returns the Core's backing bytes. The returned slice must be
// treated as read-only.
func (c Core) Blocks() []byte {
	return c.Bits
}

// FromSymbol builds a single-symbol Core at source position start.
func FromSymbol(start int, ch byte) Core {
	tbl := alphabet.Current()
	width := tbl.DictBitSize
	blockNumber := (width-1)/SizePerBlock + 1
	startIndex := blockNumber*SizePerBlock - width

	bitsBuf := make([]byte, blockNumber)
	encodeSymbol(bitsBuf, startIndex, width, uint32(tbl.Labels[ch]))

	return Core{
		Bits:        bitsBuf,
		StartIndex:  startIndex,
		BlockNumber: blockNumber,
		Start:       start,
		End:         start + 1,
	}
}

// FromSequence builds a Core spanning the symbols in seq, starting at
// source position start.
func FromSequence(start int, seq []byte) Core {
	tbl := alphabet.Current()
	width := tbl.DictBitSize
	bitCount := len(seq) * width
	blockNumber := (bitCount-1)/SizePerBlock + 1
	startIndex := blockNumber*SizePerBlock - bitCount

	bitsBuf := make([]byte, blockNumber)
	for i, ch := range seq {
		encodeSymbol(bitsBuf, startIndex+i*width, width, uint32(tbl.Labels[ch]))
	}

	return Core{
		Bits:        bitsBuf,
		StartIndex:  startIndex,
		BlockNumber: blockNumber,
		Start:       start,
		End:         start + len(seq),
	}
}

// FromCores concatenates cores into a single Core whose payload is the
// bit-for-bit concatenation of each input core's payload, in order, with
// the last core's payload occupying the least-significant bits. The span
// runs from the first core's Start to the last core's End.
//
// FromCores panics if cores is empty; an empty concatenation is a
// programmer error, not a condition callers are expected to recover from.
func FromCores(cores []Core) Core {
	errs.Assert(len(cores) > 0, ErrEmptyConcatenation)

	bitCount := 0
	for _, c := range cores {
		bitCount += c.BitCount()
	}
	blockNumber := (bitCount-1)/SizePerBlock + 1
	startIndex := blockNumber*SizePerBlock - bitCount

	bitsBuf := make([]byte, blockNumber)
	offset := startIndex
	for _, c := range cores {
		n := c.BitCount()
		copyPayload(bitsBuf, offset, c.Bits, c.StartIndex, n)
		offset += n
	}

	return Core{
		Bits:        bitsBuf,
		StartIndex:  startIndex,
		BlockNumber: blockNumber,
		Start:       cores[0].Start,
		End:         cores[len(cores)-1].End,
	}
}

// Compress rewrites c in place to the bit-index encoding of the first
// position (from the right) at which c and other differ, combined with
// the bit value c held there. This is the deterministic-coin-tossing step;
// other is read-only. Compress does not alter c.Start or c.End.
func (c *Core) Compress(other *Core) {
	s := c.Bits
	o := other.Bits
	tIdx := c.BlockNumber - 1
	oIdx := other.BlockNumber - 1
	tb := s[tIdx]
	ob := o[oIdx]

	k := 0
	for oIdx > 0 && tIdx > 0 && ob == tb {
		oIdx--
		tIdx--
		ob = o[oIdx]
		tb = s[tIdx]
		k += SizePerBlock
	}

	var p int
	switch {
	case oIdx > 0 && tIdx > 0:
		p = 0
	case oIdx > 0:
		p = c.StartIndex
	case tIdx > 0:
		p = other.StartIndex
	default:
		p = max(other.StartIndex, c.StartIndex)
	}

	for p < SizePerBlock && ob%2 == tb%2 {
		ob >>= 1
		tb >>= 1
		k++
		p++
	}

	v := 2*k + int(tb%2)

	w := bits.Len(uint(v))
	if w < 2 {
		w = 2
	}

	blockNumber := (w-1)/SizePerBlock + 1
	startIndex := blockNumber*SizePerBlock - w

	newBits := make([]byte, blockNumber)
	vv := v
	for i := 0; i < blockNumber; i++ {
		newBits[blockNumber-1-i] = byte(vv)
		vv >>= SizePerBlock
	}

	c.Bits = newBits
	c.BlockNumber = blockNumber
	c.StartIndex = startIndex
}

// Compare implements the Core total order: BlockNumber ascending, then
// StartIndex descending, then Bits lexicographically ascending. It
// returns a negative number if c sorts before other, zero if equal, and
// a positive number otherwise.
func (c Core) Compare(other Core) int {
	if c.BlockNumber != other.BlockNumber {
		if c.BlockNumber < other.BlockNumber {
			return -1
		}
		return 1
	}
	if c.StartIndex != other.StartIndex {
		if c.StartIndex > other.StartIndex {
			return -1
		}
		return 1
	}
	for i := range c.Bits {
		if c.Bits[i] != other.Bits[i] {
			if c.Bits[i] < other.Bits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether c sorts strictly before other.
func (c Core) Less(other Core) bool { return c.Compare(other) < 0 }

// Equal reports whether c and other have identical BlockNumber, StartIndex
// and Bits.
func (c Core) Equal(other Core) bool { return c.Compare(other) == 0 }

// Encode packs the last up to 4 bytes of the Core's payload into a uint64,
// with the last byte of Bits occupying the least significant byte of the
// result. If BlockNumber exceeds 4, the leading bytes are dropped. This is
// intended for compact external reporting only; it is lossy for wide
// cores.
func (c Core) Encode() uint64 {
	var v uint64
	n := len(c.Bits)
	limit := n
	if limit > 4 {
		limit = 4
	}
	for i := 0; i < limit; i++ {
		v |= uint64(c.Bits[n-1-i]) << (SizePerBlock * i)
	}
	return v
}

// String renders the Core's payload as a "0b"-prefixed bit string, the Go
// analogue of the original implementation's show().
func (c Core) String() string {
	var sb []byte
	sb = append(sb, '0', 'b')
	for i := c.StartIndex; i < SizePerBlock; i++ {
		if getBit(c.Bits[:1], i) {
			sb = append(sb, '1')
		} else {
			sb = append(sb, '0')
		}
	}
	for _, b := range c.Bits[1:] {
		sb = append(sb, []byte(fmt.Sprintf("%08b", b))...)
	}
	return string(sb)
}
