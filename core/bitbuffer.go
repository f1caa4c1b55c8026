// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package core

// SizePerBlock is the number of bits in one storage block (a byte).
const SizePerBlock = 8

// getBit reports the bit at absolute position pos in buf, numbered
// MSB-first from the start of buf (bit 0 is the MSB of buf[0]).
func getBit(buf []byte, pos int) bool {
	return (buf[pos/SizePerBlock]>>(SizePerBlock-1-pos%SizePerBlock))&1 == 1
}

// setBit sets the bit at absolute position pos in buf. buf is assumed to
// have been zeroed beforehand; this only ever ORs bits in.
func setBit(buf []byte, pos int) {
	buf[pos/SizePerBlock] |= 1 << (SizePerBlock - 1 - pos%SizePerBlock)
}

// encodeSymbol OR-writes the low width bits of value into dst at the
// right-aligned bit offset bitOffset, MSB-first. dst must be zeroed at
// those bit positions beforehand.
func encodeSymbol(dst []byte, bitOffset, width int, value uint32) {
	for i := 0; i < width; i++ {
		if (value>>(width-1-i))&1 == 1 {
			setBit(dst, bitOffset+i)
		}
	}
}

// copyPayload OR-copies n bits from src, starting at its bit offset
// srcOffset, into dst at its bit offset dstOffset, bit-for-bit and
// MSB-first. dst must be zeroed at those bit positions beforehand.
func copyPayload(dst []byte, dstOffset int, src []byte, srcOffset, n int) {
	for i := 0; i < n; i++ {
		if getBit(src, srcOffset+i) {
			setBit(dst, dstOffset+i)
		}
	}
}
