// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

import (
	"log"

	"github.com/akmami/lcp/alphabet"
	"github.com/akmami/lcp/core"
)

// minInputLength is the shortest input New will scan; shorter inputs
// produce an empty String at level 1 (the InputTooShort policy).
const minInputLength = 3

// rescanSpanLimit bounds how far a rescan window's span may stretch before
// it is skipped, guarding against pathological concatenations once cores
// grow wide at deep levels.
const rescanSpanLimit = 10000

// String is an ordered sequence of Cores built from an input by level-1
// scanning, and advanced level by level through Deepen.
type String struct {
	level uint32
	cores []core.Core
}

// New scans input for level-1 cores and returns the resulting String at
// level 1. Inputs shorter than three symbols produce an empty String; this
// is logged, not treated as fatal.
func New(input []byte) *String {
	if len(input) < minInputLength {
		log.Printf("lcp: input length %d below minimum %d; returning empty string", len(input), minInputLength)
		return &String{level: 1}
	}
	return &String{level: 1, cores: scanLevel1(input)}
}

// Level reports the current depth of the decomposition; level 1 is the
// direct, unscanned-by-DCT result of New.
func (s *String) Level() uint32 { return s.level }

// Cores returns the current core sequence. The returned slice must be
// treated as read-only.
func (s *String) Cores() []core.Core { return s.cores }

// SmallCores returns each current core packed to a uint64 via Core.Encode,
// in order.
func (s *String) SmallCores() []uint64 {
	out := make([]uint64, len(s.cores))
	for i, c := range s.cores {
		out[i] = c.Encode()
	}
	return out
}

// Deepen advances the String by one level: it runs CompressionIterationCount
// right-to-left DCT passes over the current cores, then rescans the
// compressed cores with the same window rules level-1 scanning used. Fewer
// than two cores is a no-op, logged rather than treated as fatal.
func (s *String) Deepen() {
	if len(s.cores) < 2 {
		log.Printf("lcp: deepen requires at least two cores, have %d; no-op", len(s.cores))
		return
	}
	dct(s.cores)
	s.cores = scanRescan(s.cores)
	s.level++
}

// DeepenMultiple calls Deepen n times.
func (s *String) DeepenMultiple(n int) {
	for i := 0; i < n; i++ {
		s.Deepen()
	}
}

// dct runs the deterministic-coin-tossing pass in place: CompressionIterationCount
// rounds, each iterating the core list right to left and compressing every
// core against its left neighbour. cores[0] is never a compression target
// and is left stale; the rescan that follows starts far enough right that
// it never reads it.
func dct(cores []core.Core) {
	n := len(cores)
	for pass := 0; pass < core.CompressionIterationCount; pass++ {
		for i := n - 1; i >= 1; i-- {
			cores[i].Compress(&cores[i-1])
		}
	}
}

// scanLevel1 implements the level-1 window scan over raw input bytes.
func scanLevel1(r []byte) []core.Core {
	tbl := alphabet.Current()
	less := func(a, b byte) bool {
		la, lb := tbl.Labels[a], tbl.Labels[b]
		return la < lb
	}
	equal := func(a, b byte) bool { return a == b }

	var cores []core.Core
	n := len(r)
	i := 1
	for i+4 < n {
		w := [5]byte{r[i], r[i+1], r[i+2], r[i+3], r[i+4]}

		if equal(w[1], w[2]) {
			i++
			continue
		}

		if equal(w[2], w[3]) {
			j := findRunEnd(r, i+4, equal)
			if j == n {
				break
			}
			cores = append(cores, core.FromSequence(i+1, r[i+1:j+1]))
			i++
			continue
		}

		if tbl.Labels[w[1]] < 0 {
			i++
			continue
		}

		if classifyWindow(w, less) {
			cores = append(cores, core.FromSequence(i+1, r[i+1:i+4]))
		}
		i++
	}
	return cores
}

// scanRescan implements the higher-level window scan over the current core
// list, using Core's total order in place of label comparison.
func scanRescan(cores []core.Core) []core.Core {
	less := func(a, b core.Core) bool { return a.Less(b) }
	equal := func(a, b core.Core) bool { return a.Equal(b) }

	var next []core.Core
	n := len(cores)
	i := 2*core.CompressionIterationCount - 1
	for i+4 < n {
		if cores[i+4].End-cores[i].Start > rescanSpanLimit {
			i++
			continue
		}

		w := [5]core.Core{cores[i], cores[i+1], cores[i+2], cores[i+3], cores[i+4]}

		if equal(w[1], w[2]) {
			i++
			continue
		}

		if equal(w[2], w[3]) {
			j := findRunEnd(cores, i+4, equal)
			if j == n {
				break
			}
			next = append(next, core.FromCores(cores[i+1:j+1]))
			i++
			continue
		}

		if classifyWindow(w, less) {
			left := i + 1 - core.CompressionIterationCount
			next = append(next, core.FromCores(cores[left:i+4]))
		}
		i++
	}
	return next
}
