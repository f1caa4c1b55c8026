// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lcp implements Locally Consistent Parsing over symbol sequences
// drawn from a small alphabet (at most 128 symbols, labels under 64).
//
// A String decomposes an input byte sequence into a level-1 sequence of
// Cores using local-minimum/local-maximum and run-triple window rules, then
// advances through higher levels by alternating a deterministic-coin-
// tossing compression pass with a rescan of the same window rules over the
// compressed cores. See package core for the Core value type itself and
// package alphabet for the byte-to-label table that both level-1 scanning
// and Core construction read from.
package lcp

import "github.com/akmami/lcp/core"

// Core is the unit a String decomposes its input into. It is an alias for
// core.Core so callers working only with this package never need to import
// core directly.
type Core = core.Core
