// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

// classifyWindow reports whether the middle element of a 5-wide window is a
// local extremum under less: a local minimum (strictly less than both
// immediate neighbours), or a local maximum whose immediate neighbours are
// not themselves local minima relative to their own outward neighbour.
// Shared between the level-1 scan (over raw bytes, ordered by label) and
// the higher-level rescan (over Cores, ordered by their total order), so
// the rule is written once instead of twice.
func classifyWindow[T any](w [5]T, less func(a, b T) bool) bool {
	if less(w[2], w[1]) && less(w[2], w[3]) {
		return true
	}
	if less(w[1], w[2]) && less(w[3], w[2]) {
		adjacentMinLeft := less(w[1], w[0])
		adjacentMinRight := less(w[3], w[4])
		return !adjacentMinLeft && !adjacentMinRight
	}
	return false
}

// findRunEnd returns the smallest j >= from such that items[j-1] and
// items[j] differ under equal, or len(items) if no such j exists (the run
// of equal elements starting before from continues to the end of items).
func findRunEnd[T any](items []T, from int, equal func(a, b T) bool) int {
	for j := from; j < len(items); j++ {
		if !equal(items[j-1], items[j]) {
			return j
		}
	}
	return len(items)
}
