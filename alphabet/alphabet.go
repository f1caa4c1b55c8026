// Copyright 2026, The LCP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package alphabet maintains the process-wide symbol table that the core and
// lcp packages use to turn input bytes into small integer labels.
//
// A Table maps each byte in [0,128) to a label in [0, 2^DictBitSize), or to
// -1 if the byte does not belong to the alphabet. It is built once (via one
// of the Init functions or a direct constructor) and is treated as
// immutable from that point on; nothing in this module mutates a Table's
// fields after construction.
package alphabet

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

// maxDictBitSize is the largest dictionary bit size this module supports.
// Labels must fit in 6 bits (i.e. be less than 64) so that a Core's DCT
// compression arithmetic stays within the widths the reference test
// vectors assume.
const maxDictBitSize = 6

// unmapped is the sentinel label for a byte outside the alphabet.
const unmapped = -1

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "alphabet: " + string(e) }

var (
	// ErrOutOfRange reports a negative label or a dictionary bit size
	// larger than 6 bits.
	ErrOutOfRange error = Error("label out of range")

	// ErrMalformedLine reports a line of an encoding file that is not a
	// single-character token followed by an integer token.
	ErrMalformedLine error = Error("malformed line")
)

// Table is an initialized alphabet: a byte-to-label map plus its reverse and
// the number of bits needed to store the largest label.
type Table struct {
	Labels      [128]int32
	Characters  [128]rune
	DictBitSize int
}

func newTable() *Table {
	t := &Table{}
	for i := range t.Labels {
		t.Labels[i] = unmapped
	}
	for i := range t.Characters {
		t.Characters[i] = 126 // '~', matches the original's placeholder
	}
	return t
}

// bitWidth returns the number of bits needed to represent v, the same way
// the original encoding computed DICT_BIT_SIZE: by halving until zero
// rather than calling into a logarithm.
func bitWidth(v int32) int {
	n := 0
	for v > 0 {
		n++
		v /= 2
	}
	return n
}

// Default builds the DNA alphabet (A=0, C=1, G=2, T=3, DictBitSize=2),
// matching both upper and lower case letters.
func Default() *Table {
	t := newTable()
	pairs := []struct {
		ch  byte
		val int32
	}{
		{'A', 0}, {'a', 0},
		{'C', 1}, {'c', 1},
		{'G', 2}, {'g', 2},
		{'T', 3}, {'t', 3},
	}
	for _, p := range pairs {
		t.Labels[p.ch] = p.val
	}
	t.Characters[0] = 'A'
	t.Characters[1] = 'C'
	t.Characters[2] = 'G'
	t.Characters[3] = 'T'
	t.DictBitSize = 2
	return t
}

// FromMap builds a Table from an explicit byte-to-label mapping. Every byte
// not present in m is left unmapped. Negative values and dictionary widths
// over 6 bits are rejected.
func FromMap(m map[byte]int32) (*Table, error) {
	t := newTable()
	var maxValue int32
	for ch, val := range m {
		if val < 0 {
			return nil, fmt.Errorf("%w: %d for %q", ErrOutOfRange, val, ch)
		}
		t.Labels[ch] = val
		if int(val) < len(t.Characters) {
			t.Characters[val] = rune(ch)
		}
		if val > maxValue {
			maxValue = val
		}
	}
	t.DictBitSize = bitWidth(maxValue)
	if t.DictBitSize > maxDictBitSize {
		return nil, fmt.Errorf("%w: dictionary bit size %d exceeds %d", ErrOutOfRange, t.DictBitSize, maxDictBitSize)
	}
	return t, nil
}

// FromFile builds a Table from a text file of "char value" pairs, one per
// line, separated by whitespace. Blank lines are ignored.
func FromFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := make(map[byte]int32)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 fields, got %d", ErrMalformedLine, lineNo, len(fields))
		}
		chars := []rune(fields[0])
		if len(chars) != 1 || chars[0] > 127 {
			return nil, fmt.Errorf("%w: line %d: first token must be a single 7-bit character", ErrMalformedLine, lineNo)
		}
		val, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
		}
		m[byte(chars[0])] = int32(val)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromMap(m)
}

// Summary logs the non-empty entries of the table and its dictionary bit
// size at info level. It is the Go analogue of the original's
// encoding_summary, invoked by the Init functions when verbose is true.
func (t *Table) Summary() {
	var pairs []string
	for b, v := range t.Labels {
		if v != unmapped {
			pairs = append(pairs, fmt.Sprintf("%q=%d", byte(b), v))
		}
	}
	log.Printf("alphabet: coefficients: [%s]", strings.Join(pairs, " "))
	log.Printf("alphabet: dictionary bit size: %d", t.DictBitSize)
}

var (
	mu      sync.Mutex
	current *Table
)

// Current returns the process-wide alphabet table, auto-initializing it
// with Default if no Init function has run yet (AlphabetNotInitialised
// policy: auto-initialise and log, not fail).
func Current() *Table {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		log.Print("alphabet: not initialised; auto-initialising with defaults")
		current = Default()
	}
	return current
}

// SetCurrent installs t as the process-wide alphabet table. Callers must
// ensure no live Core or String depends on the previous table, since
// encoded cores are only meaningful relative to the DictBitSize they were
// built under.
func SetCurrent(t *Table) {
	mu.Lock()
	current = t
	mu.Unlock()
}

// InitDefault installs the DNA defaults as the process-wide table.
func InitDefault(verbose bool) *Table {
	t := Default()
	SetCurrent(t)
	if verbose {
		t.Summary()
	}
	return t
}

// InitMap installs a Table built from m as the process-wide table.
func InitMap(m map[byte]int32, verbose bool) (*Table, error) {
	t, err := FromMap(m)
	if err != nil {
		log.Print(err)
		return nil, err
	}
	SetCurrent(t)
	if verbose {
		t.Summary()
	}
	return t, nil
}

// InitFile installs a Table loaded from path as the process-wide table.
func InitFile(path string, verbose bool) (*Table, error) {
	t, err := FromFile(path)
	if err != nil {
		log.Print(err)
		return nil, err
	}
	SetCurrent(t)
	if verbose {
		t.Summary()
	}
	return t, nil
}
