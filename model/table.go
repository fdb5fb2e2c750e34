// Package model builds and queries the order-M occurrence table that
// drives the arithmetic coder: a Laplace-initialized frequency count over
// every (order+1)-bit context+outcome window.
package model

import "math/bits"

// Table is the occurrence table T of spec §3/§4.2: a dense, strictly
// positive frequency count for every (Order+1)-bit window, indexed by the
// window's big-endian integer value. This is also the order the header
// writer/reader serializes counts in (spec §4.4/§9 "Occurrence key
// ordering"), so Counts can be written and read directly.
type Table struct {
	Order  int
	Counts []uint32
}

// Build counts the contextual bit patterns of seq (a sequence of 0/1
// bytes) into a fresh order-Order occurrence table.
//
// Every key starts at 1 (Laplace initialization). For each phase offset
// i in 0..Order inclusive, the suffix of seq starting at i is cut to a
// length that is a multiple of Order+1, reshaped into consecutive
// non-overlapping windows, and each window's count is added to the
// table. This under-counts relative to a sliding window over every
// starting offset; that is a deliberate modeling choice inherited from
// the reference implementation, not a bug (spec §9).
func Build(seq []byte, order int) *Table {
	width := order + 1
	n := 1 << uint(width)
	counts := make([]uint32, n)
	for i := range counts {
		counts[i] = 1
	}
	for phase := 0; phase <= order; phase++ {
		if phase > len(seq) {
			// Sequence shorter than the window width: this and every
			// later phase contribute nothing (spec §4.2 edge cases).
			continue
		}
		sub := seq[phase:]
		rem := len(sub) % width
		sub = sub[:len(sub)-rem]
		for i := 0; i < len(sub); i += width {
			key := windowKey(sub[i : i+width])
			counts[key]++
		}
	}
	return &Table{Order: order, Counts: counts}
}

// windowKey interprets a width-bit window as its big-endian integer value.
func windowKey(window []byte) int {
	key := 0
	for _, bit := range window {
		key = (key << 1) | int(bit&1)
	}
	return key
}

// Total returns total_count(w, T) = T[c‖0] + T[c‖1], the denominator used
// by both the encoder and decoder. Only the context bits of window (all
// bits but the last) matter; the outcome bit is ignored.
func (t *Table) Total(window uint64) uint32 {
	ctx := window >> 1
	return t.Counts[ctx<<1] + t.Counts[(ctx<<1)|1]
}

// CumPair returns cum_pair(w, T) = (cum_low, cum_high) for window w = c‖b:
// (0, T[c‖0]) when b == 0, or (T[c‖0], T[c‖0]+T[c‖1]) when b == 1.
func (t *Table) CumPair(window uint64) (lo, hi uint32) {
	ctx := window >> 1
	c0 := t.Counts[ctx<<1]
	if window&1 == 0 {
		return 0, c0
	}
	c1 := t.Counts[(ctx<<1)|1]
	return c0, c0 + c1
}

// Sum returns the sum of all counts in the table.
func (t *Table) Sum() uint64 {
	var sum uint64
	for _, c := range t.Counts {
		sum += uint64(c)
	}
	return sum
}

// WordWidth returns W = 2 + ceil(log2(sum(T))), the register width the
// arithmetic engine uses for this table.
func WordWidth(t *Table) uint {
	return 2 + ceilLog2(t.Sum())
}

func ceilLog2(n uint64) uint {
	if n <= 1 {
		return 0
	}
	return uint(bits.Len64(n - 1))
}
