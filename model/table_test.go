package model_test

import (
	"testing"

	"github.com/relfo/mbitlimits/model"
)

func bits(s string) []byte {
	b := make([]byte, len(s))
	for i, c := range s {
		if c == '1' {
			b[i] = 1
		}
	}
	return b
}

func TestBuildTotality(t *testing.T) {
	for order := 0; order <= 4; order++ {
		tbl := model.Build(bits("10110100110101"), order)
		want := 1 << uint(order+1)
		if len(tbl.Counts) != want {
			t.Errorf("order %d: len(Counts) = %d, want %d", order, len(tbl.Counts), want)
		}
		var sum uint64
		for _, c := range tbl.Counts {
			if c < 1 {
				t.Errorf("order %d: found count %d < 1", order, c)
			}
			sum += uint64(c)
		}
		if sum > 1<<32-1 {
			t.Errorf("order %d: sum %d exceeds 2^32-1", order, sum)
		}
	}
}

func TestBuildEmptySequence(t *testing.T) {
	tbl := model.Build(nil, 0)
	if len(tbl.Counts) != 2 {
		t.Fatalf("len(Counts) = %d, want 2", len(tbl.Counts))
	}
	for _, c := range tbl.Counts {
		if c != 1 {
			t.Errorf("count = %d, want 1", c)
		}
	}
}

func TestBuildShorterThanWindow(t *testing.T) {
	// order=3 needs 4-bit windows; a 2-bit sequence contributes nothing
	// beyond the +1 initialization (spec §4.2 edge cases).
	tbl := model.Build(bits("10"), 3)
	for _, c := range tbl.Counts {
		if c != 1 {
			t.Errorf("count = %d, want 1 (no prepass contribution)", c)
		}
	}
}

func TestCumPairInvariant(t *testing.T) {
	tbl := model.Build(bits("1011010011010111001010"), 2)
	n := len(tbl.Counts)
	for window := 0; window < n; window++ {
		lo, hi := tbl.CumPair(uint64(window))
		total := tbl.Total(uint64(window))
		if !(lo < hi && hi <= total) {
			t.Errorf("window %b: cum_pair=(%d,%d) total=%d; want lo<hi<=total", window, lo, hi, total)
		}
	}
}

func TestTotalIgnoresOutcomeBit(t *testing.T) {
	tbl := model.Build(bits("110010110100"), 1)
	ctx := uint64(1)
	if tbl.Total((ctx<<1)|0) != tbl.Total((ctx<<1)|1) {
		t.Error("Total should only depend on context bits, not the outcome bit")
	}
}

func TestWordWidthBounds(t *testing.T) {
	for order := 0; order <= 4; order++ {
		tbl := model.Build(bits("101101001101011100101011110000"), order)
		ww := model.WordWidth(tbl)
		if ww < 3 || ww > 40 {
			t.Errorf("order %d: word width %d out of expected bounds", order, ww)
		}
	}
}

func TestBuildPrepassOffsets(t *testing.T) {
	// Manually reproduce the order=0 prepass: each phase offset 0..0
	// (i.e. the whole sequence) is reshaped into 1-bit "windows" and
	// counted directly.
	seq := bits("1101")
	tbl := model.Build(seq, 0)
	// counts start at 1; 3 ones and 1 zero are added.
	if tbl.Counts[0] != 2 || tbl.Counts[1] != 4 {
		t.Errorf("Counts = %v, want [2 4]", tbl.Counts)
	}
}
