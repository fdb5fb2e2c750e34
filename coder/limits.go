// Package coder implements the finite-precision arithmetic coder/decoder
// ("MBitLimits" engine) of spec §4.3: a Mealy machine over two interval
// limits and a tag, with three renormalization mappings (E1/E2/E3) that
// keep the interval representable in a bounded word width while emitting
// or consuming coded bits.
package coder

import "github.com/relfo/mbitlimits/model"

// limits is the coder's mutable state: lower and upper bound the current
// coding interval, tag holds the decoder's coded-bit window, window is
// the sliding (order+1)-bit context-plus-outcome, and e3Counter counts
// pending E3 renormalizations awaiting their matching E1/E2 (spec §3
// "Coder state").
type limits struct {
	order      int
	wordWidth  uint
	mask       uint64
	windowMask uint64
	ctxMask    uint64

	lower, upper, tag uint64
	window            uint64
	e3Counter         int

	table *model.Table
}

func newLimits(order int, t *model.Table) *limits {
	ww := model.WordWidth(t)
	mask := (uint64(1) << ww) - 1
	return &limits{
		order:      order,
		wordWidth:  ww,
		mask:       mask,
		windowMask: (uint64(1) << uint(order+1)) - 1,
		ctxMask:    (uint64(1) << uint(order)) - 1,
		lower:      0,
		upper:      mask,
		window:     0,
		table:      t,
	}
}

// msb returns the most significant bit of an wordWidth-bit register.
func (l *limits) msb(x uint64) uint64 {
	return x >> (l.wordWidth - 1)
}

// msb2 returns the second most significant bit of an wordWidth-bit
// register.
func (l *limits) msb2(x uint64) uint64 {
	return (x >> (l.wordWidth - 2)) & 1
}

// ingest slides b into the context window and performs the interval
// update of spec §4.3 "Bit intake".
func (l *limits) ingest(b byte) {
	l.window = ((l.window << 1) | uint64(b&1)) & l.windowMask
	l.updateInterval()
}

func (l *limits) updateInterval() {
	span := l.upper - l.lower + 1
	lo, hi := l.table.CumPair(l.window)
	denom := uint64(l.table.Total(l.window))
	l.upper = l.lower + mulDiv(span, uint64(hi), denom) - 1
	l.lower = l.lower + mulDiv(span, uint64(lo), denom)
}

// decideMapping returns the code of the renormalization mapping that
// applies to the current interval: 1 for E1, 2 for E2, 3 for E3, or 0 if
// none applies (spec §4.3 "Renormalization mappings").
func (l *limits) decideMapping() int {
	lowerMSB, upperMSB := l.msb(l.lower), l.msb(l.upper)
	switch {
	case lowerMSB == upperMSB && lowerMSB == 0:
		return 1
	case lowerMSB == upperMSB && lowerMSB == 1:
		return 2
	case l.msb2(l.lower) == 1 && l.msb2(l.upper) == 0:
		return 3
	default:
		return 0
	}
}

// shift shifts both limits left by one bit, inserting 0 into lower and 1
// into upper, as required by every E1/E2/E3 mapping.
func (l *limits) shift() {
	l.lower = (l.lower << 1) & l.mask
	l.upper = ((l.upper << 1) & l.mask) | 1
}

// complementMSB complements the new MSB of lower, upper, and (during
// decode) tag, as required by E3.
func (l *limits) complementMSB() {
	bit := uint64(1) << (l.wordWidth - 1)
	l.lower = (l.lower + bit) & l.mask
	l.upper = (l.upper + bit) & l.mask
	l.tag = (l.tag + bit) & l.mask
}

// shiftTag shifts b into tag, as performed once per mapping iteration
// during decode.
func (l *limits) shiftTag(b byte) {
	l.tag = ((l.tag << 1) & l.mask) | uint64(b&1)
}
