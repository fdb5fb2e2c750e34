package coder

import "github.com/relfo/mbitlimits/model"

// Decode runs the arithmetic decoder of spec §4.3 over a coded bit
// sequence (already stripped of its trailing padding) against the frozen
// table t for the given Markov order. It returns the recovered sequence
// of 0/1 bytes.
//
// truncated reports whether the coded body is shorter than one word
// width, or ran out during a mapping drain before the decoder's
// termination condition (tag == lower) was reached (spec §7
// CoderInputExhausted): a corrupt or truncated input is
// not a hard failure here, the partial output is returned and the caller
// decides how to report it.
func Decode(coded []byte, order int, t *model.Table) (seq []byte, truncated bool) {
	l := newLimits(order, t)
	if len(coded) < int(l.wordWidth) {
		return nil, true
	}

	l.tag = 0
	for i := uint(0); i < l.wordWidth; i++ {
		l.tag = (l.tag << 1) | uint64(coded[i]&1)
	}
	cursor := int(l.wordWidth)

	var out []byte
	for l.tag != l.lower {
		bit := l.decodeBit()
		out = append(out, bit)

		var ok bool
		cursor, ok = l.drainDecode(coded, cursor)
		if !ok {
			return out, true
		}
	}
	return out, false
}

// decodeBit decodes one bit from the current tag against the current
// context, then ingests it (which slides the window and updates the
// interval), per spec §4.3 decode step 2a.
func (l *limits) decodeBit() byte {
	ctx := l.window & l.ctxMask
	span := l.upper - l.lower + 1
	threshold := l.table.Counts[ctx<<1]
	denom := uint64(l.table.Total((ctx << 1) | 1))

	tagFactor := l.tag - l.lower + 1
	value := mulSub1Div(tagFactor, denom, span)

	var b byte
	if value >= uint64(threshold) {
		b = 1
	}
	l.ingest(b)
	return b
}

// drainDecode applies E1/E2/E3 mappings until none applies, pulling the
// next coded bit into tag on every iteration. It reports ok=false if the
// coded stream is exhausted mid-drain.
func (l *limits) drainDecode(coded []byte, cursor int) (next int, ok bool) {
	for {
		mapping := l.decideMapping()
		if mapping == 0 {
			return cursor, true
		}
		l.shift()
		if cursor >= len(coded) {
			return cursor, false
		}
		nextBit := coded[cursor]
		cursor++
		l.shiftTag(nextBit)
		if mapping == 3 {
			l.complementMSB()
		}
	}
}
