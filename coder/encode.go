package coder

import "github.com/relfo/mbitlimits/model"

// Encode runs the arithmetic encoder of spec §4.3 over seq (a sequence of
// 0/1 bytes) against the frozen table t for the given Markov order, and
// returns the coded bit sequence together with the zero-padding count
// needed to reach a byte boundary. The returned bits already include
// that padding.
func Encode(seq []byte, order int, t *model.Table) (coded []byte, padding uint8) {
	l := newLimits(order, t)
	out := make([]byte, 0, len(seq)/4+int(l.wordWidth)+8)

	for _, b := range seq {
		l.ingest(b)
		out = l.drainEncode(out)
	}

	// Termination flush (spec §4.3 step 2, §9 "E3 emission on flush"):
	// emit the MSB of lower, then e3Counter copies of its complement,
	// then the remaining wordWidth-1 bits of lower. The corrected
	// reading of §9's Open Question is used: the complement is
	// 1 - msb(lower), not the parity of lower's decimal value.
	lowerBits := make([]byte, l.wordWidth)
	for i := uint(0); i < l.wordWidth; i++ {
		lowerBits[i] = byte((l.lower >> (l.wordWidth - 1 - i)) & 1)
	}
	out = append(out, lowerBits[0])
	complement := byte(1 - lowerBits[0])
	for i := 0; i < l.e3Counter; i++ {
		out = append(out, complement)
	}
	out = append(out, lowerBits[1:]...)

	padding = uint8((8 - (len(out) % 8)) % 8)
	for i := uint8(0); i < padding; i++ {
		out = append(out, 0)
	}
	return out, padding
}

// drainEncode applies E1/E2/E3 mappings until none applies, appending any
// emitted bits to out.
func (l *limits) drainEncode(out []byte) []byte {
	for {
		switch l.decideMapping() {
		case 1, 2:
			bit := byte(l.msb(l.lower))
			out = append(out, bit)
			l.shift()
			complement := byte(1 - bit)
			for i := 0; i < l.e3Counter; i++ {
				out = append(out, complement)
			}
			l.e3Counter = 0
		case 3:
			l.shift()
			l.complementMSB()
			l.e3Counter++
		default:
			return out
		}
	}
}
