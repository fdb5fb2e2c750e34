// Package bitpack converts between byte slices and the per-bit
// representation ([]byte of 0/1 values) used throughout mbitlimits.
//
// Conversions are built on top of github.com/icza/bitio, the same
// bit-level I/O library the ambient stack uses for header and coder
// serialization.
package bitpack

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// InputSizeError is returned by BitsToBytes when the number of bits is not
// a multiple of 8.
type InputSizeError struct {
	Len int
}

func (e *InputSizeError) Error() string {
	return fmt.Sprintf("bitpack: bit sequence of length %d is not a multiple of 8", e.Len)
}

// BytesToBits expands b into one output byte (holding 0 or 1) per bit,
// most-significant bit first within each input byte.
func BytesToBits(b []byte) []byte {
	br := bitio.NewReader(bytes.NewReader(b))
	bits := make([]byte, 0, 8*len(b))
	for i := 0; i < 8*len(b); i++ {
		bit, err := br.ReadBool()
		if err != nil {
			// Unreachable: br is backed by exactly 8*len(b) bits.
			panic(err)
		}
		if bit {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
	return bits
}

// BitsToBytes packs bits (each a 0 or 1) into bytes, most-significant bit
// first within each output byte. It returns an *InputSizeError if len(bits)
// is not a multiple of 8.
func BitsToBytes(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, &InputSizeError{Len: len(bits)}
	}
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	for _, bit := range bits {
		if err := bw.WriteBool(bit != 0); err != nil {
			return nil, errors.Wrap(err, "bitpack.BitsToBytes")
		}
	}
	if err := bw.Close(); err != nil {
		return nil, errors.Wrap(err, "bitpack.BitsToBytes")
	}
	return buf.Bytes(), nil
}

// BitsToUint64 interprets bits (each a 0 or 1, most-significant first) as a
// big-endian unsigned integer. An empty slice yields 0. The caller is
// responsible for ensuring len(bits) <= 64.
func BitsToUint64(bits []byte) uint64 {
	var v uint64
	for _, bit := range bits {
		v = (v << 1) | uint64(bit&1)
	}
	return v
}

// Uint64ToBits renders the low n bits of v as a big-endian []byte of 0/1
// values, most-significant bit first.
func Uint64ToBits(v uint64, n uint) []byte {
	bits := make([]byte, n)
	for i := uint(0); i < n; i++ {
		bits[i] = byte((v >> (n - 1 - i)) & 1)
	}
	return bits
}
