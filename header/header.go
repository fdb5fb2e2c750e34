// Package header serializes and parses the self-describing prefix of a
// compressed file: the padding count, Markov order, and frozen occurrence
// table (spec §3 "Header record", §4.4, §6).
package header

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	"github.com/relfo/mbitlimits/model"
)

// ParseError is returned by Read when the input is empty or too short
// for the table of the order it declares.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("header: parse error: %s", e.Reason)
}

// Header is the parsed form of the compressed-file prefix.
type Header struct {
	Padding uint8
	Order   uint8
	Table   *model.Table
}

// Write serializes h as the bit-for-bit layout of spec §4.4: 3 bits of
// padding, 5 bits of order, then one 32-bit big-endian count per key in
// ascending key order. The result is always a whole number of bytes.
func Write(h *Header) ([]byte, error) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	if err := bw.WriteBits(uint64(h.Padding), 3); err != nil {
		return nil, errors.Wrap(err, "header.Write: padding")
	}
	if err := bw.WriteBits(uint64(h.Order), 5); err != nil {
		return nil, errors.Wrap(err, "header.Write: order")
	}
	for i, count := range h.Table.Counts {
		if err := bw.WriteBits(uint64(count), 32); err != nil {
			return nil, errors.Wrapf(err, "header.Write: count %d", i)
		}
	}
	if err := bw.Close(); err != nil {
		return nil, errors.Wrap(err, "header.Write")
	}
	return buf.Bytes(), nil
}

// Read parses the header prefix of data and returns it along with the
// remaining bytes: the arithmetic-coded body plus its trailing zero
// padding. It returns a *ParseError if data is shorter than the header
// the declared order requires.
func Read(data []byte) (*Header, []byte, error) {
	if len(data) < 1 {
		return nil, nil, &ParseError{Reason: "empty input; no padding/order fields present"}
	}
	br := bitio.NewReader(bytes.NewReader(data))
	padding, err := br.ReadBits(3)
	if err != nil {
		return nil, nil, errors.Wrap(err, "header.Read: padding")
	}
	order, err := br.ReadBits(5)
	if err != nil {
		return nil, nil, errors.Wrap(err, "header.Read: order")
	}

	width := int(order) + 1
	n := 1 << uint(width)
	headerBits := 8 + 32*n
	if headerBits%8 != 0 {
		// Unreachable: 8 + 32*n is always a multiple of 8.
		return nil, nil, &ParseError{Reason: "internal: header length not byte-aligned"}
	}
	headerBytes := headerBits / 8
	if len(data) < headerBytes {
		return nil, nil, &ParseError{Reason: fmt.Sprintf(
			"declared order %d requires a %d-byte header, but only %d bytes are present",
			order, headerBytes, len(data))}
	}

	counts := make([]uint32, n)
	for i := range counts {
		v, err := br.ReadBits(32)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "header.Read: count %d", i)
		}
		counts[i] = uint32(v)
	}

	h := &Header{
		Padding: uint8(padding),
		Order:   uint8(order),
		Table:   &model.Table{Order: int(order), Counts: counts},
	}
	return h, data[headerBytes:], nil
}
