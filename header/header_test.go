package header_test

import (
	"bytes"
	"testing"

	"github.com/relfo/mbitlimits/header"
	"github.com/relfo/mbitlimits/model"
)

func TestWriteReadRoundTrip(t *testing.T) {
	for order := 0; order <= 4; order++ {
		tbl := model.Build([]byte{1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 1}, order)
		want := &header.Header{
			Padding: 5,
			Order:   uint8(order),
			Table:   tbl,
		}
		data, err := header.Write(want)
		if err != nil {
			t.Fatalf("order %d: Write: %v", order, err)
		}
		if wantBits := 8 + 32*(1<<uint(order+1)); len(data)*8 != wantBits {
			t.Errorf("order %d: header length %d bits, want %d", order, len(data)*8, wantBits)
		}

		// Append a fake one-byte coded body so Read has something to
		// return as the remainder.
		body := append(append([]byte{}, data...), 0xAB)

		got, rest, err := header.Read(body)
		if err != nil {
			t.Fatalf("order %d: Read: %v", order, err)
		}
		if got.Padding != want.Padding || got.Order != want.Order {
			t.Errorf("order %d: got Padding=%d Order=%d, want Padding=%d Order=%d",
				order, got.Padding, got.Order, want.Padding, want.Order)
		}
		if !uint32sEqual(got.Table.Counts, want.Table.Counts) {
			t.Errorf("order %d: table mismatch:\ngot  %v\nwant %v", order, got.Table.Counts, want.Table.Counts)
		}
		if !bytes.Equal(rest, []byte{0xAB}) {
			t.Errorf("order %d: rest = %v, want [0xAB]", order, rest)
		}
	}
}

func TestReadHeaderParseErrorTooShort(t *testing.T) {
	// Declares order=31 (5 bits) but the file is far too short to hold
	// a 2^32-key table (spec §8 boundary scenario 6).
	data := []byte{0x1F, 0x00, 0x00}
	_, _, err := header.Read(data)
	if err == nil {
		t.Fatal("expected a ParseError, got nil")
	}
	if _, ok := err.(*header.ParseError); !ok {
		t.Fatalf("expected *header.ParseError, got %T (%v)", err, err)
	}
}

func uint32sEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
