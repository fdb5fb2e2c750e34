package coder_test

import (
	"bytes"
	"testing"

	"github.com/relfo/mbitlimits/coder"
	"github.com/relfo/mbitlimits/internal/bitpack"
	"github.com/relfo/mbitlimits/model"
)

func roundTrip(t *testing.T, raw []byte, order int) {
	t.Helper()
	seq := bitpack.BytesToBits(raw)
	tbl := model.Build(seq, order)
	coded, padding := coder.Encode(seq, order, tbl)
	if len(coded)%8 != 0 {
		t.Fatalf("order %d: coded length %d bits is not byte-aligned", order, len(coded))
	}
	if padding > 7 {
		t.Fatalf("order %d: padding %d out of 0..7", order, padding)
	}
	body := coded
	if padding > 0 {
		body = coded[:len(coded)-int(padding)]
	}
	got, truncated := coder.Decode(body, order, tbl)
	if truncated {
		t.Fatalf("order %d: decode reported truncated for a clean round trip", order)
	}
	if rem := len(got) % 8; rem != 0 {
		got = got[:len(got)-rem]
	}
	gotBytes, err := bitpack.BitsToBytes(got)
	if err != nil {
		t.Fatalf("order %d: BitsToBytes: %v", order, err)
	}
	if !bytes.Equal(gotBytes, raw) {
		t.Errorf("order %d: round trip mismatch:\nraw  %v\ngot  %v", order, raw, gotBytes)
	}
}

func TestRoundTripEmpty(t *testing.T) {
	roundTrip(t, []byte{}, 0)
}

func TestRoundTripAllZero(t *testing.T) {
	roundTrip(t, []byte{0x00}, 0)
}

func TestRoundTripAlternating(t *testing.T) {
	roundTrip(t, []byte{0xAA, 0xAA}, 0)
}

func TestRoundTripVariousOrders(t *testing.T) {
	raw := []byte("the quick brown fox jumps over the lazy dog, 0123456789!")
	for order := 0; order <= 4; order++ {
		roundTrip(t, raw, order)
	}
}

func TestRoundTripAllBytesOrderZero(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}
	roundTrip(t, raw, 0)
}

func TestRoundTripSingleByteAllOrders(t *testing.T) {
	for b := 0; b < 256; b += 17 {
		for order := 0; order <= 3; order++ {
			roundTrip(t, []byte{byte(b)}, order)
		}
	}
}
