package mbitlimits

import (
	"os"

	"github.com/pkg/errors"

	"github.com/relfo/mbitlimits/coder"
	"github.com/relfo/mbitlimits/header"
	"github.com/relfo/mbitlimits/internal/bitpack"
	"github.com/relfo/mbitlimits/model"
)

// MaxOrder is the largest Markov order representable in the header's
// 5-bit order field (spec §3 "Header record").
const MaxOrder = 31

// EncodeFile reads inputPath, builds an order-M occurrence table over its
// bits, arithmetic-codes them, and writes the self-describing compressed
// file to outputPath (spec §4.5 "Driver", encode direction).
func EncodeFile(order int, inputPath, outputPath string) error {
	if order < 0 || order > MaxOrder {
		return errors.Errorf("mbitlimits.EncodeFile: order %d out of range [0,%d]", order, MaxOrder)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrap(err, "mbitlimits.EncodeFile")
	}

	seq := bitpack.BytesToBits(raw)
	table := model.Build(seq, order)

	codedBits, padding := coder.Encode(seq, order, table)
	codedBytes, err := bitpack.BitsToBytes(codedBits)
	if err != nil {
		return errors.Wrap(err, "mbitlimits.EncodeFile: packing coded body")
	}

	headerBytes, err := header.Write(&header.Header{
		Padding: padding,
		Order:   uint8(order),
		Table:   table,
	})
	if err != nil {
		return errors.Wrap(err, "mbitlimits.EncodeFile: writing header")
	}

	out := append(headerBytes, codedBytes...)
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return errors.Wrap(err, "mbitlimits.EncodeFile")
	}
	return nil
}
