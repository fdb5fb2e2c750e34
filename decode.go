package mbitlimits

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/relfo/mbitlimits/coder"
	"github.com/relfo/mbitlimits/header"
	"github.com/relfo/mbitlimits/internal/bitpack"
)

// DecodeFile parses the header of inputPath, recovers the Markov order
// and occurrence table from it, arithmetic-decodes the body, and writes
// the recovered bytes to outputPath (spec §4.5 "Driver", decode
// direction).
//
// A coded body that ends before the decoder's termination condition is
// reached (spec §7 CoderInputExhausted) is logged as a warning, not
// returned as an error; the partial output is still written.
func DecodeFile(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrap(err, "mbitlimits.DecodeFile")
	}

	h, body, err := header.Read(raw)
	if err != nil {
		return errors.Wrap(err, "mbitlimits.DecodeFile")
	}

	bodyBits := bitpack.BytesToBits(body)
	if int(h.Padding) > len(bodyBits) {
		return errors.Errorf("mbitlimits.DecodeFile: padding count %d exceeds body length %d", h.Padding, len(bodyBits))
	}
	if h.Padding > 0 {
		bodyBits = bodyBits[:len(bodyBits)-int(h.Padding)]
	}

	seq, truncated := coder.Decode(bodyBits, int(h.Order), h.Table)
	if truncated {
		log.Printf("mbitlimits: warning: %v", coder.ErrTruncated)
	}

	// The decoded sequence should already be a whole number of bytes
	// (the original input was read from a file); a truncated decode may
	// leave a partial trailing byte, which is dropped.
	if rem := len(seq) % 8; rem != 0 {
		seq = seq[:len(seq)-rem]
	}

	out, err := bitpack.BitsToBytes(seq)
	if err != nil {
		return errors.Wrap(err, "mbitlimits.DecodeFile: packing output")
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return errors.Wrap(err, "mbitlimits.DecodeFile")
	}
	return nil
}
