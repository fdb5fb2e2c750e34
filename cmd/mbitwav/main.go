// Command mbitwav compresses a WAV file with the order-M Markov
// arithmetic coder, after reporting the audio parameters found in its
// WAV header. The WAV header is inspected only as context for the user;
// the file's raw bytes (unchanged) are what gets compressed, since the
// coder's input contract is opaque bytes (spec §6), not audio samples.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"

	"github.com/relfo/mbitlimits"
)

func main() {
	var (
		order int
		force bool
	)
	flag.IntVar(&order, "order", 2, "Markov order to use when encoding (0-31)")
	flag.BoolVar(&force, "f", false, "force overwrite")
	flag.Parse()

	for _, wavPath := range flag.Args() {
		if err := mbitwav(wavPath, order, force); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

func mbitwav(wavPath string, order int, force bool) error {
	r, err := os.Open(wavPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer r.Close()

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return errors.Errorf("invalid WAV file %q", wavPath)
	}
	dec.ReadInfo()
	fmt.Printf("%s: %d Hz, %d channel(s), %d-bit\n", wavPath, dec.SampleRate, dec.NumChans, dec.BitDepth)

	outPath := pathutil.TrimExt(wavPath) + ".mbit"
	if !force && osutil.Exists(outPath) {
		return errors.Errorf("output file %q already present; use -f flag to force overwrite", outPath)
	}

	if err := mbitlimits.EncodeFile(order, wavPath, outPath); err != nil {
		return errors.WithStack(err)
	}

	in, err := os.Stat(wavPath)
	if err != nil {
		return errors.WithStack(err)
	}
	out, err := os.Stat(outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Printf("%s: %d bytes -> %s: %d bytes\n", wavPath, in.Size(), outPath, out.Size())
	return nil
}
