// Command mbitlimits compresses and decompresses files with the
// order-M Markov arithmetic coder implemented by github.com/relfo/mbitlimits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/relfo/mbitlimits"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mbitlimits [encode|decode|info] [OPTION]... FILE...")
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, "encode -order=M [OPTION]... IN OUT")
	fmt.Fprintln(os.Stderr, "  Compress IN into OUT using Markov order M.")
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, "decode [OPTION]... IN OUT")
	fmt.Fprintln(os.Stderr, "  Decompress IN (order recovered from its header) into OUT.")
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, "info FILE...")
	fmt.Fprintln(os.Stderr, "  Print the header fields of one or more compressed files.")
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func checkArgs() {
	if flag.NArg() < 1 || len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
}

func main() {
	var order int
	flag.IntVar(&order, "order", 0, "Markov order to use when encoding (0-31)")
	flag.Usage = usage
	flag.Parse()
	checkArgs()

	command := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)
	flag.CommandLine.Parse(os.Args[1:])

	switch command {
	case "encode":
		if flag.NArg() != 2 {
			usage()
			os.Exit(1)
		}
		if err := mbitlimits.EncodeFile(order, flag.Arg(0), flag.Arg(1)); err != nil {
			log.Fatalf("%+v", err)
		}

	case "decode":
		if flag.NArg() != 2 {
			usage()
			os.Exit(1)
		}
		if err := mbitlimits.DecodeFile(flag.Arg(0), flag.Arg(1)); err != nil {
			log.Fatalf("%+v", err)
		}

	case "info":
		for _, path := range flag.Args() {
			info, err := mbitlimits.InspectFile(path)
			if err != nil {
				log.Fatalf("%+v", err)
			}
			fmt.Printf("%s: order=%d padding=%d keys=%d sum=%d\n",
				path, info.Order, info.Padding, info.KeyCount, info.Sum)
		}

	default:
		log.Fatalf("unknown command: %s", command)
	}
}
