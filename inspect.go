package mbitlimits

import (
	"os"

	"github.com/pkg/errors"

	"github.com/relfo/mbitlimits/header"
)

// Info summarizes a compressed file's header without decoding its body,
// mirroring the non-mutating listing tools of the wider corpus (e.g. a
// metadata-only inspector rather than a full decoder).
type Info struct {
	Padding  uint8
	Order    uint8
	KeyCount int
	Sum      uint64
}

// InspectFile parses the header of a compressed file and returns a
// summary of it.
func InspectFile(path string) (*Info, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "mbitlimits.InspectFile")
	}
	h, _, err := header.Read(raw)
	if err != nil {
		return nil, errors.Wrap(err, "mbitlimits.InspectFile")
	}
	return &Info{
		Padding:  h.Padding,
		Order:    h.Order,
		KeyCount: len(h.Table.Counts),
		Sum:      h.Table.Sum(),
	}, nil
}
