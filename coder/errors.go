package coder

import "github.com/pkg/errors"

// ErrTruncated is the sentinel a caller logs when Decode reports
// truncated=true: the coded body ended before the decoder's termination
// condition (tag == lower) was reached (spec §7 CoderInputExhausted).
var ErrTruncated = errors.New("coder: coded body ended before decoder terminated; output may be incomplete")
