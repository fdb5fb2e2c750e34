/*
Links:
	https://en.wikipedia.org/wiki/Arithmetic_coding
	https://en.wikipedia.org/wiki/Markov_chain
*/

// Package mbitlimits implements a lossless bit-stream compressor and
// decompressor built around arithmetic coding driven by an order-M
// Markov probability model over a binary alphabet.
//
// An arbitrary input file is interpreted as a sequence of bits; the
// compressed output is a self-describing file (padding count, Markov
// order, and frozen occurrence table, followed by the arithmetic-coded
// body) from which the original bit sequence can be recovered exactly.
package mbitlimits
