package coder

import "math/bits"

// mulDiv computes (a*b)/denom without overflowing 64 bits, even when a*b
// would need up to 128 bits (spec §9 "Fixed-precision integer
// discipline": products of two W-bit values need 2W bits, and W can
// itself approach 32-34 bits in practice). No third-party big-integer
// package appears anywhere in the retrieved corpus, so this narrow
// 128-bit multiply/divide is built directly on the standard library's
// math/bits, exactly the "wide-multiply helper" the design notes call
// for.
func mulDiv(a, b, denom uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, denom)
	return q
}

// mulSub1Div computes (a*b - 1)/denom, the decoder's "numerator//span"
// step, with the same overflow-safety as mulDiv. a*b is always >= 1 here
// (a is a positive tag factor, b a positive denom), so the implicit
// borrow in the low limb never underflows below zero.
func mulSub1Div(a, b, denom uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if lo == 0 {
		hi--
		lo = ^uint64(0)
	} else {
		lo--
	}
	q, _ := bits.Div64(hi, lo, denom)
	return q
}
