// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package decimal32 implements the IEEE 754-2008 decimal32 interchange format
// in its binary integer decimal (BID) encoding.
// The package decodes, classifies and orders raw 32-bit patterns. It performs no arithmetic.
package decimal32

import (
	"fmt"

	"github.com/avdva/decimal32/internal/mathutil"
)

// Value is a raw decimal32 bit pattern.
// Every uint32 is a valid Value, including non-canonical ones.
//   31         20                  0
//   |__________|___________________|
//   sggggggggggtttttttttttttttttttt
//
// The combination field g encodes the exponent and the leading bits of the significand
// in one of two forms:
//   form one (g starts with 00, 01 or 10):  s eeeeeeee ttttttttttttttttttttttt
//   form two (g starts with 11):            s 11 eeeeeeee ttttttttttttttttttttt, implicit 100 prefix
// g starting with 11110 is an infinity, 11111 is a NaN, 111111 is a signaling NaN.
type Value uint32

const (
	// Precision is the number of decimal digits in a significand.
	Precision = 7
	// Emax is the maximum exponent of a normal number in scientific notation.
	Emax = 96
	// Emin is the minimum exponent of a normal number in scientific notation.
	Emin = 1 - Emax
	// Bias is subtracted from the exponent field to get the exponent of the integral significand.
	Bias = Emax + Precision - 2

	maxCoefficient = 9999999
	maxExpField    = Emax - Precision + 1 + Bias // 191
	maxPayload     = 999999

	signMask     = 0x80000000
	nanMask      = 0x7c000000
	snanMask     = 0x7e000000
	infMask      = 0x78000000
	formTwoMask  = 0x60000000
	expMaskOne   = 0x7f800000
	expShiftOne  = 23
	sigMaskOne   = 0x007fffff
	expMaskTwo   = 0x1fe00000
	expShiftTwo  = 21
	sigMaskTwo   = 0x001fffff
	sigPrefixTwo = 0x00800000
	payloadMask  = 0x000fffff

	// NaN canonical bits: everything after the signaling bit down to the payload must be zero.
	// Bit 20 is outside the payload, but the decoded significand, which orders NaNs, includes it.
	nanCanonicalMask = 0x7df00000

	quantumSNaN = 0x7e07ffff
	quantumQNaN = 0x7c07ffff
)

const (
	// Zero is +0E0.
	Zero = Value(Bias << expShiftOne)
	// NegZero is a negative zero with the smallest exponent.
	NegZero = Value(signMask)
	// Inf is the canonical positive infinity.
	Inf = Value(infMask)
	// NegInf is the canonical negative infinity.
	NegInf = Value(signMask | infMask)
	// NaN is the canonical quiet NaN with zero payload.
	NaN = Value(nanMask)
	// SNaN is the canonical signaling NaN with zero payload.
	SNaN = Value(snanMask)
	// Max is the largest finite value, 9999999E90.
	Max = Value(formTwoMask | maxExpField<<expShiftTwo | (maxCoefficient & sigMaskTwo))
	// SmallestPositive is the smallest positive subnormal value, 1E-101.
	SmallestPositive = Value(1)
	// SmallestNormal is the smallest positive normal value, 1000000E-101.
	SmallestNormal = Value(1000000)
)

// FromBits returns a value for the given interchange bit pattern.
func FromBits(b uint32) Value {
	return Value(b)
}

// Bits returns the interchange bit pattern of v.
func (v Value) Bits() uint32 {
	return uint32(v)
}

// exponentFormOne reports whether v is finite and encoded in the first form,
// where the exponent immediately follows the sign bit.
func (v Value) exponentFormOne() bool {
	return v.IsFinite() && v&formTwoMask != formTwoMask
}

// significand returns the decoded significand.
// For NaNs it is the payload with the implicit prefix of the second form.
func (v Value) significand() uint64 {
	if v.exponentFormOne() {
		return uint64(v & sigMaskOne)
	}
	return uint64(v&sigMaskTwo | sigPrefixTwo)
}

// exponent returns the raw exponent field in [0, 191], or 0 for non-finite values.
func (v Value) exponent() uint32 {
	switch {
	case !v.IsFinite():
		return 0
	case v.exponentFormOne():
		return uint32(v&expMaskOne) >> expShiftOne
	default:
		return uint32(v&expMaskTwo) >> expShiftTwo
	}
}

func (v Value) isQuiet() bool {
	return v.IsNaN() && !v.IsSignaling()
}

// Coefficient returns the integral significand of a finite value.
// Non-canonical significands are returned as 0.
// ok is false for infinities and NaNs.
func (v Value) Coefficient() (coeff uint32, ok bool) {
	if !v.IsFinite() {
		return 0, false
	}
	if !v.IsCanonical() {
		return 0, true
	}
	return uint32(v.significand()), true
}

// Exponent returns the exponent of the integral significand, so that
// a finite v equals coeff*10^exp.
// ok is false for infinities and NaNs.
func (v Value) Exponent() (exp int, ok bool) {
	if !v.IsFinite() {
		return 0, false
	}
	return int(v.exponent()) - Bias, true
}

// Quantum returns a positive value with the same exponent as v and a significand of 1.
// NaNs lose their sign and keep the payload and the signaling bit. All infinities
// have the quantum of positive infinity.
func (v Value) Quantum() Value {
	switch {
	case v.IsSignaling():
		return v & quantumSNaN
	case v.IsNaN():
		return v & quantumQNaN
	case v.IsInfinite():
		return Inf
	default:
		// second form quanta are re-encoded in the first form, which holds any exponent with a significand of 1.
		return Value(v.exponent()<<expShiftOne | 1)
	}
}

// Negate flips the sign of v.
func (v Value) Negate() Value {
	return v ^ signMask
}

// Abs clears the sign of v.
func (v Value) Abs() Value {
	return v &^ signMask
}

// CopySign returns v with the sign of y.
func (v Value) CopySign(y Value) Value {
	return v.Abs() | y&signMask
}

// EncodeBinary returns the binary interchange encoding of v, which is v itself.
func (v Value) EncodeBinary() Value {
	return v
}

// DecodeBinary returns the value for the binary interchange encoding v, which is v itself.
func (v Value) DecodeBinary() Value {
	return v
}

// SameQuantum returns true, if v and y have the same exponent.
// Any two NaNs, and any two infinities, have the same quantum.
func (v Value) SameQuantum(y Value) bool {
	return v.IsNaN() && y.IsNaN() ||
		v.IsInfinite() && y.IsInfinite() ||
		v.IsFinite() && y.IsFinite() && v.exponent() == y.exponent()
}

// Radix returns the radix of the format.
func (v Value) Radix() int {
	return 10
}

// IsSignMinus returns true, if the sign bit is set. This is true for negative zeros and NaNs too.
func (v Value) IsSignMinus() bool {
	return v&signMask == signMask
}

// IsNormal returns true, if v is finite, non-zero and not subnormal.
func (v Value) IsNormal() bool {
	return v.IsFinite() && !v.IsZero() && !v.IsSubnormal()
}

// IsFinite returns true, if v is neither an infinity nor a NaN.
func (v Value) IsFinite() bool {
	return !(v.IsInfinite() || v.IsNaN())
}

// IsZero returns true for finite values with a zero or non-canonical significand.
func (v Value) IsZero() bool {
	return v.IsFinite() && (v.significand() == 0 || !v.IsCanonical())
}

// IsSubnormal returns true for non-zero finite values with a magnitude below 10^Emin.
func (v Value) IsSubnormal() bool {
	if !v.IsFinite() || v.IsZero() {
		return false
	}
	// the smallest normal magnitude is 10^(Precision-1) * 10^-Bias.
	e := int(v.exponent())
	return e < Precision-1 && v.significand()*mathutil.Pow10(e) < mathutil.Pow10(Precision-1)
}

// IsInfinite returns true for positive and negative infinities.
func (v Value) IsInfinite() bool {
	return !v.IsNaN() && v&infMask == infMask
}

// IsNaN returns true for quiet and signaling NaNs.
func (v Value) IsNaN() bool {
	return v&nanMask == nanMask
}

// IsSignaling returns true for signaling NaNs.
func (v Value) IsSignaling() bool {
	return v&snanMask == snanMask
}

// IsCanonical returns true, if v is the preferred encoding of its value.
func (v Value) IsCanonical() bool {
	switch {
	case v.IsNaN():
		return v&nanCanonicalMask == nanMask && v&payloadMask <= maxPayload
	case v.IsInfinite():
		return v.Abs() == Inf
	default:
		return v.significand() <= maxCoefficient
	}
}

// GoString returns a debug representation of v.
func (v Value) GoString() string {
	coeff, ok := v.Coefficient()
	if !ok {
		return fmt.Sprintf("decimal32(0x%08x){%v}", uint32(v), v.Class())
	}
	exp, _ := v.Exponent()
	return fmt.Sprintf("decimal32(0x%08x){%v, %d, %d}", uint32(v), v.Class(), coeff, exp)
}
