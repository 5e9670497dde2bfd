// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal32

import (
	"encoding/binary"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

const (
	// MinExponent is the smallest exponent of an integral significand.
	MinExponent = -Bias
	// MaxExponent is the largest exponent of an integral significand.
	MaxExponent = maxExpField - Bias

	encodedLen = 4
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal32")

// New returns a finite value equal to (-1)^neg * coeff * 10^exp.
// Returns an error, if coeff has more than Precision digits, or exp is out of [MinExponent, MaxExponent].
func New(neg bool, coeff uint32, exp int) (Value, error) {
	if coeff > maxCoefficient {
		return Zero, Error.New("coefficient %d out of range", coeff)
	}
	if exp < MinExponent || exp > MaxExponent {
		return Zero, Error.New("exponent %d out of range [%d, %d]", exp, MinExponent, MaxExponent)
	}
	var v Value
	if neg {
		v = signMask
	}
	e := Value(exp + Bias)
	if coeff&sigPrefixTwo == 0 {
		return v | e<<expShiftOne | Value(coeff), nil
	}
	return v | formTwoMask | e<<expShiftTwo | Value(coeff)&sigMaskTwo, nil
}

// MustNew is like New, but panics on errors.
func MustNew(neg bool, coeff uint32, exp int) Value {
	v, err := New(neg, coeff, exp)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalBinary returns the 4-byte big-endian interchange encoding of v.
func (v Value) MarshalBinary() ([]byte, error) {
	data := make([]byte, encodedLen)
	binary.BigEndian.PutUint32(data, uint32(v))
	return data, nil
}

// UnmarshalBinary decodes a 4-byte big-endian interchange encoding into v.
func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) != encodedLen {
		return Error.New("invalid length %d, expected %d", len(data), encodedLen)
	}
	*v = Value(binary.BigEndian.Uint32(data))
	return nil
}

// Decimal returns the exact value of a finite v.
// Non-canonical values are returned as zeros. The sign of zeros is lost.
// ok is false for infinities and NaNs.
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	coeff, ok := v.Coefficient()
	if !ok {
		return decimal.Zero, false
	}
	exp, _ := v.Exponent()
	m := int64(coeff)
	if v.IsSignMinus() {
		m = -m
	}
	return decimal.New(m, int32(exp)), true
}
