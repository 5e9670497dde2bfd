// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal32

import (
	"github.com/avdva/decimal32/internal/mathutil"
)

// TotalOrder returns true, if v is ordered before or equal to y in the total order of all values:
//   -NaN < -sNaN < -Inf < negative numbers < -0 < +0 < positive numbers < +Inf < +sNaN < +NaN
// Equal numbers with different exponents are ordered by the exponent: the smaller exponent
// comes first for positive numbers, and last for negative ones.
// NaNs of the same sign and kind are ordered by their payloads, so that a lower payload
// is closer to zero. NaNs with equal payloads, as well as equal non-canonical values,
// are ordered equal.
func (v Value) TotalOrder(y Value) bool {
	cv, cy := v.Class(), y.Class()
	if cv.IsNaN() || cy.IsNaN() {
		return totalOrderNaN(v, y)
	}
	if cv != cy {
		return cv < cy
	}
	switch cv {
	case NegativeInfinity, PositiveInfinity:
		return true
	case NegativeZero:
		return v.exponent() >= y.exponent()
	case PositiveZero:
		return v.exponent() <= y.exponent()
	case NegativeNormal, NegativeSubnormal:
		c := cmpMagnitude(v, y)
		return c > 0 || c == 0 && v.exponent() >= y.exponent()
	default: // PositiveNormal, PositiveSubnormal
		c := cmpMagnitude(v, y)
		return c < 0 || c == 0 && v.exponent() <= y.exponent()
	}
}

// TotalOrderMag is TotalOrder for the absolute values of v and y.
func (v Value) TotalOrderMag(y Value) bool {
	return v.Abs().TotalOrder(y.Abs())
}

// totalOrderNaN is TotalOrder for the case, when at least one of the arguments is a NaN.
func totalOrderNaN(v, y Value) bool {
	switch {
	case !y.IsNaN():
		return v.IsSignMinus()
	case !v.IsNaN():
		return !y.IsSignMinus()
	case v.IsSignMinus() != y.IsSignMinus():
		return v.IsSignMinus()
	}
	neg := v.IsSignMinus()
	if v.IsSignaling() != y.IsSignaling() {
		// signaling NaNs are closer to zero.
		return v.IsSignaling() != neg
	}
	// payloads compare as decoded significands: low 21 bits, so bit 20 of a non-canonical NaN counts.
	pv, py := v.significand(), y.significand()
	if neg {
		return pv >= py
	}
	return pv <= py
}

// cmpMagnitude compares the magnitudes of two non-zero finite values.
// Returns -1 if |v| < |y|, 0 if |v| == |y|, 1 if |v| > |y|.
func cmpMagnitude(v, y Value) int {
	sv, ev := v.significand(), int32(v.exponent())
	sy, ey := y.significand(), int32(y.exponent())
	// a significand has at most Precision digits, so a larger difference decides alone.
	switch diff := ev - ey; {
	case diff > Precision-1:
		return 1
	case diff < -(Precision - 1):
		return -1
	case diff > 0:
		sv, _ = mathutil.ScaleMant(sv, ev, ey)
	case diff < 0:
		sy, _ = mathutil.ScaleMant(sy, ey, ev)
	}
	return mathutil.Uint64Cmp(sv, sy)
}
