package mathutil

import (
	"math"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}
)

// Pow10 returns 10^pow.
// Returns 0, if the result does not fit 64 bits.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// ScaleMant returns mant*10^(exp-targetExp).
// exact is false, if some digits were lost, or the result was clamped to MaxUint64.
func ScaleMant(mant uint64, exp, targetExp int32) (m uint64, exact bool) {
	if mant == 0 {
		return 0, true
	}
	diff := int(exp - targetExp)
	if diff == 0 {
		return mant, true
	}
	p := Pow10(AbsInt(diff))
	if p == 0 {
		if diff > 0 {
			return math.MaxUint64, false
		}
		return 0, false
	}
	if diff > 0 {
		if math.MaxUint64/mant < p {
			return math.MaxUint64, false
		}
		mant, exact = mant*p, true
	} else {
		mant, exact = mant/p, mant%p == 0
	}
	return mant, exact
}

// Uint64Cmp returns -1 if a < b, 0 if a == b, 1 if a > b.
func Uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}
