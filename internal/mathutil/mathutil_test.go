package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow10(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(1), Pow10(0))
	a.Equal(uint64(1000000), Pow10(6))
	a.Equal(uint64(10000000000000000000), Pow10(19))
	a.Equal(uint64(0), Pow10(20))
	a.Equal(uint64(0), Pow10(-1))
}

func TestScaleMant(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant    uint64
		exp, te int32
		res     uint64
		exact   bool
	}{
		{0, 5, -90, 0, true},
		{123, 3, 3, 123, true},
		{123, 3, 0, 123000, true},
		{9999999, 6, 0, 9999999000000, true},
		{123000, 0, 3, 123, true},
		{123456, 0, 3, 123, false},
		{1, 30, 0, math.MaxUint64, false},
		{1, 0, 30, 0, false},
		{math.MaxUint64 / 5, 1, 0, math.MaxUint64, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, exact := ScaleMant(test.mant, test.exp, test.te)
			a.Equal(test.res, res)
			a.Equal(test.exact, exact)
		})
	}
}

func TestUint64Cmp(t *testing.T) {
	a := assert.New(t)
	a.Equal(-1, Uint64Cmp(1, 2))
	a.Equal(0, Uint64Cmp(2, 2))
	a.Equal(1, Uint64Cmp(math.MaxUint64, 2))
}

func TestAbsInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, AbsInt(-5))
	a.Equal(5, AbsInt(5))
	a.Equal(0, AbsInt(0))
}
