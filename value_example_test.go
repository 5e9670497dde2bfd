// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal32

import (
	"fmt"
	"sort"
)

func ExampleValue() {
	v, err := New(false, 12345, -2)
	if err != nil {
		panic(err)
	}
	coeff, _ := v.Coefficient()
	exp, _ := v.Exponent()
	fmt.Printf("%#v: coefficient = %d, exponent = %d\n", v, coeff, exp)

	d, _ := v.Decimal()
	fmt.Printf("exact value: %s, quantum: %#v\n", d, v.Quantum())

	data, err := v.MarshalBinary()
	if err != nil {
		panic(err)
	}
	fmt.Printf("interchange encoding: %x\n", data)

	nonCanonical := FromBits(0x6cbfffff)
	fmt.Printf("%#v is canonical: %v, zero: %v\n", nonCanonical, nonCanonical.IsCanonical(), nonCanonical.IsZero())

	// Output:
	// decimal32(0x31803039){PositiveNormal, 12345, -2}: coefficient = 12345, exponent = -2
	// exact value: 123.45, quantum: decimal32(0x31800001){PositiveNormal, 1, -2}
	// interchange encoding: 31803039
	// decimal32(0x6cbfffff){PositiveZero, 0, 0} is canonical: false, zero: true
}

func ExampleValue_TotalOrder() {
	values := []Value{
		NaN,
		MustNew(false, 1, 0),
		NegZero,
		MustNew(false, 10, -1),
		SNaN.Negate(),
		Zero,
		MustNew(true, 5, -1),
		NegInf,
	}
	sort.Slice(values, func(i, j int) bool {
		return !values[j].TotalOrder(values[i])
	})
	for _, v := range values {
		fmt.Printf("%#v\n", v)
	}

	// Output:
	// decimal32(0xfe000000){SignalingNaN}
	// decimal32(0xf8000000){NegativeInfinity}
	// decimal32(0xb2000005){NegativeNormal, 5, -1}
	// decimal32(0x80000000){NegativeZero, 0, -101}
	// decimal32(0x32800000){PositiveZero, 0, 0}
	// decimal32(0x3200000a){PositiveNormal, 10, -1}
	// decimal32(0x32800001){PositiveNormal, 1, 0}
	// decimal32(0x7c000000){QuietNaN}
}
