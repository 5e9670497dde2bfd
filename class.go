// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal32

// Class is one of the ten classes every value belongs to.
// Non-NaN classes are declared in the ascending total order.
type Class int

const (
	QuietNaN Class = iota
	SignalingNaN
	NegativeInfinity
	NegativeNormal
	NegativeSubnormal
	NegativeZero
	PositiveZero
	PositiveSubnormal
	PositiveNormal
	PositiveInfinity
)

var classNames = [...]string{
	QuietNaN:          "QuietNaN",
	SignalingNaN:      "SignalingNaN",
	NegativeInfinity:  "NegativeInfinity",
	NegativeNormal:    "NegativeNormal",
	NegativeSubnormal: "NegativeSubnormal",
	NegativeZero:      "NegativeZero",
	PositiveZero:      "PositiveZero",
	PositiveSubnormal: "PositiveSubnormal",
	PositiveNormal:    "PositiveNormal",
	PositiveInfinity:  "PositiveInfinity",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(?)"
	}
	return classNames[c]
}

// IsNaN returns true for QuietNaN and SignalingNaN.
func (c Class) IsNaN() bool {
	return c == QuietNaN || c == SignalingNaN
}

// Class returns the class of v.
func (v Value) Class() Class {
	switch {
	case v.IsSignaling():
		return SignalingNaN
	case v.isQuiet():
		return QuietNaN
	case v.IsSignMinus():
		switch {
		case v.IsInfinite():
			return NegativeInfinity
		case v.IsNormal():
			return NegativeNormal
		case v.IsSubnormal():
			return NegativeSubnormal
		default:
			return NegativeZero
		}
	case v.IsInfinite():
		return PositiveInfinity
	case v.IsNormal():
		return PositiveNormal
	case v.IsSubnormal():
		return PositiveSubnormal
	default:
		return PositiveZero
	}
}
