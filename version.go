// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal32

// Is754Version1985 returns false: the 1985 standard defines no decimal interchange formats.
func Is754Version1985() bool {
	return false
}

// Is754Version2008 returns true: the package follows IEEE 754-2008.
func Is754Version2008() bool {
	return true
}

// Is754Version2019 returns false.
func Is754Version2019() bool {
	return false
}
