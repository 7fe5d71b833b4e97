package bigint

// Int is an immutable arbitrary-precision signed integer.
//
// The magnitude is stored as little-endian base-2^32 limbs in canonical
// form: no high-order zero limbs, and an empty slice if and only if the
// sign is zero. All methods return new values and never mutate.
type Int struct {
	sign int      // -1, 0, or +1
	mag  []uint32 // little-endian limbs, mag[0] is least significant
}

// New returns an Int with the value of v.
func New(v int64) *Int {
	if v == 0 {
		return &Int{}
	}
	sign := 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = uint64(-v)
	}
	return &Int{sign: sign, mag: trim([]uint32{uint32(u), uint32(u >> 32)})}
}

// makeInt builds a canonical Int from a sign and a magnitude. The magnitude
// is trimmed and the sign normalized to zero for an empty magnitude.
func makeInt(sign int, mag []uint32) *Int {
	mag = trim(mag)
	if len(mag) == 0 {
		return &Int{}
	}
	return &Int{sign: sign, mag: mag}
}

// trim drops high-order zero limbs so the magnitude is canonical.
func trim(mag []uint32) []uint32 {
	n := len(mag)
	for n > 0 && mag[n-1] == 0 {
		n--
	}
	return mag[:n]
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x *Int) Sign() int { return x.sign }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.sign == 0 }

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return &Int{}
	}
	return &Int{sign: -x.sign, mag: x.mag}
}

// Abs returns the absolute value of x.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return &Int{sign: 1, mag: x.mag}
}

// Cmp compares x and y and returns -1, 0, or +1.
// Ordering is by sign first, then by magnitude.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	c := magCmp(x.mag, y.mag)
	if x.sign < 0 {
		return -c
	}
	return c
}

// CmpAbs compares the absolute values of x and y.
func (x *Int) CmpAbs(y *Int) int { return magCmp(x.mag, y.mag) }

// Equal reports whether x and y represent the same integer.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// BitLength returns the number of bits in the minimal representation of the
// magnitude of x; it is 0 for a zero value.
func (x *Int) BitLength() int { return magBitLen(x.mag) }

// Bit returns bit i of the magnitude of x (0 or 1). Bits beyond the
// magnitude are 0.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	limb := i / 32
	if limb >= len(x.mag) {
		return 0
	}
	return uint(x.mag[limb]>>(uint(i)%32)) & 1
}

// isOdd reports whether the magnitude of x has its lowest bit set.
func (x *Int) isOdd() bool { return len(x.mag) > 0 && x.mag[0]&1 == 1 }

// magCmp compares two canonical magnitudes.
func magCmp(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magBitLen returns the bit length of a canonical magnitude.
func magBitLen(mag []uint32) int {
	if len(mag) == 0 {
		return 0
	}
	top := mag[len(mag)-1]
	bits := 0
	for top != 0 {
		top >>= 1
		bits++
	}
	return (len(mag)-1)*32 + bits
}
