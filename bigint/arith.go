package bigint

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	switch {
	case x.sign == 0:
		return y
	case y.sign == 0:
		return x
	case x.sign == y.sign:
		return makeInt(x.sign, magAdd(x.mag, y.mag))
	}
	// Opposite signs: the result takes the sign of the larger magnitude.
	switch magCmp(x.mag, y.mag) {
	case 0:
		return &Int{}
	case 1:
		return makeInt(x.sign, magSub(x.mag, y.mag))
	default:
		return makeInt(y.sign, magSub(y.mag, x.mag))
	}
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int { return x.Add(y.Neg()) }

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	if x.sign == 0 || y.sign == 0 {
		return &Int{}
	}
	return makeInt(x.sign*y.sign, magMul(x.mag, y.mag))
}

// magAdd returns a + b as a fresh magnitude.
func magAdd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := 0; i < len(a); i++ {
		sum := uint64(a[i]) + carry
		if i < len(b) {
			sum += uint64(b[i])
		}
		out[i] = uint32(sum)
		carry = sum >> 32
	}
	out[len(a)] = uint32(carry)
	return trim(out)
}

// magSub returns a - b as a fresh magnitude. Requires a >= b.
func magSub(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i := 0; i < len(a); i++ {
		d := int64(a[i]) - borrow
		if i < len(b) {
			d -= int64(b[i])
		}
		if d < 0 {
			d += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return trim(out)
}

// magMul returns a * b using schoolbook multiplication.
func magMul(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b))
	for i := 0; i < len(a); i++ {
		var carry uint64
		ai := uint64(a[i])
		for j := 0; j < len(b); j++ {
			cur := uint64(out[i+j]) + ai*uint64(b[j]) + carry
			out[i+j] = uint32(cur)
			carry = cur >> 32
		}
		out[i+len(b)] = uint32(carry)
	}
	return trim(out)
}

// magShl returns a << n.
func magShl(a []uint32, n uint) []uint32 {
	if len(a) == 0 {
		return nil
	}
	limbs := int(n / 32)
	bits := n % 32
	out := make([]uint32, len(a)+limbs+1)
	for i := 0; i < len(a); i++ {
		cur := uint64(a[i]) << bits
		out[i+limbs] |= uint32(cur)
		out[i+limbs+1] |= uint32(cur >> 32)
	}
	return trim(out)
}

// magShr returns a >> n.
func magShr(a []uint32, n uint) []uint32 {
	limbs := int(n / 32)
	bits := n % 32
	if limbs >= len(a) {
		return nil
	}
	out := make([]uint32, len(a)-limbs)
	for i := range out {
		cur := uint64(a[i+limbs]) >> bits
		if bits > 0 && i+limbs+1 < len(a) {
			cur |= uint64(a[i+limbs+1]) << (32 - bits)
		}
		out[i] = uint32(cur)
	}
	return trim(out)
}

// magBit returns bit i of a.
func magBit(a []uint32, i int) uint {
	limb := i / 32
	if limb >= len(a) {
		return 0
	}
	return uint(a[limb]>>(uint(i)%32)) & 1
}

// mulAddWord returns mag*w + add. Used by radix parsing.
func mulAddWord(mag []uint32, w, add uint32) []uint32 {
	out := make([]uint32, len(mag)+1)
	carry := uint64(add)
	for i := 0; i < len(mag); i++ {
		cur := uint64(mag[i])*uint64(w) + carry
		out[i] = uint32(cur)
		carry = cur >> 32
	}
	out[len(mag)] = uint32(carry)
	return trim(out)
}

// divModWord divides mag by w and returns the quotient magnitude and the
// remainder word. Used by radix printing.
func divModWord(mag []uint32, w uint32) ([]uint32, uint32) {
	out := make([]uint32, len(mag))
	var rem uint64
	for i := len(mag) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(mag[i])
		out[i] = uint32(cur / uint64(w))
		rem = cur % uint64(w)
	}
	return trim(out), uint32(rem)
}
