package bigint

// QuoRem returns the quotient and remainder of x / y with truncating
// (round-toward-zero) semantics: the remainder carries the sign of the
// dividend. It returns ErrDivisionByZero when y is zero.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	if y.sign == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if x.sign == 0 {
		return &Int{}, &Int{}, nil
	}
	qm, rm := magDivMod(x.mag, y.mag)
	return makeInt(x.sign*y.sign, qm), makeInt(x.sign, rm), nil
}

// Quo returns the truncating quotient x / y.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the truncating remainder of x / y. The result has the sign
// of x, matching Java's BigInteger.remainder.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Mod returns x mod m, always non-negative for a positive modulus. It
// returns ErrNonPositiveModulus when m <= 0.
func (x *Int) Mod(m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, ErrNonPositiveModulus
	}
	_, r, err := x.QuoRem(m)
	if err != nil {
		return nil, err
	}
	if r.sign < 0 {
		r = r.Add(m)
	}
	return r, nil
}

// magDivMod performs magnitude long division by shift-and-subtract,
// consuming dividend bits from the most significant end. The running
// remainder lives in a fixed scratch buffer with an explicit limb count:
// it stays below the divisor before each shift, so one extra limb always
// suffices and no per-bit allocation happens.
func magDivMod(a, b []uint32) (q, r []uint32) {
	switch magCmp(a, b) {
	case -1:
		return nil, a
	case 0:
		return []uint32{1}, nil
	}
	abits := magBitLen(a)
	bbits := magBitLen(b)
	q = make([]uint32, (abits-bbits)/32+1)
	rem := make([]uint32, len(b)+1)
	rlen := 0
	for i := abits - 1; i >= 0; i-- {
		// rem = rem<<1 | bit(a, i)
		carry := magBit(a, i)
		for j := 0; j < rlen; j++ {
			next := rem[j] >> 31
			rem[j] = rem[j]<<1 | uint32(carry)
			carry = uint(next)
		}
		if carry != 0 {
			rem[rlen] = 1
			rlen++
		}
		if magCmp(rem[:rlen], b) >= 0 {
			rlen = subInPlace(rem, b, rlen)
			q[i/32] |= 1 << (uint(i) % 32)
		}
	}
	return trim(q), append([]uint32(nil), rem[:rlen]...)
}

// subInPlace subtracts b from the canonical prefix a[:n] (which must be
// >= b) and returns the new canonical length.
func subInPlace(a []uint32, b []uint32, n int) int {
	var borrow int64
	for i := 0; i < n; i++ {
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
		a[i] = uint32(d)
	}
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return n
}
