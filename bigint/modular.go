package bigint

var (
	zero = &Int{}
	one  = New(1)
	two  = New(2)
)

// GCD returns the greatest common divisor of the absolute values of x and y.
func (x *Int) GCD(y *Int) *Int {
	a := x.Abs()
	b := y.Abs()
	for !b.IsZero() {
		r, _ := a.Rem(b)
		a, b = b, r
	}
	return a
}

// ModPow returns x^exp mod m using binary square-and-multiply, scanning the
// exponent from its least-significant bit and reducing after every
// multiplication. It returns ErrNonPositiveModulus when m <= 0. A negative
// exponent is handled by inverting x modulo m first and returns ErrNoInverse
// when x has no inverse.
func (x *Int) ModPow(exp, m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, ErrNonPositiveModulus
	}
	if m.BitLength() == 1 {
		return &Int{}, nil // everything is 0 mod 1
	}
	base, err := x.Mod(m)
	if err != nil {
		return nil, err
	}
	if exp.sign < 0 {
		base, err = base.ModInverse(m)
		if err != nil {
			return nil, err
		}
		exp = exp.Neg()
	}
	result := one
	for i, n := 0, exp.BitLength(); i < n; i++ {
		if exp.Bit(i) == 1 {
			result, err = result.Mul(base).Mod(m)
			if err != nil {
				return nil, err
			}
		}
		base, err = base.Mul(base).Mod(m)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ModInverse returns the multiplicative inverse of x modulo m, computed with
// the extended Euclidean algorithm. It returns ErrNoInverse when
// gcd(x, m) != 1 and ErrNonPositiveModulus when m <= 0.
func (x *Int) ModInverse(m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, ErrNonPositiveModulus
	}
	a, err := x.Mod(m)
	if err != nil {
		return nil, err
	}
	g0, g1 := m, a
	x0, x1 := zero, one
	for !g1.IsZero() {
		q, r, err := g0.QuoRem(g1)
		if err != nil {
			return nil, err
		}
		g0, g1 = g1, r
		x0, x1 = x1, x0.Sub(q.Mul(x1))
	}
	if !g0.Equal(one) {
		return nil, ErrNoInverse
	}
	return x0.Mod(m)
}
