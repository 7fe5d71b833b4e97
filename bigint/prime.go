package bigint

import (
	"fmt"
	"io"
)

// millerRabinRounds is the number of random-base witness rounds applied to
// every prime candidate, bounding the false-positive probability below
// 4^-20.
const millerRabinRounds = 20

// smallPrimes is used for trial division before the Miller-Rabin rounds,
// discarding most composite candidates cheaply.
var smallPrimes = []uint32{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251,
}

// ProbablePrime generates a random probable prime of exactly the requested
// bit length: candidates are odd with the top bit forced set, and the first
// one surviving trial division and 20 Miller-Rabin rounds is returned.
// Randomness is drawn from rnd (crypto/rand.Reader in production). The
// candidate loop is capped so a broken random source surfaces as
// ErrNoPrimeFound instead of an unbounded spin.
func ProbablePrime(bits int, rnd io.Reader) (*Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBitLength
	}
	maxAttempts := 64 * bits
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c, err := randomOdd(bits, rnd)
		if err != nil {
			return nil, fmt.Errorf("draw candidate: %w", err)
		}
		ok, err := c.ProbablyPrime(millerRabinRounds, rnd)
		if err != nil {
			return nil, err
		}
		if ok {
			return c, nil
		}
	}
	return nil, ErrNoPrimeFound
}

// ProbablyPrime applies trial division by small primes followed by the given
// number of Miller-Rabin rounds with random bases in [2, n-2]. A true result
// means x is prime with overwhelming probability; false is definitive.
func (x *Int) ProbablyPrime(rounds int, rnd io.Reader) (bool, error) {
	if x.sign <= 0 {
		return false, nil
	}
	if x.BitLength() <= 2 {
		// 1, 2, 3
		return !x.Equal(one), nil
	}
	if !x.isOdd() {
		return false, nil
	}
	for _, p := range smallPrimes {
		_, r := divModWord(x.mag, p)
		if r == 0 {
			return len(x.mag) == 1 && x.mag[0] == p, nil
		}
	}

	// Write x-1 = d * 2^s with d odd.
	nMinusOne := x.Sub(one)
	s := 0
	d := nMinusOne
	for !d.isOdd() {
		d = makeInt(1, magShr(d.mag, 1))
		s++
	}

	nMinusTwo := x.Sub(two)
	for round := 0; round < rounds; round++ {
		a, err := randomInRange(two, nMinusTwo, rnd)
		if err != nil {
			return false, fmt.Errorf("draw witness: %w", err)
		}
		y, err := a.ModPow(d, x)
		if err != nil {
			return false, err
		}
		if y.Equal(one) || y.Equal(nMinusOne) {
			continue
		}
		witness := true
		for i := 0; i < s-1; i++ {
			y, err = y.Mul(y).Mod(x)
			if err != nil {
				return false, err
			}
			if y.Equal(nMinusOne) {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}
	return true, nil
}

// randomOdd draws a uniformly random odd integer of exactly bits bits (top
// bit forced set).
func randomOdd(bits int, rnd io.Reader) (*Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, err
	}
	// Clear excess high bits, then force the top and bottom bits.
	excess := uint(len(buf)*8 - bits)
	buf[0] &= 0xff >> excess
	buf[0] |= 0x80 >> excess
	buf[len(buf)-1] |= 1
	return FromUnsignedBytes(buf), nil
}

// randomInRange draws a uniform random integer in [lo, hi] by rejection
// sampling over hi.BitLength() bits.
func randomInRange(lo, hi *Int, rnd io.Reader) (*Int, error) {
	bits := hi.BitLength()
	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)
	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		buf[0] &= 0xff >> excess
		c := FromUnsignedBytes(buf)
		if c.Cmp(lo) >= 0 && c.Cmp(hi) <= 0 {
			return c, nil
		}
	}
}
