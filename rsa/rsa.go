package rsa

import (
	"fmt"
	"io"

	"github.com/purecrypt/purecrypt-go/bigint"
)

// DefaultExponent is the standard RSA public exponent F4 = 65537.
const DefaultExponent = 65537

// PublicKey is an RSA public key.
type PublicKey struct {
	N *bigint.Int // modulus
	E *bigint.Int // public exponent
}

// PrivateKey is an RSA key pair. The generating primes are retained when
// the key was produced locally and nil when parsed from DER, which does
// not carry them.
type PrivateKey struct {
	PublicKey
	D *bigint.Int // private exponent
	P *bigint.Int // first prime, optional
	Q *bigint.Int // second prime, optional
}

// Size returns the modulus length in bytes; ciphertexts and padded blocks
// are exactly this long.
func (pub *PublicKey) Size() int { return (pub.N.BitLength() + 7) / 8 }

// Equal reports whether two public keys hold the same modulus and exponent.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	return pub.N.Equal(other.N) && pub.E.Equal(other.E)
}

// GenerateKeyPair generates an RSA key of the requested modulus bit length
// with the default exponent 65537, drawing randomness from rnd.
func GenerateKeyPair(bits int, rnd io.Reader) (*PrivateKey, error) {
	return GenerateKeyPairWithExponent(bits, bigint.New(DefaultExponent), rnd)
}

// GenerateKeyPairWithExponent generates an RSA key with an explicit public
// exponent. Each attempt draws two independent probable primes of bits/2
// bits; the pair is rejected and regenerated when the primes coincide, the
// exponent is not invertible modulo phi, or the modulus came out a bit
// short of the requested length.
func GenerateKeyPairWithExponent(bits int, e *bigint.Int, rnd io.Reader) (*PrivateKey, error) {
	if bits < 96 {
		return nil, ErrKeySizeTooSmall
	}
	if e.Sign() <= 0 || e.BitLength() < 2 || e.Bit(0) == 0 {
		return nil, ErrInvalidExponent
	}

	one := bigint.New(1)
	for attempt := 0; attempt < 64; attempt++ {
		p, err := bigint.ProbablePrime(bits/2, rnd)
		if err != nil {
			return nil, fmt.Errorf("generate p: %w", err)
		}
		q, err := bigint.ProbablePrime(bits/2, rnd)
		if err != nil {
			return nil, fmt.Errorf("generate q: %w", err)
		}
		if p.Equal(q) {
			continue
		}

		n := p.Mul(q)
		if n.BitLength() < bits-1 {
			continue
		}
		phi := p.Sub(one).Mul(q.Sub(one))
		d, err := e.ModInverse(phi)
		if err != nil {
			// gcd(e, phi) != 1; draw a fresh pair.
			continue
		}

		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: e},
			D:         d,
			P:         p,
			Q:         q,
		}, nil
	}
	return nil, ErrGenerateFailed
}
