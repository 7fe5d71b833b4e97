package rsa

import (
	"bytes"
	"crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/x509"
	"errors"
	"math/big"
	mathrand "math/rand"
	"testing"

	"github.com/purecrypt/purecrypt-go/bigint"
)

// testKey generates a deterministic key pair for tests; 512 bits keeps the
// from-scratch arithmetic fast.
func testKey(t *testing.T, bits int) *PrivateKey {
	t.Helper()
	priv, err := GenerateKeyPair(bits, mathrand.New(mathrand.NewSource(42)))
	if err != nil {
		t.Fatalf("GenerateKeyPair(%d) error = %v", bits, err)
	}
	return priv
}

// toStdlib converts a generated key into its crypto/rsa form for
// cross-validation.
func toStdlib(t *testing.T, priv *PrivateKey) *stdrsa.PrivateKey {
	t.Helper()
	n, ok := new(big.Int).SetString(priv.N.String(), 10)
	if !ok {
		t.Fatal("bad modulus")
	}
	d, ok := new(big.Int).SetString(priv.D.String(), 10)
	if !ok {
		t.Fatal("bad exponent")
	}
	p, _ := new(big.Int).SetString(priv.P.String(), 10)
	q, _ := new(big.Int).SetString(priv.Q.String(), 10)
	std := &stdrsa.PrivateKey{
		PublicKey: stdrsa.PublicKey{N: n, E: DefaultExponent},
		D:         d,
		Primes:    []*big.Int{p, q},
	}
	std.Precompute()
	return std
}

func TestGenerateKeyPair(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)

	if got := priv.N.BitLength(); got < 511 {
		t.Errorf("modulus bit length = %d, want >= 511", got)
	}
	if !priv.N.Equal(priv.P.Mul(priv.Q)) {
		t.Error("n != p*q")
	}
	one := bigint.New(1)
	phi := priv.P.Sub(one).Mul(priv.Q.Sub(one))
	ed, err := priv.E.Mul(priv.D).Mod(phi)
	if err != nil {
		t.Fatal(err)
	}
	if !ed.Equal(one) {
		t.Error("e*d != 1 mod phi")
	}

	// The generated primes must satisfy a stricter oracle than our own
	// Miller-Rabin.
	for _, prime := range []*bigint.Int{priv.P, priv.Q} {
		v, ok := new(big.Int).SetString(prime.String(), 10)
		if !ok || !v.ProbablyPrime(32) {
			t.Errorf("factor %s is not prime", prime)
		}
		if prime.BitLength() != 256 {
			t.Errorf("factor bit length = %d, want 256", prime.BitLength())
		}
	}
}

func TestGenerateKeyPairValidation(t *testing.T) {
	t.Parallel()
	rng := mathrand.New(mathrand.NewSource(1))
	if _, err := GenerateKeyPair(64, rng); !errors.Is(err, ErrKeySizeTooSmall) {
		t.Errorf("GenerateKeyPair(64) error = %v, want ErrKeySizeTooSmall", err)
	}
	if _, err := GenerateKeyPairWithExponent(512, bigint.New(4), rng); !errors.Is(err, ErrInvalidExponent) {
		t.Errorf("even exponent error = %v, want ErrInvalidExponent", err)
	}
	if _, err := GenerateKeyPairWithExponent(512, bigint.New(1), rng); !errors.Is(err, ErrInvalidExponent) {
		t.Errorf("exponent 1 error = %v, want ErrInvalidExponent", err)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	rng := mathrand.New(mathrand.NewSource(2))

	k := priv.Size()
	for _, n := range []int{0, 1, 16, k - 11} {
		msg := make([]byte, n)
		rng.Read(msg)
		ct, err := EncryptPKCS1v15(rng, &priv.PublicKey, msg)
		if err != nil {
			t.Fatalf("encrypt %d bytes: %v", n, err)
		}
		if len(ct) != k {
			t.Fatalf("ciphertext length = %d, want %d", len(ct), k)
		}
		pt, err := DecryptPKCS1v15(priv, ct)
		if err != nil {
			t.Fatalf("decrypt %d bytes: %v", n, err)
		}
		if !bytes.Equal(pt, msg) {
			t.Fatalf("round trip of %d bytes failed", n)
		}
	}
}

func TestEncryptDataTooLong(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	rng := mathrand.New(mathrand.NewSource(3))
	msg := make([]byte, priv.Size()-10)
	if _, err := EncryptPKCS1v15(rng, &priv.PublicKey, msg); !errors.Is(err, ErrDataTooLong) {
		t.Errorf("error = %v, want ErrDataTooLong", err)
	}
}

func TestDecryptInvalidPadding(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	k := priv.Size()

	t.Run("wrong length", func(t *testing.T) {
		if _, err := DecryptPKCS1v15(priv, make([]byte, k-1)); !errors.Is(err, ErrInvalidPadding) {
			t.Errorf("error = %v, want ErrInvalidPadding", err)
		}
	})
	t.Run("garbage block", func(t *testing.T) {
		// A random-looking ciphertext decrypts to a block without the
		// PKCS#1 structure with overwhelming probability.
		ct := bigint.New(3).UnsignedBytes(k)
		if _, err := DecryptPKCS1v15(priv, ct); !errors.Is(err, ErrInvalidPadding) {
			t.Errorf("error = %v, want ErrInvalidPadding", err)
		}
	})
}

func TestInteropWithStdlib(t *testing.T) {
	t.Parallel()
	// crypto/rsa refuses keys below 1024 bits.
	priv := testKey(t, 1024)
	std := toStdlib(t, priv)

	msg := []byte("interop across implementations")

	t.Run("stdlib encrypts, we decrypt", func(t *testing.T) {
		ct, err := stdrsa.EncryptPKCS1v15(rand.Reader, &std.PublicKey, msg)
		if err != nil {
			t.Fatal(err)
		}
		pt, err := DecryptPKCS1v15(priv, ct)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(pt, msg) {
			t.Errorf("decrypt = %q, want %q", pt, msg)
		}
	})

	t.Run("we encrypt, stdlib decrypts", func(t *testing.T) {
		ct, err := EncryptPKCS1v15(rand.Reader, &priv.PublicKey, msg)
		if err != nil {
			t.Fatal(err)
		}
		pt, err := stdrsa.DecryptPKCS1v15(nil, std, ct)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(pt, msg) {
			t.Errorf("decrypt = %q, want %q", pt, msg)
		}
	})
}

func TestPKIXRoundTrip(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	der := MarshalPKIXPublicKey(&priv.PublicKey)
	pub, err := ParsePKIXPublicKey(der)
	if err != nil {
		t.Fatal(err)
	}
	if !pub.Equal(&priv.PublicKey) {
		t.Error("PKIX round trip changed the key")
	}
}

func TestPKIXMatchesX509(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	std := toStdlib(t, priv)

	want, err := x509.MarshalPKIXPublicKey(&std.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	if got := MarshalPKIXPublicKey(&priv.PublicKey); !bytes.Equal(got, want) {
		t.Errorf("MarshalPKIXPublicKey differs from x509:\n got %x\nwant %x", got, want)
	}

	// And parsing stdlib output recovers the same key.
	pub, err := ParsePKIXPublicKey(want)
	if err != nil {
		t.Fatal(err)
	}
	if !pub.Equal(&priv.PublicKey) {
		t.Error("parsed x509 output differs from original key")
	}
}

func TestPKCS8RoundTrip(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	der := MarshalPKCS8PrivateKey(priv)
	back, err := ParsePKCS8PrivateKey(der)
	if err != nil {
		t.Fatal(err)
	}
	if !back.N.Equal(priv.N) || !back.D.Equal(priv.D) || !back.E.Equal(priv.E) {
		t.Error("PKCS8 round trip changed the key")
	}
	if back.P != nil || back.Q != nil {
		t.Error("parsed key carries primes the encoding does not hold")
	}
}

func TestDEREncryptDecrypt(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	pubDER := MarshalPKIXPublicKey(&priv.PublicKey)
	privDER := MarshalPKCS8PrivateKey(priv)

	msg := []byte("via DER convenience helpers")
	ct, err := Encrypt(pubDER, msg)
	if err != nil {
		t.Fatal(err)
	}
	pt, err := Decrypt(privDER, ct)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, msg) {
		t.Errorf("round trip = %q, want %q", pt, msg)
	}
}

func TestParseInvalidKeySpec(t *testing.T) {
	t.Parallel()
	priv := testKey(t, 512)
	good := MarshalPKIXPublicKey(&priv.PublicKey)

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"empty", func(b []byte) []byte { return nil }},
		{"truncated", func(b []byte) []byte { return b[:len(b)/2] }},
		{"wrong outer tag", func(b []byte) []byte {
			out := append([]byte(nil), b...)
			out[0] = 0x31
			return out
		}},
		{"trailing garbage", func(b []byte) []byte { return append(append([]byte(nil), b...), 0x00) }},
		{"corrupt oid", func(b []byte) []byte {
			out := append([]byte(nil), b...)
			out[10] ^= 0xff
			return out
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePKIXPublicKey(tt.mutate(good)); !errors.Is(err, ErrInvalidKeySpec) {
				t.Errorf("error = %v, want ErrInvalidKeySpec", err)
			}
			if _, err := ParsePKCS8PrivateKey(tt.mutate(good)); !errors.Is(err, ErrInvalidKeySpec) {
				t.Errorf("PKCS8 error = %v, want ErrInvalidKeySpec", err)
			}
		})
	}
}
