package aes

import (
	"bytes"
	stdaes "crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBlockVectors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		key  string
		pt   string
		ct   string
	}{
		// NIST all-zero vector.
		{
			"aes-128 zero",
			"00000000000000000000000000000000",
			"00000000000000000000000000000000",
			"66e94bd4ef8a2c3b884cfa59ca342b2e",
		},
		// FIPS-197 appendix C vectors.
		{
			"aes-128 fips",
			"000102030405060708090a0b0c0d0e0f",
			"00112233445566778899aabbccddeeff",
			"69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			"aes-192 fips",
			"000102030405060708090a0b0c0d0e0f1011121314151617",
			"00112233445566778899aabbccddeeff",
			"dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			"aes-256 fips",
			"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			"00112233445566778899aabbccddeeff",
			"8ea2b7ca516745bfeafc49904b496089",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBlock(mustHex(t, tt.key))
			if err != nil {
				t.Fatal(err)
			}
			got := make([]byte, BlockSize)
			b.Encrypt(got, mustHex(t, tt.pt))
			if hex.EncodeToString(got) != tt.ct {
				t.Errorf("Encrypt = %x, want %s", got, tt.ct)
			}
			back := make([]byte, BlockSize)
			b.Decrypt(back, got)
			if hex.EncodeToString(back) != tt.pt {
				t.Errorf("Decrypt = %x, want %s", back, tt.pt)
			}
		})
	}
}

func TestBlockAgainstStdlib(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{16, 24, 32} {
		for i := 0; i < 50; i++ {
			key := make([]byte, size)
			rng.Read(key)
			src := make([]byte, BlockSize)
			rng.Read(src)

			ours, err := NewBlock(key)
			if err != nil {
				t.Fatal(err)
			}
			ref, err := stdaes.NewCipher(key)
			if err != nil {
				t.Fatal(err)
			}

			got := make([]byte, BlockSize)
			want := make([]byte, BlockSize)
			ours.Encrypt(got, src)
			ref.Encrypt(want, src)
			if !bytes.Equal(got, want) {
				t.Fatalf("key size %d: Encrypt = %x, want %x", size, got, want)
			}
			ours.Decrypt(got, want)
			if !bytes.Equal(got, src) {
				t.Fatalf("key size %d: Decrypt = %x, want %x", size, got, src)
			}
		}
	}
}

func TestNewBlockKeySizes(t *testing.T) {
	t.Parallel()
	for _, size := range []int{0, 1, 15, 17, 23, 31, 33, 64} {
		if _, err := NewBlock(make([]byte, size)); !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("NewBlock(%d bytes) error = %v, want ErrInvalidKeySize", size, err)
		}
	}
}

func TestCBCRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	for _, size := range []int{16, 24, 32} {
		for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 100, 1000} {
			key := make([]byte, size)
			rng.Read(key)
			iv := make([]byte, BlockSize)
			rng.Read(iv)
			pt := make([]byte, n)
			rng.Read(pt)

			ct, err := EncryptCBC(key, iv, pt)
			if err != nil {
				t.Fatal(err)
			}
			if len(ct)%BlockSize != 0 || len(ct) == 0 {
				t.Fatalf("ciphertext length %d", len(ct))
			}
			back, err := DecryptCBC(key, iv, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(back, pt) {
				t.Fatalf("round trip failed for %d bytes", n)
			}
		}
	}
}

func TestCBCAgainstStdlib(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	key := make([]byte, 16)
	rng.Read(key)
	iv := make([]byte, BlockSize)
	rng.Read(iv)
	pt := make([]byte, 240)
	rng.Read(pt)

	ct, err := EncryptCBC(key, iv, pt)
	if err != nil {
		t.Fatal(err)
	}

	ref, _ := stdaes.NewCipher(key)
	want := make([]byte, len(ct))
	cipher.NewCBCEncrypter(ref, iv).CryptBlocks(want, Pad(pt))
	if !bytes.Equal(ct, want) {
		t.Errorf("EncryptCBC = %x..., want %x...", ct[:16], want[:16])
	}
}

func TestDecryptCBCErrors(t *testing.T) {
	t.Parallel()
	key := make([]byte, 16)
	iv := make([]byte, BlockSize)

	tests := []struct {
		name string
		key  []byte
		iv   []byte
		ct   []byte
		want error
	}{
		{"bad key size", make([]byte, 10), iv, make([]byte, 16), ErrInvalidKeySize},
		{"bad iv size", key, make([]byte, 8), make([]byte, 16), ErrInvalidIVSize},
		{"empty ciphertext", key, iv, nil, ErrInvalidCiphertextLength},
		{"misaligned ciphertext", key, iv, make([]byte, 20), ErrInvalidCiphertextLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecryptCBC(tt.key, tt.iv, tt.ct); !errors.Is(err, tt.want) {
				t.Errorf("DecryptCBC error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecryptCBCInvalidPadding(t *testing.T) {
	t.Parallel()
	key := make([]byte, 16)
	iv := make([]byte, BlockSize)

	// Encrypt a block that decrypts to garbage padding: a raw block without
	// PKCS#7 structure.
	b, _ := NewBlock(key)
	raw := make([]byte, BlockSize) // decrypts to a block ending in 0x00 ^ iv
	ct := make([]byte, BlockSize)
	b.Encrypt(ct, raw)

	if _, err := DecryptCBC(key, iv, ct); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("DecryptCBC error = %v, want ErrInvalidPadding", err)
	}

	// The permissive variant returns the unstripped block instead.
	out, err := DecryptCBCPermissive(key, iv, ct)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != BlockSize {
		t.Errorf("permissive decrypt length = %d, want %d", len(out), BlockSize)
	}
}

func TestPadUnpad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		in     []byte
		padLen int
	}{
		{"empty gets full block", nil, 16},
		{"one byte", []byte{1}, 15},
		{"fifteen bytes", bytes.Repeat([]byte{7}, 15), 1},
		{"full block gains another", bytes.Repeat([]byte{7}, 16), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded := Pad(tt.in)
			if len(padded) != len(tt.in)+tt.padLen {
				t.Fatalf("Pad length = %d, want %d", len(padded), len(tt.in)+tt.padLen)
			}
			if int(padded[len(padded)-1]) != tt.padLen {
				t.Fatalf("pad byte = %d, want %d", padded[len(padded)-1], tt.padLen)
			}
			out, err := Unpad(padded)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(out, tt.in) {
				t.Fatalf("Unpad = %x, want %x", out, tt.in)
			}
		})
	}
}

func TestUnpadRejectsMalformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"misaligned", make([]byte, 5)},
		{"zero pad byte", append(bytes.Repeat([]byte{1}, 15), 0)},
		{"pad byte too large", append(bytes.Repeat([]byte{1}, 15), 17)},
		{"inconsistent padding", append(bytes.Repeat([]byte{1}, 14), 3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unpad(tt.in); !errors.Is(err, ErrInvalidPadding) {
				t.Errorf("Unpad error = %v, want ErrInvalidPadding", err)
			}
			// Permissive mode hands the input back untouched.
			if got := UnpadPermissive(tt.in); !bytes.Equal(got, tt.in) {
				t.Errorf("UnpadPermissive = %x, want input unchanged", got)
			}
		})
	}
}

func TestGenerateKeyAndIV(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4))
	for _, size := range []int{16, 24, 32} {
		key, err := GenerateKey(size, rng)
		if err != nil {
			t.Fatal(err)
		}
		if len(key) != size {
			t.Errorf("GenerateKey(%d) length = %d", size, len(key))
		}
	}
	if _, err := GenerateKey(20, rng); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("GenerateKey(20) error = %v, want ErrInvalidKeySize", err)
	}
	iv, err := GenerateIV(rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(iv) != BlockSize {
		t.Errorf("GenerateIV length = %d", len(iv))
	}
}
