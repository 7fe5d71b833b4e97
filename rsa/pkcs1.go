package rsa

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/purecrypt/purecrypt-go/bigint"
)

// paddingOverhead is the fixed PKCS#1 v1.5 cost: two marker bytes, the
// zero separator and a minimum of eight padding bytes.
const paddingOverhead = 11

// EncryptPKCS1v15 encrypts msg for pub with PKCS#1 v1.5 type-2 padding:
// the block 0x00 || 0x02 || PS || 0x00 || msg, where PS is non-zero random
// filler, raised to the public exponent modulo n. The message may be at
// most k-11 bytes for a k-byte modulus.
func EncryptPKCS1v15(rnd io.Reader, pub *PublicKey, msg []byte) ([]byte, error) {
	k := pub.Size()
	if len(msg) > k-paddingOverhead {
		return nil, ErrDataTooLong
	}

	block := make([]byte, k)
	block[1] = 0x02
	ps := block[2 : k-len(msg)-1]
	if err := fillNonZero(rnd, ps); err != nil {
		return nil, fmt.Errorf("generate padding: %w", err)
	}
	copy(block[k-len(msg):], msg)

	m := bigint.FromUnsignedBytes(block)
	c, err := m.ModPow(pub.E, pub.N)
	if err != nil {
		return nil, err
	}
	return c.UnsignedBytes(k), nil
}

// DecryptPKCS1v15 reverses EncryptPKCS1v15: it raises the ciphertext to
// the private exponent, re-encodes the result to k bytes and strips the
// padding. ErrInvalidPadding covers every structural failure: wrong
// ciphertext length, a leading byte other than 0x00, a type byte other
// than 0x01 or 0x02, or a separator earlier than index 10.
func DecryptPKCS1v15(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	k := priv.Size()
	if len(ciphertext) != k {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, want %d", ErrInvalidPadding, len(ciphertext), k)
	}
	c := bigint.FromUnsignedBytes(ciphertext)
	if c.Cmp(priv.N) >= 0 {
		return nil, fmt.Errorf("%w: ciphertext out of range", ErrInvalidPadding)
	}

	m, err := c.ModPow(priv.D, priv.N)
	if err != nil {
		return nil, err
	}
	block := m.UnsignedBytes(k)

	if block[0] != 0x00 || (block[1] != 0x01 && block[1] != 0x02) {
		return nil, ErrInvalidPadding
	}
	sep := -1
	for i := 2; i < len(block); i++ {
		if block[i] == 0x00 {
			sep = i
			break
		}
	}
	if sep < 10 {
		return nil, ErrInvalidPadding
	}
	return block[sep+1:], nil
}

// Encrypt encrypts plaintext under a DER-encoded SubjectPublicKeyInfo
// public key, drawing padding from crypto/rand.
func Encrypt(publicKeyDER, plaintext []byte) ([]byte, error) {
	pub, err := ParsePKIXPublicKey(publicKeyDER)
	if err != nil {
		return nil, err
	}
	return EncryptPKCS1v15(rand.Reader, pub, plaintext)
}

// Decrypt decrypts a ciphertext under a DER-encoded PKCS#8 private key.
func Decrypt(privateKeyDER, ciphertext []byte) ([]byte, error) {
	priv, err := ParsePKCS8PrivateKey(privateKeyDER)
	if err != nil {
		return nil, err
	}
	return DecryptPKCS1v15(priv, ciphertext)
}

// fillNonZero fills buf with random non-zero bytes, redrawing zeros.
func fillNonZero(rnd io.Reader, buf []byte) error {
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return err
	}
	for i := range buf {
		for buf[i] == 0 {
			var b [1]byte
			if _, err := io.ReadFull(rnd, b[:]); err != nil {
				return err
			}
			buf[i] = b[0]
		}
	}
	return nil
}
