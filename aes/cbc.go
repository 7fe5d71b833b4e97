package aes

import (
	"fmt"
	"io"
)

// EncryptCBC encrypts plaintext with AES in CBC mode, applying PKCS#7
// padding first. The key must be 16, 24 or 32 bytes and the IV exactly one
// block. Plaintext may be empty; the result is then a single padding block.
func EncryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	b, err := NewBlock(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, ErrInvalidIVSize
	}
	padded := Pad(plaintext)
	out := make([]byte, len(padded))
	prev := iv
	for off := 0; off < len(padded); off += BlockSize {
		var x [BlockSize]byte
		for i := range x {
			x[i] = padded[off+i] ^ prev[i]
		}
		b.Encrypt(out[off:off+BlockSize], x[:])
		prev = out[off : off+BlockSize]
	}
	return out, nil
}

// DecryptCBC decrypts an AES-CBC ciphertext and strips PKCS#7 padding. It
// returns ErrInvalidCiphertextLength for an empty or misaligned input and
// ErrInvalidPadding when the recovered padding is malformed.
func DecryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	padded, err := decryptCBCRaw(key, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	return Unpad(padded)
}

// DecryptCBCPermissive behaves like DecryptCBC but mirrors the legacy
// contract on bad padding: instead of failing, it returns the decrypted
// bytes with the padding left in place. New callers should prefer
// DecryptCBC.
func DecryptCBCPermissive(key, iv, ciphertext []byte) ([]byte, error) {
	padded, err := decryptCBCRaw(key, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	return UnpadPermissive(padded), nil
}

func decryptCBCRaw(key, iv, ciphertext []byte) ([]byte, error) {
	b, err := NewBlock(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, ErrInvalidIVSize
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}
	out := make([]byte, len(ciphertext))
	prev := iv
	for off := 0; off < len(ciphertext); off += BlockSize {
		b.Decrypt(out[off:off+BlockSize], ciphertext[off:off+BlockSize])
		for i := 0; i < BlockSize; i++ {
			out[off+i] ^= prev[i]
		}
		prev = ciphertext[off : off+BlockSize]
	}
	return out, nil
}

// Pad appends PKCS#7 padding, extending data to the next block boundary.
// The pad length is always in [1, 16], so a full-block input gains one
// whole padding block.
func Pad(data []byte) []byte {
	n := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad validates and strips PKCS#7 padding: the last byte p must be in
// [1, 16] and the trailing p bytes must all equal p.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n < 1 || n > BlockSize {
		return nil, ErrInvalidPadding
	}
	for _, v := range data[len(data)-n:] {
		if int(v) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}

// UnpadPermissive strips PKCS#7 padding when it validates and returns the
// input unchanged when it does not. This reproduces the original
// implementation's silent behavior for callers that depend on it.
func UnpadPermissive(data []byte) []byte {
	out, err := Unpad(data)
	if err != nil {
		return data
	}
	return out
}

// GenerateKey returns a random AES key of the given size (16, 24 or 32
// bytes) drawn from rnd.
func GenerateKey(size int, rnd io.Reader) ([]byte, error) {
	switch size {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKeySize
	}
	key := make([]byte, size)
	if _, err := io.ReadFull(rnd, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// GenerateIV returns a random one-block IV drawn from rnd.
func GenerateIV(rnd io.Reader) ([]byte, error) {
	iv := make([]byte, BlockSize)
	if _, err := io.ReadFull(rnd, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	return iv, nil
}
