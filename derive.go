package purecrypt

import (
	"hash"

	"golang.org/x/crypto/pbkdf2"

	"github.com/purecrypt/purecrypt-go/aes"
	"github.com/purecrypt/purecrypt-go/digest"
)

// DeriveSecretKey derives an AES key of the given size (16, 24 or 32
// bytes) from a passphrase using PBKDF2 over this library's own SHA-256
// engine. The same passphrase, salt, iteration count and size always yield
// the same key.
func DeriveSecretKey(passphrase, salt []byte, iterations, size int) (Key, error) {
	if iterations < 1 {
		return Key{}, ErrInvalidIterations
	}
	switch size {
	case 16, 24, 32:
	default:
		return Key{}, aes.ErrInvalidKeySize
	}
	raw := pbkdf2.Key(passphrase, salt, iterations, size, func() hash.Hash {
		return digest.NewSHA256()
	})
	return SecretKey(raw)
}
