package aes

import "errors"

var (
	// ErrInvalidKeySize is returned for key lengths other than 16, 24 or
	// 32 bytes.
	ErrInvalidKeySize = errors.New("aes: invalid key size")

	// ErrInvalidIVSize is returned when the IV is not exactly one block.
	ErrInvalidIVSize = errors.New("aes: invalid IV size")

	// ErrInvalidCiphertextLength is returned when a CBC ciphertext is empty
	// or not a multiple of the block size.
	ErrInvalidCiphertextLength = errors.New("aes: ciphertext length not a multiple of block size")

	// ErrInvalidPadding is returned when PKCS#7 padding validation fails
	// after decryption.
	ErrInvalidPadding = errors.New("aes: invalid padding")
)
