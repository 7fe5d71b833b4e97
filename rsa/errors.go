package rsa

import "errors"

var (
	// ErrInvalidKeySpec is returned when DER key material is structurally
	// malformed: an unexpected tag, a bad length, or an out-of-range field.
	ErrInvalidKeySpec = errors.New("rsa: invalid key encoding")

	// ErrDataTooLong is returned when a plaintext exceeds the k-11 byte
	// capacity of PKCS#1 v1.5 for a k-byte modulus.
	ErrDataTooLong = errors.New("rsa: message too long for key size")

	// ErrInvalidPadding is returned when the decrypted block fails PKCS#1
	// v1.5 validation.
	ErrInvalidPadding = errors.New("rsa: invalid PKCS#1 padding")

	// ErrKeySizeTooSmall is returned when fewer than 96 bits are requested;
	// such a modulus cannot hold a padded block.
	ErrKeySizeTooSmall = errors.New("rsa: key size too small")

	// ErrInvalidExponent is returned for a public exponent that is not an
	// odd integer of at least 3.
	ErrInvalidExponent = errors.New("rsa: invalid public exponent")

	// ErrGenerateFailed is returned when the key generation retry cap is
	// exhausted; in practice this means a broken random source.
	ErrGenerateFailed = errors.New("rsa: key generation failed")
)
