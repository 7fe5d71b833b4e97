package purecrypt

import "errors"

// Sentinel errors for errors.Is() checks.
var (
	// ErrUnsupportedTransformation is returned by NewCipher for a
	// transformation string it does not recognize.
	ErrUnsupportedTransformation = errors.New("purecrypt: unsupported transformation")

	// ErrNotInitialized is returned when DoFinal runs before Init.
	ErrNotInitialized = errors.New("purecrypt: cipher not initialized")

	// ErrInvalidMode is returned when Init is given a mode other than
	// Encrypt or Decrypt.
	ErrInvalidMode = errors.New("purecrypt: invalid cipher mode")

	// ErrKeyTypeMismatch is returned when the key variant does not fit the
	// transformation, e.g. a secret key handed to an RSA cipher.
	ErrKeyTypeMismatch = errors.New("purecrypt: key type does not match transformation")

	// ErrMissingIV is returned when an AES cipher is initialized without
	// an IV.
	ErrMissingIV = errors.New("purecrypt: missing IV")

	// ErrInvalidIterations is returned by DeriveSecretKey for an iteration
	// count below 1.
	ErrInvalidIterations = errors.New("purecrypt: iteration count must be positive")
)
