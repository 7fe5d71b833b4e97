package purecrypt

import "io"

// InitOption configures a Cipher during Init.
type InitOption func(*Cipher)

// WithIV binds the CBC initialization vector; required for AES
// transformations and ignored by RSA. The bytes are copied.
func WithIV(iv []byte) InitOption {
	return func(c *Cipher) {
		c.iv = append([]byte(nil), iv...)
	}
}

// WithRandom overrides the randomness source used for RSA padding.
// It defaults to crypto/rand.Reader.
func WithRandom(r io.Reader) InitOption {
	return func(c *Cipher) {
		c.rnd = r
	}
}
