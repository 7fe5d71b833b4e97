package digest

import (
	"errors"
	"hash"
)

// Supported algorithm names accepted by New.
const (
	MD5    = "MD5"
	SHA256 = "SHA-256"
)

// ErrUnsupportedAlgorithm is returned by New for any algorithm name other
// than MD5 or SHA-256.
var ErrUnsupportedAlgorithm = errors.New("digest: unsupported algorithm")

// Digest is a streaming hash engine. It extends hash.Hash with Checksum,
// which finalizes the running hash and resets the engine to its initial
// state, and Algorithm, which reports the engine's name.
type Digest interface {
	hash.Hash

	// Checksum returns the hash of all bytes written so far and resets the
	// engine, so it can be reused for an unrelated stream.
	Checksum() []byte

	// Algorithm returns the algorithm name, MD5 or SHA-256.
	Algorithm() string
}

// New returns a fresh engine for the named algorithm.
func New(algorithm string) (Digest, error) {
	switch algorithm {
	case MD5:
		return NewMD5(), nil
	case SHA256:
		return NewSHA256(), nil
	}
	return nil, ErrUnsupportedAlgorithm
}
