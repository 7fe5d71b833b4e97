// Package aes implements the AES block cipher (FIPS 197) from first
// principles, with CBC chaining and PKCS#7 padding.
//
// All three standard key sizes are supported: 16, 24 and 32 bytes for
// AES-128, AES-192 and AES-256. The S-box, its inverse and the round
// constants are derived once at program start and are read-only afterwards,
// so independent cipher uses are safe in parallel.
//
//	key, _ := aes.GenerateKey(32, rand.Reader)
//	iv, _ := aes.GenerateIV(rand.Reader)
//	ct, err := aes.EncryptCBC(key, iv, plaintext)
//	pt, err := aes.DecryptCBC(key, iv, ct)
//
// This package trades speed for clarity (no T-table optimization) and does
// not attempt constant-time operation; see the crypto/aes package when
// side-channel hardening matters.
package aes
