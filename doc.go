// Package purecrypt provides a self-contained cryptographic primitives
// library: arbitrary-precision integers, MD5 and SHA-256, AES-CBC and RSA
// with PKCS#1 v1.5 padding, all implemented from first principles.
//
// The algorithm packages (bigint, digest, aes, rsa) can be used directly.
// This package adds the mode-dispatching Cipher facade that selects RSA or
// AES behavior from a transformation string and a tagged key:
//
//	key, err := purecrypt.SecretKey(rawKey) // 16, 24 or 32 bytes
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := purecrypt.NewCipher("AES/CBC/PKCS5Padding")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.Init(purecrypt.Encrypt, key, purecrypt.WithIV(iv)); err != nil {
//	    log.Fatal(err)
//	}
//	ct, err := c.DoFinal(plaintext) // repeatable with the same configuration
//
// A Cipher is configured once by Init and may then run DoFinal any number
// of times. Independent Cipher and digest instances are safe to use from
// different goroutines; a single instance is not.
package purecrypt
