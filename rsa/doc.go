// Package rsa implements RSA key generation, PKCS#1 v1.5 encryption and
// DER key serialization on top of the bigint package, with no dependency
// on crypto/rsa.
//
// Key pairs are generated from two independent probable primes and carry
// the private exponent only; CRT parameters are intentionally omitted.
// Public keys serialize to X.509 SubjectPublicKeyInfo, byte-compatible
// with standard tooling for the same modulus and exponent. Private keys
// serialize to a PKCS#8 PrivateKeyInfo wrapping the simplified
// SEQUENCE{version, modulus, privateExponent} body.
//
//	priv, err := rsa.GenerateKeyPair(2048, rand.Reader)
//	pubDER := rsa.MarshalPKIXPublicKey(&priv.PublicKey)
//	ct, err := rsa.Encrypt(pubDER, []byte("attack at dawn"))
//	pt, err := rsa.Decrypt(rsa.MarshalPKCS8PrivateKey(priv), ct)
package rsa
