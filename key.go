package purecrypt

import (
	"github.com/purecrypt/purecrypt-go/aes"
	"github.com/purecrypt/purecrypt-go/rsa"
)

// KeyKind tags the variant held by a Key.
type KeyKind int

const (
	// KindSecret is a raw symmetric key for AES transformations.
	KindSecret KeyKind = iota + 1
	// KindRSAPublic is an RSA public key.
	KindRSAPublic
	// KindRSAPrivate is an RSA key pair.
	KindRSAPrivate
)

// Key is a tagged key variant bound to a Cipher at Init time. The variant
// is fixed at construction, so transformation dispatch never needs runtime
// type checks.
type Key struct {
	kind    KeyKind
	secret  []byte
	rsaPub  *rsa.PublicKey
	rsaPriv *rsa.PrivateKey
}

// Kind returns the key's variant tag.
func (k Key) Kind() KeyKind { return k.kind }

// Bytes returns a copy of the raw key material for secret keys. RSA
// variants return nil; use the rsa package's DER encoders instead.
func (k Key) Bytes() []byte {
	if k.kind != KindSecret {
		return nil
	}
	return append([]byte(nil), k.secret...)
}

// SecretKey wraps a raw AES key of 16, 24 or 32 bytes. The bytes are
// copied.
func SecretKey(raw []byte) (Key, error) {
	switch len(raw) {
	case 16, 24, 32:
	default:
		return Key{}, aes.ErrInvalidKeySize
	}
	return Key{kind: KindSecret, secret: append([]byte(nil), raw...)}, nil
}

// RSAPublicKey wraps an RSA public key.
func RSAPublicKey(pub *rsa.PublicKey) Key {
	return Key{kind: KindRSAPublic, rsaPub: pub}
}

// RSAPrivateKey wraps an RSA key pair.
func RSAPrivateKey(priv *rsa.PrivateKey) Key {
	return Key{kind: KindRSAPrivate, rsaPriv: priv}
}

// RSAPublicKeyFromDER parses an X.509 SubjectPublicKeyInfo and wraps the
// result.
func RSAPublicKeyFromDER(data []byte) (Key, error) {
	pub, err := rsa.ParsePKIXPublicKey(data)
	if err != nil {
		return Key{}, err
	}
	return RSAPublicKey(pub), nil
}

// RSAPrivateKeyFromDER parses a PKCS#8 PrivateKeyInfo and wraps the result.
func RSAPrivateKeyFromDER(data []byte) (Key, error) {
	priv, err := rsa.ParsePKCS8PrivateKey(data)
	if err != nil {
		return Key{}, err
	}
	return RSAPrivateKey(priv), nil
}
