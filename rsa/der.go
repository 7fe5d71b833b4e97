package rsa

import (
	"bytes"
	"fmt"

	"github.com/purecrypt/purecrypt-go/bigint"
	"github.com/purecrypt/purecrypt-go/internal/der"
)

// rsaEncryptionOID is 1.2.840.113549.1.1.1 from PKCS#1;
// rsaEncryptionOIDContent is its DER content encoding.
var (
	rsaEncryptionOID        = []int{1, 2, 840, 113549, 1, 1, 1}
	rsaEncryptionOIDContent = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}
)

// algorithmIdentifier is the encoded AlgorithmIdentifier{rsaEncryption,
// NULL} shared by both key forms.
func algorithmIdentifier() []byte {
	return der.Sequence(append(der.ObjectIdentifier(rsaEncryptionOID), der.Null()...))
}

// MarshalPKIXPublicKey encodes pub as an X.509 SubjectPublicKeyInfo:
// SEQUENCE{AlgorithmIdentifier, BIT STRING{SEQUENCE{n, e}}}.
func MarshalPKIXPublicKey(pub *PublicKey) []byte {
	keyBody := der.Sequence(append(der.Integer(pub.N), der.Integer(pub.E)...))
	return der.Sequence(append(algorithmIdentifier(), der.BitString(keyBody)...))
}

// ParsePKIXPublicKey is the structural inverse of MarshalPKIXPublicKey. Any
// unexpected tag, malformed length, wrong algorithm or trailing garbage
// yields ErrInvalidKeySpec.
func ParsePKIXPublicKey(data []byte) (*PublicKey, error) {
	outer := der.NewParser(data)
	spki, err := outer.Sequence()
	if err != nil {
		return nil, keySpecError("SubjectPublicKeyInfo", err)
	}
	if !outer.Empty() {
		return nil, keySpecError("SubjectPublicKeyInfo", errTrailingData)
	}
	if err := parseAlgorithmIdentifier(spki); err != nil {
		return nil, err
	}
	bitstr, err := spki.BitString()
	if err != nil {
		return nil, keySpecError("subjectPublicKey", err)
	}
	if !spki.Empty() {
		return nil, keySpecError("SubjectPublicKeyInfo", errTrailingData)
	}

	keyBody, err := der.NewParser(bitstr).Sequence()
	if err != nil {
		return nil, keySpecError("RSAPublicKey", err)
	}
	n, err := keyBody.Integer()
	if err != nil {
		return nil, keySpecError("modulus", err)
	}
	e, err := keyBody.Integer()
	if err != nil {
		return nil, keySpecError("publicExponent", err)
	}
	if !keyBody.Empty() {
		return nil, keySpecError("RSAPublicKey", errTrailingData)
	}
	if n.Sign() <= 0 || e.Sign() <= 0 {
		return nil, keySpecError("RSAPublicKey", errNonPositiveField)
	}
	return &PublicKey{N: n, E: e}, nil
}

// MarshalPKCS8PrivateKey encodes priv as a PKCS#8 PrivateKeyInfo:
// SEQUENCE{version=0, AlgorithmIdentifier, OCTET STRING{SEQUENCE{version=0,
// n, d}}}. The inner body is the simplified private-key form without CRT
// parameters.
func MarshalPKCS8PrivateKey(priv *PrivateKey) []byte {
	zero := bigint.New(0)
	inner := der.Integer(zero)
	inner = append(inner, der.Integer(priv.N)...)
	inner = append(inner, der.Integer(priv.D)...)
	keyBody := der.Sequence(inner)

	out := der.Integer(zero)
	out = append(out, algorithmIdentifier()...)
	out = append(out, der.OctetString(keyBody)...)
	return der.Sequence(out)
}

// ParsePKCS8PrivateKey is the structural inverse of MarshalPKCS8PrivateKey.
func ParsePKCS8PrivateKey(data []byte) (*PrivateKey, error) {
	outer := der.NewParser(data)
	info, err := outer.Sequence()
	if err != nil {
		return nil, keySpecError("PrivateKeyInfo", err)
	}
	if !outer.Empty() {
		return nil, keySpecError("PrivateKeyInfo", errTrailingData)
	}
	version, err := info.Integer()
	if err != nil {
		return nil, keySpecError("version", err)
	}
	if !version.IsZero() {
		return nil, keySpecError("version", errUnsupportedVersion)
	}
	if err := parseAlgorithmIdentifier(info); err != nil {
		return nil, err
	}
	keyOctets, err := info.OctetString()
	if err != nil {
		return nil, keySpecError("privateKey", err)
	}
	if !info.Empty() {
		return nil, keySpecError("PrivateKeyInfo", errTrailingData)
	}

	keyBody, err := der.NewParser(keyOctets).Sequence()
	if err != nil {
		return nil, keySpecError("RSAPrivateKey", err)
	}
	version, err = keyBody.Integer()
	if err != nil {
		return nil, keySpecError("RSAPrivateKey version", err)
	}
	if !version.IsZero() {
		return nil, keySpecError("RSAPrivateKey version", errUnsupportedVersion)
	}
	n, err := keyBody.Integer()
	if err != nil {
		return nil, keySpecError("modulus", err)
	}
	d, err := keyBody.Integer()
	if err != nil {
		return nil, keySpecError("privateExponent", err)
	}
	if !keyBody.Empty() {
		return nil, keySpecError("RSAPrivateKey", errTrailingData)
	}
	if n.Sign() <= 0 || d.Sign() <= 0 {
		return nil, keySpecError("RSAPrivateKey", errNonPositiveField)
	}
	// The exponent is not carried by the simplified form; the standard value
	// is assumed, matching what GenerateKeyPair produces.
	return &PrivateKey{
		PublicKey: PublicKey{N: n, E: bigint.New(DefaultExponent)},
		D:         d,
	}, nil
}

// parseAlgorithmIdentifier consumes and checks AlgorithmIdentifier
// {rsaEncryption, NULL}.
func parseAlgorithmIdentifier(p *der.Parser) error {
	alg, err := p.Sequence()
	if err != nil {
		return keySpecError("AlgorithmIdentifier", err)
	}
	oid, err := alg.ObjectIdentifier()
	if err != nil {
		return keySpecError("algorithm OID", err)
	}
	if !bytes.Equal(oid, rsaEncryptionOIDContent) {
		return keySpecError("algorithm OID", errNotRSA)
	}
	if err := alg.Null(); err != nil {
		return keySpecError("algorithm parameters", err)
	}
	if !alg.Empty() {
		return keySpecError("AlgorithmIdentifier", errTrailingData)
	}
	return nil
}

var (
	errTrailingData       = fmt.Errorf("trailing data")
	errUnsupportedVersion = fmt.Errorf("unsupported version")
	errNonPositiveField   = fmt.Errorf("non-positive key field")
	errNotRSA             = fmt.Errorf("not an rsaEncryption key")
)

// keySpecError wraps a structural failure so callers can match
// ErrInvalidKeySpec while keeping the offending field in the message.
func keySpecError(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidKeySpec, field, err)
}
