package purecrypt

import (
	"crypto/rand"
	"io"

	"github.com/purecrypt/purecrypt-go/aes"
	"github.com/purecrypt/purecrypt-go/rsa"
)

// Mode selects the direction of a Cipher.
type Mode int

const (
	// Encrypt configures the cipher to encrypt.
	Encrypt Mode = iota + 1
	// Decrypt configures the cipher to decrypt.
	Decrypt
)

// algorithm is the behavior selected by the transformation string.
type algorithm int

const (
	algAESCBC algorithm = iota + 1
	algRSA
)

// transformations maps the accepted transformation strings to their
// algorithm. The bare names default to the only supported mode/padding
// combination, mirroring the JCE-style full forms.
var transformations = map[string]algorithm{
	"AES":                  algAESCBC,
	"AES/CBC/PKCS5Padding": algAESCBC,
	"RSA":                  algRSA,
	"RSA/ECB/PKCS1Padding": algRSA,
}

// Cipher is a mode-dispatching encryption facade. Create it with
// NewCipher, configure it once with Init, then call DoFinal as many times
// as needed with that configuration. Re-initialization with a different
// mode or key is allowed.
type Cipher struct {
	transformation string
	alg            algorithm

	// Configuration bound by Init.
	mode Mode
	key  Key
	iv   []byte
	rnd  io.Reader
}

// NewCipher returns a cipher for the given transformation. Supported
// values are "AES", "AES/CBC/PKCS5Padding", "RSA" and
// "RSA/ECB/PKCS1Padding".
func NewCipher(transformation string) (*Cipher, error) {
	alg, ok := transformations[transformation]
	if !ok {
		return nil, ErrUnsupportedTransformation
	}
	return &Cipher{transformation: transformation, alg: alg}, nil
}

// Transformation returns the string the cipher was created with.
func (c *Cipher) Transformation() string { return c.transformation }

// Init binds a mode, key and options to the cipher. AES transformations
// require a secret key and a one-block IV (WithIV); RSA encryption accepts
// a public or private key, RSA decryption requires a private key.
func (c *Cipher) Init(mode Mode, key Key, opts ...InitOption) error {
	if mode != Encrypt && mode != Decrypt {
		return ErrInvalidMode
	}

	// Options are applied to a scratch value so a failed Init leaves any
	// previously bound configuration intact.
	var pending Cipher
	for _, opt := range opts {
		opt(&pending)
	}

	switch c.alg {
	case algAESCBC:
		if key.kind != KindSecret {
			return ErrKeyTypeMismatch
		}
		if pending.iv == nil {
			return ErrMissingIV
		}
		if len(pending.iv) != aes.BlockSize {
			return aes.ErrInvalidIVSize
		}
	case algRSA:
		switch {
		case key.kind == KindRSAPrivate:
		case key.kind == KindRSAPublic && mode == Encrypt:
		default:
			return ErrKeyTypeMismatch
		}
	}

	if pending.rnd == nil {
		pending.rnd = rand.Reader
	}
	c.mode = mode
	c.key = key
	c.iv = pending.iv
	c.rnd = pending.rnd
	return nil
}

// DoFinal runs the configured operation over data. The bound configuration
// is untouched, so consecutive calls behave independently.
func (c *Cipher) DoFinal(data []byte) ([]byte, error) {
	if c.mode == 0 {
		return nil, ErrNotInitialized
	}
	switch c.alg {
	case algAESCBC:
		if c.mode == Encrypt {
			return aes.EncryptCBC(c.key.secret, c.iv, data)
		}
		return aes.DecryptCBC(c.key.secret, c.iv, data)
	case algRSA:
		if c.mode == Encrypt {
			return rsa.EncryptPKCS1v15(c.rnd, c.publicKey(), data)
		}
		return rsa.DecryptPKCS1v15(c.key.rsaPriv, data)
	}
	return nil, ErrUnsupportedTransformation
}

// publicKey returns the bound public key, reaching into the key pair when
// a private key was supplied for encryption.
func (c *Cipher) publicKey() *rsa.PublicKey {
	if c.key.kind == KindRSAPublic {
		return c.key.rsaPub
	}
	return &c.key.rsaPriv.PublicKey
}
