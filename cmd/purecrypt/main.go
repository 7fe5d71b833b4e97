// Command purecrypt exercises the library from the command line: RSA key
// generation, encryption and decryption, message digests and key
// derivation.
//
// Defaults are read from the environment (optionally via a .env file):
// PURECRYPT_BITS sets the RSA modulus size and PURECRYPT_ITER the PBKDF2
// iteration count.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	purecrypt "github.com/purecrypt/purecrypt-go"
	"github.com/purecrypt/purecrypt-go/digest"
	"github.com/purecrypt/purecrypt-go/rsa"
)

const (
	defaultBits       = 2048
	defaultIterations = 10000
)

func main() {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fatal("usage: purecrypt <keygen|encrypt|decrypt|hash|derive> [args]")
	}

	switch os.Args[1] {
	case "keygen":
		keygen(os.Args[2:])
	case "encrypt":
		if len(os.Args) < 4 {
			fatal("usage: purecrypt encrypt <public-key-b64> <message>")
		}
		encrypt(os.Args[2], os.Args[3])
	case "decrypt":
		if len(os.Args) < 4 {
			fatal("usage: purecrypt decrypt <private-key-b64> <ciphertext-b64>")
		}
		decrypt(os.Args[2], os.Args[3])
	case "hash":
		if len(os.Args) < 4 {
			fatal("usage: purecrypt hash <MD5|SHA-256> <message>")
		}
		hashCmd(os.Args[2], os.Args[3])
	case "derive":
		if len(os.Args) < 4 {
			fatal("usage: purecrypt derive <passphrase> <salt> [size]")
		}
		derive(os.Args[2:])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

// KeyPairOutput is the JSON shape emitted by keygen: DER-encoded keys in
// standard base64.
type KeyPairOutput struct {
	Bits       int    `json:"bits"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

func keygen(args []string) {
	bits := envInt("PURECRYPT_BITS", defaultBits)
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("parse bits: %v", err)
		}
		bits = n
	}

	priv, err := rsa.GenerateKeyPair(bits, rand.Reader)
	if err != nil {
		fatal("generate key pair: %v", err)
	}

	out := KeyPairOutput{
		Bits:       bits,
		PublicKey:  base64.StdEncoding.EncodeToString(rsa.MarshalPKIXPublicKey(&priv.PublicKey)),
		PrivateKey: base64.StdEncoding.EncodeToString(rsa.MarshalPKCS8PrivateKey(priv)),
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode output: %v", err)
	}
}

func encrypt(publicKeyB64, message string) {
	publicKeyDER, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		fatal("decode public key: %v", err)
	}

	key, err := purecrypt.RSAPublicKeyFromDER(publicKeyDER)
	if err != nil {
		fatal("parse public key: %v", err)
	}

	c, err := purecrypt.NewCipher("RSA/ECB/PKCS1Padding")
	if err != nil {
		fatal("create cipher: %v", err)
	}
	if err := c.Init(purecrypt.Encrypt, key); err != nil {
		fatal("init cipher: %v", err)
	}
	ciphertext, err := c.DoFinal([]byte(message))
	if err != nil {
		fatal("encrypt: %v", err)
	}

	fmt.Println(base64.StdEncoding.EncodeToString(ciphertext))
}

func decrypt(privateKeyB64, ciphertextB64 string) {
	privateKeyDER, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		fatal("decode private key: %v", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		fatal("decode ciphertext: %v", err)
	}

	key, err := purecrypt.RSAPrivateKeyFromDER(privateKeyDER)
	if err != nil {
		fatal("parse private key: %v", err)
	}

	c, err := purecrypt.NewCipher("RSA/ECB/PKCS1Padding")
	if err != nil {
		fatal("create cipher: %v", err)
	}
	if err := c.Init(purecrypt.Decrypt, key); err != nil {
		fatal("init cipher: %v", err)
	}
	plaintext, err := c.DoFinal(ciphertext)
	if err != nil {
		fatal("decrypt: %v", err)
	}

	fmt.Println(string(plaintext))
}

func hashCmd(algorithm, message string) {
	d, err := digest.New(algorithm)
	if err != nil {
		fatal("create digest: %v", err)
	}
	d.Write([]byte(message))
	fmt.Println(hex.EncodeToString(d.Checksum()))
}

func derive(args []string) {
	passphrase, salt := args[0], args[1]
	size := 32
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			fatal("parse size: %v", err)
		}
		size = n
	}
	iterations := envInt("PURECRYPT_ITER", defaultIterations)

	key, err := purecrypt.DeriveSecretKey([]byte(passphrase), []byte(salt), iterations, size)
	if err != nil {
		fatal("derive key: %v", err)
	}
	fmt.Println(hex.EncodeToString(key.Bytes()))
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fatal("parse %s: %v", name, err)
	}
	return n
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
