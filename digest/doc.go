// Package digest implements the MD5 and SHA-256 hash functions from first
// principles behind a common streaming contract.
//
// Both engines satisfy the standard hash.Hash interface, so they compose
// with any consumer expecting one (HMAC, PBKDF2, io.MultiWriter). On top of
// that, Checksum finalizes the hash and resets the engine in one step,
// matching the one-shot-then-reusable lifecycle of the Cipher facade.
//
// Engines are not safe for concurrent use; confine each instance to one
// logical stream.
//
//	d, err := digest.New(digest.SHA256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.Write([]byte("abc"))
//	sum := d.Checksum() // engine is reset and reusable afterwards
package digest
