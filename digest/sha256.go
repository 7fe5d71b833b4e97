package digest

import (
	"encoding/binary"
	"math/bits"
)

// sha256K holds the 64 round constants (fractional parts of the cube roots
// of the first 64 primes), per FIPS 180-4.
var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256Digest is the streaming SHA-256 engine.
type sha256Digest struct {
	h     [8]uint32
	block [64]byte
	n     int
	total uint64
}

// NewSHA256 returns a new SHA-256 engine.
func NewSHA256() Digest {
	d := &sha256Digest{}
	d.Reset()
	return d
}

// Algorithm returns "SHA-256".
func (d *sha256Digest) Algorithm() string { return SHA256 }

// Size returns the SHA-256 output length, 32 bytes.
func (d *sha256Digest) Size() int { return 32 }

// BlockSize returns the SHA-256 block size, 64 bytes.
func (d *sha256Digest) BlockSize() int { return 64 }

// Reset restores the initial state.
func (d *sha256Digest) Reset() {
	d.h = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	d.n = 0
	d.total = 0
}

// Write absorbs p, transforming every completed 64-byte block immediately.
// It never returns an error.
func (d *sha256Digest) Write(p []byte) (int, error) {
	written := len(p)
	d.total += uint64(written)
	if d.n > 0 {
		c := copy(d.block[d.n:], p)
		d.n += c
		p = p[c:]
		if d.n == 64 {
			d.compress(d.block[:])
			d.n = 0
		}
	}
	for len(p) >= 64 {
		d.compress(p[:64])
		p = p[64:]
	}
	d.n += copy(d.block[d.n:], p)
	return written, nil
}

// Sum appends the current hash to b without disturbing the running state.
func (d *sha256Digest) Sum(b []byte) []byte {
	clone := *d
	sum := clone.finalize()
	return append(b, sum[:]...)
}

// Checksum returns the hash of everything written and resets the engine.
func (d *sha256Digest) Checksum() []byte {
	sum := d.finalize()
	d.Reset()
	return sum[:]
}

// finalize applies SHA-256 padding (0x80, zeros, 64-bit big-endian bit
// count) and returns the digest in big-endian word order.
func (d *sha256Digest) finalize() [32]byte {
	bitLen := d.total * 8
	d.Write([]byte{0x80})
	var zeros [64]byte
	pad := (56 - int(d.total%64) + 64) % 64
	d.Write(zeros[:pad])
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], bitLen)
	d.Write(length[:])

	var out [32]byte
	for i, w := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// compress runs the 64-round SHA-256 transform over one block.
func (d *sha256Digest) compress(block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]
	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj
		h, g, f, e, dd, c, b, a = g, f, e, dd+t1, c, b, a, t1+t2
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.h[5] += f
	d.h[6] += g
	d.h[7] += h
}
