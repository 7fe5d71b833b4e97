package digest

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// md5K holds the 64 sine-derived round constants, K[i] = floor(2^32 *
// |sin(i+1)|). They are computed once at program start and never mutated.
var md5K [64]uint32

// md5Shift holds the per-round left-rotation amounts.
var md5Shift = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

func init() {
	for i := range md5K {
		md5K[i] = uint32(math.Floor(math.Abs(math.Sin(float64(i+1))) * (1 << 32)))
	}
}

// md5Digest is the streaming MD5 engine: four running hash words, a
// 64-byte pending block and the total byte count.
type md5Digest struct {
	h     [4]uint32
	block [64]byte
	n     int    // bytes pending in block
	total uint64 // total bytes written
}

// NewMD5 returns a new MD5 engine.
func NewMD5() Digest {
	d := &md5Digest{}
	d.Reset()
	return d
}

// Algorithm returns "MD5".
func (d *md5Digest) Algorithm() string { return MD5 }

// Size returns the MD5 output length, 16 bytes.
func (d *md5Digest) Size() int { return 16 }

// BlockSize returns the MD5 block size, 64 bytes.
func (d *md5Digest) BlockSize() int { return 64 }

// Reset restores the initial state.
func (d *md5Digest) Reset() {
	d.h = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
	d.n = 0
	d.total = 0
}

// Write absorbs p, transforming every completed 64-byte block immediately.
// It never returns an error.
func (d *md5Digest) Write(p []byte) (int, error) {
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
func (d *md5Digest) Sum(b []byte) []byte {
	clone := *d
	sum := clone.finalize()
	return append(b, sum[:]...)
}

// Checksum returns the hash of everything written and resets the engine.
func (d *md5Digest) Checksum() []byte {
	sum := d.finalize()
	d.Reset()
	return sum[:]
}

// finalize applies MD5 padding (0x80, zeros, 64-bit little-endian bit
// count) and returns the digest in little-endian word order.
func (d *md5Digest) finalize() [16]byte {
	bitLen := d.total * 8
	d.Write([]byte{0x80})
	var zeros [64]byte
	pad := (56 - int(d.total%64) + 64) % 64
	d.Write(zeros[:pad])
	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], bitLen)
	d.Write(length[:])

	var out [16]byte
	for i, w := range d.h {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// compress runs the 64-step MD5 transform over one block.
func (d *md5Digest) compress(block []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, dd := d.h[0], d.h[1], d.h[2], d.h[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & dd)
			g = i
		case i < 32:
			f = (dd & b) | (^dd & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ dd
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^dd)
			g = (7 * i) % 16
		}
		f += a + md5K[i] + m[g]
		a, dd, c, b = dd, c, b, b+bits.RotateLeft32(f, md5Shift[i])
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
}
