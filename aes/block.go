package aes

import "math/bits"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// The S-box, its inverse and the key-schedule round constants. Derived in
// init from the GF(2^8) field structure and immutable afterwards.
var (
	sbox    [256]byte
	invSbox [256]byte
	rcon    [11]uint32
)

func init() {
	// Exponentials of the generator 3 cover all non-zero field elements;
	// the multiplicative inverse then falls out of the log table.
	var exp, log [256]byte
	p := byte(1)
	for i := 0; i < 256; i++ {
		exp[i] = p
		log[p] = byte(i)
		p ^= xtime(p) // p *= 3
	}
	for i := 0; i < 256; i++ {
		var inv byte
		if i != 0 {
			inv = exp[(255-int(log[i]))%255]
		}
		s := inv ^ bits.RotateLeft8(inv, 1) ^ bits.RotateLeft8(inv, 2) ^
			bits.RotateLeft8(inv, 3) ^ bits.RotateLeft8(inv, 4) ^ 0x63
		sbox[i] = s
		invSbox[s] = byte(i)
	}

	c := byte(1)
	for i := 1; i <= 10; i++ {
		rcon[i] = uint32(c) << 24
		c = xtime(c)
	}
}

// xtime multiplies by x in GF(2^8) with the AES reduction polynomial
// x^8+x^4+x^3+x+1 (0x11B).
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

// gmul multiplies two field elements.
func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// Block is an AES cipher with an expanded key schedule for a fixed key.
// It encrypts and decrypts single 16-byte blocks; use the CBC functions
// for messages.
type Block struct {
	xk     []uint32 // 4*(rounds+1) round-key words
	rounds int
}

// NewBlock expands the key (16, 24 or 32 bytes) into a round-key schedule.
func NewBlock(key []byte) (*Block, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKeySize
	}
	nk := len(key) / 4
	rounds := nk + 6
	xk := make([]uint32, 4*(rounds+1))
	for i := 0; i < nk; i++ {
		xk[i] = uint32(key[4*i])<<24 | uint32(key[4*i+1])<<16 |
			uint32(key[4*i+2])<<8 | uint32(key[4*i+3])
	}
	for i := nk; i < len(xk); i++ {
		t := xk[i-1]
		switch {
		case i%nk == 0:
			t = subWord(bits.RotateLeft32(t, 8)) ^ rcon[i/nk]
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		xk[i] = xk[i-nk] ^ t
	}
	return &Block{xk: xk, rounds: rounds}, nil
}

// subWord applies the S-box to each byte of a word.
func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 | uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 | uint32(sbox[w&0xff])
}

// Encrypt transforms one plaintext block. dst and src must be 16 bytes and
// may overlap.
func (b *Block) Encrypt(dst, src []byte) {
	var s [16]byte
	copy(s[:], src)
	b.addRoundKey(&s, 0)
	for round := 1; round < b.rounds; round++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		b.addRoundKey(&s, round)
	}
	subBytes(&s)
	shiftRows(&s)
	b.addRoundKey(&s, b.rounds)
	copy(dst, s[:])
}

// Decrypt transforms one ciphertext block. dst and src must be 16 bytes and
// may overlap.
func (b *Block) Decrypt(dst, src []byte) {
	var s [16]byte
	copy(s[:], src)
	b.addRoundKey(&s, b.rounds)
	for round := b.rounds - 1; round >= 1; round-- {
		invShiftRows(&s)
		invSubBytes(&s)
		b.addRoundKey(&s, round)
		invMixColumns(&s)
	}
	invShiftRows(&s)
	invSubBytes(&s)
	b.addRoundKey(&s, 0)
	copy(dst, s[:])
}

// addRoundKey XORs the round's four key words into the state columns.
func (b *Block) addRoundKey(s *[16]byte, round int) {
	for c := 0; c < 4; c++ {
		w := b.xk[4*round+c]
		s[4*c] ^= byte(w >> 24)
		s[4*c+1] ^= byte(w >> 16)
		s[4*c+2] ^= byte(w >> 8)
		s[4*c+3] ^= byte(w)
	}
}

func subBytes(s *[16]byte) {
	for i, v := range s {
		s[i] = sbox[v]
	}
}

func invSubBytes(s *[16]byte) {
	for i, v := range s {
		s[i] = invSbox[v]
	}
}

// shiftRows rotates row r of the column-major state left by r positions.
func shiftRows(s *[16]byte) {
	var t [16]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[4*c+r] = s[4*((c+r)%4)+r]
		}
	}
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[4*c+r] = t[4*c+r]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s *[16]byte) {
	var t [16]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[4*((c+r)%4)+r] = s[4*c+r]
		}
	}
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[4*c+r] = t[4*c+r]
		}
	}
}

func mixColumns(s *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		s[4*c+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		s[4*c+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		s[4*c+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(s *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		s[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		s[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		s[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}
