package bigint

// Bytes returns the minimal big-endian two's-complement encoding of x,
// matching Java's BigInteger.toByteArray: a zero value encodes as a single
// zero byte, and a leading zero byte is inserted when the high bit of the
// first magnitude byte would otherwise flip the sign.
func (x *Int) Bytes() []byte {
	if x.sign == 0 {
		return []byte{0}
	}
	mag := magBytesBE(x.mag)
	if x.sign > 0 {
		if mag[0]&0x80 != 0 {
			return append([]byte{0}, mag...)
		}
		return mag
	}
	width := len(mag)
	if !fitsNegative(mag) {
		width++
	}
	return twosComplement(mag, width)
}

// FromBytes decodes a big-endian two's-complement byte slice, inverting
// Bytes. An empty slice decodes as zero.
func FromBytes(b []byte) *Int {
	if len(b) == 0 {
		return &Int{}
	}
	if b[0]&0x80 == 0 {
		return makeInt(1, bytesToMag(b))
	}
	// Negative: invert and add one to recover the magnitude.
	inv := make([]byte, len(b))
	for i := range b {
		inv[i] = ^b[i]
	}
	mag := magAdd(bytesToMag(inv), []uint32{1})
	return makeInt(-1, mag)
}

// FromUnsignedBytes interprets b as an unsigned big-endian magnitude,
// like Java's BigInteger(1, bytes) constructor.
func FromUnsignedBytes(b []byte) *Int {
	return makeInt(1, bytesToMag(b))
}

// UnsignedBytes returns the magnitude of x as a big-endian slice of exactly
// size bytes, left-padded with zeros. If the magnitude does not fit, the
// minimal encoding is returned instead (longer than size); callers that
// require the fixed width must check the length.
func (x *Int) UnsignedBytes(size int) []byte {
	if x.sign == 0 {
		return make([]byte, size)
	}
	mag := magBytesBE(x.mag)
	if len(mag) >= size {
		return mag
	}
	out := make([]byte, size)
	copy(out[size-len(mag):], mag)
	return out
}

// fitsNegative reports whether -mag is representable in len(mag) bytes of
// two's complement, i.e. mag <= 2^(8*len-1).
func fitsNegative(mag []byte) bool {
	if mag[0] < 0x80 {
		return true
	}
	if mag[0] > 0x80 {
		return false
	}
	for _, b := range mag[1:] {
		if b != 0 {
			return false
		}
	}
	return true
}

// twosComplement encodes -mag in exactly width bytes.
func twosComplement(mag []byte, width int) []byte {
	out := make([]byte, width)
	copy(out[width-len(mag):], mag)
	for i := range out {
		out[i] = ^out[i]
	}
	for i := width - 1; i >= 0; i-- {
		out[i]++
		if out[i] != 0 {
			break
		}
	}
	return out
}

// magBytesBE converts a canonical magnitude to its minimal big-endian byte
// form. The result has at least one byte for a non-empty magnitude.
func magBytesBE(mag []uint32) []byte {
	out := make([]byte, len(mag)*4)
	for i, limb := range mag {
		off := len(out) - 4*i - 4
		out[off] = byte(limb >> 24)
		out[off+1] = byte(limb >> 16)
		out[off+2] = byte(limb >> 8)
		out[off+3] = byte(limb)
	}
	i := 0
	for i < len(out)-1 && out[i] == 0 {
		i++
	}
	return out[i:]
}

// bytesToMag converts big-endian bytes to little-endian limbs.
func bytesToMag(b []byte) []uint32 {
	mag := make([]uint32, (len(b)+3)/4)
	for i := 0; i < len(b); i++ {
		// Byte i from the end goes into limb i/4.
		pos := len(b) - 1 - i
		mag[i/4] |= uint32(b[pos]) << (uint(i) % 4 * 8)
	}
	return trim(mag)
}
