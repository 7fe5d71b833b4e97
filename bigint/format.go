package bigint

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Parse converts a decimal string, with an optional leading sign, to an Int.
func Parse(s string) (*Int, error) {
	return ParseRadix(s, 10)
}

// ParseRadix converts a string in the given radix (2 through 36) to an Int.
// Letter digits are accepted in either case. It returns ErrInvalidRadix for
// an out-of-range radix and ErrInvalidNumber for an empty or malformed
// string.
func ParseRadix(s string, radix int) (*Int, error) {
	if radix < 2 || radix > 36 {
		return nil, ErrInvalidRadix
	}
	sign := 1
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, ErrInvalidNumber
	}
	var mag []uint32
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d < 0 || d >= radix {
			return nil, ErrInvalidNumber
		}
		mag = mulAddWord(mag, uint32(radix), uint32(d))
	}
	return makeInt(sign, mag), nil
}

// String returns the decimal representation of x.
func (x *Int) String() string { return x.Text(10) }

// Text returns the representation of x in the given radix (2 through 36),
// using lower-case letter digits. It returns an empty string for an
// out-of-range radix.
func (x *Int) Text(radix int) string {
	if radix < 2 || radix > 36 {
		return ""
	}
	if x.sign == 0 {
		return "0"
	}
	var out []byte
	mag := x.mag
	for len(mag) > 0 {
		var r uint32
		mag, r = divModWord(mag, uint32(radix))
		out = append(out, digits[r])
	}
	if x.sign < 0 {
		out = append(out, '-')
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}
