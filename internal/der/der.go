// Package der implements the minimal subset of ASN.1 DER needed to encode
// and parse RSA key structures: INTEGER, SEQUENCE, BIT STRING, OCTET
// STRING, NULL and OBJECT IDENTIFIER, with short and long form lengths up
// to two length bytes.
package der

import (
	"errors"

	"github.com/purecrypt/purecrypt-go/bigint"
)

// ASN.1 universal tags used by the key encodings.
const (
	TagInteger          = 0x02
	TagBitString        = 0x03
	TagOctetString      = 0x04
	TagNull             = 0x05
	TagObjectIdentifier = 0x06
	TagSequence         = 0x30
)

var (
	// ErrUnexpectedTag is returned when the next element does not carry the
	// requested tag.
	ErrUnexpectedTag = errors.New("der: unexpected tag")

	// ErrBadLength is returned for truncated, indefinite or non-minimal
	// length encodings.
	ErrBadLength = errors.New("der: malformed length")

	// ErrBadValue is returned when an element's content is malformed.
	ErrBadValue = errors.New("der: malformed value")
)

// encode wraps content in a tag-length-value triple.
func encode(tag byte, content []byte) []byte {
	out := append([]byte{tag}, lengthBytes(len(content))...)
	return append(out, content...)
}

// lengthBytes encodes a content length: short form below 128, otherwise a
// 0x81 or 0x82 length-of-length prefix. Two length bytes cover every key
// size this library produces.
func lengthBytes(n int) []byte {
	switch {
	case n < 0x80:
		return []byte{byte(n)}
	case n < 0x100:
		return []byte{0x81, byte(n)}
	default:
		return []byte{0x82, byte(n >> 8), byte(n)}
	}
}

// Sequence encodes a SEQUENCE with the given (already encoded) content.
func Sequence(content []byte) []byte { return encode(TagSequence, content) }

// Integer encodes an INTEGER. The minimal two's-complement form produced by
// bigint.Bytes is exactly the DER content encoding.
func Integer(x *bigint.Int) []byte { return encode(TagInteger, x.Bytes()) }

// BitString encodes a BIT STRING holding whole bytes, so the leading
// unused-bits octet is always zero.
func BitString(content []byte) []byte {
	return encode(TagBitString, append([]byte{0}, content...))
}

// OctetString encodes an OCTET STRING.
func OctetString(content []byte) []byte { return encode(TagOctetString, content) }

// Null encodes a NULL.
func Null() []byte { return []byte{TagNull, 0} }

// ObjectIdentifier encodes an OBJECT IDENTIFIER from its arc values.
func ObjectIdentifier(arcs []int) []byte {
	content := []byte{byte(arcs[0]*40 + arcs[1])}
	for _, arc := range arcs[2:] {
		content = append(content, base128(arc)...)
	}
	return encode(TagObjectIdentifier, content)
}

// base128 encodes one OID arc with the high bit marking continuation.
func base128(v int) []byte {
	if v == 0 {
		return []byte{0}
	}
	var tmp []byte
	for v > 0 {
		tmp = append(tmp, byte(v&0x7f))
		v >>= 7
	}
	out := make([]byte, len(tmp))
	for i := range tmp {
		out[i] = tmp[len(tmp)-1-i] | 0x80
	}
	out[len(out)-1] &^= 0x80
	return out
}

// Parser reads DER elements sequentially from a byte slice.
type Parser struct {
	data []byte
	off  int
}

// NewParser returns a parser positioned at the start of data.
func NewParser(data []byte) *Parser { return &Parser{data: data} }

// Empty reports whether all input has been consumed.
func (p *Parser) Empty() bool { return p.off >= len(p.data) }

// readTLV consumes the next element, enforcing the expected tag and a
// well-formed length.
func (p *Parser) readTLV(wantTag byte) ([]byte, error) {
	if p.off+2 > len(p.data) {
		return nil, ErrBadLength
	}
	if p.data[p.off] != wantTag {
		return nil, ErrUnexpectedTag
	}
	p.off++
	n := int(p.data[p.off])
	p.off++
	switch {
	case n < 0x80:
		// short form
	case n == 0x81:
		if p.off >= len(p.data) {
			return nil, ErrBadLength
		}
		n = int(p.data[p.off])
		p.off++
		if n < 0x80 {
			return nil, ErrBadLength // non-minimal
		}
	case n == 0x82:
		if p.off+2 > len(p.data) {
			return nil, ErrBadLength
		}
		n = int(p.data[p.off])<<8 | int(p.data[p.off+1])
		p.off += 2
		if n < 0x100 {
			return nil, ErrBadLength // non-minimal
		}
	default:
		// Indefinite lengths and >2 length bytes never appear in key files.
		return nil, ErrBadLength
	}
	if p.off+n > len(p.data) {
		return nil, ErrBadLength
	}
	content := p.data[p.off : p.off+n]
	p.off += n
	return content, nil
}

// Sequence consumes a SEQUENCE and returns a parser over its content.
func (p *Parser) Sequence() (*Parser, error) {
	content, err := p.readTLV(TagSequence)
	if err != nil {
		return nil, err
	}
	return NewParser(content), nil
}

// Integer consumes an INTEGER.
func (p *Parser) Integer() (*bigint.Int, error) {
	content, err := p.readTLV(TagInteger)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, ErrBadValue
	}
	return bigint.FromBytes(content), nil
}

// BitString consumes a BIT STRING and returns its content bytes. Only
// whole-byte strings (zero unused bits) are accepted.
func (p *Parser) BitString() ([]byte, error) {
	content, err := p.readTLV(TagBitString)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 || content[0] != 0 {
		return nil, ErrBadValue
	}
	return content[1:], nil
}

// OctetString consumes an OCTET STRING and returns its content.
func (p *Parser) OctetString() ([]byte, error) {
	return p.readTLV(TagOctetString)
}

// ObjectIdentifier consumes an OBJECT IDENTIFIER and returns its raw
// content bytes for direct comparison against a known encoding.
func (p *Parser) ObjectIdentifier() ([]byte, error) {
	content, err := p.readTLV(TagObjectIdentifier)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, ErrBadValue
	}
	return content, nil
}

// Null consumes a NULL element.
func (p *Parser) Null() error {
	content, err := p.readTLV(TagNull)
	if err != nil {
		return err
	}
	if len(content) != 0 {
		return ErrBadValue
	}
	return nil
}
