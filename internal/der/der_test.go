package der

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"

	"github.com/purecrypt/purecrypt-go/bigint"
)

func TestLengthForms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x81, 0x80}},
		{255, []byte{0x81, 0xff}},
		{256, []byte{0x82, 0x01, 0x00}},
		{65535, []byte{0x82, 0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := lengthBytes(tt.n); !bytes.Equal(got, tt.want) {
			t.Errorf("lengthBytes(%d) = %x, want %x", tt.n, got, tt.want)
		}
	}
}

func TestIntegerMatchesStdlibASN1(t *testing.T) {
	t.Parallel()
	for _, s := range []string{
		"0", "1", "-1", "127", "128", "255", "256", "-128", "-129",
		"123456789012345678901234567890",
		"-123456789012345678901234567890",
	} {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatal("bad test value")
		}
		want, err := asn1.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		x, err := bigint.Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := Integer(x); !bytes.Equal(got, want) {
			t.Errorf("Integer(%s) = %x, want %x", s, got, want)
		}
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0", "-255", "65537", "18446744073709551617"} {
		x, err := bigint.Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		back, err := NewParser(Integer(x)).Integer()
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(x) {
			t.Errorf("round trip of %s = %s", s, back)
		}
	}
}

func TestObjectIdentifier(t *testing.T) {
	t.Parallel()
	// rsaEncryption 1.2.840.113549.1.1.1
	want, err := asn1.Marshal(asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	got := ObjectIdentifier([]int{1, 2, 840, 113549, 1, 1, 1})
	if !bytes.Equal(got, want) {
		t.Errorf("ObjectIdentifier = %x, want %x", got, want)
	}
}

func TestSequenceNesting(t *testing.T) {
	t.Parallel()
	inner := append(Integer(bigint.New(7)), Null()...)
	outer := Sequence(inner)

	p, err := NewParser(outer).Sequence()
	if err != nil {
		t.Fatal(err)
	}
	v, err := p.Integer()
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "7" {
		t.Errorf("inner integer = %s", v)
	}
	if err := p.Null(); err != nil {
		t.Fatal(err)
	}
	if !p.Empty() {
		t.Error("parser not empty after consuming all elements")
	}
}

func TestBitStringAndOctetString(t *testing.T) {
	t.Parallel()
	payload := []byte{0xde, 0xad, 0xbe, 0xef}

	got, err := NewParser(BitString(payload)).BitString()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("BitString round trip = %x", got)
	}

	got, err = NewParser(OctetString(payload)).OctetString()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("OctetString round trip = %x", got)
	}
}

func TestParserRejectsMalformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrBadLength},
		{"wrong tag", []byte{0x04, 0x01, 0x00}, ErrUnexpectedTag},
		{"truncated content", []byte{0x02, 0x05, 0x01}, ErrBadLength},
		{"indefinite length", []byte{0x02, 0x80, 0x01}, ErrBadLength},
		{"three length bytes", []byte{0x02, 0x83, 0x01, 0x00, 0x00}, ErrBadLength},
		{"non-minimal long form", []byte{0x02, 0x81, 0x01, 0x00}, ErrBadLength},
		{"empty integer", []byte{0x02, 0x00}, ErrBadValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewParser(tt.data).Integer(); !errors.Is(err, tt.want) {
				t.Errorf("Integer() error = %v, want %v", err, tt.want)
			}
		})
	}
}
