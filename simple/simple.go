// Package simple implements SIMPLE-TLV data objects as defined in
// [ISO/IEC 7816-4].
//
// Each SIMPLE-TLV data object consists of a mandatory tag field, a mandatory
// length field and a conditional value field. The tag field is a single byte
// encoding a tag number from 1 to 254; the values '00' and 'FF' are invalid.
// The length field is a single byte for lengths below 255, or the marker
// byte 'FF' followed by two big-endian length bytes. The value field is a
// flat byte sequence; SIMPLE-TLV has no notion of nesting.
//
// [ISO/IEC 7816-4]: https://www.iso.org/standard/54550.html
package simple

import (
	"bytes"
	"fmt"
	"strconv"

	"scard.dev/iso7816"
)

// MaxLength is the maximum size in bytes of a SIMPLE-TLV value field. The
// two-byte length form cannot represent larger values.
const MaxLength = 0xFFFF

// lengthMarker introduces the three-byte length form.
const lengthMarker = 0xFF

// Tag is a SIMPLE-TLV tag field: a single byte encoding a tag number from 1
// to 254. Use [NewTag] or [ParseTag] to obtain a validated Tag.
type Tag uint8

// NewTag converts a byte into a validated [Tag]. The values 0x00 and 0xFF
// are invalid for tag fields and fail with [iso7816.ErrInvalidInput].
func NewTag(v uint8) (Tag, error) {
	if v == 0x00 || v == 0xFF {
		return 0, iso7816.ErrInvalidInput
	}
	return Tag(v), nil
}

// ParseTag converts a hexadecimal string such as "80" into a validated
// [Tag]. If s is not valid hexadecimal, ParseTag fails with
// [iso7816.ErrParseInt].
func ParseTag(s string) (Tag, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, iso7816.ErrParseInt
	}
	return NewTag(uint8(v))
}

// String returns a string representation of t.
func (t Tag) String() string {
	return fmt.Sprintf("Tag %02x", uint8(t))
}

// TLV is one complete SIMPLE-TLV data object. A TLV is immutable once
// constructed.
type TLV struct {
	tag   Tag
	value []byte
}

// New creates a data object from tag and a copy of value. The value may be
// empty, in which case the data object has no value field. A value longer
// than [MaxLength] bytes fails with [iso7816.ErrInvalidLength].
func New(tag Tag, value []byte) (TLV, error) {
	if len(value) > MaxLength {
		return TLV{}, iso7816.ErrInvalidLength
	}
	return TLV{tag: tag, value: bytes.Clone(value)}, nil
}

// Tag returns the tag of t.
func (t TLV) Tag() Tag {
	return t.tag
}

// Len returns the length of the value field of t in bytes.
func (t TLV) Len() int {
	return len(t.value)
}

// Value returns the value field of t. The returned slice must not be
// modified.
func (t TLV) Value() []byte {
	return t.value
}

// Bytes serializes t into its SIMPLE-TLV encoding.
func (t TLV) Bytes() []byte {
	n := len(t.value)
	ret := make([]byte, 0, 3+n)
	ret = append(ret, byte(t.tag))
	if n >= lengthMarker {
		ret = append(ret, lengthMarker, byte(n>>8))
	}
	ret = append(ret, byte(n))
	return append(ret, t.value...)
}

// Equal reports whether t and u have identical SIMPLE-TLV encodings.
func (t TLV) Equal(u TLV) bool {
	return t.tag == u.tag && bytes.Equal(t.value, u.value)
}

// String returns a string representation of t.
func (t TLV) String() string {
	return fmt.Sprintf("%v, len=%d, value:%X", t.tag, len(t.value), t.value)
}

func readLength(r *iso7816.Reader) (int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != lengthMarker {
		return int(b), nil
	}
	n := 0
	for i := 0; i < 2; i++ {
		if b, err = r.ReadByte(); err != nil {
			return 0, err
		}
		n = n<<8 | int(b)
	}
	return n, nil
}

func read(r *iso7816.Reader) (TLV, error) {
	b, err := r.ReadByte()
	if err != nil {
		return TLV{}, err
	}
	tag, err := NewTag(b)
	if err != nil {
		return TLV{}, err
	}
	length, err := readLength(r)
	if err != nil {
		return TLV{}, err
	}
	value, err := r.ReadBytes(length)
	if err != nil {
		return TLV{}, err
	}
	return TLV{tag: tag, value: bytes.Clone(value)}, nil
}

// Parse decodes one data object from the beginning of input. It returns the
// decoded object together with the unprocessed remainder of input. The
// remainder is a subslice of input and is returned whether or not decoding
// succeeded.
func Parse(input []byte) (TLV, []byte, error) {
	r := iso7816.NewReader(input)
	t, err := read(r)
	return t, r.Rest(), err
}

// ParseExact decodes a data object that spans the entire input. If any bytes
// remain after the object, ParseExact fails with [iso7816.ErrInvalidInput].
func ParseExact(input []byte) (TLV, error) {
	t, rest, err := Parse(input)
	if err != nil {
		return TLV{}, err
	}
	if len(rest) != 0 {
		return TLV{}, iso7816.ErrInvalidInput
	}
	return t, nil
}

// ParseAll decodes a sequence of independent data objects from input.
// Parsing stops at the first error and the error is discarded; the objects
// decoded up to that point are returned. Callers that need the error or a
// different policy should loop over [Parse] instead.
func ParseAll(input []byte) []TLV {
	var ret []TLV
	r := iso7816.NewReader(input)
	for r.Len() > 0 {
		t, err := read(r)
		if err != nil {
			break
		}
		ret = append(ret, t)
	}
	return ret
}
