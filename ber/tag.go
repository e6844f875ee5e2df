package ber

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"scard.dev/iso7816"
)

// Masks for the first byte of a tag field.
const (
	classMask       = 0b1100_0000
	constructedMask = 0b0010_0000
	numberMask      = 0b0001_1111 // all bits set signals subsequent bytes
	moreBytesMask   = 0b1000_0000 // continuation bit of subsequent bytes
)

// maxTagLen is the maximum number of bytes in a tag field. ISO/IEC 7816-4
// supports tag fields of one, two and three bytes; longer tag fields are
// reserved for future use.
const maxTagLen = 3

// TagType is the contract that a type must satisfy to act as the tag type of
// the generic [TLV] and [Value] types. The built-in [Tag] type is the default
// implementation.
//
// Alternate implementations typically wrap [Tag] and override only
// Constructed, forcing a specific raw tag value to report a primitive (or
// constructed) encoding where the deployed specification deviates from the
// general ISO/IEC 7816-4 rule. Such an override affects only the branch
// taken during decoding and the consistency check of [New]; it must never
// change the bytes returned by Bytes.
//
// The type parameter T is the implementing type itself. ReadTag is invoked
// on the zero value of T, so T must be meaningful as its zero value.
type TagType[T any] interface {
	// Bytes returns the canonical byte encoding of the tag.
	Bytes() []byte

	// Len returns the number of bytes in the canonical encoding.
	Len() int

	// Constructed reports whether the tag announces a constructed value
	// field, i.e. a value that is itself encoded in BER-TLV.
	Constructed() bool

	// ReadTag parses a tag from r and returns it. ReadTag is called on the
	// zero value of T.
	ReadTag(r *iso7816.Reader) (T, error)
}

// Tag is a BER-TLV tag field as defined in ISO/IEC 7816-4. A Tag consists of
// one to three bytes and encodes a class, a primitive or constructed
// encoding indication and a tag number. The zero Tag is not a valid tag;
// Tags are obtained from [NewTag], [ParseTag] or by parsing and are
// immutable thereafter.
type Tag struct {
	raw [maxTagLen]byte // canonical encoding, right-aligned
	n   uint8           // number of significant bytes, 1..3
}

// NewTag converts an integer into a validated [Tag]. The big-endian byte
// representation of v, with leading zero bytes stripped, must obey the tag
// grammar:
//
//   - a single byte must not have all of its low five bits set,
//   - in a two-byte tag the second byte must not have its continuation bit
//     set,
//   - in a three-byte tag the second byte must have its continuation bit set
//     and the third must not.
//
// Violations fail with [iso7816.ErrInvalidTag]. A value of zero bytes fails
// the same way. A value requiring four or more bytes fails with
// [iso7816.ErrTagReserved].
func NewTag[T constraints.Integer](v T) (Tag, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	b := buf[:]
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return tagFromBytes(b)
}

// ParseTag converts a hexadecimal string such as "7f22" into a validated
// [Tag]. If s is not valid hexadecimal, ParseTag fails with
// [iso7816.ErrParseInt]. The numeric value is validated as in [NewTag].
func ParseTag(s string) (Tag, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Tag{}, iso7816.ErrParseInt
	}
	return NewTag(v)
}

// tagFromBytes validates b against the tag grammar and builds a [Tag] from
// it. b must already be stripped of leading zero bytes.
func tagFromBytes(b []byte) (Tag, error) {
	switch len(b) {
	case 1:
		if b[0]&numberMask == numberMask {
			// a lone first byte announcing subsequent bytes
			return Tag{}, iso7816.ErrInvalidTag
		}
	case 2:
		if b[1]&moreBytesMask != 0 {
			// the second byte must be terminal
			return Tag{}, iso7816.ErrInvalidTag
		}
	case 3:
		if b[1]&moreBytesMask == 0 || b[2]&moreBytesMask != 0 {
			// the second byte must announce more bytes, the third must not
			return Tag{}, iso7816.ErrInvalidTag
		}
	case 0:
		return Tag{}, iso7816.ErrInvalidTag
	default:
		return Tag{}, iso7816.ErrTagReserved
	}
	t := Tag{n: uint8(len(b))}
	copy(t.raw[maxTagLen-len(b):], b)
	return t, nil
}

// ReadTag parses a tag field from r. It implements [TagType] for Tag.
//
// If the low five bits of the first byte are all set, subsequent bytes are
// read until one without the continuation bit terminates the tag. A tag
// field of four or more bytes fails with [iso7816.ErrTagReserved], an
// exhausted cursor with [iso7816.ErrTruncated] and any other grammar
// violation with [iso7816.ErrInvalidTag].
func (Tag) ReadTag(r *iso7816.Reader) (Tag, error) {
	first, err := r.ReadByte()
	if err != nil {
		return Tag{}, err
	}
	b := make([]byte, 1, maxTagLen)
	b[0] = first
	if first&numberMask == numberMask {
		for {
			next, err := r.ReadByte()
			if err != nil {
				return Tag{}, err
			}
			if len(b) == maxTagLen {
				return Tag{}, iso7816.ErrTagReserved
			}
			b = append(b, next)
			if next&moreBytesMask == 0 {
				break
			}
		}
	}
	return tagFromBytes(b)
}

// Bytes returns the canonical encoding of t as a byte slice of length
// [Tag.Len].
func (t Tag) Bytes() []byte {
	return t.raw[maxTagLen-t.n:]
}

// Len returns the length of the tag field in bytes.
func (t Tag) Len() int {
	return int(t.n)
}

// first returns the first byte of the tag field, which carries the class and
// encoding bits.
func (t Tag) first() byte {
	return t.raw[maxTagLen-t.n]
}

// Class returns the class encoded in bits 8 and 7 of the first tag byte.
func (t Tag) Class() Class {
	return Class(t.first()&classMask) >> 6
}

// Constructed reports whether bit 6 of the first tag byte indicates a
// constructed encoding of the data object. The value false indicates a
// primitive encoding, i.e. the value field is not encoded in BER-TLV.
func (t Tag) Constructed() bool {
	return t.first()&constructedMask != 0
}

// String returns a string representation of t.
func (t Tag) String() string {
	return fmt.Sprintf("Tag %x (%v)", t.Bytes(), t.Class())
}
