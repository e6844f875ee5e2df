package ber

import (
	"math/bits"

	"scard.dev/iso7816"
)

// maxLengthBytes is the maximum number of length bytes in the long form. A
// length field declaring more than four length bytes is rejected.
const maxLengthBytes = 4

// lengthSize returns the number of bytes of the BER length field encoding n.
// Lengths up to 127 use the single-byte short form; larger lengths use the
// long form with the minimal number of big-endian length bytes.
func lengthSize(n int) int {
	if n < 0x80 {
		return 1
	}
	return 1 + (bits.Len(uint(n))+7)/8
}

// appendLength appends the BER length field encoding n to dst and returns
// the extended slice.
func appendLength(dst []byte, n int) []byte {
	if n < 0x80 {
		return append(dst, byte(n))
	}
	numBytes := (bits.Len(uint(n)) + 7) / 8
	dst = append(dst, 0x80|byte(numBytes))
	for ; numBytes > 0; numBytes-- {
		dst = append(dst, byte(n>>uint((numBytes-1)*8)))
	}
	return dst
}

// readLength parses a BER length field from r. If the first byte has its top
// bit clear, the length is encoded in its bottom seven bits. Otherwise the
// bottom seven bits give the number of big-endian length bytes that follow;
// more than maxLengthBytes of them fail with [iso7816.ErrInvalidLength].
func readLength(r *iso7816.Reader) (int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b&0x80 == 0 {
		return int(b), nil
	}
	numBytes := int(b & 0x7f)
	if numBytes > maxLengthBytes {
		return 0, iso7816.ErrInvalidLength
	}
	n := 0
	for ; numBytes > 0; numBytes-- {
		if b, err = r.ReadByte(); err != nil {
			return 0, err
		}
		n = n<<8 | int(b)
	}
	return n, nil
}
