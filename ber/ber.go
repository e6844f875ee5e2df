// Package ber implements BER-TLV data objects as defined in [ISO/IEC 7816-4].
// See also the basic encoding rules of ASN.1 in Rec. ITU-T X.690.
//
// Each BER-TLV data object consists of a mandatory tag field, a mandatory
// length field and a conditional value field. The tag field consists of one
// to three bytes and indicates a class, an encoding and a tag number. The
// length field encodes the number N of value bytes. If the tag indicates a
// primitive encoding, the value field consists of N raw bytes. If the tag
// indicates a constructed encoding, the value field consists of complete
// nested BER-TLV data objects whose encodings total exactly N bytes.
//
// # Data Model
//
// A data object is represented by the [TLV] type, a validated pair of a tag
// and a [Value]. A Value is either primitive (a byte payload) or constructed
// (an ordered list of child TLVs). The central structural rule is that the
// constructed flag of the tag and the shape of the value must agree; the
// [New] constructor and the parse functions enforce it and fail with
// [scard.dev/iso7816.ErrInconsistent] otherwise.
//
// # Custom Tag Types
//
// [TLV] and [Value] are generic over their tag type. The built-in [Tag] type
// implements the strict ISO/IEC 7816-4 tag grammar. Deployments whose
// specifications deviate from the general rule for specific tag values can
// substitute their own type satisfying [TagType], typically wrapping [Tag]
// and overriding only the Constructed method. See the package examples.
//
// [ISO/IEC 7816-4]: https://www.iso.org/standard/54550.html
package ber

// Class holds the class part of a BER-TLV tag. Bits 8 and 7 of the first
// byte of the tag field indicate a class:
//   - the value 00 indicates a data object of the universal class,
//   - the value 01 indicates a data object of the application class,
//   - the value 10 indicates a data object of the context-specific class,
//   - the value 11 indicates a data object of the private class.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can
// be encoded in the top two bits of a tag's first byte.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)
