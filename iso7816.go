// Package iso7816 implements the two tag-length-value encodings defined in
// [ISO/IEC 7816-4] for smart-card data objects. The package itself only
// provides the pieces shared by both encodings: the [Reader] cursor over an
// input buffer and the closed set of error values. Encoding and decoding are
// implemented in the subpackages of this package:
//
//   - [scard.dev/iso7816/ber] implements BER-TLV data objects: tags of one to
//     three bytes carrying a class and an encoding indication, two-form
//     lengths, and values that are either raw bytes or nested TLV objects.
//   - [scard.dev/iso7816/simple] implements SIMPLE-TLV data objects: a
//     single-byte tag, a two-form length and a flat byte value.
//
// Both codecs operate on byte slices and validate structural well-formedness
// only. Interpreting the payload of a data object is left to the caller.
//
// [ISO/IEC 7816-4]: https://www.iso.org/standard/54550.html
package iso7816
