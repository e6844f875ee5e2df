package iso7816

import "errors"

// These errors form the complete set of failure modes of the TLV codecs in
// this module. Every error returned by a decode or construct operation
// matches exactly one of them under [errors.Is]. There is no recovery inside
// the codecs: a malformed child aborts the whole decode and the error is
// surfaced to the caller unchanged.
var (
	// ErrInvalidInput indicates that an input does not match the expected
	// encoding. In particular it is returned when an exact-consumption parse
	// succeeds but leaves trailing bytes.
	ErrInvalidInput = errors.New("iso7816: invalid input")

	// ErrInvalidTag indicates a byte pattern that violates the tag grammar.
	ErrInvalidTag = errors.New("iso7816: invalid tag")

	// ErrTagReserved indicates a tag that is valid in the grammar sense but
	// would require four or more bytes, which ISO/IEC 7816-4 reserves for
	// future use.
	ErrTagReserved = errors.New("iso7816: tag is reserved for future use")

	// ErrTruncated indicates that the input ended before a required byte,
	// length field or payload was fully read.
	ErrTruncated = errors.New("iso7816: truncated input")

	// ErrInvalidLength indicates a length field that the codec does not
	// support, such as a long-form length with more than four length bytes.
	ErrInvalidLength = errors.New("iso7816: invalid length")

	// ErrInconsistent indicates a (tag, value) pair whose constructed flags
	// disagree, either at construction time or after a post-parse length
	// check.
	ErrInconsistent = errors.New("iso7816: inconsistent tag and value")

	// ErrParseInt indicates that a textual tag specification was not valid
	// hexadecimal.
	ErrParseInt = errors.New("iso7816: error parsing input as int")

	// ErrDepthExceeded indicates that a decode exceeded the maximum nesting
	// depth of constructed values.
	ErrDepthExceeded = errors.New("iso7816: maximum nesting depth exceeded")
)
