package ber

import (
	"bytes"
	"fmt"
	"strings"

	"scard.dev/iso7816"
)

// maxDepth is the maximum nesting depth of constructed data objects accepted
// during parsing. Decoding is recursive, so without a cap an adversarial
// input could drive recursion depth linearly with nesting depth.
const maxDepth = 50

// TLV is one complete BER-TLV data object: a validated pair of a tag and a
// [Value]. A TLV is immutable once constructed. The zero TLV is an empty
// primitive data object with the zero tag; it is not a valid data object and
// is returned alongside errors.
//
// The tag type T is usually the built-in [Tag]; see [TagType] for
// substituting a custom tag type.
type TLV[T TagType[T]] struct {
	tag   T
	value Value[T]
}

// New creates a data object from tag and value. New fails with
// [iso7816.ErrInconsistent] if the tag indicates a constructed encoding and
// the value is primitive, or vice versa. There is no partially built state:
// construction either fully succeeds or fails.
func New[T TagType[T]](tag T, value Value[T]) (TLV[T], error) {
	if tag.Constructed() != value.Constructed() {
		return TLV[T]{}, iso7816.ErrInconsistent
	}
	return TLV[T]{tag: tag, value: value}, nil
}

// NewPrimitive creates a primitive data object carrying a copy of contents.
// It is shorthand for [New] with a [PrimitiveValue].
func NewPrimitive[T TagType[T]](tag T, contents []byte) (TLV[T], error) {
	return New(tag, PrimitiveValue[T](contents))
}

// NewConstructed creates a constructed data object owning the given
// children. It is shorthand for [New] with a [ConstructedValue].
func NewConstructed[T TagType[T]](tag T, children ...TLV[T]) (TLV[T], error) {
	return New(tag, ConstructedValue[T](children...))
}

// Tag returns the tag of t.
func (t TLV[T]) Tag() T {
	return t.tag
}

// Value returns the value of t. The returned Value shares its payload and
// children with t; it must be treated as read-only.
func (t TLV[T]) Value() Value[T] {
	return t.value
}

// Len returns the total number of bytes of the encoding of t: the tag field,
// the length field and the value field.
func (t TLV[T]) Len() int {
	n := t.value.Len()
	return t.tag.Len() + lengthSize(n) + n
}

// Bytes serializes t into its BER-TLV encoding: the tag bytes, the canonical
// length field, and the raw payload or the concatenated encodings of the
// children.
func (t TLV[T]) Bytes() []byte {
	return t.appendTo(make([]byte, 0, t.Len()))
}

func (t TLV[T]) appendTo(dst []byte) []byte {
	dst = append(dst, t.tag.Bytes()...)
	dst = appendLength(dst, t.value.Len())
	if t.value.constructed {
		for i := range t.value.children {
			dst = t.value.children[i].appendTo(dst)
		}
	} else {
		dst = append(dst, t.value.contents...)
	}
	return dst
}

// Equal reports whether t and u have identical BER-TLV encodings.
func (t TLV[T]) Equal(u TLV[T]) bool {
	return bytes.Equal(t.Bytes(), u.Bytes())
}

// String returns a multi-line representation of t. Children of constructed
// values are rendered indented below their parent.
func (t TLV[T]) String() string {
	var sb strings.Builder
	t.writeIndented(&sb, 0)
	return sb.String()
}

func (t TLV[T]) writeIndented(sb *strings.Builder, indent int) {
	fmt.Fprintf(sb, "%v, len=%d, value:", t.tag, t.value.Len())
	if !t.value.constructed {
		fmt.Fprintf(sb, "%X", t.value.contents)
		return
	}
	for i := range t.value.children {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", indent+4))
		t.value.children[i].writeIndented(sb, indent+4)
	}
}

// read decodes one data object from r. Decoding a constructed value recurses
// into read for each child until the children's encoded lengths sum to
// exactly the declared length.
func read[T TagType[T]](r *iso7816.Reader, depth int) (TLV[T], error) {
	if depth >= maxDepth {
		return TLV[T]{}, iso7816.ErrDepthExceeded
	}
	var zero T
	tag, err := zero.ReadTag(r)
	if err != nil {
		return TLV[T]{}, err
	}
	length, err := readLength(r)
	if err != nil {
		return TLV[T]{}, err
	}

	var value Value[T]
	if tag.Constructed() {
		value = ConstructedValue[T]()
		for value.Len() < length {
			child, err := read[T](r, depth+1)
			if err != nil {
				return TLV[T]{}, err
			}
			if err = value.Append(child); err != nil {
				return TLV[T]{}, err
			}
		}
	} else {
		contents, err := r.ReadBytes(length)
		if err != nil {
			return TLV[T]{}, err
		}
		value = PrimitiveValue[T](contents)
	}

	t, err := New(tag, value)
	if err != nil {
		return TLV[T]{}, err
	}
	if t.value.Len() != length {
		// The children's encoded lengths overshot the declared length. The
		// input is corrupt even though every child parsed.
		return TLV[T]{}, iso7816.ErrInconsistent
	}
	return t, nil
}

// Parse decodes one data object from the beginning of input. It returns the
// decoded object together with the unprocessed remainder of input. The
// remainder is a subslice of input and is returned whether or not decoding
// succeeded.
//
// The tag type must be instantiated explicitly at the call site:
//
//	t, rest, err := ber.Parse[ber.Tag](input)
func Parse[T TagType[T]](input []byte) (TLV[T], []byte, error) {
	r := iso7816.NewReader(input)
	t, err := read[T](r, 0)
	return t, r.Rest(), err
}

// ParseExact decodes a data object that spans the entire input. If any bytes
// remain after the object, even if the prefix was valid, ParseExact fails
// with [iso7816.ErrInvalidInput].
func ParseExact[T TagType[T]](input []byte) (TLV[T], error) {
	t, rest, err := Parse[T](input)
	if err != nil {
		return TLV[T]{}, err
	}
	if len(rest) != 0 {
		return TLV[T]{}, iso7816.ErrInvalidInput
	}
	return t, nil
}

// ParseAll decodes a sequence of independent top-level data objects from
// input. Parsing stops at the first error and the error is discarded; the
// objects decoded up to that point are returned. Callers that need the error
// or a different policy should loop over [Parse] instead.
func ParseAll[T TagType[T]](input []byte) []TLV[T] {
	var ret []TLV[T]
	r := iso7816.NewReader(input)
	for r.Len() > 0 {
		t, err := read[T](r, 0)
		if err != nil {
			break
		}
		ret = append(ret, t)
	}
	return ret
}
