package ber

import (
	"bytes"

	"scard.dev/iso7816"
)

// Value is the value field of a BER-TLV data object. A Value is either
// primitive, carrying an opaque byte payload, or constructed, carrying an
// ordered sequence of nested [TLV] data objects. The order of children is
// semantically significant and preserved.
//
// The zero Value is an empty primitive value. A constructed Value may grow
// via [Value.Append] while its owner assembles the tree; once the Value has
// been handed to [New] the node treats it as frozen.
type Value[T TagType[T]] struct {
	constructed bool
	contents    []byte   // primitive payload
	children    []TLV[T] // constructed children
}

// PrimitiveValue creates a primitive [Value] carrying a copy of contents.
// The payload may be empty, in which case the data object has no value
// field.
func PrimitiveValue[T TagType[T]](contents []byte) Value[T] {
	return Value[T]{contents: bytes.Clone(contents)}
}

// ConstructedValue creates a constructed [Value] owning the given child data
// objects, in order.
func ConstructedValue[T TagType[T]](children ...TLV[T]) Value[T] {
	return Value[T]{constructed: true, children: children}
}

// Constructed reports whether v is a constructed value.
func (v Value[T]) Constructed() bool {
	return v.constructed
}

// Len returns the length of v in bytes once serialized into BER-TLV data.
// For a constructed value this is the sum of the full encoded lengths (tag,
// length and value fields) of its children.
func (v Value[T]) Len() int {
	if !v.constructed {
		return len(v.contents)
	}
	n := 0
	for i := range v.children {
		n += v.children[i].Len()
	}
	return n
}

// Contents returns the byte payload of a primitive value. For a constructed
// value it returns nil; use [Value.Children] instead. The returned slice
// must not be modified.
func (v Value[T]) Contents() []byte {
	return v.contents
}

// Children returns the child data objects of a constructed value, in order.
// For a primitive value it returns nil. The returned slice must not be
// modified.
func (v Value[T]) Children() []TLV[T] {
	return v.children
}

// Append appends a child data object to a constructed value. Appending to a
// primitive value fails with [iso7816.ErrInconsistent]: a primitive payload
// is a closed byte sequence, not a list of data objects.
func (v *Value[T]) Append(child TLV[T]) error {
	if !v.constructed {
		return iso7816.ErrInconsistent
	}
	v.children = append(v.children, child)
	return nil
}
