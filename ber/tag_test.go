package ber

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scard.dev/iso7816"
)

func TestNewTag(t *testing.T) {
	tt := map[string]struct {
		value uint64
		err   error
	}{
		"OneByte":            {0x01, nil},
		"OneByteMax":         {0x1E, nil},
		"TwoBytes":           {0x7F22, nil},
		"ThreeBytes":         {0x7FFF22, nil},
		"Zero":               {0x00, iso7816.ErrInvalidTag},
		"OneByteMoreSignal":  {0x7F, iso7816.ErrInvalidTag},
		"LowFiveBitsSet":     {0x1F, iso7816.ErrInvalidTag},
		"SecondByteNotLast":  {0x7F80, iso7816.ErrInvalidTag},
		"SecondByteTerminal": {0x7F7F00, iso7816.ErrInvalidTag},
		"FourBytes":          {0x7F808000, iso7816.ErrTagReserved},
		"EightBytes":         {0x7F80808080808000, iso7816.ErrTagReserved},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			_, err := NewTag(tc.value)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTag_IntegerWidths(t *testing.T) {
	want, err := NewTag(uint64(0x7F22))
	require.NoError(t, err)

	fromInt, err := NewTag(int(0x7F22))
	require.NoError(t, err)
	assert.Equal(t, want, fromInt)

	fromUint16, err := NewTag(uint16(0x7F22))
	require.NoError(t, err)
	assert.Equal(t, want, fromUint16)

	// negative values wrap to huge unsigned values and cannot form a tag
	_, err = NewTag(int8(-1))
	assert.ErrorIs(t, err, iso7816.ErrTagReserved)
}

func TestParseTag(t *testing.T) {
	for _, s := range []string{"01", "7f22", "7fff22"} {
		tag, err := ParseTag(s)
		require.NoError(t, err, s)
		assert.Equal(t, len(s)/2, tag.Len(), s)

		raw, err := hex.DecodeString(s)
		require.NoError(t, err)
		assert.Equal(t, raw, tag.Bytes(), s)
	}

	_, err := ParseTag("bad one")
	assert.ErrorIs(t, err, iso7816.ErrParseInt)
}

func TestTag_ReadTag(t *testing.T) {
	tt := map[string]struct {
		input []byte
		want  []byte // canonical bytes, nil if an error is expected
		rest  int    // unread bytes after the tag
		err   error
	}{
		"OneByte":       {[]byte{0x01}, []byte{0x01}, 0, nil},
		"TwoBytes":      {[]byte{0x7F, 0x22}, []byte{0x7F, 0x22}, 0, nil},
		"ThreeBytes":    {[]byte{0x7F, 0xFF, 0x22}, []byte{0x7F, 0xFF, 0x22}, 0, nil},
		"StopsAtEnd":    {[]byte{0x7F, 0x22, 0xAA, 0xBB}, []byte{0x7F, 0x22}, 2, nil},
		"Truncated":     {[]byte{0x7F, 0xFF}, nil, 0, iso7816.ErrTruncated},
		"TruncatedLong": {[]byte{0x7F, 0xFF, 0xFF}, nil, 0, iso7816.ErrTruncated},
		"Empty":         {[]byte{}, nil, 0, iso7816.ErrTruncated},
		"FourBytes":     {[]byte{0x7F, 0x80, 0x80, 0x00}, nil, 0, iso7816.ErrTagReserved},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			r := iso7816.NewReader(tc.input)
			tag, err := Tag{}.ReadTag(r)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, tag.Bytes())
			assert.Equal(t, len(tc.want), tag.Len())
			assert.Equal(t, tc.rest, r.Len())
		})
	}
}

func TestTag_Class(t *testing.T) {
	tt := map[string]struct {
		value uint64
		want  Class
	}{
		"Universal":       {0x01, ClassUniversal},
		"Application":     {0x41, ClassApplication},
		"ContextSpecific": {0x81, ClassContextSpecific},
		"Private":         {0xC1, ClassPrivate},
		"MultiByte":       {0x7F22, ClassApplication},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			tag, err := NewTag(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tag.Class())
		})
	}
}

func TestTag_Constructed(t *testing.T) {
	tt := map[string]struct {
		value uint64
		want  bool
	}{
		"Primitive":          {0x01, false},
		"Constructed":        {0x21, true},
		"MultiBytePrimitive": {0x9F22, false},
		"MultiByteBit6Set":   {0x7F22, true},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			tag, err := NewTag(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tag.Constructed())
		})
	}
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "Universal", ClassUniversal.String())
	assert.Equal(t, "ContextSpecific", ClassContextSpecific.String())
	assert.Equal(t, "Class(7)", Class(7).String())
}
