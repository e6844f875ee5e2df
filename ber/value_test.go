package ber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scard.dev/iso7816"
)

func TestValue_Primitive(t *testing.T) {
	contents := []byte{1, 2, 3}
	v := PrimitiveValue[Tag](contents)
	assert.False(t, v.Constructed())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, contents, v.Contents())
	assert.Nil(t, v.Children())

	// the value owns a copy of its payload
	contents[0] = 0xFF
	assert.Equal(t, []byte{1, 2, 3}, v.Contents())

	err := v.Append(TLV[Tag]{})
	assert.ErrorIs(t, err, iso7816.ErrInconsistent)
}

func TestValue_Constructed(t *testing.T) {
	tag, err := NewTag(0x01)
	require.NoError(t, err)
	child, err := NewPrimitive(tag, []byte{0x00})
	require.NoError(t, err)

	v := ConstructedValue[Tag]()
	assert.True(t, v.Constructed())
	assert.Equal(t, 0, v.Len())

	require.NoError(t, v.Append(child))
	require.NoError(t, v.Append(child))
	assert.Len(t, v.Children(), 2)

	// each child contributes its full tag+length+value size
	assert.Equal(t, 2*child.Len(), v.Len())
	assert.Equal(t, 6, v.Len())
}

func TestValue_Zero(t *testing.T) {
	var v Value[Tag]
	assert.False(t, v.Constructed())
	assert.Equal(t, 0, v.Len())
}
