package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeap_Alloc(t *testing.T) {
	assert := assert.New(t)

	h := &Heap{Size: 1024}

	a, err := h.Alloc(256)
	assert.NoError(err)
	assert.Len(a, 256)

	b, err := h.Alloc(256)
	assert.NoError(err)
	assert.Len(b, 256)

	// Blocks must not overlap.
	a[255] = 0xaa
	b[0] = 0x55
	assert.Equal(byte(0xaa), a[255])
	assert.Equal(byte(0x55), b[0])

	assert.Equal(512, h.InUse())
	assert.Equal(2, h.Blocks())
}

func TestHeap_Alloc_DefaultSize(t *testing.T) {
	assert := assert.New(t)

	h := &Heap{}
	_, err := h.Alloc(16)
	assert.NoError(err)
	assert.Equal(HEAP_DEFAULT_SIZE, h.Size)
}

func TestHeap_Alloc_Exhausted(t *testing.T) {
	assert := assert.New(t)

	h := &Heap{Size: 512}

	_, err := h.Alloc(256)
	assert.NoError(err)
	_, err = h.Alloc(256)
	assert.NoError(err)

	block, err := h.Alloc(1)
	assert.ErrorIs(err, ErrOutOfMemory)
	assert.Nil(block)
	assert.Equal(2, h.Blocks())
}

func TestHeap_Alloc_BadSize(t *testing.T) {
	assert := assert.New(t)

	h := &Heap{Size: 512}
	_, err := h.Alloc(0)
	assert.ErrorIs(err, ErrSize)
	_, err = h.Alloc(-1)
	assert.ErrorIs(err, ErrSize)
}

func TestHeap_Free_Reuse(t *testing.T) {
	assert := assert.New(t)

	h := &Heap{Size: 768}

	a, _ := h.Alloc(256)
	b, _ := h.Alloc(256)
	c, _ := h.Alloc(256)

	b[10] = 0xff
	assert.NoError(h.Free(b))
	assert.Equal(512, h.InUse())

	// First fit lands in the gap left by b, zeroed.
	d, err := h.Alloc(256)
	assert.NoError(err)
	assert.Equal(byte(0), d[10])
	assert.True(&d[0] == &b[0])

	assert.NoError(h.Free(a))
	assert.NoError(h.Free(c))
	assert.NoError(h.Free(d))
	assert.Equal(0, h.InUse())
}

func TestHeap_Free_Unknown(t *testing.T) {
	assert := assert.New(t)

	h := &Heap{Size: 512}
	a, _ := h.Alloc(256)

	assert.ErrorIs(h.Free(make([]byte, 256)), ErrHandle)
	assert.ErrorIs(h.Free(nil), ErrHandle)

	assert.NoError(h.Free(a))
	assert.ErrorIs(h.Free(a), ErrHandle)
}
