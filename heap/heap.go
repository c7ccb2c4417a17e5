// Package heap implements the system heap that channel blocks are
// allocated from: a fixed-size arena with first-fit allocation.
package heap

import (
	"errors"
	"log"
	"slices"

	"github.com/ezrec/echodrv/translate"
)

var f = translate.From

const (
	// HEAP_DEFAULT_SIZE is the arena size used when Size is zero.
	HEAP_DEFAULT_SIZE = 0x4000
)

var (
	ErrOutOfMemory = errors.New(f("heap exhausted"))
	ErrSize        = errors.New(f("invalid block size"))
	ErrHandle      = errors.New(f("block not allocated from this heap"))
)

type allocation struct {
	offset int
	size   int
}

// Heap is a fixed-size arena. Blocks handed out are zeroed, never overlap,
// and stay valid until freed. A Heap is not safe for concurrent use.
type Heap struct {
	Size    int  // Arena size in bytes, HEAP_DEFAULT_SIZE if zero.
	Verbose bool // If set, logs allocations.

	arena  []byte
	blocks []allocation // Sorted by offset.
}

func (h *Heap) init() {
	if h.arena != nil {
		return
	}

	if h.Size == 0 {
		h.Size = HEAP_DEFAULT_SIZE
	}
	h.arena = make([]byte, h.Size)
}

// Alloc returns a zeroed block of size bytes.
func (h *Heap) Alloc(size int) (block []byte, err error) {
	if size <= 0 {
		err = ErrSize
		return
	}

	h.init()

	index := 0
	cursor := 0
	for ; index < len(h.blocks); index++ {
		if h.blocks[index].offset-cursor >= size {
			break
		}
		cursor = h.blocks[index].offset + h.blocks[index].size
	}

	if index == len(h.blocks) && h.Size-cursor < size {
		if h.Verbose {
			log.Printf("heap: alloc %d: exhausted (%d in use)", size, h.InUse())
		}
		err = ErrOutOfMemory
		return
	}

	h.blocks = slices.Insert(h.blocks, index, allocation{offset: cursor, size: size})

	block = h.arena[cursor : cursor+size : cursor+size]
	clear(block)

	if h.Verbose {
		log.Printf("heap: alloc %d @ 0x%04x", size, cursor)
	}

	return
}

// Free returns a block to the heap.
func (h *Heap) Free(block []byte) (err error) {
	if len(block) == 0 {
		err = ErrHandle
		return
	}

	for index, a := range h.blocks {
		if &h.arena[a.offset] == &block[0] && a.size == len(block) {
			h.blocks = slices.Delete(h.blocks, index, index+1)
			if h.Verbose {
				log.Printf("heap: free %d @ 0x%04x", a.size, a.offset)
			}
			return
		}
	}

	err = ErrHandle
	return
}

// InUse returns the number of bytes currently allocated.
func (h *Heap) InUse() (total int) {
	for _, a := range h.blocks {
		total += a.size
	}
	return
}

// Blocks returns the number of blocks currently allocated.
func (h *Heap) Blocks() int {
	return len(h.blocks)
}
