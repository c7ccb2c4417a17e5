package io

import (
	"log"
	"strings"
)

// ECHO_DRIVER_PREFIX selects the echo driver, case-insensitively. Anything
// after the prefix is ignored.
const ECHO_DRIVER_PREFIX = "echo_"

// Allocator hands out zeroed fixed-size channel blocks.
type Allocator interface {
	Alloc(size int) (block []byte, err error)
	Free(block []byte) error
}

// EchoDriver opens echo channels, each backed by its own channel block.
type EchoDriver struct {
	Heap    Allocator // Source of channel blocks.
	Verbose bool      // If set, logs opens and closes.
}

var _ Driver = (*EchoDriver)(nil)

// Name of the driver.
func (ed *EchoDriver) Name() string {
	return "echo"
}

// Open allocates a new, empty echo channel if name starts with
// ECHO_DRIVER_PREFIX. Other names return ErrNotFound without allocating.
func (ed *EchoDriver) Open(name string) (ch Channel, err error) {
	if len(name) < len(ECHO_DRIVER_PREFIX) ||
		!strings.EqualFold(name[:len(ECHO_DRIVER_PREFIX)], ECHO_DRIVER_PREFIX) {
		err = ErrNotFound
		return
	}

	block, err := ed.Heap.Alloc(ECHO_BLOCK_SIZE)
	if err != nil {
		if ed.Verbose {
			log.Printf("echo: open %q: %v", name, err)
		}
		err = ErrOutOfMemory
		return
	}

	echo, err := NewEcho(block)
	if err != nil {
		ed.Heap.Free(block)
		return
	}

	if ed.Verbose {
		log.Printf("echo: open %q", name)
	}

	ch = echo
	return
}

// Close returns the channel block to the heap. The channel must not be
// used afterwards.
func (ed *EchoDriver) Close(ch Channel) (err error) {
	echo, ok := ch.(*Echo)
	if !ok || echo.block == nil {
		err = ErrChannelNotOpen
		return
	}

	if ferr := ed.Heap.Free(echo.block); ferr != nil && ed.Verbose {
		log.Printf("echo: close: %v", ferr)
	}
	echo.block = nil

	if ed.Verbose {
		log.Printf("echo: close")
	}

	return
}
