package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/echodrv/heap"
	"github.com/ezrec/echodrv/io"
	"github.com/ezrec/echodrv/translate"
)

func TestBoot(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	emu := boot(nil, &out, false, heap.HEAP_DEFAULT_SIZE)

	expect := translate.From("Initializing echo driver...") +
		translate.From("done. Ready for your echoing needs!\n")
	assert.Equal(expect, out.String())

	// The echo driver is linked exactly once, ahead of the console.
	var names []string
	for driver := range emu.Drivers() {
		names = append(names, driver.Name())
	}
	assert.Equal([]string{"echo", "con"}, names)

	id, err := emu.Open("echo_boot")
	assert.NoError(err)

	_, status := emu.Io(id, io.IO_SSTRG, &io.Params{Buffer: []byte("ok")})
	assert.Equal(io.STATUS_OK, status)
	result, status := emu.Io(id, io.IO_FBYTE, nil)
	assert.Equal(io.STATUS_OK, status)
	assert.Equal(byte('o'), result.Byte)

	// Nothing but the two messages reached channel 0.
	assert.Equal(expect, out.String())
}

func TestBoot_HeapSize(t *testing.T) {
	assert := assert.New(t)

	emu := boot(nil, &bytes.Buffer{}, false, io.ECHO_BLOCK_SIZE)

	_, err := emu.Open("echo_a")
	assert.NoError(err)
	_, err = emu.Open("echo_b")
	assert.ErrorIs(err, io.ErrOutOfMemory)
}
