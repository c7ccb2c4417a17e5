// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bytes"
	"encoding/binary"
)

const (
	// ECHO_BLOCK_SIZE is the size of the channel block allocated per open.
	ECHO_BLOCK_SIZE = 0x100
	// ECHO_HEADER_SIZE is reserved for the host's channel bookkeeping.
	ECHO_HEADER_SIZE = 0x18
	// ECHO_READ_CURSOR is the block offset of the read cursor.
	ECHO_READ_CURSOR = 0x18
	// ECHO_WRITE_END is the block offset of the end of valid data.
	ECHO_WRITE_END = 0x1C
	// ECHO_BUFFER is the block offset of the echo buffer.
	ECHO_BUFFER = 0x20
	// ECHO_CAPACITY is the number of bytes a single SendString can keep.
	ECHO_CAPACITY = ECHO_BLOCK_SIZE - ECHO_BUFFER

	// CHR_LF terminates a line.
	CHR_LF = 0x0a
)

// Echo is the state of an open echo channel, held in its channel block.
//
// Block layout (cursors are big-endian offsets into the buffer):
//
//	0x00 .. 0x17  host bookkeeping, never touched
//	0x18 .. 0x1b  read cursor
//	0x1c .. 0x1f  write end
//	0x20 .. 0xff  buffer
//
// The cursors always satisfy 0 <= read cursor <= write end <= ECHO_CAPACITY.
type Echo struct {
	block []byte
}

var _ Channel = (*Echo)(nil)

// NewEcho initializes a channel block as an empty echo channel.
func NewEcho(block []byte) (echo *Echo, err error) {
	if len(block) != ECHO_BLOCK_SIZE {
		err = ErrBlockSize
		return
	}

	echo = &Echo{block: block}
	echo.setCursors(0, 0)

	return
}

// LoadEcho attaches to a channel block previously set up by NewEcho,
// validating the stored cursors.
func LoadEcho(block []byte) (echo *Echo, err error) {
	if len(block) != ECHO_BLOCK_SIZE {
		err = ErrBlockSize
		return
	}

	loaded := &Echo{block: block}
	if !validCursors(int64(loaded.ReadCursor()), int64(loaded.WriteEnd())) {
		err = ErrCursor
		return
	}

	echo = loaded
	return
}

func validCursors(read, end int64) bool {
	return read >= 0 && read <= end && end <= ECHO_CAPACITY
}

// ReadCursor returns the buffer offset of the next byte to read.
func (echo *Echo) ReadCursor() int {
	return int(binary.BigEndian.Uint32(echo.block[ECHO_READ_CURSOR:]))
}

// WriteEnd returns the buffer offset one past the last valid byte.
func (echo *Echo) WriteEnd() int {
	return int(binary.BigEndian.Uint32(echo.block[ECHO_WRITE_END:]))
}

// Capacity of the echo buffer.
func (echo *Echo) Capacity() int {
	return ECHO_CAPACITY
}

// Pending returns a copy of the bytes not yet read.
func (echo *Echo) Pending() []byte {
	return bytes.Clone(echo.buffer()[echo.ReadCursor():echo.WriteEnd()])
}

// Block returns the underlying channel block.
func (echo *Echo) Block() []byte {
	return echo.block
}

func (echo *Echo) buffer() []byte {
	return echo.block[ECHO_BUFFER:ECHO_BLOCK_SIZE]
}

// setCursors is the only place the cursors are stored.
func (echo *Echo) setCursors(read, end int) {
	if !validCursors(int64(read), int64(end)) {
		panic(ErrCursor)
	}

	binary.BigEndian.PutUint32(echo.block[ECHO_READ_CURSOR:], uint32(read))
	binary.BigEndian.PutUint32(echo.block[ECHO_WRITE_END:], uint32(end))
}

// SendString replaces the buffer with the first ECHO_CAPACITY bytes of src,
// discarding anything still unread. The remainder of src is dropped.
//
// requested is len(src), which is what the driver reports as the number of
// bytes written even when the copy was truncated; copied is the number of
// bytes actually kept.
func (echo *Echo) SendString(src []byte) (requested int, copied int) {
	requested = len(src)
	copied = copy(echo.buffer(), src)

	echo.setCursors(0, copied)

	return
}

// FetchByte returns the next unread byte, or ErrEndOfFile once the read
// cursor has reached the write end.
func (echo *Echo) FetchByte() (value byte, err error) {
	read, end := echo.ReadCursor(), echo.WriteEnd()
	if read == end {
		err = ErrEndOfFile
		return
	}

	value = echo.buffer()[read]
	echo.setCursors(read+1, end)

	return
}

// FetchLine copies unread bytes into buf until buf is full, a line feed has
// been copied (it is included in n), or the unread data is exhausted.
// A partial line is not an error; ErrEndOfFile is only returned when there
// was nothing to read at all.
func (echo *Echo) FetchLine(buf []byte) (n int, delimited bool, err error) {
	read, end := echo.ReadCursor(), echo.WriteEnd()
	if read == end {
		err = ErrEndOfFile
		return
	}

	data := echo.buffer()
	for read < end && n < len(buf) {
		c := data[read]
		buf[n] = c
		read++
		n++
		if c == CHR_LF {
			delimited = true
			break
		}
	}

	echo.setCursors(read, end)

	return
}

// Enquire always reports ErrNotSupported; the echo channel does not take
// part in pending-input enquiries, so callers must read directly.
func (echo *Echo) Enquire() error {
	return ErrNotSupported
}
