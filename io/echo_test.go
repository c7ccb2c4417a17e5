package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T) *Echo {
	echo, err := NewEcho(make([]byte, ECHO_BLOCK_SIZE))
	if err != nil {
		t.Fatal(err)
	}
	return echo
}

func TestEcho_New(t *testing.T) {
	assert := assert.New(t)

	block := bytes.Repeat([]byte{0xee}, ECHO_BLOCK_SIZE)
	echo, err := NewEcho(block)
	assert.NoError(err)
	assert.Equal(0, echo.ReadCursor())
	assert.Equal(0, echo.WriteEnd())
	assert.Equal(ECHO_CAPACITY, echo.Capacity())
	assert.Equal(224, ECHO_CAPACITY)

	// Host header is not touched.
	assert.Equal(bytes.Repeat([]byte{0xee}, ECHO_HEADER_SIZE), block[:ECHO_HEADER_SIZE])

	_, err = NewEcho(make([]byte, ECHO_BLOCK_SIZE-1))
	assert.ErrorIs(err, ErrBlockSize)
}

func TestEcho_FetchByte_Empty(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	_, err := echo.FetchByte()
	assert.ErrorIs(err, ErrEndOfFile)
	assert.Equal(0, echo.ReadCursor())
}

func TestEcho_FetchByte(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("hello"))

	for _, expect := range []byte("hello") {
		value, err := echo.FetchByte()
		assert.NoError(err)
		assert.Equal(expect, value)
	}

	_, err := echo.FetchByte()
	assert.ErrorIs(err, ErrEndOfFile)

	// Stays at the end until the next write.
	_, err = echo.FetchByte()
	assert.ErrorIs(err, ErrEndOfFile)
	assert.Equal(5, echo.ReadCursor())
	assert.Equal(5, echo.WriteEnd())
}

func TestEcho_SendString_Truncated(t *testing.T) {
	assert := assert.New(t)

	src := make([]byte, 300)
	for n := range src {
		src[n] = byte(n)
	}

	echo := newTestEcho(t)
	requested, copied := echo.SendString(src)
	assert.Equal(300, requested)
	assert.Equal(ECHO_CAPACITY, copied)
	assert.Equal(0, echo.ReadCursor())
	assert.Equal(ECHO_CAPACITY, echo.WriteEnd())

	var got []byte
	for value := range FetchBytes(echo) {
		got = append(got, value)
	}
	assert.Equal(src[:ECHO_CAPACITY], got)
}

func TestEcho_SendString_ReportedCount(t *testing.T) {
	assert := assert.New(t)

	// The reported count is the requested length, not what was kept.
	echo := newTestEcho(t)
	requested, copied := echo.SendString(make([]byte, 1000))
	assert.Equal(1000, requested)
	assert.Equal(ECHO_CAPACITY, copied)
}

func TestEcho_SendString_Replaces(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("hello"))

	value, err := echo.FetchByte()
	assert.NoError(err)
	assert.Equal(byte('h'), value)

	echo.SendString([]byte("abc"))
	assert.Equal([]byte("abc"), echo.Pending())

	var got []byte
	for value := range FetchBytes(echo) {
		got = append(got, value)
	}
	assert.Equal([]byte("abc"), got)
}

func TestEcho_SendString_Empty(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("hello"))
	requested, copied := echo.SendString(nil)
	assert.Equal(0, requested)
	assert.Equal(0, copied)

	_, err := echo.FetchByte()
	assert.ErrorIs(err, ErrEndOfFile)
}

func TestEcho_FetchLine(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("line1\nline2"))

	buf := make([]byte, 20)
	n, delimited, err := echo.FetchLine(buf)
	assert.NoError(err)
	assert.True(delimited)
	assert.Equal("line1\n", string(buf[:n]))

	n, delimited, err = echo.FetchLine(buf)
	assert.NoError(err)
	assert.False(delimited)
	assert.Equal("line2", string(buf[:n]))

	_, _, err = echo.FetchLine(buf)
	assert.ErrorIs(err, ErrEndOfFile)
}

func TestEcho_FetchLine_MaxLen(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("abcdef\n"))

	buf := make([]byte, 4)
	n, delimited, err := echo.FetchLine(buf)
	assert.NoError(err)
	assert.False(delimited)
	assert.Equal("abcd", string(buf[:n]))

	// The line feed counts toward the limit.
	buf = make([]byte, 3)
	n, delimited, err = echo.FetchLine(buf)
	assert.NoError(err)
	assert.True(delimited)
	assert.Equal("ef\n", string(buf[:n]))

	_, _, err = echo.FetchLine(buf)
	assert.ErrorIs(err, ErrEndOfFile)
}

func TestEcho_FetchLine_ZeroLen(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("abc"))

	n, delimited, err := echo.FetchLine(nil)
	assert.NoError(err)
	assert.False(delimited)
	assert.Equal(0, n)
	assert.Equal(0, echo.ReadCursor())
}

func TestEcho_FetchLine_Mixed(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("x\ny"))

	value, err := echo.FetchByte()
	assert.NoError(err)
	assert.Equal(byte('x'), value)

	buf := make([]byte, 8)
	n, delimited, err := echo.FetchLine(buf)
	assert.NoError(err)
	assert.True(delimited)
	assert.Equal("\n", string(buf[:n]))

	value, err = echo.FetchByte()
	assert.NoError(err)
	assert.Equal(byte('y'), value)
}

func TestEcho_Enquire(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	empty := echo.Enquire()

	echo.SendString([]byte("pending"))
	full := echo.Enquire()

	assert.ErrorIs(empty, ErrNotSupported)
	assert.Equal(empty, full)
}

func TestEcho_Load(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	echo.SendString([]byte("hello"))
	_, _ = echo.FetchByte()

	loaded, err := LoadEcho(echo.Block())
	assert.NoError(err)
	assert.Equal(1, loaded.ReadCursor())
	assert.Equal([]byte("ello"), loaded.Pending())

	// Cursors are stored big-endian behind the host header.
	block := echo.Block()
	assert.Equal([]byte{0, 0, 0, 1}, block[ECHO_READ_CURSOR:ECHO_READ_CURSOR+4])
	assert.Equal([]byte{0, 0, 0, 5}, block[ECHO_WRITE_END:ECHO_WRITE_END+4])
	assert.Equal([]byte("hello"), block[ECHO_BUFFER:ECHO_BUFFER+5])
}

func TestEcho_Load_Corrupt(t *testing.T) {
	assert := assert.New(t)

	block := make([]byte, ECHO_BLOCK_SIZE)
	block[ECHO_WRITE_END+3] = ECHO_CAPACITY + 1
	_, err := LoadEcho(block)
	assert.ErrorIs(err, ErrCursor)

	block = make([]byte, ECHO_BLOCK_SIZE)
	block[ECHO_READ_CURSOR+3] = 2
	block[ECHO_WRITE_END+3] = 1
	_, err = LoadEcho(block)
	assert.ErrorIs(err, ErrCursor)

	_, err = LoadEcho(nil)
	assert.ErrorIs(err, ErrBlockSize)
}

func TestEcho_SetCursors_Invariant(t *testing.T) {
	assert := assert.New(t)

	echo := newTestEcho(t)
	assert.Panics(func() { echo.setCursors(1, 0) })
	assert.Panics(func() { echo.setCursors(0, ECHO_CAPACITY+1) })
	assert.Panics(func() { echo.setCursors(-1, 0) })
	assert.Equal(0, echo.WriteEnd())
}
