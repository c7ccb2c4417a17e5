package io

import (
	"errors"
	"io"
	"log"
	"strings"
)

// CONSOLE_DRIVER_PREFIX selects the console driver, case-insensitively.
const CONSOLE_DRIVER_PREFIX = "con_"

// Console provides channel operations over a byte stream, reading from
// Input and writing to Output.
type Console struct {
	Input   io.Reader
	Output  io.Writer
	Verbose bool // If set, logs stream errors.
}

var _ Channel = (*Console)(nil)

// FetchByte reads a single byte from the input stream. The end of the
// stream is ErrEndOfFile; any other read failure is ErrNotComplete.
func (con *Console) FetchByte() (value byte, err error) {
	if con.Input == nil {
		err = ErrEndOfFile
		return
	}

	var one [1]byte
	_, err = io.ReadFull(con.Input, one[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrEndOfFile
		return
	}
	if err != nil {
		if con.Verbose {
			log.Printf("con: read: %v", err)
		}
		err = ErrNotComplete
		return
	}

	value = one[0]
	return
}

// FetchLine reads from the input stream up to and including a line feed.
func (con *Console) FetchLine(buf []byte) (n int, delimited bool, err error) {
	for n < len(buf) {
		var c byte
		c, err = con.FetchByte()
		if err != nil {
			if n > 0 && errors.Is(err, ErrEndOfFile) {
				err = nil
			}
			return
		}
		buf[n] = c
		n++
		if c == CHR_LF {
			delimited = true
			return
		}
	}

	return
}

// SendString writes src to the output stream. copied is the number of
// bytes the stream accepted, which is short when the write fails.
func (con *Console) SendString(src []byte) (requested int, copied int) {
	requested = len(src)
	if con.Output == nil {
		return
	}

	copied, err := con.Output.Write(src)
	if err != nil && con.Verbose {
		log.Printf("con: write: %v (%d of %d bytes)", err, copied, requested)
	}

	return
}

// Enquire is not supported on the console.
func (con *Console) Enquire() error {
	return ErrNotSupported
}

// ConsoleDriver opens console channels onto a shared pair of streams.
type ConsoleDriver struct {
	Input   io.Reader
	Output  io.Writer
	Verbose bool // Passed on to opened consoles.
}

var _ Driver = (*ConsoleDriver)(nil)

// Name of the driver.
func (cd *ConsoleDriver) Name() string {
	return "con"
}

// Open returns a console channel if name starts with CONSOLE_DRIVER_PREFIX.
func (cd *ConsoleDriver) Open(name string) (ch Channel, err error) {
	if len(name) < len(CONSOLE_DRIVER_PREFIX) ||
		!strings.EqualFold(name[:len(CONSOLE_DRIVER_PREFIX)], CONSOLE_DRIVER_PREFIX) {
		err = ErrNotFound
		return
	}

	ch = &Console{Input: cd.Input, Output: cd.Output, Verbose: cd.Verbose}
	return
}

// Close does nothing; the streams belong to the caller.
func (cd *ConsoleDriver) Close(ch Channel) (err error) {
	if _, ok := ch.(*Console); !ok {
		err = ErrChannelNotOpen
	}
	return
}
