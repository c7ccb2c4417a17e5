package io

import (
	"errors"

	"github.com/ezrec/echodrv/translate"
)

var f = translate.From

var (
	// Channel status errors
	ErrNotComplete    = errors.New(f("not complete"))
	ErrChannelNotOpen = errors.New(f("channel not open"))
	ErrOutOfMemory    = errors.New(f("out of memory"))
	ErrNotFound       = errors.New(f("not found"))
	ErrEndOfFile      = errors.New(f("end of file"))
	ErrNotSupported   = errors.New(f("bad parameter"))

	// Channel block errors
	ErrBlockSize = errors.New(f("channel block size"))
	ErrCursor    = errors.New(f("channel cursor out of range"))
)
