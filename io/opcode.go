package io

// OpCode is a QDOS I/O sub-system operation code.
type OpCode uint8

//go:generate go tool stringer -linecomment -type=OpCode
const (
	IO_FBYTE = OpCode(1)    // fbyte
	IO_FLINE = OpCode(2)    // fline
	IO_FSTRG = OpCode(3)    // fstrg
	IO_SSTRG = OpCode(7)    // sstrg
	SD_CHENQ = OpCode(0x0b) // chenq
)

// Timeout in 1/50ths of a second; TIMEOUT_FOREVER waits indefinitely.
type Timeout int16

const (
	TIMEOUT_NONE    = Timeout(0)
	TIMEOUT_FOREVER = Timeout(-1)
)
