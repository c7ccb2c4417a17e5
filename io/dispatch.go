package io

// Params carries the caller's side of a channel operation.
type Params struct {
	// Buffer is the source for IO_SSTRG, and the destination for IO_FLINE
	// where its length is the maximum line length.
	Buffer []byte
	// Timeout is accepted for protocol compatibility. No operation blocks,
	// so it is ignored.
	Timeout Timeout
}

// Result of a channel operation.
type Result struct {
	Byte      byte // Byte fetched by IO_FBYTE.
	Count     int  // Bytes reported as read or written.
	Consumed  int  // Bytes of Params.Buffer actually used.
	Delimited bool // IO_FLINE stopped on a line feed.
}

// Dispatch performs a single operation on a channel.
//
// Unknown operations, including the unimplemented IO_FSTRG, succeed
// without doing anything.
func Dispatch(ch Channel, op OpCode, params *Params) (result Result, err error) {
	if params == nil {
		params = &Params{}
	}

	switch op {
	case IO_FBYTE:
		result.Byte, err = ch.FetchByte()
		if err == nil {
			result.Count = 1
			result.Consumed = 1
		}
	case IO_FLINE:
		result.Count, result.Delimited, err = ch.FetchLine(params.Buffer)
		result.Consumed = result.Count
	case IO_SSTRG:
		result.Count, result.Consumed = ch.SendString(params.Buffer)
	case SD_CHENQ:
		err = ch.Enquire()
	}

	return
}
