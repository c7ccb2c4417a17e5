package io

import (
	"errors"
)

// Status is a QDOS error code as returned to the caller of a channel
// operation.
type Status int32

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_BP = Status(-15) // bad parameter
	STATUS_EF = Status(-10) // end of file
	STATUS_NF = Status(-7)  // not found
	STATUS_NO = Status(-6)  // channel not open
	STATUS_OM = Status(-3)  // out of memory
	STATUS_NC = Status(-1)  // not complete
	STATUS_OK = Status(0)   // ok
)

var statusErr = []struct {
	err    error
	status Status
}{
	{ErrNotComplete, STATUS_NC},
	{ErrChannelNotOpen, STATUS_NO},
	{ErrOutOfMemory, STATUS_OM},
	{ErrNotFound, STATUS_NF},
	{ErrEndOfFile, STATUS_EF},
	{ErrNotSupported, STATUS_BP},
}

// StatusOf maps an error to the status code reported to the caller.
// Errors without a status of their own are reported as STATUS_BP.
func StatusOf(err error) Status {
	if err == nil {
		return STATUS_OK
	}

	for _, se := range statusErr {
		if errors.Is(err, se.err) {
			return se.status
		}
	}

	return STATUS_BP
}

// Err returns the sentinel error for a status, or nil for STATUS_OK.
func (status Status) Err() error {
	for _, se := range statusErr {
		if se.status == status {
			return se.err
		}
	}

	if status == STATUS_OK {
		return nil
	}

	return ErrNotSupported
}
