package script

import (
	"github.com/ezrec/echodrv/io"
	"github.com/ezrec/echodrv/translate"
)

var f = translate.From

// ErrStatus reports a channel operation that did not succeed.
type ErrStatus struct {
	Op     string
	Status io.Status
}

func (err *ErrStatus) Error() string {
	return f("%v: %v", err.Op, err.Status.String())
}

func (err *ErrStatus) Unwrap() error {
	return err.Status.Err()
}

type ErrChannelId int

func (err ErrChannelId) Error() string {
	return f("channel id %d out of range", int(err))
}

type ErrOpCode int

func (err ErrOpCode) Error() string {
	return f("op code %d out of range", int(err))
}

type ErrLineLength int

func (err ErrLineLength) Error() string {
	return f("line length %d out of range", int(err))
}
