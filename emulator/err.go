package emulator

import (
	"errors"

	"github.com/ezrec/echodrv/translate"
)

var f = translate.From

var (
	// Driver linkage errors
	ErrDriverLinked = errors.New(f("driver already linked"))
	ErrDriverNil    = errors.New(f("driver missing"))
)

// ErrChannel indicates the channel an operation failed on.
type ErrChannel struct {
	Id  ChannelId
	Err error
}

func (err *ErrChannel) Error() string {
	return f("channel #%d %v", uint32(err.Id), err.Err)
}

func (err *ErrChannel) Unwrap() error {
	return err.Err
}
