// Package script runs Starlark programs against an emulator, so channel
// sessions can be written as scripts.
//
// Built-ins:
//
//	open(name) -> id
//	close(id)
//	fbyte(id) -> int, or None at end of file
//	fline(id, max=224) -> (str, delimited), or None at end of file
//	sstrg(id, s) -> reported count
//	chenq(id) -> status
//	io(id, op, s="", max=224) -> (status, count, str)
//
// The op codes (IO_FBYTE, ...) and status codes (STATUS_OK, ...) are
// predeclared as integers.
package script

import (
	"fmt"
	stdio "io"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/echodrv/emulator"
	"github.com/ezrec/echodrv/io"
)

var _script_constants = map[string]int{
	"IO_FBYTE":  int(io.IO_FBYTE),
	"IO_FLINE":  int(io.IO_FLINE),
	"IO_FSTRG":  int(io.IO_FSTRG),
	"IO_SSTRG":  int(io.IO_SSTRG),
	"SD_CHENQ":  int(io.SD_CHENQ),
	"STATUS_OK": int(io.STATUS_OK),
	"STATUS_NC": int(io.STATUS_NC),
	"STATUS_NO": int(io.STATUS_NO),
	"STATUS_OM": int(io.STATUS_OM),
	"STATUS_NF": int(io.STATUS_NF),
	"STATUS_EF": int(io.STATUS_EF),
	"STATUS_BP": int(io.STATUS_BP),
}

// Session binds a script to an emulator.
type Session struct {
	Emulator *emulator.Emulator
	Output   stdio.Writer // Destination of print().
}

// Exec runs a script. src may be anything starlark.ExecFileOptions accepts;
// nil reads filename.
func (s *Session) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if s.Output != nil {
				fmt.Fprintln(s.Output, msg)
			}
		},
	}

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, s.predeclared())

	return
}

func (s *Session) predeclared() starlark.StringDict {
	pred := starlark.StringDict{
		"open":  starlark.NewBuiltin("open", s.open),
		"close": starlark.NewBuiltin("close", s.close),
		"fbyte": starlark.NewBuiltin("fbyte", s.fbyte),
		"fline": starlark.NewBuiltin("fline", s.fline),
		"sstrg": starlark.NewBuiltin("sstrg", s.sstrg),
		"chenq": starlark.NewBuiltin("chenq", s.chenq),
		"io":    starlark.NewBuiltin("io", s.io),
	}

	for key, value := range _script_constants {
		pred[key] = starlark.MakeInt(value)
	}

	return pred
}

func channelId(id int) (emulator.ChannelId, error) {
	if id < 0 || int64(id) > math.MaxUint32 {
		return 0, ErrChannelId(id)
	}
	return emulator.ChannelId(id), nil
}

func (s *Session) open(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}

	id, err := s.Emulator.Open(name)
	if err != nil {
		return nil, &ErrStatus{Op: b.Name(), Status: io.StatusOf(err)}
	}

	return starlark.MakeUint(uint(id)), nil
}

func (s *Session) close(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var raw int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &raw); err != nil {
		return nil, err
	}

	id, err := channelId(raw)
	if err != nil {
		return nil, err
	}

	if err := s.Emulator.Close(id); err != nil {
		return nil, &ErrStatus{Op: b.Name(), Status: io.StatusOf(err)}
	}

	return starlark.None, nil
}

// do runs an operation, treating STATUS_EF as a nil value.
func (s *Session) do(b *starlark.Builtin, raw int, op io.OpCode, params *io.Params) (result io.Result, eof bool, err error) {
	id, err := channelId(raw)
	if err != nil {
		return
	}

	result, status := s.Emulator.Io(id, op, params)
	switch status {
	case io.STATUS_OK:
	case io.STATUS_EF:
		eof = true
	default:
		err = &ErrStatus{Op: b.Name(), Status: status}
	}

	return
}

func (s *Session) fbyte(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var id int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id); err != nil {
		return nil, err
	}

	result, eof, err := s.do(b, id, io.IO_FBYTE, nil)
	if err != nil || eof {
		return starlark.None, err
	}

	return starlark.MakeInt(int(result.Byte)), nil
}

func (s *Session) fline(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var id int
	max := io.ECHO_CAPACITY
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id, "max?", &max); err != nil {
		return nil, err
	}
	if max < 0 || max > math.MaxUint16 {
		return nil, ErrLineLength(max)
	}

	buf := make([]byte, max)
	result, eof, err := s.do(b, id, io.IO_FLINE, &io.Params{Buffer: buf})
	if err != nil || eof {
		return starlark.None, err
	}

	return starlark.Tuple{
		starlark.String(buf[:result.Count]),
		starlark.Bool(result.Delimited),
	}, nil
}

func (s *Session) sstrg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var id int
	var str string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id, "s", &str); err != nil {
		return nil, err
	}

	result, _, err := s.do(b, id, io.IO_SSTRG, &io.Params{Buffer: []byte(str)})
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(result.Count), nil
}

func (s *Session) chenq(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var raw int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &raw); err != nil {
		return nil, err
	}

	id, err := channelId(raw)
	if err != nil {
		return nil, err
	}

	_, status := s.Emulator.Io(id, io.SD_CHENQ, nil)

	return starlark.MakeInt(int(status)), nil
}

// io is the raw form: any op code, status returned rather than raised.
func (s *Session) io(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var raw, op int
	var str string
	max := io.ECHO_CAPACITY
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &raw, "op", &op, "s?", &str, "max?", &max); err != nil {
		return nil, err
	}
	if op < 0 || op > math.MaxUint8 {
		return nil, ErrOpCode(op)
	}
	if max < 0 || max > math.MaxUint16 {
		return nil, ErrLineLength(max)
	}

	id, err := channelId(raw)
	if err != nil {
		return nil, err
	}

	params := &io.Params{}
	if io.OpCode(op) == io.IO_SSTRG {
		params.Buffer = []byte(str)
	} else {
		params.Buffer = make([]byte, max)
	}

	result, status := s.Emulator.Io(id, io.OpCode(op), params)

	var data starlark.String
	switch io.OpCode(op) {
	case io.IO_FBYTE:
		if status == io.STATUS_OK {
			data = starlark.String([]byte{result.Byte})
		}
	case io.IO_FLINE:
		data = starlark.String(params.Buffer[:result.Count])
	}

	return starlark.Tuple{
		starlark.MakeInt(int(status)),
		starlark.MakeInt(result.Count),
		data,
	}, nil
}
