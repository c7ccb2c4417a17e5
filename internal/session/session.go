// Package session implements the "echo" subcommand: each input line is sent
// through an echo channel and read back.
package session

import (
	"bufio"
	stdio "io"
	"slices"

	"github.com/ezrec/echodrv/emulator"
	"github.com/ezrec/echodrv/io"
)

// SESSION_MAX_LINE is the longest input line accepted. Anything past the
// echo buffer capacity is dropped by the channel anyway.
const SESSION_MAX_LINE = 1 << 20

// Echo sends every line of in through the channel id and copies what reads
// back to out, at most max bytes per line read.
func Echo(emu *emulator.Emulator, id emulator.ChannelId, in stdio.Reader, out stdio.Writer, max int) (err error) {
	if max <= 0 {
		err = &emulator.ErrChannel{Id: id, Err: io.ErrNotSupported}
		return
	}

	buf := make([]byte, max)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), SESSION_MAX_LINE)
	for scanner.Scan() {
		line := append(slices.Clone(scanner.Bytes()), io.CHR_LF)

		_, status := emu.Io(id, io.IO_SSTRG, &io.Params{Buffer: line})
		if status != io.STATUS_OK {
			err = &emulator.ErrChannel{Id: id, Err: status.Err()}
			return
		}

		for {
			result, status := emu.Io(id, io.IO_FLINE, &io.Params{Buffer: buf})
			if status == io.STATUS_EF {
				break
			}
			if status != io.STATUS_OK {
				err = &emulator.ErrChannel{Id: id, Err: status.Err()}
				return
			}

			_, err = out.Write(buf[:result.Count])
			if err != nil {
				return
			}
		}
	}

	err = scanner.Err()
	return
}
