// Package run implements the "run" subcommand, executing a channel script.
package run

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ezrec/echodrv/emulator"
	"github.com/ezrec/echodrv/script"
)

type Command struct{}

func (*Command) Name() string     { return "run" }
func (*Command) Synopsis() string { return "Run a Starlark channel script" }
func (*Command) Usage() string {
	return `run <file.star>:
	Execute a Starlark script with open(), close(), fbyte(), fline(),
	sstrg(), chenq() and io() bound to the channel host.
`
}

func (*Command) SetFlags(f *flag.FlagSet) {}

func (*Command) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	emu := args[0].(*emulator.Emulator)

	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "run: expected one script")
		return subcommands.ExitUsageError
	}

	s := &script.Session{Emulator: emu, Output: os.Stdout}
	_, err := s.Exec(f.Arg(0), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
