package session

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ezrec/echodrv/emulator"
	"github.com/ezrec/echodrv/io"
)

type Command struct {
	name string
	max  int
}

func (*Command) Name() string     { return "echo" }
func (*Command) Synopsis() string { return "Echo standard input through an echo channel" }
func (*Command) Usage() string {
	return `echo [-name echo_x] [-max N]:
	Write each line of standard input to an echo channel, then read it
	back to standard output a line at a time. Lines longer than the echo
	buffer are truncated.
`
}

func (cmd *Command) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.name, "name", "echo_stdin", "channel name to open")
	f.IntVar(&cmd.max, "max", io.ECHO_CAPACITY, "maximum bytes per line read")
}

func (cmd *Command) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	emu := args[0].(*emulator.Emulator)

	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "echo: unknown arguments: %v\n", f.Args())
		return subcommands.ExitUsageError
	}

	id, err := emu.Open(cmd.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", cmd.name, err)
		return subcommands.ExitFailure
	}
	defer emu.Close(id)

	err = Echo(emu, id, os.Stdin, os.Stdout, cmd.max)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
