// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	stdio "io"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/ezrec/echodrv/emulator"
	"github.com/ezrec/echodrv/heap"
	"github.com/ezrec/echodrv/internal/run"
	"github.com/ezrec/echodrv/internal/session"
	"github.com/ezrec/echodrv/io"
	"github.com/ezrec/echodrv/translate"
)

// boot links the echo driver into a fresh emulator, announcing it on
// channel 0.
func boot(input stdio.Reader, output stdio.Writer, verbose bool, heapSize int) (emu *emulator.Emulator) {
	emu = emulator.NewEmulator(input, output)
	emu.Verbose = verbose

	emu.Print(translate.From("Initializing echo driver..."))

	driver := &io.EchoDriver{
		Heap:    &heap.Heap{Size: heapSize, Verbose: verbose},
		Verbose: verbose,
	}
	if err := emu.Link(driver); err != nil {
		log.Fatalf("%v: %v", driver.Name(), err)
	}

	emu.Print(translate.From("done. Ready for your echoing needs!\n"))

	return
}

func main() {
	var verbose bool
	var heapSize int
	var lang string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&heapSize, "heap", heap.HEAP_DEFAULT_SIZE, "Heap size in bytes")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47), default from the system locale")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&session.Command{}, "")
	subcommands.Register(&run.Command{}, "")

	flag.Parse()

	if len(lang) != 0 {
		if err := translate.SetLanguage(lang); err != nil {
			log.Fatalf("-lang %v: %v", lang, err)
		}
	}

	if heapSize <= 0 {
		log.Fatalf("%v: -heap must be positive", os.Args[0])
	}

	emu := boot(os.Stdin, os.Stdout, verbose, heapSize)

	ctx := context.Background()
	status := subcommands.Execute(ctx, emu)
	emu.Reset()
	os.Exit(int(status))
}
