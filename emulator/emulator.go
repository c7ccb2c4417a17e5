// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts channel drivers the way the QDOS I/O sub-system
// does: drivers are linked once, opens are offered to each driver in turn,
// and every channel operation reports a status code.
package emulator

import (
	"errors"
	stdio "io"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/echodrv/io"
)

// ChannelId identifies an open channel.
type ChannelId uint32

const (
	// CHANNEL_ID_CONSOLE is opened by NewEmulator and never closed.
	CHANNEL_ID_CONSOLE = ChannelId(0)
	// CONSOLE_NAME is the name channel 0 is opened with.
	CONSOLE_NAME = "con_"
)

type openChannel struct {
	name    string
	driver  io.Driver
	channel io.Channel
}

// Emulator state. Linked drivers + open channels.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	Console io.ConsoleDriver // Built-in console driver.

	linked   []io.Driver
	channels map[ChannelId]*openChannel
	nextId   ChannelId
}

// NewEmulator creates a new emulator with channel 0 open on the console.
func NewEmulator(input stdio.Reader, output stdio.Writer) (emu *Emulator) {
	emu = &Emulator{
		Console: io.ConsoleDriver{Input: input, Output: output},
	}

	emu.Reset()

	return
}

// Reset closes every channel and reopens the console as channel 0.
// Linked drivers stay linked.
func (emu *Emulator) Reset() {
	for id, oc := range emu.channels {
		if id == CHANNEL_ID_CONSOLE {
			continue
		}
		if err := oc.driver.Close(oc.channel); err != nil && emu.Verbose {
			log.Printf("emulator: reset: channel #%d: %v", uint32(id), err)
		}
	}

	emu.Console.Verbose = emu.Verbose
	console, _ := emu.Console.Open(CONSOLE_NAME)
	emu.channels = map[ChannelId]*openChannel{
		CHANNEL_ID_CONSOLE: {name: CONSOLE_NAME, driver: &emu.Console, channel: console},
	}
	emu.nextId = CHANNEL_ID_CONSOLE + 1
}

// Link adds a driver to the driver list. A driver can only be linked once.
func (emu *Emulator) Link(driver io.Driver) (err error) {
	if driver == nil {
		err = ErrDriverNil
		return
	}

	if slices.Contains(emu.linked, driver) {
		err = ErrDriverLinked
		return
	}

	emu.linked = append(emu.linked, driver)

	if emu.Verbose {
		log.Printf("emulator: linked driver %v", driver.Name())
	}

	return
}

// Drivers returns an iterator over the linked drivers, most recently linked
// first, followed by the built-in console driver.
func (emu *Emulator) Drivers() iter.Seq[io.Driver] {
	return func(yield func(io.Driver) bool) {
		for _, driver := range slices.Backward(emu.linked) {
			if !yield(driver) {
				return
			}
		}
		yield(&emu.Console)
	}
}

// Open offers name to each driver in turn until one accepts it. A driver
// returning io.ErrNotFound passes the name on; any other error ends the
// search.
func (emu *Emulator) Open(name string) (id ChannelId, err error) {
	for driver := range emu.Drivers() {
		var ch io.Channel
		ch, err = driver.Open(name)
		if errors.Is(err, io.ErrNotFound) {
			continue
		}
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: open %q: %v: %v", name, driver.Name(), err)
			}
			return
		}

		id = emu.nextId
		emu.nextId++
		emu.channels[id] = &openChannel{name: name, driver: driver, channel: ch}

		if emu.Verbose {
			log.Printf("emulator: open %q: %v channel #%d", name, driver.Name(), uint32(id))
		}
		return
	}

	err = io.ErrNotFound
	if emu.Verbose {
		log.Printf("emulator: open %q: %v", name, err)
	}

	return
}

// Close releases a channel through the driver that opened it.
// Channel 0 cannot be closed.
func (emu *Emulator) Close(id ChannelId) (err error) {
	oc, ok := emu.channels[id]
	if !ok || id == CHANNEL_ID_CONSOLE {
		err = &ErrChannel{Id: id, Err: io.ErrChannelNotOpen}
		return
	}

	delete(emu.channels, id)

	if emu.Verbose {
		log.Printf("emulator: close channel #%d (%q)", uint32(id), oc.name)
	}

	err = oc.driver.Close(oc.channel)
	if err != nil {
		err = &ErrChannel{Id: id, Err: err}
	}

	return
}

// Channel returns the channel open as id.
func (emu *Emulator) Channel(id ChannelId) (ch io.Channel, ok bool) {
	oc, ok := emu.channels[id]
	if ok {
		ch = oc.channel
	}
	return
}

// Channels returns an iterator over the open channel ids and their names,
// in id order.
func (emu *Emulator) Channels() iter.Seq2[ChannelId, string] {
	return func(yield func(ChannelId, string) bool) {
		for _, id := range slices.Sorted(maps.Keys(emu.channels)) {
			if !yield(id, emu.channels[id].name) {
				return
			}
		}
	}
}

// Io performs an operation on an open channel, reporting the outcome as a
// status code. An unknown id reports io.STATUS_NO.
func (emu *Emulator) Io(id ChannelId, op io.OpCode, params *io.Params) (result io.Result, status io.Status) {
	oc, ok := emu.channels[id]
	if !ok {
		status = io.STATUS_NO
		return
	}

	result, err := io.Dispatch(oc.channel, op, params)
	status = io.StatusOf(err)

	if emu.Verbose {
		log.Printf("emulator: #%d %v: %v (count %d)", uint32(id), op, status, result.Count)
	}

	return
}

// Print writes a message to channel 0.
func (emu *Emulator) Print(msg string) {
	emu.Io(CHANNEL_ID_CONSOLE, io.IO_SSTRG, &io.Params{Buffer: []byte(msg)})
}
