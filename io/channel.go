// Package io provides the channel implementations for the echo driver host.
// It includes the echo channel state (Echo) with its byte, line, string and
// enquiry operations, the console channel (Console), the drivers that open
// them, and the operation dispatcher that maps QDOS I/O operation codes onto
// a channel.
package io

// Channel defines the interface for all I/O channels opened by a Driver.
// Channels are only ever driven by one caller at a time, so implementations
// need no locking.
type Channel interface {
	// FetchByte returns the next unread byte, or ErrEndOfFile.
	FetchByte() (value byte, err error)
	// FetchLine copies bytes into buf up to and including a line feed,
	// stopping early when buf is full or the channel runs dry.
	FetchLine(buf []byte) (n int, delimited bool, err error)
	// SendString replaces the channel content with src.
	SendString(src []byte) (requested int, copied int)
	// Enquire asks whether data is pending without reading it.
	Enquire() error
}

// Driver opens and closes channels by name.
type Driver interface {
	// Name returns a short identifier for logging.
	Name() string
	// Open returns ErrNotFound when the name does not belong to this driver.
	Open(name string) (ch Channel, err error)
	// Close releases a channel returned by Open.
	Close(ch Channel) error
}
