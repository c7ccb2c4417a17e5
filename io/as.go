package io

import (
	"iter"
	"slices"
)

// FetchBytes returns an iterator that drains a channel byte by byte,
// stopping at the first error (normally ErrEndOfFile).
func FetchBytes(ch Channel) iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for {
			value, err := ch.FetchByte()
			if err != nil {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// FetchLines returns an iterator that drains a channel line by line, with
// each line at most max bytes long. The bool is true when the line ended
// with a line feed.
func FetchLines(ch Channel, max int) iter.Seq2[[]byte, bool] {
	return func(yield func(line []byte, delimited bool) bool) {
		if max <= 0 {
			return
		}
		buf := make([]byte, max)
		for {
			n, delimited, err := ch.FetchLine(buf)
			if err != nil {
				return
			}
			if !yield(slices.Clone(buf[:n]), delimited) {
				return
			}
		}
	}
}
