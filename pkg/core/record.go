package core

import "bytes"

// A record is one raw input line: a key, optionally followed by a tab and a
// value. Keys and values may contain any byte except zero, tab, and newline
// (a contract on well-formed input, not validated here). Records are never
// materialized; KeyEnd is the whole parsing story.

// KeyEnd returns the exclusive end offset of the key in line, where line is
// one raw input line including its trailing newline if present. The key ends
// at the first tab, or at the last byte of the line when no tab exists (the
// newline for terminated lines). For an unterminated final line without a
// tab this drops the last byte from the key; the companion C implementation
// does the same, and parity matters more than the lost byte.
func KeyEnd(line []byte) int {
	if i := bytes.IndexByte(line, '\t'); i >= 0 {
		return i
	}
	if len(line) == 0 {
		return 0
	}
	return len(line) - 1
}
