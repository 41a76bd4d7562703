// Package split implements the read-route-write loop: it reads lines from an
// input stream and distributes each one to a shard file chosen by hashing
// the line's key. All lines sharing a key land in the same shard, and lines
// keep their input order within each shard.
package split

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/nemanja-m/hashsplit/internal/sink"
	"github.com/nemanja-m/hashsplit/pkg/core"
)

const (
	DefaultReadBufferSize = 1024 * 1024 // 1MB
)

// Split reads r line by line until EOF, routing each line to
// sinks[Partition(key)] and writing it verbatim, terminator included. A
// final line without a terminator is still routed and written in full.
//
// A single line buffer is reused across iterations; only its contents
// change, so memory stays flat regardless of input size. Read errors other
// than clean EOF abort the loop and are returned for the caller to treat as
// fatal.
func Split(r io.Reader, sinks *sink.Set, bufferSize ...int) error {
	if len(bufferSize) == 0 {
		bufferSize = []int{DefaultReadBufferSize}
	}
	reader := bufio.NewReaderSize(r, bufferSize[0])

	var line []byte
	for {
		line = line[:0]

		// ReadSlice keeps the newline, which must reach the output file
		// verbatim. ErrBufferFull means the line outgrew the reader's
		// internal buffer; accumulate and keep reading the same line.
		for {
			chunk, err := reader.ReadSlice('\n')
			line = append(line, chunk...)
			if err == nil {
				break
			}
			if errors.Is(err, bufio.ErrBufferFull) {
				continue
			}
			if errors.Is(err, io.EOF) {
				if len(line) == 0 {
					return nil
				}
				// Unterminated final line: route and write it, then done.
				return writeLine(line, sinks)
			}
			return fmt.Errorf("error reading input: %w", err)
		}

		if err := writeLine(line, sinks); err != nil {
			return err
		}
	}
}

func writeLine(line []byte, sinks *sink.Set) error {
	key := line[:core.KeyEnd(line)]
	return sinks.WriteLine(core.Partition(key, sinks.Count()), line)
}
