// Package sink manages the set of shard output files. One sink exists per
// shard index; all are created up front and flushed and closed together.
package sink

import (
	"bufio"
	"fmt"
	"os"
)

const (
	// DefaultBufferSize is sized for filesystems with large blocks (e.g.
	// Panasas, some RAID). Tuning knob, not a correctness requirement.
	DefaultBufferSize = 512 * 1024 // 512 KiB
)

// Set is an ordered collection of open shard files, indexed by shard number.
type Set struct {
	names   []string
	files   []*os.File
	writers []*bufio.Writer
}

// Open creates count files named basename.0 through basename.{count-1},
// truncating any that already exist. Each file gets its own write buffer of
// bufferSize bytes (DefaultBufferSize if omitted). If any file cannot be
// created, the ones already opened are closed and the error names the
// failing path.
func Open(basename string, count int, bufferSize ...int) (*Set, error) {
	if len(bufferSize) == 0 {
		bufferSize = []int{DefaultBufferSize}
	}

	set := &Set{
		names:   make([]string, count),
		files:   make([]*os.File, count),
		writers: make([]*bufio.Writer, count),
	}
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s.%d", basename, i)
		file, err := os.Create(name)
		if err != nil {
			for j := 0; j < i; j++ {
				set.files[j].Close()
			}
			return nil, fmt.Errorf("can't open %s: %w", name, err)
		}
		set.names[i] = name
		set.files[i] = file
		set.writers[i] = bufio.NewWriterSize(file, bufferSize[0])
	}

	return set, nil
}

// Count returns the number of sinks in the set.
func (s *Set) Count() int {
	return len(s.writers)
}

// Name returns the file name of the sink at index.
func (s *Set) Name(index int) string {
	return s.names[index]
}

// WriteLine writes line verbatim to the sink at index. No terminator is
// added; the caller supplies one as part of line if needed.
func (s *Set) WriteLine(index int, line []byte) error {
	if _, err := s.writers[index].Write(line); err != nil {
		return fmt.Errorf("error writing %s: %w", s.names[index], err)
	}
	return nil
}

// Close flushes and closes every sink in index order. The first failure is
// returned with the failing path; remaining sinks are still closed.
func (s *Set) Close() error {
	var firstErr error
	for i, writer := range s.writers {
		if err := writer.Flush(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("error closing %s: %w", s.names[i], err)
		}
		if err := s.files[i].Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("error closing %s: %w", s.names[i], err)
		}
	}
	return firstErr
}
