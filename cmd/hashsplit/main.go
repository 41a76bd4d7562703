package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/nemanja-m/hashsplit/internal/shared/config"
	"github.com/nemanja-m/hashsplit/internal/shared/logging"
	"github.com/nemanja-m/hashsplit/internal/sink"
	"github.com/nemanja-m/hashsplit/internal/split"
)

const usage = `usage: hashsplit [-input GLOB] N BASENAME

Split standard input containing a stream of key/value lines separated
by a single tab into N output files named BASENAME.i according to the
hash values of the keys. The value may be absent, either with or
without a tab following the key. Keys and values may contain any bytes
except zero, tab, and newline.

With -input, split the files matching GLOB (processed one at a time,
in sorted order) instead of standard input.`

func main() {
	flags := flag.NewFlagSet("hashsplit", flag.ExitOnError)
	flags.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	input := flags.String("input", "", "glob pattern of input files (default: read stdin)")
	flags.Parse(os.Args[1:])

	if flags.NArg() != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.NewSlogLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)

	count, err := strconv.Atoi(flags.Arg(0))
	if err != nil || count < 1 {
		log.Fatal("invalid number of output files", "arg", flags.Arg(0))
	}
	basename := flags.Arg(1)
	if basename == "" {
		log.Fatal("length of BASENAME cannot be 0")
	}

	log.Debug(
		"starting split",
		"run_id", uuid.NewString(),
		"outputs", count,
		"basename", basename,
		"sink_buffer_size", cfg.Sink.BufferSize,
	)

	sinks, err := sink.Open(basename, count, cfg.Sink.BufferSize)
	if err != nil {
		log.Fatal("opening outputs failed", "err", err)
	}

	if *input != "" {
		files, err := split.FindFiles(*input)
		if err != nil {
			log.Fatal("resolving input files failed", "err", err)
		}
		err = split.SplitFiles(files, sinks, cfg.Read.BufferSize)
	} else {
		err = split.Split(os.Stdin, sinks, cfg.Read.BufferSize)
	}
	if err != nil {
		// Read errors exit without closing sinks; partially buffered output
		// is dropped, matching the reference implementation.
		log.Fatal("split failed", "err", err)
	}

	if err := sinks.Close(); err != nil {
		log.Fatal("closing outputs failed", "err", err)
	}
}
