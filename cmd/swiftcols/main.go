package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oleg578/swiftcols"
	"github.com/oleg578/swiftcols/internal/cli"
)

// main is the entrypoint for the swiftcols command.
func main() {
	// Use a minimal logger until the level flag has been parsed.
	setLogger(os.Stderr, slog.LevelWarn)

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and processes in to out. Any returned error is a failed run.
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	setLogger(errOut, opts.LogLevel)

	return swiftcols.Run(context.Background(), opts.Config, in, out)
}

func setLogger(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
