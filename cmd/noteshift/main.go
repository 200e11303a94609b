// SPDX-License-Identifier: EPL-2.0

// Command noteshift pitch shifts Ogg Vorbis files by a number of cents.
//
// Usage:
//
//	noteshift list    --input DIR
//	noteshift convert --input DIR --output DIR --cents N [--all] [--file NAME] [--mono]
//	noteshift preview --file PATH --cents N
//	noteshift ui      --input DIR --output DIR
//
// Every command accepts --config FILE and --log-level LEVEL. Settings may
// also come from noteshift.yaml or NOTESHIFT_* environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, errUsage) {
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "noteshift:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "list":
		return runList(args, out)
	case "convert":
		return runConvert(ctx, args, out)
	case "preview":
		return runPreview(ctx, args, out)
	case "ui":
		return runUI(ctx, args)
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: noteshift <command> [flags]

commands:
  list      list the .ogg files of the input directory
  convert   pitch shift files into <output>/pitch_shifted
  preview   play one file at a pitch
  ui        interactive picker with preview and conversion

run "noteshift <command> --help" for the flags of a command
`)
}
