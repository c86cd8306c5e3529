// Command advent solves daily puzzle inputs.
//
// Usage:
//
//	advent solve --day 12 --input day12.txt
//	advent batch runs.hcl
//
// A .env file in the working directory, if present, is loaded before flags
// are parsed, so ADVENT_* variables may live there.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/aoc2022/internal/cli"
)

func main() {
	// Minimal logger until the command configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program for testing.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	return cli.New(out, errOut).Run(ctx, args)
}
