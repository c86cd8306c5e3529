package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	urfave "github.com/urfave/cli/v3"

	"github.com/katalvlaran/aoc2022/input"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/internal/manifest"
	"github.com/katalvlaran/aoc2022/internal/puzzle"
)

// Version is reported by --version.
const Version = "1.0.0"

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// New returns the root command. Results are written to out, logs to errOut.
func New(out, errOut io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:      "advent",
		Usage:     "solve daily puzzle inputs",
		Version:   Version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: urfave.EnvVars("ADVENT_DEBUG"),
			},
			&urfave.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				Sources: urfave.EnvVars("ADVENT_LOG_FORMAT"),
			},
		},
		// Errors are reported by the caller; never os.Exit from inside.
		ExitErrHandler: func(context.Context, *urfave.Command, error) {},
		Commands: []*urfave.Command{
			solveCommand(errOut),
			batchCommand(errOut),
			daysCommand(),
		},
	}
}

// withLogger builds the logger selected by the global flags and stores it
// in ctx.
func withLogger(ctx context.Context, cmd *urfave.Command, errOut io.Writer) (context.Context, error) {
	format := strings.ToLower(cmd.String("log-format"))
	if format != "text" && format != "json" {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid --log-format %q: want text or json", format)}
	}
	return ctxlog.WithLogger(ctx, ctxlog.New(errOut, format, cmd.Bool("debug"))), nil
}

func solveCommand(errOut io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:      "solve",
		Usage:     "solve one day's input",
		ArgsUsage: "[INPUT]",
		Flags: []urfave.Flag{
			&urfave.IntFlag{
				Name:     "day",
				Aliases:  []string{"d"},
				Usage:    "puzzle day",
				Required: true,
			},
			&urfave.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "path to the puzzle input (or first argument)",
				Sources: urfave.EnvVars("ADVENT_INPUT"),
			},
			&urfave.IntFlag{
				Name:    "part",
				Aliases: []string{"p"},
				Usage:   "print only part 1 or 2 (default both)",
			},
		},
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			ctx, err := withLogger(ctx, cmd, errOut)
			if err != nil {
				return err
			}
			path := cmd.String("input")
			if path == "" {
				path = cmd.Args().First()
			}
			if path == "" {
				return &ExitError{Code: 2, Message: "solve: no input given (use --input or an argument)"}
			}
			day, part := int(cmd.Int("day")), int(cmd.Int("part"))
			if part < 0 || part > 2 {
				return &ExitError{Code: 2, Message: fmt.Sprintf("solve: --part must be 1 or 2, got %d", part)}
			}

			lines, err := input.ReadLines(path)
			if err != nil {
				return err
			}
			res, err := puzzle.Solve(ctx, day, lines)
			if err != nil {
				return err
			}
			return printResult(cmd.Root().Writer, res, part)
		},
	}
}

func batchCommand(errOut io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:      "batch",
		Usage:     "run every entry of an HCL manifest",
		ArgsUsage: "MANIFEST",
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			ctx, err := withLogger(ctx, cmd, errOut)
			if err != nil {
				return err
			}
			if cmd.Args().Len() != 1 {
				return &ExitError{Code: 2, Message: "batch: expected exactly one manifest path"}
			}
			m, err := manifest.Load(cmd.Args().First())
			if err != nil {
				return err
			}
			log := ctxlog.FromContext(ctx)
			log.Debug("manifest loaded", "path", m.Path, "runs", len(m.Runs))

			out := cmd.Root().Writer
			failed := 0
			for _, run := range m.Runs {
				lines, err := input.ReadLines(run.Input)
				if err != nil {
					return fmt.Errorf("run %q: %w", run.Name, err)
				}
				res, err := puzzle.Solve(ctx, run.Day, lines)
				if err != nil {
					return fmt.Errorf("run %q: %w", run.Name, err)
				}
				for part := 1; part <= 2; part++ {
					got, _ := res.Part(part)
					status := ""
					if want, ok := run.Want(part); ok {
						if got.Found && got.Value == want {
							status = " ok"
						} else {
							status = fmt.Sprintf(" FAIL (want %d)", want)
							failed++
						}
					}
					fmt.Fprintf(out, "%s: day %d part %d: %s%s\n", run.Name, res.Day, part, got, status)
				}
			}
			if failed > 0 {
				log.Warn("batch expectations failed", "count", failed)
				return &ExitError{Code: 1, Message: fmt.Sprintf("batch: %d expectation(s) failed", failed)}
			}
			return nil
		},
	}
}

func daysCommand() *urfave.Command {
	return &urfave.Command{
		Name:  "days",
		Usage: "list the days with a solver",
		Action: func(_ context.Context, cmd *urfave.Command) error {
			for _, d := range puzzle.Days() {
				fmt.Fprintln(cmd.Root().Writer, d)
			}
			return nil
		},
	}
}

// printResult writes one line per requested part. part 0 means both.
func printResult(w io.Writer, res puzzle.Result, part int) error {
	for p := 1; p <= 2; p++ {
		if part != 0 && part != p {
			continue
		}
		a, err := res.Part(p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "day %d part %d: %s\n", res.Day, p, a); err != nil {
			return err
		}
	}
	return nil
}
