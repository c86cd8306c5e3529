// Package cli builds the advent command tree on github.com/urfave/cli/v3.
//
// Commands:
//
//	advent solve --day 12 --input day12.txt [--part 1|2]
//	advent batch manifest.hcl
//	advent days
//
// Global flags --debug and --log-format (also ADVENT_DEBUG and
// ADVENT_LOG_FORMAT) shape the slog logger written to stderr. Results go to
// stdout.
package cli
