package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day12Sample = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

const day13Sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := New(&out, &errOut).Run(context.Background(), append([]string{"advent"}, args...))
	return out.String(), errOut.String(), err
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	d12 := writeFile(t, dir, "d12.txt", day12Sample)
	d13 := writeFile(t, dir, "d13.txt", day13Sample)

	out, _, err := run(t, "solve", "--day", "12", "--input", d12)
	require.NoError(t, err)
	assert.Equal(t, "day 12 part 1: 31\nday 12 part 2: 29\n", out)

	out, _, err = run(t, "solve", "-d", "13", "-p", "2", d13)
	require.NoError(t, err)
	assert.Equal(t, "day 13 part 2: 140\n", out)
}

func TestSolve_InputFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ADVENT_INPUT", writeFile(t, dir, "d13.txt", day13Sample))

	out, _, err := run(t, "solve", "--day", "13", "--part", "1")
	require.NoError(t, err)
	assert.Equal(t, "day 13 part 1: 13\n", out)
}

func TestSolve_DebugLogging(t *testing.T) {
	dir := t.TempDir()
	d12 := writeFile(t, dir, "d12.txt", day12Sample)

	_, logs, err := run(t, "--debug", "--log-format", "json", "solve", "--day", "12", d12)
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"solved"`)
}

func TestSolve_Errors(t *testing.T) {
	dir := t.TempDir()
	d12 := writeFile(t, dir, "d12.txt", day12Sample)
	bad := writeFile(t, dir, "bad.txt", "S?E\n")

	var exit *ExitError

	_, _, err := run(t, "solve", "--day", "12")
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 2, exit.Code)

	_, _, err = run(t, "solve", "--day", "12", "--part", "3", d12)
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 2, exit.Code)

	_, _, err = run(t, "--log-format", "xml", "solve", "--day", "12", d12)
	require.True(t, errors.As(err, &exit))
	assert.Contains(t, exit.Message, "xml")

	_, _, err = run(t, "solve", "--day", "7", d12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no solver for day 7")

	_, _, err = run(t, "solve", "--day", "12", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid elevation")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "d12.txt", day12Sample)
	writeFile(t, dir, "d13.txt", day13Sample)
	good := writeFile(t, dir, "good.hcl", `
run "climb" {
  day        = 12
  input      = "d12.txt"
  want_part1 = 31
  want_part2 = 29
}

run "signal" {
  day        = 13
  input      = "d13.txt"
  want_part1 = 13
}
`)
	out, _, err := run(t, "batch", good)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"climb: day 12 part 1: 31 ok\n"+
		"climb: day 12 part 2: 29 ok\n"+
		"signal: day 13 part 1: 13 ok\n"+
		"signal: day 13 part 2: 140\n", out)

	failing := writeFile(t, dir, "failing.hcl", `
run "signal" {
  day        = 13
  input      = "d13.txt"
  want_part2 = 141
}
`)
	out, _, err = run(t, "batch", failing)
	var exit *ExitError
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 1, exit.Code)
	assert.Contains(t, out, "signal: day 13 part 2: 140 FAIL (want 141)")

	_, _, err = run(t, "batch")
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 2, exit.Code)
}

func TestDays(t *testing.T) {
	out, _, err := run(t, "days")
	require.NoError(t, err)
	assert.Equal(t, "12\n13\n", out)
}
