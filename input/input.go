package input

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyInput indicates the source holds no non-blank line.
var ErrEmptyInput = errors.New("input: no non-blank lines")

// Lines splits text on '\n' and trims every piece. A trailing newline yields
// a final empty line, matching a plain split.
func Lines(text string) []string {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

// ReadLines loads the file at path and returns its Lines.
// A file with only blank lines is reported as ErrEmptyInput.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	lines := Lines(string(data))
	if len(NonBlank(lines)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	return lines, nil
}

// NonBlank returns the lines that are not empty, preserving order.
func NonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}

	return out
}

// Blocks groups runs of non-blank lines. One or more blank lines separate
// blocks; leading and trailing blanks produce no empty block.
func Blocks(lines []string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range lines {
		if l == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}
