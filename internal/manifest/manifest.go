// Package manifest loads batch run descriptions from HCL files.
//
// A manifest lists named runs:
//
//	run "sample-12" {
//	  day        = 12
//	  input      = "inputs/day12_sample.txt"
//	  want_part1 = 31
//	  want_part2 = 29
//	}
//
// Relative input paths are resolved against the manifest's directory.
// The want_* attributes are optional.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

var (
	// ErrInvalid indicates a manifest that decodes but fails validation.
	ErrInvalid = errors.New("manifest: invalid")
	// ErrNoRuns indicates a manifest without run blocks.
	ErrNoRuns = fmt.Errorf("%w: no run blocks", ErrInvalid)
)

// Manifest is a decoded batch file.
type Manifest struct {
	Path string
	Runs []Run
}

// Run is one puzzle execution.
type Run struct {
	Name      string
	Day       int
	Input     string
	WantPart1 *int
	WantPart2 *int
}

// Want returns the expected answer for part 1 or 2, if declared.
func (r Run) Want(part int) (int, bool) {
	var w *int
	switch part {
	case 1:
		w = r.WantPart1
	case 2:
		w = r.WantPart2
	}
	if w == nil {
		return 0, false
	}
	return *w, true
}

// hclFile is the top-level structure of a manifest for decoding.
type hclFile struct {
	Runs []*hclRun `hcl:"run,block"`
}

type hclRun struct {
	Name      string `hcl:"name,label"`
	Day       int    `hcl:"day"`
	Input     string `hcl:"input"`
	WantPart1 *int   `hcl:"want_part1,optional"`
	WantPart2 *int   `hcl:"want_part2,optional"`
}

// Load parses and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, diags)
	}
	return decode(f.Body, path)
}

// Decode parses src as if it were read from filename. Relative inputs are
// resolved against filename's directory.
func Decode(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: parse %s: %w", filename, diags)
	}
	return decode(f.Body, filename)
}

func decode(body hcl.Body, filename string) (*Manifest, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("manifest: decode %s: %w", filename, diags)
	}
	if len(parsed.Runs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRuns, filename)
	}

	dir := filepath.Dir(filename)
	m := &Manifest{Path: filename, Runs: make([]Run, 0, len(parsed.Runs))}
	seen := make(map[string]bool, len(parsed.Runs))
	for _, r := range parsed.Runs {
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: duplicate run %q", ErrInvalid, r.Name)
		}
		seen[r.Name] = true
		if r.Day <= 0 {
			return nil, fmt.Errorf("%w: run %q: day must be positive, got %d", ErrInvalid, r.Name, r.Day)
		}
		if r.Input == "" {
			return nil, fmt.Errorf("%w: run %q: input is empty", ErrInvalid, r.Name)
		}
		in := r.Input
		if !filepath.IsAbs(in) {
			in = filepath.Join(dir, in)
		}
		m.Runs = append(m.Runs, Run{
			Name:      r.Name,
			Day:       r.Day,
			Input:     in,
			WantPart1: r.WantPart1,
			WantPart2: r.WantPart2,
		})
	}

	return m, nil
}
