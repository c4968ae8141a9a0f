// Package contents parses Debian Contents index files.
//
// A Contents file maps every file path shipped by a distribution to the
// packages that install it, one entry per line:
//
//	usr/bin/rsync       net/rsync
//	usr/share/doc/zsh   shells/zsh,shells/zsh-common
//
// The final whitespace-separated field is a comma-separated list of
// qualified package names (section/name). Everything before it is the
// file path, which may itself contain spaces.
//
// The package provides streaming decompression for the compressed
// variants published on mirrors (gzip, xz), a line parser, and a
// counter that aggregates file counts per package.
package contents

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single Contents line. Paths are long but never
// anywhere near this; a longer line means a corrupt or hostile stream.
const maxLineBytes = 1 << 20

// Entry is a line of a Contents file split into its two columns.
type Entry struct {
	Path     string   // file path, relative to the filesystem root
	Packages []string // qualified package names (e.g. "net/rsync")
}

// ParseLine splits a Contents line into its path and package list.
// The line is split on the last run of whitespace, matching how the
// index is written: anything after the final gap is the package list,
// anything before it is the path.
//
// ok is false for lines that do not have both columns (blank lines and
// the prose header some historical mirrors prepend); callers skip them.
func ParseLine(line string) (e Entry, ok bool) {
	line = strings.TrimRight(line, " \t\r")

	i := strings.LastIndexAny(line, " \t")
	if i < 0 {
		return Entry{}, false
	}
	path := strings.TrimRight(line[:i], " \t")
	pkgs := line[i+1:]
	if path == "" || pkgs == "" {
		return Entry{}, false
	}

	return Entry{Path: path, Packages: strings.Split(pkgs, ",")}, true
}

// Count reads a decompressed Contents stream and returns per-package
// file counts. Each package listed on a line is credited once for that
// line. Malformed lines are skipped, not counted as errors.
func Count(r io.Reader) (Counter, error) {
	counter := make(Counter)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		entry, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		for _, pkg := range entry.Packages {
			counter.Add(pkg)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading contents index: %w", err)
	}

	return counter, nil
}
