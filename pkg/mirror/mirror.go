// Package mirror fetches index files from a Debian package mirror.
//
// A mirror publishes its indices under dists/<suite>/: the Release
// file describing the suite, and per-component Contents files mapping
// file paths to packages. This package builds the URLs for those files
// and streams them over HTTP with typed errors so callers can
// distinguish a missing index (bad architecture, bad suite) from a
// failing mirror.
package mirror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the requested index does not exist
	// on the mirror (HTTP 404), usually a wrong architecture or suite.
	ErrNotFound = errors.New("index not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection
	// errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Default source coordinates. The mirror matches the Debian archive
// network's UK node; suite and component follow the archive layout.
const (
	DefaultBase      = "http://ftp.uk.debian.org/debian"
	DefaultSuite     = "stable"
	DefaultComponent = "main"
)

// Source identifies one (mirror, suite, component) triple to query.
type Source struct {
	Base      string // mirror base URL, e.g. "http://ftp.uk.debian.org/debian"
	Suite     string // e.g. "stable", "bookworm"
	Component string // e.g. "main", "contrib", "non-free"
}

// DefaultSource returns a Source pointing at the default Debian mirror.
func DefaultSource() Source {
	return Source{Base: DefaultBase, Suite: DefaultSuite, Component: DefaultComponent}
}

// base returns the mirror base URL without a trailing slash.
func (s Source) base() string {
	return strings.TrimRight(s.Base, "/")
}

// ContentsName returns the index file name for arch. With udeb set it
// names the installer variant (Contents-udeb-<arch>.gz).
func ContentsName(arch string, udeb bool) string {
	if udeb {
		return fmt.Sprintf("Contents-udeb-%s.gz", arch)
	}
	return fmt.Sprintf("Contents-%s.gz", arch)
}

// ContentsURL returns the full URL of the Contents index for arch.
// Ex: http://ftp.uk.debian.org/debian/dists/stable/main/Contents-amd64.gz
func (s Source) ContentsURL(arch string, udeb bool) string {
	return fmt.Sprintf("%s/dists/%s/%s/%s", s.base(), s.Suite, s.Component, ContentsName(arch, udeb))
}

// ReleaseURL returns the URL of the suite's Release file.
// Ex: http://ftp.uk.debian.org/debian/dists/stable/Release
func (s Source) ReleaseURL() string {
	return fmt.Sprintf("%s/dists/%s/Release", s.base(), s.Suite)
}

// ContentsEntry returns the path under which the Release checksum
// tables list this Contents file.
// Ex: main/Contents-amd64.gz
func (s Source) ContentsEntry(arch string, udeb bool) string {
	return fmt.Sprintf("%s/%s", s.Component, ContentsName(arch, udeb))
}
