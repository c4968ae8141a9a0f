package mirror

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/julien-sobczak/deb822"
)

// Release holds the fields of a suite's Release file that matter for
// querying Contents indices: the suite identity, the architectures the
// mirror publishes, and the SHA256 table used to verify downloads.
type Release struct {
	Origin        string
	Label         string
	Suite         string
	Codename      string
	Architectures []string

	// sha256 maps file paths relative to dists/<suite>/
	// (e.g. "main/Contents-amd64.gz") to their hex checksums.
	sha256 map[string]string
}

var whitespace = regexp.MustCompile(`\s+`)

// FetchRelease downloads and parses the Release file for src.
func (c *Client) FetchRelease(ctx context.Context, src Source) (*Release, error) {
	body, err := c.Fetch(ctx, src.ReleaseURL())
	if err != nil {
		return nil, err
	}
	defer body.Close()

	parser, err := deb822.NewParser(body)
	if err != nil {
		return nil, fmt.Errorf("malformed Release file: %w", err)
	}
	doc, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("malformed Release file: %w", err)
	}
	if len(doc.Paragraphs) == 0 {
		return nil, fmt.Errorf("malformed Release file: no paragraphs")
	}

	return newRelease(doc.Paragraphs[0]), nil
}

func newRelease(p deb822.Paragraph) *Release {
	r := &Release{
		Origin:        p.Value("Origin"),
		Label:         p.Value("Label"),
		Suite:         p.Value("Suite"),
		Codename:      p.Value("Codename"),
		Architectures: strings.Fields(p.Value("Architectures")),
		sha256:        make(map[string]string),
	}

	// Each checksum line reads: <hash> <size> <path>.
	for _, entry := range strings.Split(p.Value("SHA256"), "\n") {
		fields := whitespace.Split(strings.TrimSpace(entry), -1)
		if len(fields) != 3 {
			continue
		}
		r.sha256[fields[2]] = fields[0]
	}

	return r
}

// Checksum returns the SHA256 the Release file lists for path, which
// is relative to dists/<suite>/ (e.g. "main/Contents-amd64.gz").
func (r *Release) Checksum(path string) (string, bool) {
	sum, ok := r.sha256[path]
	return sum, ok
}

// HasArchitecture reports whether the suite publishes indices for arch.
func (r *Release) HasArchitecture(arch string) bool {
	for _, a := range r.Architectures {
		if a == arch {
			return true
		}
	}
	return false
}
