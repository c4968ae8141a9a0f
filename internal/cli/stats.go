package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkgstats/pkgstats/pkg/contents"
	apperrors "github.com/pkgstats/pkgstats/pkg/errors"
	"github.com/pkgstats/pkgstats/pkg/mirror"
)

// statsOpts holds the command-line flags for the stats command.
type statsOpts struct {
	top       int    // number of packages to display
	mirrorURL string // mirror base URL (empty means env/config/default)
	suite     string // suite under dists/ (empty means config/default)
	component string // component within the suite (empty means config/default)
	udeb      bool   // query the installer (udeb) index variant
	verify    bool   // verify the download against the Release checksum
	output    string // output file path (stdout if empty)
}

// statsCommand creates the stats command, the core pipeline:
// download the Contents index for an architecture, count files per
// package, and print the packages with the most files.
func (c *CLI) statsCommand() *cobra.Command {
	var opts statsOpts

	cmd := &cobra.Command{
		Use:   "stats <arch>",
		Short: "Report the packages shipping the most files for an architecture",
		Long: `Download the Contents index for an architecture from a Debian mirror,
count how many file entries mention each package, and print the packages
with the highest counts.

The mirror is taken from --mirror, the DEBIAN_MIRROR environment
variable, the config file (~/.config/pkgstats/config.toml), or the
built-in default, in that order.

Examples:
  pkgstats stats amd64
  pkgstats stats arm64 --top 25
  pkgstats stats amd64 --suite bookworm --component contrib
  pkgstats stats amd64 --verify`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), args[0], opts, cmd.Flags().Changed("top"))
		},
	}

	cmd.Flags().IntVarP(&opts.top, "top", "n", 10, "number of packages to display")
	cmd.Flags().StringVar(&opts.mirrorURL, "mirror", "", "mirror base URL (default: $DEBIAN_MIRROR or "+mirror.DefaultBase+")")
	cmd.Flags().StringVar(&opts.suite, "suite", "", "suite under dists/ (default: stable)")
	cmd.Flags().StringVar(&opts.component, "component", "", "component within the suite (default: main)")
	cmd.Flags().BoolVar(&opts.udeb, "udeb", false, "query the installer (udeb) index instead")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "verify the download against the Release file checksum")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, arch string, opts statsOpts, topSet bool) error {
	if err := apperrors.ValidateArch(arch); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "cannot read config file")
	}
	src := resolveSource(cfg, opts.mirrorURL, opts.suite, opts.component)
	top := resolveTop(cfg, opts.top, topSet)

	if err := validateSource(src); err != nil {
		return err
	}
	if err := apperrors.ValidateTop(top); err != nil {
		return err
	}

	client := mirror.NewClient()

	// The Release file is only needed to verify the download.
	var expected string
	if opts.verify {
		expected, err = c.lookupChecksum(ctx, client, src, arch, opts.udeb)
		if err != nil {
			return err
		}
	}

	url := src.ContentsURL(arch, opts.udeb)
	c.Logger.Infof("Downloading %s", url)

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, fmt.Sprintf("Downloading Contents index for %s", arch))
	spin.Start()

	counter, sum, err := c.countIndex(ctx, client, url, opts.verify)
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Download failed for %s", arch))
		return mapFetchError(err, url)
	}
	spin.Stop()

	if opts.verify {
		if expected == "" {
			printWarning("Release file lists no checksum for %s, skipping verification", src.ContentsEntry(arch, opts.udeb))
		} else if sum != expected {
			return apperrors.New(apperrors.ErrCodeChecksumMismatch, "checksum mismatch for %s: got %s, want %s", url, sum, expected)
		} else {
			printSuccess("Checksum verified (%s)", sum[:12])
		}
	}

	prog.done(fmt.Sprintf("Counted %d packages", counter.Len()))

	title := fmt.Sprintf("Top %d packages by number of files (%s %s/%s, %s)", top, src.Suite, src.Component, arch, src.Base)
	return c.writeReport(title, counter.Top(top), opts.output)
}

// countIndex streams the index at url through the decompressor into
// the counter. When hash is set, the raw compressed bytes are hashed
// on the way through and the hex digest is returned alongside.
func (c *CLI) countIndex(ctx context.Context, client *mirror.Client, url string, hash bool) (contents.Counter, string, error) {
	body, err := client.Fetch(ctx, url)
	if err != nil {
		return nil, "", err
	}
	defer body.Close()

	var raw io.Reader = body
	h := sha256.New()
	if hash {
		raw = io.TeeReader(body, h)
	}

	index, err := contents.NewReader(raw, url)
	if err != nil {
		return nil, "", err
	}
	defer index.Close()

	counter, err := contents.Count(index)
	if err != nil {
		return nil, "", err
	}

	// The decompressor may stop before the stream's trailing bytes;
	// drain so the hash covers the whole file.
	if hash {
		if _, err := io.Copy(io.Discard, raw); err != nil {
			return nil, "", err
		}
	}

	return counter, hex.EncodeToString(h.Sum(nil)), nil
}

// lookupChecksum fetches the suite's Release file and returns the
// SHA256 it lists for the Contents index, or "" if the file is not
// listed. A missing architecture is reported before any download.
func (c *CLI) lookupChecksum(ctx context.Context, client *mirror.Client, src mirror.Source, arch string, udeb bool) (string, error) {
	c.Logger.Debugf("Fetching %s", src.ReleaseURL())

	release, err := client.FetchRelease(ctx, src)
	if err != nil {
		return "", mapFetchError(err, src.ReleaseURL())
	}
	if !release.HasArchitecture(arch) {
		return "", apperrors.New(apperrors.ErrCodeIndexNotFound, "suite %s does not publish architecture %s (available: %v)", src.Suite, arch, release.Architectures)
	}

	sum, _ := release.Checksum(src.ContentsEntry(arch, udeb))
	return sum, nil
}

// writeReport writes the ranking to path, or stdout when path is empty.
func (c *CLI) writeReport(title string, stats []contents.Stat, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := writeRanking(out, title, stats); err != nil {
		return err
	}
	if path != "" {
		c.Logger.Infof("Wrote report to %s", path)
	}
	return nil
}

// validateSource checks the resolved mirror coordinates before they
// are interpolated into URLs.
func validateSource(src mirror.Source) error {
	if err := apperrors.ValidateMirrorURL(src.Base); err != nil {
		return err
	}
	if err := apperrors.ValidateSuite(src.Suite); err != nil {
		return err
	}
	return apperrors.ValidateComponent(src.Component)
}

// mapFetchError translates mirror errors into coded errors with a
// user-oriented message naming the URL.
func mapFetchError(err error, url string) error {
	switch {
	case errors.Is(err, mirror.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrCodeIndexNotFound, err, "%s does not exist on the mirror (check the architecture and suite)", url)
	case errors.Is(err, mirror.ErrNetwork):
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "cannot reach the mirror")
	default:
		return err
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
