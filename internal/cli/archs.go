package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/pkgstats/pkgstats/pkg/errors"
	"github.com/pkgstats/pkgstats/pkg/mirror"
)

// archsCommand creates the archs command, which lists the
// architectures a mirror publishes for a suite. Useful for finding a
// valid <arch> token before running stats.
func (c *CLI) archsCommand() *cobra.Command {
	var (
		mirrorURL string
		suite     string
	)

	cmd := &cobra.Command{
		Use:   "archs",
		Short: "List the architectures the mirror publishes",
		Long: `Fetch the suite's Release file and list the architectures it
publishes, along with the suite identity the mirror reports.

Examples:
  pkgstats archs
  pkgstats archs --suite bookworm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArchs(cmd.Context(), mirrorURL, suite)
		},
	}

	cmd.Flags().StringVar(&mirrorURL, "mirror", "", "mirror base URL (default: $DEBIAN_MIRROR or "+mirror.DefaultBase+")")
	cmd.Flags().StringVar(&suite, "suite", "", "suite under dists/ (default: stable)")

	return cmd
}

func (c *CLI) runArchs(ctx context.Context, mirrorURL, suite string) error {
	cfg, err := loadConfig()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "cannot read config file")
	}
	src := resolveSource(cfg, mirrorURL, suite, "")
	if err := validateSource(src); err != nil {
		return err
	}

	c.Logger.Infof("Fetching %s", src.ReleaseURL())

	release, err := mirror.NewClient().FetchRelease(ctx, src)
	if err != nil {
		return mapFetchError(err, src.ReleaseURL())
	}

	label := release.Suite
	if release.Codename != "" {
		label = fmt.Sprintf("%s (%s)", release.Suite, release.Codename)
	}
	fmt.Println(styleTitle.Render(fmt.Sprintf("%s %s", release.Origin, label)))
	for _, arch := range release.Architectures {
		printInfo("%s", arch)
	}
	if len(release.Architectures) == 0 {
		printWarning("Release file lists no architectures")
	}

	return nil
}
