package urlcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/url-core/cliout"
)

// Info holds urltool version information, expected to be set via ldflags at
// build time.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("urltool version %s (commit: %s, built: %s)", i.Version, i.GitCommit, i.BuildDate)
}

// NewVersionCommand creates a version command that displays version info in
// the configured output format.
func NewVersionCommand(info *Info) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display urltool version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if quiet {
				cliout.Plain("%s", info.Version)
				return nil
			}
			return cliout.Print(info, func() { cliout.Plain("%s", info.String()) })
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
