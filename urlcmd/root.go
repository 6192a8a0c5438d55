package urlcmd

import (
	"github.com/spf13/cobra"

	"github.com/jongio/url-core/cliout"
	"github.com/jongio/url-core/logutil"
)

// NewRootCommand assembles the urltool command tree.
func NewRootCommand(info *Info) *cobra.Command {
	var (
		output  string
		debug   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "urltool",
		Short: "Inspect and build structured URLs",
		Long: `urltool works with URLs as structured values rather than strings.

It parses URL strings into validated components (scheme, host labels, port,
decoded path segments, decoded query pairs, fragment) and serializes
components back into canonical form with correct percent-escaping.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, false)
			if noColor {
				cliout.NoColor()
			}
			return cliout.SetFormat(output)
		},
	}

	cmd.PersistentFlags().StringVarP(&output, "output", "o", "default", "Output format: default, json, or yaml")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		NewParseCommand(),
		NewParentCommand(),
		NewBuildCommand(),
		NewVersionCommand(info),
	)
	return cmd
}
