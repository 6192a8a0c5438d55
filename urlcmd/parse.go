package urlcmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jongio/url-core/cliout"
	"github.com/jongio/url-core/url"
)

// NewParseCommand creates the parse command, which converts a URL string
// into its structured components and prints them in the configured output
// format.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a URL into its structured components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("parsing url", "input", args[0])
			u, err := url.Parse(args[0])
			if err != nil {
				return err
			}
			c := componentsOf(u)
			return cliout.Print(c, func() { printComponents(c) })
		},
	}
}

// NewParentCommand creates the parent command, which parses a URL and
// prints it with the last path segment removed.
func NewParentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parent <url>",
		Short: "Print a URL with the last path segment removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil {
				return err
			}
			c := componentsOf(u.Parent())
			return cliout.Print(c, func() { cliout.Plain("%s", c.URL) })
		},
	}
}
