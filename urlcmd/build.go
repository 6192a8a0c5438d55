package urlcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/url-core/cliout"
	"github.com/jongio/url-core/hostname"
	"github.com/jongio/url-core/url"
)

// NewBuildCommand creates the build command, which assembles a canonical
// URL from component flags. Path and query flag values are plain decoded
// text; escaping is applied by the serializer.
func NewBuildCommand() *cobra.Command {
	var (
		schemeText string
		hostText   string
		port       int
		pathText   string
		queryPairs []string
		fragment   string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a canonical URL from components",
		Example: `  urltool build --scheme https --host example.com --port 443 \
    --path /some/path --query "a=123" --query "b=with spaces"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := url.ParseScheme(schemeText)
			if err != nil {
				return err
			}
			host, err := hostname.ParseHost(hostText)
			if err != nil {
				return err
			}
			path, err := url.ParsePath(pathText)
			if err != nil {
				return err
			}

			query := make(url.Query, len(queryPairs))
			for _, pair := range queryPairs {
				key, val, found := strings.Cut(pair, "=")
				if !found {
					return fmt.Errorf("%w: --query %q has no %q", url.ErrInvalidQuery, pair, "=")
				}
				query[key] = val
			}

			var portPtr *uint16
			if port >= 0 {
				if port > 65535 {
					return fmt.Errorf("%w: %d is out of range", url.ErrInvalidPort, port)
				}
				portPtr = url.Port(uint16(port))
			}

			u := url.New(scheme, host, portPtr, path, query, fragment)
			c := componentsOf(u)
			return cliout.Print(c, func() { cliout.Plain("%s", c.URL) })
		},
	}

	cmd.Flags().StringVar(&schemeText, "scheme", "https", "URL scheme (http, https, ws, wss)")
	cmd.Flags().StringVar(&hostText, "host", "", "Hostname, e.g. example.com")
	cmd.Flags().IntVar(&port, "port", -1, "Port (0-65535), omit for none")
	cmd.Flags().StringVar(&pathText, "path", "", "Absolute path, decoded form")
	cmd.Flags().StringArrayVar(&queryPairs, "query", nil, "Query pair key=value, decoded form (repeatable)")
	cmd.Flags().StringVar(&fragment, "fragment", "", "Fragment, decoded form")
	_ = cmd.MarkFlagRequired("host")

	return cmd
}
