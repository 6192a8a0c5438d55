// Package urlcmd provides the cobra commands behind the urltool binary:
// parsing a URL into its structured components, building a canonical URL
// from component flags, and stepping to a URL's parent path.
//
// Commands are exposed as constructors so they can be embedded into other
// command trees:
//
//	root := urlcmd.NewRootCommand(&urlcmd.Info{Version: "1.2.3"})
//	if err := root.Execute(); err != nil {
//		os.Exit(1)
//	}
//
// All commands honor the persistent --output flag (default, json, yaml)
// and --debug for slog debug logging.
package urlcmd
