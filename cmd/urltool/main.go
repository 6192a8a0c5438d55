package main

import (
	"fmt"
	"os"

	"github.com/jongio/url-core/urlcmd"
)

// Set via ldflags at build time.
var (
	version   = "0.0.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	info := &urlcmd.Info{Version: version, GitCommit: gitCommit, BuildDate: buildDate}
	if err := urlcmd.NewRootCommand(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
