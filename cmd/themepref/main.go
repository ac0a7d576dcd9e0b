package main

import (
	"os"

	"github.com/matthewsawatzky/themepref/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.VersionInfo{Version: version, Commit: commit, Date: date}))
}
