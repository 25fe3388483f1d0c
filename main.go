package main

import "github.com/grzegorztttt-code/Tv-guide-from-chat/cmd"

// Populated by goreleaser via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
