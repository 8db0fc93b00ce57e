// Package main is the entry point for the k8snooze CLI.
//
// k8snooze is a command-line tool for hibernating and waking managed
// Kubernetes clusters: it shrinks worker pools to the platform floor of
// one worker per zone to cut cost while the control plane keeps running,
// and restores the captured sizes exactly on wake.
//
// Commands: hibernate, wake, status, cost.
//
// For detailed usage information, run:
//
//	k8snooze --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/k8snooze/cmd/k8snooze/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
