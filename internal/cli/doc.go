// Package cli wires together the Cobra command tree for the herald binary.
//
// It defines the root command and all subcommands (publish, config,
// providers, version), loads configuration, dispatches to the active
// publish provider, and returns the process exit code: 0 on success, 1 on
// any failure.
package cli
