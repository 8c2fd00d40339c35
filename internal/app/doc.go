// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, an optional YAML file and WALLETCORE_*
// environment variables, builds the logger, and constructs the concrete
// stores and services exposed via the Wire struct for commands to use.
package app
