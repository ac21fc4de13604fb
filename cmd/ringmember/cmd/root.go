// Package cmd implements the ringmember command line tool: a single long-running node process plus a small
// estimation helper, wired from the config/protocol/transport/httpapi packages.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ringmember",
	Short: "Command line tool running a ring-gossip membership node.",
	Long:  `Command line tool running a ring-gossip membership node.`,
}

// Execute adds all child commands to the root command and sets flags appropriately. This is called by main.main.
// It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(*configError); ok {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"/etc/ringmember/config.toml",
		"Path to the node's TOML configuration file. Missing is fine; a present but malformed file is not.",
	)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(estimateCmd)
}

// configError wraps a configuration decode failure so Execute can tell it apart from any other runtime error and
// exit with a distinct code, since a malformed config file is an operator mistake, not a transient failure.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }
