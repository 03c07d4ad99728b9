package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/defkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configDir string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err, "X001")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "defkit",
		Short: "Render component definitions",
		Long: `defkit adapts plain component definitions into class components
and renders them to HTML.

Definitions are maps of statics, lifecycle hooks, adapter hooks
(getElement, setupComponent, getNextState) and instance methods.
Each definition is adapted once and cached by identity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configDir, "config", "c", ".", "Directory containing defkit.json")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from defkit.json)")

	rootCmd.AddCommand(
		renderCmd(opts),
		versionCmd(),
	)

	return rootCmd
}
