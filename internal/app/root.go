// Package app contains the Cobra command tree for incpath.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/blackwell-systems/incpath/internal/config"
	"github.com/blackwell-systems/incpath/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagInclude []string
)

var rootCmd = &cobra.Command{
	Use:   "incpath",
	Short: "Resolve include references against ordered search directories",
	Long: `incpath resolves file references the way a preprocessor resolves
includes: each reference is joined onto the search directories in order and
the first one that exists wins. Results are printed as canonical absolute
paths with symlinks resolved.

The search list is built from -I flags, then search_paths from the config
file, then the path-list in $INCPATH_PATH (or the variable named by path_env).
The current directory is only searched if it is listed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "incpath", appVersion)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Use a subcommand:")
		fmt.Fprintln(w, "  resolve   Resolve references to canonical paths")
		fmt.Fprintln(w, "  check     Inspect the effective search list")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/incpath/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log every probed candidate")
	rootCmd.PersistentFlags().StringArrayVarP(&flagInclude, "include", "I", nil, "Search directory, searched before configured ones (repeatable)")
}

// setup loads config, applies color settings and builds the stderr logger
// shared by all subcommands.
func setup(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	output.ConfigureColor(flagNoColor, cfg.Output.Color, os.Stdout)
	return cfg, newLogger(cmd.ErrOrStderr(), flagVerbose), nil
}
