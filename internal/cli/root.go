// Package cli implements scorectl, an offline front end to the scoring core
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/logger"
)

const app = "scorectl"

// Actual version can be specified in build command.
var version = "unknown"

type options struct {
	debug bool
	json  bool
	log   *zap.Logger
}

// NewRootCommand builds the scorectl command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           app,
		Short:         "scorectl scores rental listings from YAML or JSON files without a database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			format, level := "console", "info"
			if opts.json {
				format = "json"
			}
			if opts.debug {
				level = "debug"
			}
			log, err := logger.New(format, level, "stderr")
			if err != nil {
				return fmt.Errorf("creating a logger: %w", err)
			}
			opts.log = log
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	root.AddCommand(
		newScoreCommand(opts),
		newFairnessCommand(opts),
		newMatchCommand(opts),
		newBadgeCommand(opts),
		newPrefsCommand(opts),
		newTokenCommand(opts),
		newVersionCommand(),
	)

	return root
}

// Execute runs scorectl with os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}
