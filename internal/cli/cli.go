// Package cli implements the re2ab command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/re2ab/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "re2ab"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself performs the rewrite.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "re2ab [file ...]",
		Short: "re2ab makes paths in rust-project.json absolute",
		Long: `re2ab rewrites the relative paths stored under "root_module" and "path" keys
of a rust-project.json file into absolute paths, resolved against the directory
that contains the file. The file is rewritten in place with 4-space indentation.

Without arguments the rust-project.json in the current directory is used.`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNormalize(cmd, args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.bind(root)

	root.AddCommand(c.completionCommand())

	return root
}
