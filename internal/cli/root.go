// Package cli provides the Cobra command structure for gomdview.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdview/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions carries values of persistent flags down to subcommands.
type rootOptions struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root gomdview command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gomdview",
		Short: "A live-preview renderer for Markdown",
		Long: `gomdview renders Markdown the way a live-preview editor would: syntax
markers are hidden, emphasis and headings are styled in place, and spans
like math, images, horizontal rules, and tables are replaced by rendered
widgets. A cursor position reveals the raw markup of the construct under
it, so the source stays editable.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(opts.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
