package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gomdview configuration file",
		Long: `Create a new .gomdview.yaml configuration file in the current directory
with sensible defaults. The file can be customized to change the preview
mode, point at a vault directory, and enable or disable pattern scans.

Examples:
  gomdview init                       Create .gomdview.yaml
  gomdview init --force               Overwrite an existing file
  gomdview init --output custom.yaml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gomdview.yaml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	path := flags.output
	if path == "" {
		path = config.DefaultFileName
	}

	if _, err := os.Stat(path); err == nil && !flags.force {
		return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, config.Template(), configFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("created configuration file", logging.FieldPath, path)

	return nil
}
