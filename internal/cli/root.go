package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the tagcloud CLI until ctx is cancelled or the command
// finishes.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "tagcloud",
		Short:        "TagCloud lays out rectangles as a round, dense cloud",
		Long:         `TagCloud places word boxes one by one on a spiral around a centre and pulls each towards it, producing a compact circular tag cloud that can be exported as PNG, PDF, DXF, XLSX or JSON.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			env, err := loadEnv(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger.Debug("config loaded", "path", env.configPath)

			ctx := withEnv(withLogger(cmd.Context(), logger), env)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tagcloud %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.tagcloud/config.json)")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPresetCmd())

	return root
}
