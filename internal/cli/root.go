package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/synteny-tools/synplot/pkg/buildinfo"
)

// Execute runs the synplot CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug with --verbose (-v). The
// logger is attached to the command context and retrieved by subcommands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "synplot",
		Short:        "synplot draws multi-track synteny figures",
		Long:         `synplot renders comparative-genomics figures: chromosome tracks laid out on a shared canvas, with ribbons connecting orthologous genes between tracks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDrawCmd())

	return root.ExecuteContext(ctx)
}
