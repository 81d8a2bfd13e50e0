package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dagsvg/pkg/buildinfo"
	"github.com/matzehuels/dagsvg/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders, so a bare invocation writes dag.svg.
func (c *CLI) RootCommand() *cobra.Command {
	opts := newRenderOpts()
	root := &cobra.Command{
		Use:           "dagsvg",
		Short:         "dagsvg draws a small directed graph as an SVG image",
		Long:          `dagsvg renders a fixed five-node directed graph to a static SVG file, with arrowheads stopping at each node's circle.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, opts)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	opts.bind(root)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())

	return root
}

func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
