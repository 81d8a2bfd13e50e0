package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dagsvg/pkg/dag"
	"github.com/matzehuels/dagsvg/pkg/io"
	"github.com/matzehuels/dagsvg/pkg/layout"
	"github.com/matzehuels/dagsvg/pkg/pipeline"
	"github.com/matzehuels/dagsvg/pkg/render/svg"
)

// renderOpts holds the command-line flags shared by render and config.
// Style flags only override the config file when set explicitly.
type renderOpts struct {
	output     string // output file path
	configPath string // optional TOML config file
	stdout     bool   // write the document to stdout instead of a file

	width       int
	height      int
	scaleX      float64
	scaleY      float64
	radius      float64
	arrowOffset float64
	nodeColor   string
	edgeColor   string
}

func newRenderOpts() *renderOpts {
	d := svg.DefaultConfig()
	return &renderOpts{
		output:      io.DefaultPath,
		width:       d.CanvasWidth,
		height:      d.CanvasHeight,
		scaleX:      d.ScaleX,
		scaleY:      d.ScaleY,
		radius:      d.NodeRadius,
		arrowOffset: d.ArrowOffset,
		nodeColor:   d.NodeColor,
		edgeColor:   d.EdgeColor,
	}
}

// bind registers the output and style flags on cmd.
func (o *renderOpts) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", o.output, "output file")
	f.BoolVar(&o.stdout, "stdout", false, "write the SVG to stdout instead of a file")
	o.bindStyle(cmd)
}

// bindStyle registers only the flags that feed [renderOpts.resolveConfig].
func (o *renderOpts) bindStyle(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML file with rendering options")
	f.IntVar(&o.width, "width", o.width, "canvas width in pixels")
	f.IntVar(&o.height, "height", o.height, "canvas height in pixels")
	f.Float64Var(&o.scaleX, "scale-x", o.scaleX, "pixels per layout unit (horizontal)")
	f.Float64Var(&o.scaleY, "scale-y", o.scaleY, "pixels per layout unit (vertical)")
	f.Float64Var(&o.radius, "radius", o.radius, "node circle radius")
	f.Float64Var(&o.arrowOffset, "arrow-offset", o.arrowOffset, "extra edge clearance for the arrowhead")
	f.StringVar(&o.nodeColor, "node-color", o.nodeColor, "node fill color")
	f.StringVar(&o.edgeColor, "edge-color", o.edgeColor, "edge and outline color")
}

// resolveConfig layers defaults, the optional config file and explicitly
// set flags, then validates the result.
func (o *renderOpts) resolveConfig(cmd *cobra.Command) (svg.Config, error) {
	cfg := svg.DefaultConfig()
	if o.configPath != "" {
		loaded, err := svg.LoadConfig(o.configPath)
		if err != nil {
			return svg.Config{}, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.CanvasWidth = o.width
	}
	if f.Changed("height") {
		cfg.CanvasHeight = o.height
	}
	if f.Changed("scale-x") {
		cfg.ScaleX = o.scaleX
	}
	if f.Changed("scale-y") {
		cfg.ScaleY = o.scaleY
	}
	if f.Changed("radius") {
		cfg.NodeRadius = o.radius
	}
	if f.Changed("arrow-offset") {
		cfg.ArrowOffset = o.arrowOffset
	}
	if f.Changed("node-color") {
		cfg.NodeColor = o.nodeColor
	}
	if f.Changed("edge-color") {
		cfg.EdgeColor = o.edgeColor
	}

	return cfg, cfg.Validate()
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := newRenderOpts()
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the example graph to SVG",
		Long: `Render the built-in five-node graph (A and B point to C, which points to D and E)
to an SVG file. Edges are drawn first and stop short of each node's circle so the
arrowheads stay visible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := c.newRunner().Execute(cmd.Context(), pipeline.Options{
		Graph:     dag.Example(),
		Positions: layout.Example(),
		Config:    cfg,
		Output:    opts.output,
		DryRun:    opts.stdout,
	})
	if err != nil {
		return err
	}

	if opts.stdout {
		prog.done("Rendered to stdout")
		return io.WriteSVG(result.SVG, cmd.OutOrStdout())
	}

	prog.done("Rendered " + result.Path)
	out := cmd.OutOrStdout()
	printSuccess(out, "Wrote %s", StyleValue.Render(result.Path))
	printStats(out, result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.Bytes)
	return nil
}
