package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dagsvg/pkg/io"
	"github.com/matzehuels/dagsvg/pkg/render/svg"
)

// Runner executes the pipeline and reports progress through its logger.
// It holds no per-run state, so one Runner can serve concurrent runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger means log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute validates, renders and writes. Cancelling ctx before the write
// stage aborts the run without touching the output path.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r.Logger.Debug("validated input",
		"nodes", opts.Graph.NodeCount(),
		"edges", opts.Graph.EdgeCount())

	result := &Result{
		Stats: Stats{
			NodeCount: opts.Graph.NodeCount(),
			EdgeCount: opts.Graph.EdgeCount(),
		},
	}

	renderStart := time.Now()
	data, err := svg.Render(opts.Graph, opts.Positions, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.SVG = data
	result.Hash = hash(data)
	result.Stats.Bytes = len(data)
	result.Stats.RenderTime = time.Since(renderStart)
	r.Logger.Debug("rendered svg",
		"bytes", len(data),
		"sha256", result.Hash[:12],
		"duration", result.Stats.RenderTime)

	if opts.DryRun {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := opts.outputPath()
	writeStart := time.Now()
	if err := io.ExportSVG(data, path); err != nil {
		return nil, err
	}
	result.Path = path
	result.Stats.WriteTime = time.Since(writeStart)
	r.Logger.Debug("wrote svg", "path", path, "duration", result.Stats.WriteTime)

	return result, nil
}
