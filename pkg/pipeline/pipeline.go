// Package pipeline ties graph validation, SVG rendering and file output
// together for the dagsvg command.
//
// The pipeline is a single linear pass:
//
//  1. Validate: configuration and node positions are checked up front
//  2. Render: the SVG document is assembled in memory
//  3. Write: the complete document is written atomically to the output path
//
// A failure in any stage aborts the run before anything reaches disk.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Graph:     dag.Example(),
//	    Positions: layout.Example(),
//	    Config:    svg.DefaultConfig(),
//	    Output:    "dag.svg",
//	})
package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/matzehuels/dagsvg/pkg/dag"
	"github.com/matzehuels/dagsvg/pkg/errors"
	"github.com/matzehuels/dagsvg/pkg/io"
	"github.com/matzehuels/dagsvg/pkg/layout"
	"github.com/matzehuels/dagsvg/pkg/render/svg"
)

// Options contains everything needed for one render.
type Options struct {
	Graph     *dag.Graph
	Positions layout.Positions
	Config    svg.Config

	// Output is the destination path. Empty means [io.DefaultPath].
	Output string

	// DryRun renders without writing a file.
	DryRun bool
}

// Validate checks the options without rendering.
func (o *Options) Validate() error {
	if o.Graph == nil {
		return errors.New(errors.ErrCodeInvalidInput, "graph is required")
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	return o.Positions.Validate(o.Graph)
}

func (o *Options) outputPath() string {
	if o.Output == "" {
		return io.DefaultPath
	}
	return o.Output
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the rendered document.
	SVG []byte

	// Hash is the hex SHA-256 of SVG. Identical inputs give identical hashes.
	Hash string

	// Path is where the document was written; empty for dry runs.
	Path string

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Bytes      int
	RenderTime time.Duration
	WriteTime  time.Duration
}

func hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
