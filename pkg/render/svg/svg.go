package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/dagsvg/pkg/dag"
	"github.com/matzehuels/dagsvg/pkg/errors"
	"github.com/matzehuels/dagsvg/pkg/layout"
)

const (
	strokeWidth = 2
	textNudge   = 5 // moves the label baseline down so text sits centered in the circle
	fontSize    = 16
	fontFamily  = "Arial, sans-serif"
	markerID    = "arrowhead"
)

// Render builds the SVG document for g placed at pos. All positions are
// checked before anything is emitted; a missing one fails with an
// [errors.ErrCodeMissingPosition] error and no output.
func Render(g *dag.Graph, pos layout.Positions, cfg Config) ([]byte, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := pos.Validate(g); err != nil {
		return nil, err
	}

	lines := make([]string, 0, 8+g.EdgeCount()+2*g.NodeCount())
	lines = append(lines, header(cfg)...)
	for _, e := range g.Edges() {
		lines = append(lines, edgeLine(cfg, pos, e))
	}
	for _, id := range g.Nodes() {
		lines = append(lines, nodeLines(cfg, pos, id)...)
	}
	lines = append(lines, "</svg>")

	return []byte(strings.Join(lines, "\n")), nil
}

func header(cfg Config) []string {
	w, h := strconv.Itoa(cfg.CanvasWidth), strconv.Itoa(cfg.CanvasHeight)
	return []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, w, h, w, h),
		"<defs>",
		fmt.Sprintf(`<marker id="%s" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto" markerUnits="strokeWidth">`, markerID),
		fmt.Sprintf(`<polygon points="0 0, 10 3.5, 0 7" fill="%s" />`, escape(cfg.EdgeColor)),
		"</marker>",
		"</defs>",
	}
}

func edgeLine(cfg Config, pos layout.Positions, e dag.Edge) string {
	x1, y1 := cfg.ToCanvas(pos[e.From])
	x2, y2 := cfg.ToCanvas(pos[e.To])
	s := Shorten(Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}, cfg.NodeRadius, cfg.NodeRadius+cfg.ArrowOffset)
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%d" marker-end="url(#%s)" />`,
		coord(s.X1), coord(s.Y1), coord(s.X2), coord(s.Y2), escape(cfg.EdgeColor), strokeWidth, markerID)
}

func nodeLines(cfg Config, pos layout.Positions, id string) []string {
	x, y := cfg.ToCanvas(pos[id])
	return []string{
		fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" stroke="%s" stroke-width="%d" fill="%s" />`,
			coord(x), coord(y), number(cfg.NodeRadius), escape(cfg.EdgeColor), strokeWidth, escape(cfg.NodeColor)),
		fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" font-family="%s" font-size="%d" font-weight="bold">%s</text>`,
			coord(x), coord(y+textNudge), fontFamily, fontSize, escape(id)),
	}
}

// coord formats a computed coordinate in shortest round-trip form, always
// with a fractional part or exponent (300.0, 319.18, 1e-05).
func coord(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// number formats a configured value without a trailing ".0" (28, 2.5).
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
