// Package svg renders a [dag.Graph] with fixed [layout.Positions] as a static
// SVG document.
//
// Rendering is a single linear pass: validate the configuration and
// positions, transform every layout point to canvas space, emit one line
// element per edge and one circle/text pair per node, then join the lines.
// Edges are emitted before nodes so circles sit on top of line endpoints.
//
// # Coordinates
//
// [Config.ToCanvas] maps layout space (origin centered, y up) to canvas space
// (origin top-left, y down). [Config.FromCanvas] is its inverse.
//
// # Edge shortening
//
// [Shorten] retracts both ends of a [Segment] along its direction so a line
// stops at the node circle boundary and leaves room for the arrowhead.
//
// # Output
//
// [Render] returns the document bytes; it never touches the filesystem.
// Identical inputs always produce byte-identical output.
package svg
