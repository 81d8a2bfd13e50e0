// Package io writes rendered documents to disk.
//
// # Export
//
// Use [ExportSVG] to write a finished SVG document to a path:
//
//	if err := io.ExportSVG(data, "dag.svg"); err != nil {
//	    log.Fatal(err)
//	}
//
// Writes are atomic: the data goes to a temporary file in the target's
// directory, which is then renamed over the target. On failure the temporary
// file is removed and any existing file at the path is left untouched, so a
// partial document never appears on disk.
//
// Failures are reported as [errors.ErrCodeIO] errors wrapping the underlying
// *os.PathError.
//
// [errors.ErrCodeIO]: github.com/matzehuels/dagsvg/pkg/errors.ErrCodeIO
package io
