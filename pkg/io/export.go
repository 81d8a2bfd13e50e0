package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/dagsvg/pkg/errors"
)

// DefaultPath is where the dagsvg command writes when no output is given.
const DefaultPath = "dag.svg"

const filePerm = 0o644

// WriteSVG writes data to w unchanged.
func WriteSVG(data []byte, w io.Writer) error {
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write svg")
	}
	return nil
}

// ExportSVG atomically writes data to path. An empty path means
// [DefaultPath].
func ExportSVG(data []byte, path string) error {
	if path == "" {
		path = DefaultPath
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	tmp := f.Name()

	if err := writeAndClose(f, data); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeIO, err, "rename to %s", path)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	// CreateTemp uses 0600; match what os.WriteFile would produce.
	if err := f.Chmod(filePerm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
