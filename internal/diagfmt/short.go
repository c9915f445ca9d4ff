package diagfmt

import (
	"io"

	"marklint/internal/diag"
	"marklint/internal/source"
)

// Short writes the compact one-line-per-diagnostic format used in golden
// tests and CI logs.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes))
	return err
}
