// Package pdf provides extraction of text, title candidates and embedded
// images from PDF documents.
package pdf

import (
	"fmt"
	"os"

	"github.com/dslipak/pdf"
)

// Document is an open handle to a parsed PDF file. It is read-only after
// opening and safe for concurrent page access.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open parses the PDF at path and returns a document handle. A file that
// cannot be opened or parsed is the only fatal failure in the extraction
// pipeline.
func Open(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // G304: user-provided PDF path is expected
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %q: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat PDF %q: %w", path, err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to parse PDF %q: %w", path, err)
	}

	return &Document{path: path, file: f, reader: reader}, nil
}

// Path returns the filesystem path the document was opened from.
func (d *Document) Path() string { return d.path }

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int { return d.reader.NumPage() }

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// page returns the 1-based page. Callers must check page.V.IsNull().
func (d *Document) page(num int) pdf.Page {
	return d.reader.Page(num)
}
