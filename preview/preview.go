// Package preview validates and inspects local documents before they are
// sent anywhere. The upload and watch views use CheckPDF to reject non-PDF
// files without touching the network.
package preview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv/v2"
)

var pdfMagic = []byte("%PDF-")

// CheckPDF rejects files that are not PDFs: extension first, then the
// %PDF- header.
func CheckPDF(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%s is not a PDF file, only PDF uploads are supported", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !bytes.Equal(head, pdfMagic) {
		return fmt.Errorf("%s does not look like a PDF file", filepath.Base(path))
	}

	return nil
}

// Info is a local pre-upload summary of a document.
type Info struct {
	File  string
	Words int
	Text  string
}

// Extract pulls the text out of a local PDF so a document can be sanity
// checked before uploading it.
func Extract(path string) (*Info, error) {
	if err := CheckPDF(path); err != nil {
		return nil, err
	}

	res, err := docconv.ConvertPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf document: %w", err)
	}

	return &Info{
		File:  filepath.Base(path),
		Words: len(strings.Fields(res.Body)),
		Text:  res.Body,
	}, nil
}
