package preview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func Test_CheckPDF(t *testing.T) {
	pdf := writeFile(t, "doc.pdf", []byte("%PDF-1.7 rest of the file"))
	assert.NoError(t, CheckPDF(pdf))

	upper := writeFile(t, "DOC.PDF", []byte("%PDF-1.4"))
	assert.NoError(t, CheckPDF(upper))
}

func Test_CheckPDF_RejectsWrongExtension(t *testing.T) {
	txt := writeFile(t, "notes.txt", []byte("%PDF-1.7"))
	err := CheckPDF(txt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a PDF file")
}

func Test_CheckPDF_RejectsWrongMagic(t *testing.T) {
	fake := writeFile(t, "fake.pdf", []byte("<html>not a pdf</html>"))
	err := CheckPDF(fake)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a PDF")
}

func Test_CheckPDF_RejectsMissingFile(t *testing.T) {
	assert.Error(t, CheckPDF(filepath.Join(t.TempDir(), "missing.pdf")))
}

func Test_Extract_RejectsNonPDF(t *testing.T) {
	txt := writeFile(t, "notes.txt", []byte("plain text"))
	_, err := Extract(txt)
	assert.Error(t, err)
}
