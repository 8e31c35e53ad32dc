package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	for _, name := range []string{"resume.pdf", "cv.DOCX", "old.doc", "r.rtf", "r.odt", "plain.txt"} {
		assert.True(t, Supported(name), name)
	}
	for _, name := range []string{"resume.png", "archive.zip", "noext", "script.sh"} {
		assert.False(t, Supported(name), name)
	}
}

func TestExtractText_PlainText(t *testing.T) {
	e := NewExtractor(t.TempDir())

	content := "Jane Doe\njane@example.com\n5 years of experience"
	doc, err := e.ExtractText("resume.txt", strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, ".txt", doc.FileType)
	assert.Equal(t, int64(len(content)), doc.FileSize)
	assert.Equal(t, content, doc.Text)
	assert.FileExists(t, doc.FilePath)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	e := NewExtractor(t.TempDir())

	_, err := e.ExtractText("photo.png", strings.NewReader("binary"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
