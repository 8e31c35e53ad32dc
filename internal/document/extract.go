// Package document converts uploaded resume files into plain text.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

type Extractor struct {
	uploadsDir string
}

// Document is the stored file plus its extracted text.
type Document struct {
	Filename string
	FilePath string
	FileType string
	FileSize int64
	Text     string
}

func NewExtractor(uploadsDir string) *Extractor {
	return &Extractor{uploadsDir: uploadsDir}
}

// ExtractText saves the uploaded file under the uploads directory and
// extracts its text. PDF, DOCX, DOC, RTF and ODT go through docconv;
// plain text files are read directly.
func (e *Extractor) ExtractText(filename string, reader io.Reader) (*Document, error) {
	if err := os.MkdirAll(e.uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	filePath := filepath.Join(e.uploadsDir, filepath.Base(filename))
	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	var text string

	switch fileType {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	return &Document{
		Filename: filename,
		FilePath: filePath,
		FileType: fileType,
		FileSize: size,
		Text:     text,
	}, nil
}

// Supported reports whether the extractor can handle the file extension.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt":
		return true
	}
	return false
}
