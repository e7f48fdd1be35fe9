// Package extract pulls plain text out of uploaded resume files. The text is
// what gets sent to the structuring model; an upload that yields no text is
// rejected here so the model is never called on an empty payload.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shahhub/resumehub/internal/utils"
)

// Extractor converts one file format to plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

var extractors = map[string]Extractor{
	".txt":  plainText{},
	".pdf":  pdfText{},
	".docx": docxText{},
}

// SupportedExtensions lists the accepted upload formats.
func SupportedExtensions() []string {
	return []string{".txt", ".pdf", ".docx"}
}

// Text extracts plain text from an uploaded file, dispatching on extension.
func Text(filename string, data []byte) (string, error) {
	const op = "extract.Text"

	ext := strings.ToLower(filepath.Ext(filename))
	ex, ok := extractors[ext]
	if !ok {
		return "", utils.E(utils.CodeInvalidArgument, op,
			fmt.Sprintf("unsupported file type %q", ext), nil)
	}

	text, err := ex.Extract(data)
	if err != nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "could not read file", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "file contains no text", nil)
	}
	return text, nil
}

type plainText struct{}

func (plainText) Extract(data []byte) (string, error) {
	return string(data), nil
}
