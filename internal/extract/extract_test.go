package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahhub/resumehub/internal/utils"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestTextPlainFile(t *testing.T) {
	out, err := Text("resume.txt", []byte("Jane Doe\nEngineer"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer", out)
}

func TestTextUnsupportedExtension(t *testing.T) {
	_, err := Text("resume.png", []byte("binary"))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestTextEmptyFileRejected(t *testing.T) {
	_, err := Text("resume.txt", []byte("   \n\t "))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestTextDocxParagraphs(t *testing.T) {
	doc := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	out, err := Text("resume.docx", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe\n")
	assert.Contains(t, out, "Software Engineer")
}

func TestTextDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Text("resume.docx", buf.Bytes())
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestTextCorruptPdfRejected(t *testing.T) {
	_, err := Text("resume.pdf", []byte("not a pdf"))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
